package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/entries"
	"github.com/tally-dev/tally/internal/gitops"
)

func newInitCommand(a *app) *cobra.Command {
	var name string
	var balance string
	var currency string
	var force bool
	var git bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a new ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				a.dataDir = args[0]
			}
			absDir, err := filepath.Abs(a.dataDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			a.dataDir = absDir

			cfg := config.Default(name)
			cfg.Profile.StartingBalance = strings.ReplaceAll(strings.TrimSpace(balance), ",", ".")
			cfg.Profile.Currency = currency
			cfg.Git.AutoCommit = git
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := runInit(a.configPath(), absDir, cfg, force); err != nil {
				return err
			}
			if git {
				if err := gitops.Init(absDir); err != nil {
					return err
				}
				a.commit(cfg, "init: create ledger")
			}

			printf(cmd.OutOrStdout(), "Initialized tally ledger at %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account holder name")
	cmd.Flags().StringVar(&balance, "balance", "0.00", "starting balance")
	cmd.Flags().StringVar(&currency, "currency", "€", "currency symbol shown after amounts")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing tally.yaml")
	cmd.Flags().BoolVar(&git, "git", false, "version the data directory with git, committing after every change")

	return cmd
}

func runInit(cfgPath, dir string, cfg *config.Config, force bool) error {
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking config: %w", err)
	}

	for _, d := range []string{dir, filepath.Join(dir, "import", "processed")} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Leave an existing entries file alone so init --force only resets config.
	store := entries.NewStore(filepath.Join(dir, cfg.Data.EntriesFile), nil)
	book, err := store.Load()
	if err != nil {
		return err
	}
	if err := store.Save(book); err != nil {
		return fmt.Errorf("writing entries: %w", err)
	}

	logrus.WithFields(logrus.Fields{"path": dir, "entries": book.Len()}).Info("initialized ledger")
	return nil
}
