package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/activity"
	"github.com/tally-dev/tally/internal/entries"
	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/importer"
)

func newImportCommand(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <format> [file...]",
		Short: "Import bank CSV exports",
		Long: `Import bank CSV exports as entries filed under "other".

Without files, every CSV in <data-dir>/import/ is imported and then moved to
<data-dir>/import/processed/.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := importer.DefaultRegistry()
			p := reg.Get(args[0])
			if p == nil {
				return fmt.Errorf("unknown import format %q (available: %s)",
					args[0], strings.Join(reg.Formats(), ", "))
			}
			if err := a.load(); err != nil {
				return err
			}

			files := args[1:]
			inbox := len(files) == 0
			if inbox {
				pending, err := importer.Pending(a.dataDir)
				if err != nil {
					return err
				}
				files = pending
			}
			if len(files) == 0 {
				printf(cmd.OutOrStdout(), "Nothing to import.\n")
				return nil
			}

			for _, path := range files {
				n, err := a.importFile(p, path, dryRun)
				if err != nil {
					return err
				}
				if inbox && !dryRun {
					if err := importer.MarkProcessed(a.dataDir, path); err != nil {
						return err
					}
				}
				verb := "Imported"
				if dryRun {
					verb = "Would import"
				}
				printf(cmd.OutOrStdout(), "%s %d entries from %s\n", verb, n, filepath.Base(path))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and validate without saving")
	return cmd
}

func (a *app) importFile(p importer.Parser, path string, dryRun bool) (int, error) {
	list, err := importer.ParseFile(p, path, id.New)
	if err != nil {
		return 0, fmt.Errorf("importing: %w", err)
	}
	log := logrus.WithFields(logrus.Fields{"path": path, "count": len(list), "format": p.Format()})
	if dryRun {
		if verrs := entries.ValidateEntries(list); len(verrs) > 0 {
			return 0, fmt.Errorf("%s: %w", filepath.Base(path), verrs[0])
		}
		log.Info("dry run, nothing saved")
		return len(list), nil
	}

	if err := a.store.Import(list); err != nil {
		return 0, fmt.Errorf("importing %s: %w", filepath.Base(path), err)
	}
	log.Info("imported entries")

	recs := make([]activity.Record, len(list))
	for i, e := range list {
		recs[i] = activity.Record{
			Action:  activity.ActionImport,
			EntryID: e.ID,
			Details: fmt.Sprintf("%s %s %s from %s", e.Kind(), e.Amount.StringFixed(2), p.Format(), filepath.Base(path)),
		}
	}
	a.record(recs...)
	return len(list), nil
}
