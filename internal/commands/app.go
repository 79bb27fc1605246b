package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/activity"
	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/entries"
	"github.com/tally-dev/tally/internal/gitops"
	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/listing"
	"github.com/tally-dev/tally/internal/logging"
)

// app is the state shared by every command of one invocation.
type app struct {
	env     config.Env
	dataDir string
	cfgPath string
	nowText string
	level   string

	// Set by load.
	cfg   *config.Config
	now   time.Time
	start decimal.Decimal
	store *entries.Store
	sort  listing.Sorter
}

// setup resolves flags over the environment and configures logging. It
// runs before every command, including init.
func (a *app) setup(cmd *cobra.Command) error {
	e, err := config.LoadEnv(".env")
	if err != nil {
		return err
	}
	a.env = e

	flags := cmd.Flags()
	if !flags.Changed("data-dir") {
		a.dataDir = e.DataDir
	}
	if !flags.Changed("config") {
		a.cfgPath = e.ConfigPath
	}
	if !flags.Changed("now") {
		a.nowText = e.Now
	}
	if !flags.Changed("log-level") {
		a.level = e.LogLevel
	}
	return logging.Setup(a.level, cmd.ErrOrStderr())
}

func (a *app) configPath() string {
	if a.cfgPath != "" {
		return a.cfgPath
	}
	return filepath.Join(a.dataDir, config.FileName)
}

func (a *app) dataPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(a.dataDir, name)
}

// load reads and validates the config, samples now once and opens the store.
func (a *app) load() error {
	path := a.configPath()
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("%w (run tally init first)", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.start, err = cfg.StartingBalance(); err != nil {
		return err
	}
	lang, err := cfg.Language()
	if err != nil {
		return err
	}
	a.sort = listing.NewSorter(lang)

	a.now = time.Now()
	if a.nowText != "" {
		if a.now, err = config.ParseNow(a.nowText, time.Local); err != nil {
			return err
		}
	}

	a.store = entries.NewStore(a.dataPath(cfg.Data.EntriesFile), id.New)
	logrus.WithFields(logrus.Fields{
		"config": path,
		"path":   a.store.Path(),
		"now":    a.now.Format(time.RFC3339),
	}).Debug("loaded config")
	return nil
}

// record appends to the activity log and, with git.auto_commit, commits
// the data files. Failures are logged, never returned.
func (a *app) record(recs ...activity.Record) {
	if len(recs) == 0 {
		return
	}
	path := a.dataPath(a.cfg.Data.ActivityFile)
	for i := range recs {
		recs[i].Timestamp = a.now
	}
	if err := activity.Append(path, recs...); err != nil {
		logrus.WithError(err).WithField("path", path).Warn("writing activity log")
	}

	if a.cfg.Git.AutoCommit {
		msg := fmt.Sprintf("%s: %s", recs[0].Action, id.Short(recs[0].EntryID))
		if len(recs) > 1 {
			msg = fmt.Sprintf("%s: %d entries", recs[0].Action, len(recs))
		}
		a.commit(a.cfg, msg)
	}
}

// commit versions the data files of cfg in the data directory.
func (a *app) commit(cfg *config.Config, message string) {
	paths := []string{cfg.Data.EntriesFile, cfg.Data.ActivityFile}
	if rel, err := filepath.Rel(a.dataDir, a.configPath()); err == nil && !strings.HasPrefix(rel, "..") {
		paths = append(paths, rel)
	}

	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(a.dataPath(p)); err == nil {
			existing = append(existing, p)
		}
	}

	author := gitops.Author{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
	hash, err := gitops.Commit(a.dataDir, author, message, existing...)
	log := logrus.WithField("path", a.dataDir)
	if err != nil {
		log.WithError(err).Warn("committing data files")
		return
	}
	log.WithField("commit", hash).Debug("committed data files")
}

func (a *app) money(d decimal.Decimal) string {
	if a.cfg.Profile.Currency == "" {
		return d.StringFixed(2)
	}
	return d.StringFixed(2) + " " + a.cfg.Profile.Currency
}

func (a *app) signed(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + a.money(d)
	}
	return a.money(d)
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
