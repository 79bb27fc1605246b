// Package commands implements the tally command-line interface.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "Personal expense and income ledger",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.dataDir, "data-dir", ".", "directory holding tally.yaml and the data files (env TALLY_DATA_DIR)")
	pf.StringVar(&a.cfgPath, "config", "", "config file (default <data-dir>/tally.yaml, env TALLY_CONFIG)")
	pf.StringVar(&a.nowText, "now", "", "override the current date, RFC 3339 or YYYY-MM-DD (env TALLY_NOW)")
	pf.StringVar(&a.level, "log-level", "warn", "log level (env TALLY_LOG_LEVEL)")

	rootCmd.AddCommand(
		newInitCommand(a),
		newAddCommand(a),
		newDeleteCommand(a),
		newSummaryCommand(a),
		newListCommand(a),
		newImportCommand(a),
		newCategoriesCommand(a),
		newLogCommand(a),
	)

	return rootCmd
}
