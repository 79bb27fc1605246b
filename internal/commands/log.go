package commands

import (
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/activity"
	"github.com/tally-dev/tally/internal/id"
)

func newLogCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent changes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			recs, err := activity.Read(a.dataPath(a.cfg.Data.ActivityFile))
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				printf(cmd.OutOrStdout(), "No activity yet.\n")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range activity.Last(recs, limit) {
				printf(tw, "%s\t%s\t%s\t%s\n", r.Timestamp.Format(time.DateTime), r.Action, id.Short(r.EntryID), r.Details)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of records to show (0 for all)")
	return cmd
}
