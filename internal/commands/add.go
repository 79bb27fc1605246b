package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/activity"
	"github.com/tally-dev/tally/internal/entries"
	"github.com/tally-dev/tally/internal/id"
)

func newAddCommand(a *app) *cobra.Command {
	var d entries.Draft

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record an expense, or income with --income",
		Example: `  tally add 42,50 --category food --description "Courses"
  tally add 2800 --income --category salary --date 2024-02-01`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			d.Amount = args[0]

			e, err := a.store.Add(d, a.now)
			if err != nil {
				return fmt.Errorf("adding entry: %w", err)
			}

			logrus.WithFields(logrus.Fields{"entry_id": e.ID, "kind": e.Kind()}).Info("entry added")
			a.record(activity.Record{
				Action:  activity.ActionAdd,
				EntryID: e.ID,
				Details: fmt.Sprintf("%s %s %s", e.Kind(), e.Amount.StringFixed(2), e.Category),
			})

			printf(cmd.OutOrStdout(), "Added %s %s (%s, %s) id %s\n",
				e.Kind(), a.money(e.Amount), e.Category.Label(), e.Date.Format("2006-01-02"), id.Short(e.ID))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&d.Category, "category", "c", "", "category key (see tally categories)")
	f.StringVarP(&d.Date, "date", "d", "", "date as YYYY-MM-DD (default today)")
	f.StringVarP(&d.Description, "description", "m", "", "free-text description")
	f.BoolVar(&d.Income, "income", false, "record income instead of an expense")

	return cmd
}
