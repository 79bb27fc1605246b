package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/activity"
	"github.com/tally-dev/tally/internal/id"
)

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an entry by id or unique id prefix",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}

			e, err := a.store.Delete(args[0])
			if err != nil {
				return fmt.Errorf("deleting entry: %w", err)
			}

			logrus.WithField("entry_id", e.ID).Info("entry deleted")
			a.record(activity.Record{
				Action:  activity.ActionDelete,
				EntryID: e.ID,
				Details: fmt.Sprintf("%s %s %s", e.Kind(), e.Amount.StringFixed(2), e.Category),
			})

			printf(cmd.OutOrStdout(), "Deleted %s %s (%s) id %s\n",
				e.Kind(), a.money(e.Amount), e.Category.Label(), id.Short(e.ID))
			return nil
		},
	}
}
