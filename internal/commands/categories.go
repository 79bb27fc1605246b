package commands

import (
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/model"
)

func newCategoriesCommand(a *app) *cobra.Command {
	var income, expense bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List category keys with their labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := model.Categories()
			switch {
			case income:
				cats = model.CategoriesFor(true)
			case expense:
				cats = model.CategoriesFor(false)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			printf(tw, "KEY\tLABEL\tICON\tFORMS\n")
			for _, c := range cats {
				printf(tw, "%s\t%s\t%s\t%s\n", c, c.Label(), c.Meta().Icon, forms(c))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&income, "income", false, "only categories offered for income")
	cmd.Flags().BoolVar(&expense, "expense", false, "only categories offered for expenses")
	cmd.MarkFlagsMutuallyExclusive("income", "expense")
	return cmd
}

func forms(c model.Category) string {
	switch {
	case c.AllowsExpense() && c.AllowsIncome():
		return "expense, income"
	case c.AllowsIncome():
		return "income"
	default:
		return "expense"
	}
}
