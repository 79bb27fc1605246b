package commands

import (
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/ledger"
)

func newSummaryCommand(a *app) *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:     "summary",
		Aliases: []string{"dashboard"},
		Short:   "Show balance, this month's totals and the budget overview",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			if !cmd.Flags().Changed("months") {
				months = a.cfg.Budget.HistoryMonths
			}

			book, err := a.store.Load()
			if err != nil {
				return err
			}
			all := book.Entries()
			s := ledger.Aggregate(a.start, all, a.now)
			month := a.now.Format("January 2006")

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			if a.cfg.Profile.Name != "" {
				printf(tw, "%s\t\n", a.cfg.Profile.Name)
			}
			printf(tw, "Balance\t%s\t\n", a.money(s.CurrentBalance))
			printf(tw, "Income, %s\t%s\t\n", month, a.money(s.MonthlyIncome))
			printf(tw, "Expenses, %s\t%s\t\n", month, a.money(s.MonthlyExpenses))
			printf(tw, "Net, %s\t%s\t\n", month, a.signed(s.MonthlyNet()))
			if err := tw.Flush(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			totals := ledger.CategoryTotals(all, a.now)
			if len(totals) > 0 {
				printf(out, "\nSpending by category\n")
				tw = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for _, ct := range totals {
					printf(tw, "  %s\t%s\t%d\n", ct.Category.Label(), a.money(ct.Total), ct.Count)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}

			if months > 0 {
				printf(out, "\nHistory\n")
				tw = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				printf(tw, "  MONTH\tINCOME\tEXPENSES\n")
				for _, m := range ledger.MonthlyHistory(all, a.now, months) {
					printf(tw, "  %s\t%s\t%s\n", m.Label(), a.money(m.Income), a.money(m.Expenses))
				}
				return tw.Flush()
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&months, "months", 0, "months of history to show (default from config, 0 hides)")
	return cmd
}
