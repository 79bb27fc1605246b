package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/listing"
	"github.com/tally-dev/tally/internal/model"
)

func newListCommand(a *app) *cobra.Command {
	var (
		sortKey  string
		order    string
		page     int
		pageSize int
		all      bool
		income   bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List expenses sorted and paginated",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("sort") {
				sortKey = a.cfg.Listing.SortKey
			}
			if !flags.Changed("order") {
				order = a.cfg.Listing.SortOrder
			}
			if !flags.Changed("page-size") {
				pageSize = a.cfg.Listing.PageSize
			}

			q, err := buildQuery(sortKey, order, pageSize)
			if err != nil {
				return err
			}

			book, err := a.store.Load()
			if err != nil {
				return err
			}
			var selected []model.Entry
			switch {
			case all:
				selected = book.Entries()
			case income:
				selected = book.Incomes()
			default:
				selected = book.Expenses()
			}

			q.Page = listing.ClampPage(page, listing.TotalPages(len(selected), q.PageSize))
			res := a.sort.Page(selected, q)
			logrus.WithFields(logrus.Fields{
				"count": len(selected),
				"sort":  q.Key,
				"order": q.Order,
				"page":  res.Page,
			}).Debug("listing entries")

			out := cmd.OutOrStdout()
			if len(res.Entries) == 0 {
				printf(out, "No entries.\n")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			printf(tw, "ID\tDATE\tCATEGORY\tAMOUNT\tDESCRIPTION\n")
			for _, e := range res.Entries {
				printf(tw, "%s\t%s\t%s\t%s\t%s\n",
					id.Short(e.ID), e.Date.Format("2006-01-02"), e.Category.Label(), a.signed(e.Signed()), e.Description)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			printf(out, "Page %d/%d (%d entries, %s %s)\n",
				res.Page, max(1, res.TotalPages), len(selected), q.Key, q.Order)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&sortKey, "sort", "s", "", "sort key: date, amount or category (default from config)")
	f.StringVarP(&order, "order", "o", "", "sort order: asc or desc (default from config)")
	f.IntVarP(&page, "page", "p", 1, "page number, clamped to the first and last page")
	f.IntVarP(&pageSize, "page-size", "n", listing.DefaultPageSize, "entries per page (default from config)")
	f.BoolVar(&all, "all", false, "include income entries")
	f.BoolVar(&income, "income", false, "list income entries only")
	cmd.MarkFlagsMutuallyExclusive("all", "income")

	return cmd
}

// buildQuery checks the sort and page size. The page is clamped by the
// caller once the entry count is known.
func buildQuery(sortKey, order string, pageSize int) (listing.Query, error) {
	key, err := listing.ParseSortKey(sortKey)
	if err != nil {
		return listing.Query{}, err
	}
	ord, err := listing.ParseSortOrder(order)
	if err != nil {
		return listing.Query{}, err
	}
	q := listing.Query{Key: key, Order: ord, PageSize: pageSize, Page: 1}
	if err := q.Validate(); err != nil {
		return listing.Query{}, fmt.Errorf("invalid listing: %w", err)
	}
	return q, nil
}
