package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// CategoryTotal is the expense total of one category.
type CategoryTotal struct {
	Category model.Category
	Total    decimal.Decimal
	Count    int
}

// MonthTotal holds the income and expense sums of one calendar month.
type MonthTotal struct {
	Year     int
	Month    time.Month
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Label formats the month as "2006-01".
func (m MonthTotal) Label() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// CategoryTotals sums expenses per category for the calendar month of now,
// largest first. Categories without expenses that month are omitted.
func CategoryTotals(entries []model.Entry, now time.Time) []CategoryTotal {
	byCat := make(map[model.Category]*CategoryTotal)
	for _, e := range entries {
		if e.IsIncome || !e.InMonth(now) {
			continue
		}
		ct, ok := byCat[e.Category]
		if !ok {
			ct = &CategoryTotal{Category: e.Category, Total: decimal.Zero}
			byCat[e.Category] = ct
		}
		ct.Total = ct.Total.Add(e.Amount)
		ct.Count++
	}

	out := make([]CategoryTotal, 0, len(byCat))
	for _, ct := range byCat {
		out = append(out, *ct)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// MonthlyHistory returns income and expense totals for the given number of
// calendar months ending with the month of now, oldest first.
func MonthlyHistory(entries []model.Entry, now time.Time, months int) []MonthTotal {
	if months <= 0 {
		return nil
	}

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	out := make([]MonthTotal, months)
	for i := range out {
		m := first.AddDate(0, i, 0)
		out[i] = MonthTotal{Year: m.Year(), Month: m.Month(), Income: decimal.Zero, Expenses: decimal.Zero}
	}

	for _, e := range entries {
		i := (e.Date.Year()-first.Year())*12 + int(e.Date.Month()-first.Month())
		if i < 0 || i >= months {
			continue
		}
		if e.IsIncome {
			out[i].Income = out[i].Income.Add(e.Amount)
		} else {
			out[i].Expenses = out[i].Expenses.Add(e.Amount)
		}
	}
	return out
}
