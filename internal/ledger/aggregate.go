// Package ledger derives balances and monthly figures from a collection of
// entries. Every function here is pure: it reads the entries it is given and
// never mutates them.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// Summary is the dashboard aggregate. Values are exact and unrounded;
// formatting to two decimals is left to the caller.
type Summary struct {
	CurrentBalance  decimal.Decimal
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
}

// MonthlyNet returns income minus expenses for the month.
func (s Summary) MonthlyNet() decimal.Decimal {
	return s.MonthlyIncome.Sub(s.MonthlyExpenses)
}

// Aggregate computes the current balance over all entries and the income and
// expense sums for the calendar month of now.
func Aggregate(startingBalance decimal.Decimal, entries []model.Entry, now time.Time) Summary {
	balance := startingBalance
	income := decimal.Zero
	expenses := decimal.Zero

	for _, e := range entries {
		balance = balance.Add(e.Signed())
		if !e.InMonth(now) {
			continue
		}
		if e.IsIncome {
			income = income.Add(e.Amount)
		} else {
			expenses = expenses.Add(e.Amount)
		}
	}

	return Summary{
		CurrentBalance:  balance,
		MonthlyIncome:   income,
		MonthlyExpenses: expenses,
	}
}
