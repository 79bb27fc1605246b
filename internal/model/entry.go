package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is a single dated income or expense record.
type Entry struct {
	ID          string
	Amount      decimal.Decimal // magnitude, never negative
	Date        time.Time       // calendar date at midnight UTC
	Category    Category
	Description string
	IsIncome    bool
}

// Signed returns the amount with the sign implied by IsIncome.
func (e Entry) Signed() decimal.Decimal {
	if e.IsIncome {
		return e.Amount
	}
	return e.Amount.Neg()
}

// InMonth reports whether the entry falls in the calendar month and year of t.
// The entry date's own fields are compared, so a date stored at midnight UTC
// keeps its calendar day whatever t's location is.
func (e Entry) InMonth(t time.Time) bool {
	return e.Date.Year() == t.Year() && e.Date.Month() == t.Month()
}

// Kind returns "income" or "expense".
func (e Entry) Kind() string {
	if e.IsIncome {
		return "income"
	}
	return "expense"
}

// NewDate returns the calendar date y-m-d at midnight UTC.
func NewDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateOf truncates t to its calendar date, expressed at midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}
