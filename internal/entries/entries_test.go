package entries

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

var now = time.Date(2024, 2, 25, 9, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func entry(id, amount string, date time.Time, cat model.Category, income bool) model.Entry {
	return model.Entry{
		ID:       id,
		Amount:   dec(amount),
		Date:     date,
		Category: cat,
		IsIncome: income,
	}
}
