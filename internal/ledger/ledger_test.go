package ledger

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

var now = time.Date(2024, 2, 25, 9, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func expense(id, amount string, date time.Time, cat model.Category) model.Entry {
	return model.Entry{ID: id, Amount: dec(amount), Date: date, Category: cat}
}

func income(id, amount string, date time.Time, cat model.Category) model.Entry {
	e := expense(id, amount, date, cat)
	e.IsIncome = true
	return e
}

// dashboardEntries mirrors the app's seed data, all in February 2024.
func dashboardEntries() []model.Entry {
	return []model.Entry{
		expense("1", "42.50", model.NewDate(2024, 2, 20), model.CategoryFood),
		expense("2", "15.99", model.NewDate(2024, 2, 18), model.CategoryEntertainment),
		expense("3", "35.00", model.NewDate(2024, 2, 15), model.CategoryTransport),
		income("4", "2800.00", model.NewDate(2024, 2, 1), model.CategorySalary),
	}
}

func randomEntries(r *rand.Rand, n int) []model.Entry {
	cats := model.Categories()
	out := make([]model.Entry, n)
	for i := range out {
		out[i] = model.Entry{
			ID:       fmt.Sprintf("e%03d", i),
			Amount:   decimal.New(r.Int63n(100000), -2),
			Date:     model.NewDate(2023+r.Intn(2), time.Month(1+r.Intn(12)), 1+r.Intn(28)),
			Category: cats[r.Intn(len(cats))],
			IsIncome: r.Intn(3) == 0,
		}
	}
	return out
}
