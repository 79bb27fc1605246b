package ledger

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tally-dev/tally/internal/model"
)

func TestAggregate_Dashboard(t *testing.T) {
	s := Aggregate(dec("2450.00"), dashboardEntries(), now)

	assert.Equal(t, "5156.51", s.CurrentBalance.StringFixed(2))
	assert.Equal(t, "2800.00", s.MonthlyIncome.StringFixed(2))
	assert.Equal(t, "93.49", s.MonthlyExpenses.StringFixed(2))
	assert.Equal(t, "2706.51", s.MonthlyNet().StringFixed(2))
}

func TestAggregate_Empty(t *testing.T) {
	s := Aggregate(dec("100.00"), nil, now)

	assert.True(t, s.CurrentBalance.Equal(dec("100")))
	assert.True(t, s.MonthlyIncome.IsZero())
	assert.True(t, s.MonthlyExpenses.IsZero())
}

func TestAggregate_OtherMonthsOnlyMoveBalance(t *testing.T) {
	entries := []model.Entry{
		expense("a", "10.00", model.NewDate(2024, 1, 31), model.CategoryFood),
		income("b", "50.00", model.NewDate(2023, 2, 10), model.CategoryGift),
		expense("c", "5.00", model.NewDate(2024, 3, 1), model.CategoryHealth),
	}
	s := Aggregate(decimal.Zero, entries, now)

	assert.Equal(t, "35.00", s.CurrentBalance.StringFixed(2))
	assert.True(t, s.MonthlyIncome.IsZero())
	assert.True(t, s.MonthlyExpenses.IsZero())
}

func TestAggregate_NoRounding(t *testing.T) {
	entries := []model.Entry{
		expense("a", "0.1", model.NewDate(2024, 2, 1), model.CategoryFood),
		expense("b", "0.2", model.NewDate(2024, 2, 2), model.CategoryFood),
		expense("c", "0.005", model.NewDate(2024, 2, 3), model.CategoryFood),
	}
	s := Aggregate(decimal.Zero, entries, now)

	assert.True(t, s.MonthlyExpenses.Equal(dec("0.305")), "got %s", s.MonthlyExpenses)
	assert.True(t, s.CurrentBalance.Equal(dec("-0.305")), "got %s", s.CurrentBalance)
}

func TestAggregate_BalanceIsDateIndependent(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		entries := randomEntries(r, 40)
		start := decimal.New(r.Int63n(1000000), -2)

		want := start
		for _, e := range entries {
			if e.IsIncome {
				want = want.Add(e.Amount)
			} else {
				want = want.Sub(e.Amount)
			}
		}
		got := Aggregate(start, entries, now)
		assert.True(t, want.Equal(got.CurrentBalance), "run %d: want %s, got %s", i, want, got.CurrentBalance)
	}
}

func TestAggregate_MonthlySumsOnlyCurrentMonth(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	entries := randomEntries(r, 200)
	probe := model.NewDate(2024, 6, 15)

	inc, exp := decimal.Zero, decimal.Zero
	for _, e := range entries {
		if e.Date.Year() != 2024 || e.Date.Month() != 6 {
			continue
		}
		if e.IsIncome {
			inc = inc.Add(e.Amount)
		} else {
			exp = exp.Add(e.Amount)
		}
	}

	got := Aggregate(decimal.Zero, entries, probe)
	assert.True(t, inc.Equal(got.MonthlyIncome))
	assert.True(t, exp.Equal(got.MonthlyExpenses))
}

func TestAggregate_PureAndOrderIndependent(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	entries := randomEntries(r, 50)
	before := make([]model.Entry, len(entries))
	copy(before, entries)

	first := Aggregate(dec("12.34"), entries, now)
	second := Aggregate(dec("12.34"), entries, now)
	assert.Equal(t, first, second)
	assert.Equal(t, before, entries, "input must not be mutated")

	r.Shuffle(len(entries), func(i, j int) { entries[i], entries[j] = entries[j], entries[i] })
	shuffled := Aggregate(dec("12.34"), entries, now)
	assert.True(t, first.CurrentBalance.Equal(shuffled.CurrentBalance))
	assert.True(t, first.MonthlyIncome.Equal(shuffled.MonthlyIncome))
	assert.True(t, first.MonthlyExpenses.Equal(shuffled.MonthlyExpenses))
}

func TestAggregate_DuplicateInsertionCountsTwice(t *testing.T) {
	e := expense("a", "20.00", model.NewDate(2024, 2, 3), model.CategoryFood)
	s := Aggregate(dec("100"), []model.Entry{e, e}, now)

	assert.Equal(t, "60.00", s.CurrentBalance.StringFixed(2))
	assert.Equal(t, "40.00", s.MonthlyExpenses.StringFixed(2))
}
