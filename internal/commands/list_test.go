package commands_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/model"
)

// seedJanuary writes 25 expenses dated 1..25 January 2024 with ids
// entry-01..entry-25.
func seedJanuary(t *testing.T, dir string) {
	t.Helper()
	list := make([]model.Entry, 25)
	for i := range list {
		day := i + 1
		list[i] = model.Entry{
			ID:       fmt.Sprintf("entry-%02d", day),
			Amount:   decimal.NewFromInt(int64(day)),
			Date:     model.NewDate(2024, 1, day),
			Category: model.CategoryFood,
		}
	}
	writeEntries(t, dir, list)
}

func TestList_LastPageHoldsOldest(t *testing.T) {
	dir := newLedger(t, "0")
	seedJanuary(t, dir)

	out := mustRun(t, dir, "list", "--page", "3")
	assert.Contains(t, out, "Page 3/3 (25 entries, date desc)")
	for day := 1; day <= 5; day++ {
		assert.Contains(t, out, fmt.Sprintf("entry-%02d", day))
	}
	assert.NotContains(t, out, "entry-06")

	first := mustRun(t, dir, "list")
	assert.Contains(t, first, "Page 1/3")
	assert.Contains(t, first, "entry-25")
	assert.NotContains(t, first, "entry-15")
}

func TestList_ClampsPage(t *testing.T) {
	dir := newLedger(t, "0")
	seedJanuary(t, dir)

	out := mustRun(t, dir, "list", "--page", "9")
	assert.Contains(t, out, "Page 3/3")
	assert.Contains(t, out, "entry-01")
}

func TestList_ClampsLowPage(t *testing.T) {
	dir := newLedger(t, "0")
	seedJanuary(t, dir)

	for _, page := range []string{"0", "-3"} {
		out := mustRun(t, dir, "list", "--page="+page)
		assert.Contains(t, out, "Page 1/3", "--page %s", page)
		assert.Contains(t, out, "entry-25")
	}

	out := mustRun(t, newLedger(t, "0"), "list", "--page", "0")
	assert.Contains(t, out, "No entries.")
}

func TestList_SortAmountAscending(t *testing.T) {
	dir := newLedger(t, "0")
	seedJanuary(t, dir)

	out := mustRun(t, dir, "list", "--sort", "amount", "--order", "asc", "--page-size", "3")
	assert.Contains(t, out, "entry-01")
	assert.Contains(t, out, "entry-03")
	assert.NotContains(t, out, "entry-04")
	assert.Contains(t, out, "-1.00 €")
	assert.Contains(t, out, "Page 1/9 (25 entries, amount asc)")
}

func TestList_ExpensesByDefault(t *testing.T) {
	dir := newLedger(t, "0")
	addDashboardEntries(t, dir)

	out := mustRun(t, dir, "list")
	assert.NotContains(t, out, "Salaire")
	assert.Contains(t, out, "Courses")
	assert.Contains(t, out, "3 entries")

	out = mustRun(t, dir, "list", "--all")
	assert.Contains(t, out, "+2800.00 €")
	assert.Contains(t, out, "4 entries")

	out = mustRun(t, dir, "list", "--income")
	assert.Contains(t, out, "1 entries")
}

func TestList_Empty(t *testing.T) {
	dir := newLedger(t, "0")
	out := mustRun(t, dir, "list")
	assert.Contains(t, out, "No entries.")
}

func TestList_RejectsBadQuery(t *testing.T) {
	dir := newLedger(t, "0")
	for _, args := range [][]string{
		{"list", "--page-size", "0"},
		{"list", "--sort", "name"},
		{"list", "--order", "sideways"},
	} {
		_, err := runTally(t, dir, args...)
		require.Error(t, err, "%v", args)
	}
}
