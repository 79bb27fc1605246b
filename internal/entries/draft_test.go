package entries

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/model"
)

func TestDraftBuild_Expense(t *testing.T) {
	d := Draft{
		Amount:      "42,50",
		Date:        "2024-02-20",
		Category:    "Food",
		Description: "  Courses  ",
	}
	e, err := d.Build(id.Sequence("t"), now)
	require.NoError(t, err)

	assert.Equal(t, "t-001", e.ID)
	assert.True(t, e.Amount.Equal(dec("42.50")))
	assert.True(t, e.Date.Equal(model.NewDate(2024, 2, 20)))
	assert.Equal(t, model.CategoryFood, e.Category)
	assert.Equal(t, "Courses", e.Description)
	assert.False(t, e.IsIncome)
}

func TestDraftBuild_IncomeDefaultsToToday(t *testing.T) {
	d := Draft{Amount: "2800", Category: "salary", Income: true}
	e, err := d.Build(id.Sequence("t"), now)
	require.NoError(t, err)

	assert.True(t, e.IsIncome)
	assert.True(t, e.Date.Equal(model.NewDate(2024, 2, 25)))
	assert.Equal(t, "", e.Description)
}

func TestDraftBuild_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		want  string
	}{
		{"empty amount", Draft{Category: "food"}, "not a number"},
		{"text amount", Draft{Amount: "abc", Category: "food"}, "not a number"},
		{"zero", Draft{Amount: "0", Category: "food"}, "greater than zero"},
		{"negative", Draft{Amount: "-3", Category: "food"}, "greater than zero"},
		{"three decimals", Draft{Amount: "1.005", Category: "food"}, "2 decimal places"},
		{"no category", Draft{Amount: "5"}, "select a category"},
		{"unknown category", Draft{Amount: "5", Category: "pets"}, "not available"},
		{"income category on expense", Draft{Amount: "5", Category: "salary"}, "not available for expense"},
		{"expense category on income", Draft{Amount: "5", Category: "food", Income: true}, "not available for income"},
		{"bad date", Draft{Amount: "5", Category: "food", Date: "20/02/2024"}, "not YYYY-MM-DD"},
		{"impossible date", Draft{Amount: "5", Category: "food", Date: "2024-02-30"}, "not YYYY-MM-DD"},
		{"trailing text", Draft{Amount: "5", Category: "food", Date: "2024-02-20x"}, "not YYYY-MM-DD"},
		{"long description", Draft{Amount: "5", Category: "food", Description: strings.Repeat("x", 201)}, "longer than 200"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.draft.Build(id.Sequence("t"), now)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDraft)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDraftBuild_DateIsTrimmed(t *testing.T) {
	e, err := Draft{Amount: "5", Category: "food", Date: " 2024-02-29 "}.Build(id.Sequence("t"), now)
	require.NoError(t, err)
	assert.True(t, e.Date.Equal(model.NewDate(2024, 2, 29)))
}

func TestDraftBuild_TrailingZerosAllowed(t *testing.T) {
	e, err := Draft{Amount: "3.500", Category: "other"}.Build(id.Sequence("t"), now)
	require.NoError(t, err)
	assert.Equal(t, "3.50", e.Amount.StringFixed(2))
}

func TestDraftBuild_OtherOnBothForms(t *testing.T) {
	for _, income := range []bool{false, true} {
		_, err := Draft{Amount: "1", Category: "other", Income: income}.Build(id.Sequence("t"), now)
		assert.NoError(t, err)
	}
}
