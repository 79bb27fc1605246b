// Package entries validates, encodes and stores ledger entries.
package entries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/model"
)

// ErrInvalidDraft wraps every rejection of form input.
var ErrInvalidDraft = errors.New("invalid entry")

const maxDescription = 200

var validate = validator.New()

// Draft is the raw input of the expense and income forms.
type Draft struct {
	Amount      string // "42.50" or "42,50"
	Date        string // YYYY-MM-DD; empty means today
	Category    string
	Description string
	Income      bool
}

// Build validates d and returns the entry it describes with a fresh id.
// now supplies the date when d.Date is empty.
func (d Draft) Build(newID id.Generator, now time.Time) (model.Entry, error) {
	amountText := strings.ReplaceAll(strings.TrimSpace(d.Amount), ",", ".")
	if err := validate.Var(amountText, "required,numeric"); err != nil {
		return model.Entry{}, fmt.Errorf("%w: amount %q is not a number", ErrInvalidDraft, d.Amount)
	}
	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return model.Entry{}, fmt.Errorf("%w: amount %q: %v", ErrInvalidDraft, d.Amount, err)
	}
	if !amount.IsPositive() {
		return model.Entry{}, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidDraft)
	}
	if !amount.Equal(amount.Round(2)) {
		return model.Entry{}, fmt.Errorf("%w: amount %s has more than 2 decimal places", ErrInvalidDraft, amount)
	}

	category, err := d.category()
	if err != nil {
		return model.Entry{}, err
	}

	date := model.DateOf(now)
	if s := strings.TrimSpace(d.Date); s != "" {
		parsed, err := time.Parse(dateFormat, s)
		if err != nil {
			return model.Entry{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD: %v", ErrInvalidDraft, d.Date, err)
		}
		date = parsed
	}

	desc := strings.TrimSpace(d.Description)
	if err := validate.Var(desc, fmt.Sprintf("max=%d", maxDescription)); err != nil {
		return model.Entry{}, fmt.Errorf("%w: description longer than %d characters", ErrInvalidDraft, maxDescription)
	}

	return model.Entry{
		ID:          newID(),
		Amount:      amount,
		Date:        date,
		Category:    category,
		Description: desc,
		IsIncome:    d.Income,
	}, nil
}

func (d Draft) category() (model.Category, error) {
	offered := model.CategoriesFor(d.Income)
	names := make([]string, len(offered))
	for i, c := range offered {
		names[i] = string(c)
	}

	c := strings.ToLower(strings.TrimSpace(d.Category))
	if err := validate.Var(c, "required"); err != nil {
		return "", fmt.Errorf("%w: select a category", ErrInvalidDraft)
	}
	if err := validate.Var(c, "oneof="+strings.Join(names, " ")); err != nil {
		kind := "expense"
		if d.Income {
			kind = "income"
		}
		return "", fmt.Errorf("%w: category %q is not available for %s entries (choose %s)",
			ErrInvalidDraft, d.Category, kind, strings.Join(names, ", "))
	}
	return model.Category(c), nil
}
