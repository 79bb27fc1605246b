package entries

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// Rule names a collection invariant.
type Rule string

const (
	RuleNegativeAmount  Rule = "non-negative-amount"
	RulePrecision       Rule = "two-decimals"
	RuleUnknownCategory Rule = "known-category"
	RuleMissingID       Rule = "id-present"
	RuleDuplicateID     Rule = "unique-id"
	RuleMissingDate     Rule = "date-present"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Rule        Rule
	EntryID     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Rule, e.EntryID, e.Description)
}

var hundred = decimal.NewFromInt(100)

// ValidateEntries checks the invariants every stored collection must hold.
func ValidateEntries(entries []model.Entry) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool, len(entries))

	for _, e := range entries {
		if e.ID == "" {
			errs = append(errs, ValidationError{
				Rule:        RuleMissingID,
				Description: "entry has no id",
			})
		} else if seen[e.ID] {
			errs = append(errs, ValidationError{
				Rule:        RuleDuplicateID,
				EntryID:     e.ID,
				Description: "id used more than once",
			})
		}
		seen[e.ID] = true

		if e.Amount.IsNegative() {
			errs = append(errs, ValidationError{
				Rule:        RuleNegativeAmount,
				EntryID:     e.ID,
				Description: fmt.Sprintf("amount %s is negative; the sign belongs in is_income", e.Amount),
			})
		}

		if !e.Amount.Mul(hundred).Equal(e.Amount.Mul(hundred).Floor()) {
			errs = append(errs, ValidationError{
				Rule:        RulePrecision,
				EntryID:     e.ID,
				Description: fmt.Sprintf("amount %s has more than 2 decimal places", e.Amount),
			})
		}

		if !e.Category.Valid() {
			errs = append(errs, ValidationError{
				Rule:        RuleUnknownCategory,
				EntryID:     e.ID,
				Description: fmt.Sprintf("unknown category %q", e.Category),
			})
		}

		if e.Date.IsZero() {
			errs = append(errs, ValidationError{
				Rule:        RuleMissingDate,
				EntryID:     e.ID,
				Description: "entry has no date",
			})
		}
	}

	return errs
}
