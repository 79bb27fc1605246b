package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/model"
)

// ChaseParser parses Chase bank checking CSV exports. Debits become
// expenses and credits become income, all filed under "other".
type ChaseParser struct{}

const (
	chaseDateFormat = "01/02/2006"
	chaseNumFields  = 7
	chaseColDate    = 1
	chaseColDesc    = 2
	chaseColAmount  = 3
)

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV and returns one entry per row. Zero-amount rows
// carry no money and are skipped.
func (p *ChaseParser) Parse(r io.Reader, newID id.Generator) ([]model.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = chaseNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chase CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var out []model.Entry
	for i, rec := range records[1:] {
		date, err := time.Parse(chaseDateFormat, rec[chaseColDate])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, rec[chaseColDate], err)
		}
		amount, err := decimal.NewFromString(rec[chaseColAmount])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", i+2, rec[chaseColAmount], err)
		}
		if amount.IsZero() {
			continue
		}
		out = append(out, bankEntry(newID(), date, amount, rec[chaseColDesc]))
	}
	return out, nil
}

// bankEntry converts a signed bank amount into an entry.
func bankEntry(entryID string, date time.Time, signed decimal.Decimal, desc string) model.Entry {
	return model.Entry{
		ID:          entryID,
		Amount:      signed.Abs(),
		Date:        model.DateOf(date),
		Category:    model.CategoryOther,
		Description: strings.Join(strings.Fields(desc), " "),
		IsIncome:    signed.IsPositive(),
	}
}
