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

// SimpleParser reads the minimal "date,description,amount" layout most
// banks can export: ISO dates, signed amounts, decimal point or comma.
type SimpleParser struct{}

const (
	simpleNumFields = 3
	simpleColDate   = 0
	simpleColDesc   = 1
	simpleColAmount = 2
)

// Format returns the parser name.
func (p *SimpleParser) Format() string { return "simple" }

// Parse reads the export, skipping the header row and zero amounts.
func (p *SimpleParser) Parse(r io.Reader, newID id.Generator) ([]model.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = simpleNumFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var out []model.Entry
	for i, rec := range records[1:] {
		date, err := time.Parse("2006-01-02", rec[simpleColDate])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, rec[simpleColDate], err)
		}
		text := strings.ReplaceAll(strings.TrimSpace(rec[simpleColAmount]), ",", ".")
		amount, err := decimal.NewFromString(text)
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", i+2, rec[simpleColAmount], err)
		}
		if amount.IsZero() {
			continue
		}
		out = append(out, bankEntry(newID(), date, amount, rec[simpleColDesc]))
	}
	return out, nil
}
