package entries

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// Header is the CSV header for entries.csv.
const Header = "id,date,category,amount,is_income,description"

const (
	numFields  = 6
	dateFormat = "2006-01-02"
	colID      = 0
	colDate    = 1
	colCat     = 2
	colAmount  = 3
	colIncome  = 4
	colDesc    = 5
)

// ReadEntries reads all entries from an entries.csv reader.
func ReadEntries(r io.Reader) ([]model.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading entries CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var entries []model.Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// WriteEntries writes entries to an entries.csv writer (including header).
func WriteEntries(w io.Writer, entries []model.Entry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e model.Entry) []string {
	row := make([]string, numFields)
	row[colID] = e.ID
	row[colDate] = e.Date.Format(dateFormat)
	row[colCat] = string(e.Category)
	row[colAmount] = e.Amount.StringFixed(2)
	row[colIncome] = strconv.FormatBool(e.IsIncome)
	row[colDesc] = e.Description
	return row
}

// UnmarshalEntry converts a CSV row to an Entry. Amounts are kept exactly as
// written, so a hand-edited "0.125" survives and is reported by
// ValidateEntries rather than silently rounded.
func UnmarshalEntry(record []string) (model.Entry, error) {
	if len(record) != numFields {
		return model.Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Entry{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Entry{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	isIncome, err := strconv.ParseBool(record[colIncome])
	if err != nil {
		return model.Entry{}, fmt.Errorf("parsing is_income %q: %w", record[colIncome], err)
	}

	return model.Entry{
		ID:          record[colID],
		Date:        date,
		Category:    model.Category(record[colCat]),
		Amount:      amount,
		IsIncome:    isIncome,
		Description: record[colDesc],
	}, nil
}
