// Package listing orders entries and slices them into pages.
package listing

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tally-dev/tally/internal/model"
)

// SortKey selects the field entries are ordered by.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByAmount   SortKey = "amount"
	SortByCategory SortKey = "category"
)

// SortOrder is the direction of an ordering.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// ParseSortKey converts "date", "amount" or "category".
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case SortByDate, SortByAmount, SortByCategory:
		return k, nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// ParseSortOrder converts "asc"/"ascending" or "desc"/"descending".
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return "", fmt.Errorf("unknown sort order %q", s)
}

// Reverse returns the opposite order.
func (o SortOrder) Reverse() SortOrder {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

// Sorter orders entries. Category keys are compared with the collation
// rules of its language.
type Sorter struct {
	lang language.Tag
}

// NewSorter returns a Sorter collating for lang.
func NewSorter(lang language.Tag) Sorter {
	return Sorter{lang: lang}
}

// Language returns the collation language.
func (s Sorter) Language() language.Tag { return s.lang }

// Sort returns a sorted copy of entries. Equal keys keep their relative
// input order in both directions.
func (s Sorter) Sort(entries []model.Entry, key SortKey, order SortOrder) []model.Entry {
	out := make([]model.Entry, len(entries))
	copy(out, entries)

	cmp := s.comparator(key)
	if order == Descending {
		sort.SliceStable(out, func(i, j int) bool { return cmp(out[j], out[i]) < 0 })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j]) < 0 })
	}
	return out
}

func (s Sorter) comparator(key SortKey) func(a, b model.Entry) int {
	switch key {
	case SortByAmount:
		return func(a, b model.Entry) int { return a.Amount.Cmp(b.Amount) }
	case SortByCategory:
		// A collator is not safe for concurrent use, so each call builds its own.
		col := collate.New(s.lang)
		return func(a, b model.Entry) int { return col.CompareString(string(a.Category), string(b.Category)) }
	default:
		return func(a, b model.Entry) int { return a.Date.Compare(b.Date) }
	}
}
