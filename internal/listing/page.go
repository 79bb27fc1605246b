package listing

import (
	"errors"
	"fmt"

	"github.com/tally-dev/tally/internal/model"
)

// DefaultPageSize is the number of entries per page in the expense list.
const DefaultPageSize = 10

// Query describes one page of a sorted listing. Page is 1-based.
type Query struct {
	Key      SortKey
	Order    SortOrder
	PageSize int
	Page     int
}

// Validate reports contract violations before a query is run.
func (q Query) Validate() error {
	var errs []error
	if _, err := ParseSortKey(string(q.Key)); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseSortOrder(string(q.Order)); err != nil {
		errs = append(errs, err)
	}
	if q.PageSize < 1 {
		errs = append(errs, fmt.Errorf("page size must be positive, got %d", q.PageSize))
	}
	if q.Page < 1 {
		errs = append(errs, fmt.Errorf("page must be positive, got %d", q.Page))
	}
	return errors.Join(errs...)
}

// Result is one page of sorted entries.
type Result struct {
	Entries    []model.Entry
	TotalPages int
	Page       int
}

// Page sorts entries as q asks and returns the requested page. A page past
// the end yields no entries. q.PageSize must be positive.
func (s Sorter) Page(entries []model.Entry, q Query) Result {
	sorted := s.Sort(entries, q.Key, q.Order)
	return Result{
		Entries:    Paginate(sorted, q.PageSize, q.Page),
		TotalPages: TotalPages(len(entries), q.PageSize),
		Page:       q.Page,
	}
}

// TotalPages returns ceil(n / pageSize).
func TotalPages(n, pageSize int) int {
	mustPositive(pageSize)
	if n <= 0 {
		return 0
	}
	return (n-1)/pageSize + 1
}

// Paginate returns the 1-based page of sorted. Pages outside the bounds are
// empty rather than an error. The page's capacity ends with the page, so
// appending to it never writes into sorted.
func Paginate(sorted []model.Entry, pageSize, page int) []model.Entry {
	mustPositive(pageSize)
	if page < 1 || page-1 >= TotalPages(len(sorted), pageSize) {
		return []model.Entry{}
	}
	start := (page - 1) * pageSize
	end := start + min(pageSize, len(sorted)-start)
	return sorted[start:end:end]
}

// ClampPage limits page to [1, max(1, totalPages)].
func ClampPage(page, totalPages int) int {
	return max(1, min(page, max(1, totalPages)))
}

func mustPositive(pageSize int) {
	if pageSize < 1 {
		panic(fmt.Sprintf("listing: page size must be positive, got %d", pageSize))
	}
}
