package ledger

import (
	"errors"
	"fmt"

	"github.com/tally-dev/tally/internal/model"
)

var (
	// ErrDuplicateID is returned when an id is already held by the book.
	ErrDuplicateID = errors.New("duplicate entry id")
	// ErrEmptyID is returned for entries without an id.
	ErrEmptyID = errors.New("empty entry id")
)

// Book is an entry collection owned by a single caller. The caller mutates
// it through Prepend and Remove and recomputes aggregates afterwards; it is
// not safe for concurrent mutation.
type Book struct {
	entries []model.Entry
	ids     map[string]struct{}
}

// NewBook creates a Book holding entries in the given order.
func NewBook(entries ...model.Entry) (*Book, error) {
	b := &Book{ids: make(map[string]struct{}, len(entries))}
	for _, e := range entries {
		if err := b.checkID(e.ID); err != nil {
			return nil, err
		}
		b.ids[e.ID] = struct{}{}
		b.entries = append(b.entries, e)
	}
	return b, nil
}

// Prepend adds e at the front of the collection.
func (b *Book) Prepend(e model.Entry) error {
	if err := b.checkID(e.ID); err != nil {
		return err
	}
	b.ids[e.ID] = struct{}{}
	b.entries = append([]model.Entry{e}, b.entries...)
	return nil
}

// Remove deletes the entry with the given id and reports whether it existed.
func (b *Book) Remove(id string) bool {
	if _, ok := b.ids[id]; !ok {
		return false
	}
	delete(b.ids, id)
	out := b.entries[:0:0]
	for _, e := range b.entries {
		if e.ID != id {
			out = append(out, e)
		}
	}
	b.entries = out
	return true
}

// Get returns the entry with the given id.
func (b *Book) Get(id string) (model.Entry, bool) {
	if _, ok := b.ids[id]; !ok {
		return model.Entry{}, false
	}
	for _, e := range b.entries {
		if e.ID == id {
			return e, true
		}
	}
	return model.Entry{}, false
}

// Len returns the number of entries.
func (b *Book) Len() int { return len(b.entries) }

// Entries returns a copy of all entries, most recently added first.
func (b *Book) Entries() []model.Entry {
	out := make([]model.Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Expenses returns the expense entries.
func (b *Book) Expenses() []model.Entry {
	return b.filter(false)
}

// Incomes returns the income entries.
func (b *Book) Incomes() []model.Entry {
	return b.filter(true)
}

func (b *Book) filter(income bool) []model.Entry {
	var out []model.Entry
	for _, e := range b.entries {
		if e.IsIncome == income {
			out = append(out, e)
		}
	}
	return out
}

func (b *Book) checkID(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	if _, ok := b.ids[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	return nil
}
