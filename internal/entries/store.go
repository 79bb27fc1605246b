package entries

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
)

var (
	// ErrNotFound is returned when no entry matches an id.
	ErrNotFound = errors.New("entry not found")
	// ErrAmbiguous is returned when an id prefix matches several entries.
	ErrAmbiguous = errors.New("ambiguous entry id")
)

// minPrefix is the shortest id prefix Resolve accepts.
const minPrefix = 4

// Store keeps a ledger.Book in an entries.csv file between runs.
type Store struct {
	path  string
	newID id.Generator
}

// NewStore creates a Store backed by path. newID assigns ids to new entries.
func NewStore(path string, newID id.Generator) *Store {
	return &Store{path: path, newID: newID}
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// Load reads the collection. A missing file is an empty collection.
func (s *Store) Load() (*ledger.Book, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return ledger.NewBook()
	}
	if err != nil {
		return nil, fmt.Errorf("opening entries %s: %w", s.path, err)
	}
	defer f.Close()

	list, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading entries %s: %w", s.path, err)
	}
	if verrs := ValidateEntries(list); len(verrs) > 0 {
		return nil, fmt.Errorf("entries %s: %w", s.path, joinValidation(verrs))
	}

	book, err := ledger.NewBook(list...)
	if err != nil {
		return nil, fmt.Errorf("entries %s: %w", s.path, err)
	}
	return book, nil
}

// Save rewrites the backing file with the book's entries. The file is
// written to a temporary sibling and renamed into place.
func (s *Store) Save(book *ledger.Book) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".entries-*.csv")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteEntries(tmp, book.Entries()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing entries: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

// Add builds an entry from d, prepends it and saves. Returns the new entry.
func (s *Store) Add(d Draft, now time.Time) (model.Entry, error) {
	e, err := d.Build(s.newID, now)
	if err != nil {
		return model.Entry{}, err
	}

	book, err := s.Load()
	if err != nil {
		return model.Entry{}, err
	}
	if err := book.Prepend(e); err != nil {
		return model.Entry{}, err
	}
	if err := s.Save(book); err != nil {
		return model.Entry{}, err
	}
	return e, nil
}

// Delete removes the entry matching ref (a full id or a unique prefix) and
// saves. Returns the removed entry.
func (s *Store) Delete(ref string) (model.Entry, error) {
	book, err := s.Load()
	if err != nil {
		return model.Entry{}, err
	}

	e, err := Resolve(book, ref)
	if err != nil {
		return model.Entry{}, err
	}
	book.Remove(e.ID)

	if err := s.Save(book); err != nil {
		return model.Entry{}, err
	}
	return e, nil
}

// Import prepends entries in order, so the last one given ends up first,
// matching entries added one by one. Entries are validated as a whole
// together with the stored ones before anything is written.
func (s *Store) Import(list []model.Entry) error {
	book, err := s.Load()
	if err != nil {
		return err
	}

	all := append(book.Entries(), list...)
	if verrs := ValidateEntries(all); len(verrs) > 0 {
		return fmt.Errorf("import: %w", joinValidation(verrs))
	}

	for _, e := range list {
		if err := book.Prepend(e); err != nil {
			return fmt.Errorf("import: %w", err)
		}
	}
	return s.Save(book)
}

// Resolve finds the entry whose id equals ref or, failing that, the single
// entry whose id starts with ref.
func Resolve(book *ledger.Book, ref string) (model.Entry, error) {
	ref = strings.TrimSpace(ref)
	if e, ok := book.Get(ref); ok {
		return e, nil
	}
	if len(ref) < minPrefix {
		return model.Entry{}, fmt.Errorf("%w: %q", ErrNotFound, ref)
	}

	var matches []model.Entry
	for _, e := range book.Entries() {
		if strings.HasPrefix(e.ID, ref) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 0:
		return model.Entry{}, fmt.Errorf("%w: %q", ErrNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return model.Entry{}, fmt.Errorf("%w: %q matches %d entries", ErrAmbiguous, ref, len(matches))
	}
}

func joinValidation(verrs []ValidationError) error {
	msgs := make([]string, len(verrs))
	for i, ve := range verrs {
		msgs[i] = ve.Error()
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
