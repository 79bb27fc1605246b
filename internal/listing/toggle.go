package listing

// SortState is the sort selection held by a list view.
type SortState struct {
	Key   SortKey
	Order SortOrder
}

// DefaultSortState orders by date, newest first.
func DefaultSortState() SortState {
	return SortState{Key: SortByDate, Order: Descending}
}

// Toggle returns the state after the user picks key: the same key flips the
// order, a different key starts descending.
func (s SortState) Toggle(key SortKey) SortState {
	if key == s.Key {
		return SortState{Key: key, Order: s.Order.Reverse()}
	}
	return SortState{Key: key, Order: Descending}
}
