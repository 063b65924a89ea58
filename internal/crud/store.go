package crud

// Store is an ordered, in-memory collection of records of one type.
//
// Records are kept in insertion order. An update replaces the record at its
// existing position, so the order a user sees never shifts on edit.
type Store[T any] struct {
	items []T
	idOf  func(T) string
}

// NewStore returns a Store keyed by idOf and seeded with the given records.
// Seed records with duplicate ids collapse to the last one, at the position of
// the first.
func NewStore[T any](idOf func(T) string, seed ...T) *Store[T] {
	s := &Store[T]{idOf: idOf, items: make([]T, 0, len(seed))}
	for _, item := range seed {
		s.Upsert(item)
	}
	return s
}

// List returns a copy of the records in insertion order.
func (s *Store[T]) List() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id string) (T, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Upsert replaces the record with the same id in place, or appends it.
func (s *Store[T]) Upsert(item T) {
	if i := s.indexOf(s.idOf(item)); i >= 0 {
		s.items[i] = item
		return
	}
	s.items = append(s.items, item)
}

// Remove deletes the record with the given id. A missing id is not an error;
// the return value only reports whether something was removed.
func (s *Store[T]) Remove(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// RemoveWhere deletes every record matching pred and returns how many were
// removed. Relative order of the survivors is preserved.
func (s *Store[T]) RemoveWhere(pred func(T) bool) int {
	kept := s.items[:0]
	removed := 0
	for _, item := range s.items {
		if pred(item) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	var zero T
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = zero
	}
	s.items = kept
	return removed
}

func (s *Store[T]) indexOf(id string) int {
	for i, item := range s.items {
		if s.idOf(item) == id {
			return i
		}
	}
	return -1
}
