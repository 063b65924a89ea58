package crud

import "context"

// Lookup resolves a reference id to its display name. It is consulted at
// save time to refresh denormalized name fields.
type Lookup interface {
	Lookup(list, id string) (string, bool)
}

// Column renders one list-view column.
type Column[T any] struct {
	Title string
	Value func(T) string
}

// Schema describes one screen's record type to the generic controller.
type Schema[T any] struct {
	// Title is shown as the screen heading; Entity names one record in
	// prompts and logs.
	Title    string
	Entity   string
	IDPrefix string

	GetID func(T) string
	SetID func(*T, string)

	// Defaults returns the create-shape of a new record.
	Defaults func() T
	// Clone returns a deep copy; nil means T has no shared references.
	Clone func(T) T

	Fields  []Field[T]
	Filter  Filter[T]
	Columns []Column[T]

	// Resolve recomputes denormalized name fields from their ids.
	Resolve func(item *T, refs Lookup)
	// Finalize fills unset optional values with their empty defaults.
	Finalize func(item *T)

	// OnDelete runs after a record is removed, for cascading to children.
	OnDelete func(ctx context.Context, id string)

	// DetailName and Detail are set on screens with a secondary view scoped
	// to one record (rate sheets).
	DetailName string
	Detail     func(parent T) Session
}

func (s *Schema[T]) form() *Form[T] {
	return &Form[T]{Fields: s.Fields, Clone: s.Clone}
}
