package crud

import "strings"

// All is the categorical filter value that disables the category match.
const All = "All"

// Query is the search input of a list view.
type Query struct {
	Keyword  string
	Category string
}

// Filter describes which fields of a record the list view searches.
//
// Fields are the text fields scanned by the keyword; Category, when set, is
// the field compared for exact equality against Query.Category.
type Filter[T any] struct {
	Fields   []func(T) string
	Category func(T) string
}

// Match reports whether item is visible for q: the keyword is empty or is a
// case-insensitive substring of at least one field, and the category is All
// (or empty) or equals the record's categorical value.
func (f Filter[T]) Match(item T, q Query) bool {
	return f.matchKeyword(item, q.Keyword) && f.matchCategory(item, q.Category)
}

func (f Filter[T]) matchKeyword(item T, keyword string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return true
	}
	for _, field := range f.Fields {
		if strings.Contains(strings.ToLower(field(item)), kw) {
			return true
		}
	}
	return false
}

func (f Filter[T]) matchCategory(item T, category string) bool {
	if category == "" || category == All || f.Category == nil {
		return true
	}
	return f.Category(item) == category
}

// Apply returns the visible subset of items in their original order.
func (f Filter[T]) Apply(items []T, q Query) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if f.Match(item, q) {
			out = append(out, item)
		}
	}
	return out
}
