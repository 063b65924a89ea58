package crud

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/tripdesk/internal/common"
)

// Option is one selectable value of a field.
type Option struct {
	ID   string
	Name string
}

// Field binds one editable attribute of T to string input.
//
// Setters must accept the empty string and treat it as "clear the value";
// dependent-field resets rely on that.
type Field[T any] struct {
	Name     string
	Label    string
	Required bool

	Get func(item *T) string
	Set func(ctx context.Context, item *T, value string) error

	// Options lists the acceptable values for the current draft, if the
	// field is a selection.
	Options func(item *T) []Option

	// Resets names the fields cleared whenever this field's value changes.
	Resets []string
}

// Require marks the field as mandatory on save.
func (f Field[T]) Require() Field[T] {
	f.Required = true
	return f
}

// Resetting declares dependent fields that become stale when f changes.
func (f Field[T]) Resetting(names ...string) Field[T] {
	f.Resets = append(append([]string(nil), f.Resets...), names...)
	return f
}

// Text binds a free-text field. Input is trimmed.
func Text[T any](name, label string, ref func(*T) *string) Field[T] {
	return Field[T]{
		Name:  name,
		Label: label,
		Get:   func(t *T) string { return *ref(t) },
		Set: func(_ context.Context, t *T, v string) error {
			*ref(t) = strings.TrimSpace(v)
			return nil
		},
	}
}

// Int binds a non-negative integer field. Empty input stores 0.
func Int[T any](name, label string, ref func(*T) *int) Field[T] {
	return Field[T]{
		Name:  name,
		Label: label,
		Get:   func(t *T) string { return strconv.Itoa(*ref(t)) },
		Set: func(_ context.Context, t *T, v string) error {
			v = strings.TrimSpace(v)
			if v == "" {
				*ref(t) = 0
				return nil
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return fmt.Errorf("%w: %q is not a non-negative integer", common.ErrInvalidValue, v)
			}
			*ref(t) = n
			return nil
		},
	}
}

// Money binds a non-negative decimal amount. Empty input stores 0.
func Money[T any](name, label string, ref func(*T) *float64) Field[T] {
	return Field[T]{
		Name:  name,
		Label: label,
		Get:   func(t *T) string { return strconv.FormatFloat(*ref(t), 'f', 2, 64) },
		Set: func(_ context.Context, t *T, v string) error {
			v = strings.TrimSpace(v)
			if v == "" {
				*ref(t) = 0
				return nil
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil || f < 0 {
				return fmt.Errorf("%w: %q is not a valid amount", common.ErrInvalidValue, v)
			}
			*ref(t) = f
			return nil
		},
	}
}

// Bool binds a flag. Accepts the strconv forms plus yes/no; empty is false.
func Bool[T any](name, label string, ref func(*T) *bool) Field[T] {
	return Field[T]{
		Name:    name,
		Label:   label,
		Get:     func(t *T) string { return strconv.FormatBool(*ref(t)) },
		Options: func(*T) []Option { return []Option{{ID: "true", Name: "Yes"}, {ID: "false", Name: "No"}} },
		Set: func(_ context.Context, t *T, v string) error {
			switch strings.ToLower(strings.TrimSpace(v)) {
			case "", "no", "n":
				*ref(t) = false
				return nil
			case "yes", "y":
				*ref(t) = true
				return nil
			}
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%w: %q is not yes/no", common.ErrInvalidValue, v)
			}
			*ref(t) = b
			return nil
		},
	}
}

// Enum binds a string-typed field restricted to the allowed values. Matching
// is case-insensitive; the canonical spelling is stored.
func Enum[T any, S ~string](name, label string, ref func(*T) *S, allowed ...S) Field[T] {
	opts := make([]Option, len(allowed))
	for i, a := range allowed {
		opts[i] = Option{ID: string(a), Name: string(a)}
	}
	return Field[T]{
		Name:    name,
		Label:   label,
		Get:     func(t *T) string { return string(*ref(t)) },
		Options: func(*T) []Option { return opts },
		Set: func(_ context.Context, t *T, v string) error {
			v = strings.TrimSpace(v)
			if v == "" {
				*ref(t) = ""
				return nil
			}
			for _, a := range allowed {
				if strings.EqualFold(string(a), v) {
					*ref(t) = a
					return nil
				}
			}
			return fmt.Errorf("%w: %q is not one of %s", common.ErrInvalidValue, v, optionIDs(opts))
		},
	}
}

// Ref binds a foreign-key id. Input may be an option id or, failing that, an
// option name (case-insensitive). When allowAll is set the All sentinel is
// accepted as well.
func Ref[T any](name, label string, ref func(*T) *string, options func(*T) []Option, allowAll bool) Field[T] {
	return Field[T]{
		Name:    name,
		Label:   label,
		Get:     func(t *T) string { return *ref(t) },
		Options: options,
		Set: func(_ context.Context, t *T, v string) error {
			v = strings.TrimSpace(v)
			if v == "" {
				*ref(t) = ""
				return nil
			}
			if allowAll && strings.EqualFold(v, All) {
				*ref(t) = All
				return nil
			}
			id, ok := MatchOption(options(t), v)
			if !ok {
				return fmt.Errorf("%w: unknown %s %q", common.ErrInvalidValue, strings.ToLower(label), v)
			}
			*ref(t) = id
			return nil
		},
	}
}

// DateLayout is the calendar date format of Date fields.
const DateLayout = "2006-01-02"

// Date binds a calendar date kept as YYYY-MM-DD text. Empty clears it.
func Date[T any](name, label string, ref func(*T) *string) Field[T] {
	return Field[T]{
		Name:  name,
		Label: label,
		Get:   func(t *T) string { return *ref(t) },
		Set: func(_ context.Context, t *T, v string) error {
			v = strings.TrimSpace(v)
			if v == "" {
				*ref(t) = ""
				return nil
			}
			d, err := time.Parse(DateLayout, v)
			if err != nil {
				return fmt.Errorf("%w: %q is not a YYYY-MM-DD date", common.ErrInvalidValue, v)
			}
			*ref(t) = d.Format(DateLayout)
			return nil
		},
	}
}

// Multi binds a list of references entered as comma-separated ids or names.
// Each item must match one of the options computed for the draft; duplicates
// collapse. set receives the matched options in input order.
func Multi[T any](name, label string, get func(*T) []string, set func(*T, []Option), options func(*T) []Option) Field[T] {
	return Field[T]{
		Name:    name,
		Label:   label,
		Get:     func(t *T) string { return strings.Join(get(t), ", ") },
		Options: options,
		Set: func(_ context.Context, t *T, v string) error {
			opts := options(t)
			names := make(map[string]string, len(opts))
			for _, o := range opts {
				names[o.ID] = o.Name
			}

			var picked []Option
			seen := map[string]bool{}
			for _, part := range strings.Split(v, ",") {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				id, ok := MatchOption(opts, part)
				if !ok {
					return fmt.Errorf("%w: %q is not available for %s", common.ErrInvalidValue, part, strings.ToLower(label))
				}
				if seen[id] {
					continue
				}
				seen[id] = true
				picked = append(picked, Option{ID: id, Name: names[id]})
			}
			set(t, picked)
			return nil
		},
	}
}

// Custom builds a field from arbitrary accessors.
func Custom[T any](name, label string, get func(*T) string, set func(context.Context, *T, string) error) Field[T] {
	return Field[T]{Name: name, Label: label, Get: get, Set: set}
}

// MatchOption resolves v against opts, first by exact id and then by
// case-insensitive id or name.
func MatchOption(opts []Option, v string) (string, bool) {
	for _, o := range opts {
		if o.ID == v {
			return o.ID, true
		}
	}
	for _, o := range opts {
		if strings.EqualFold(o.ID, v) || strings.EqualFold(o.Name, v) {
			return o.ID, true
		}
	}
	return "", false
}

func optionIDs(opts []Option) string {
	ids := make([]string, len(opts))
	for i, o := range opts {
		ids[i] = o.ID
	}
	return strings.Join(ids, ", ")
}
