package crud

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tripdesk/internal/common"
)

// ValidationError reports the required fields that were empty at save time.
// errors.Is(err, common.ErrValidation) holds for it.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required fields missing: %s", strings.Join(e.Missing, ", "))
}

func (e *ValidationError) Unwrap() error {
	return common.ErrValidation
}

// FieldInfo is a read-only description of a draft field for rendering.
type FieldInfo struct {
	Name     string
	Label    string
	Required bool
	Value    string
}

// Form is the set of editable fields of T plus the copy function used to keep
// drafts independent from committed records.
type Form[T any] struct {
	Fields []Field[T]
	Clone  func(T) T
}

// Field looks up a field by name, case-insensitively.
func (f *Form[T]) Field(name string) (Field[T], bool) {
	for _, field := range f.Fields {
		if strings.EqualFold(field.Name, name) {
			return field, true
		}
	}
	return Field[T]{}, false
}

func (f *Form[T]) clone(v T) T {
	if f.Clone == nil {
		return v
	}
	return f.Clone(v)
}

// NewDraft starts a draft for a record that does not exist yet.
func (f *Form[T]) NewDraft(defaults T) *Draft[T] {
	return &Draft[T]{form: f, value: f.clone(defaults), isNew: true}
}

// EditDraft starts a draft holding a full copy of an existing record.
func (f *Form[T]) EditDraft(item T) *Draft[T] {
	return &Draft[T]{form: f, value: f.clone(item)}
}

// Draft is the staging copy of the record being created or edited. It never
// aliases the committed record.
type Draft[T any] struct {
	form  *Form[T]
	value T
	isNew bool
}

// IsNew reports whether the draft was started by NewDraft.
func (d *Draft[T]) IsNew() bool {
	return d.isNew
}

// Value returns a copy of the staged record.
func (d *Draft[T]) Value() T {
	return d.form.clone(d.value)
}

// Set updates one field. When the field's value changes, every dependent field
// it declares is cleared. A failing setter leaves the draft as it was.
func (d *Draft[T]) Set(ctx context.Context, name, value string) error {
	field, ok := d.form.Field(name)
	if !ok {
		return fmt.Errorf("%w: %s", common.ErrUnknownField, name)
	}

	next := d.form.clone(d.value)
	before := field.Get(&next)
	if err := field.Set(ctx, &next, value); err != nil {
		return fmt.Errorf("%s: %w", field.Name, err)
	}

	if field.Get(&next) != before {
		for _, dep := range field.Resets {
			df, ok := d.form.Field(dep)
			if !ok {
				continue
			}
			if err := df.Set(ctx, &next, ""); err != nil {
				return fmt.Errorf("reset %s: %w", df.Name, err)
			}
		}
	}

	d.value = next
	return nil
}

// Options returns the selectable values of a field for the current draft.
func (d *Draft[T]) Options(name string) ([]Option, error) {
	field, ok := d.form.Field(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownField, name)
	}
	if field.Options == nil {
		return nil, nil
	}
	return field.Options(&d.value), nil
}

// Fields describes every field with its current draft value.
func (d *Draft[T]) Fields() []FieldInfo {
	out := make([]FieldInfo, len(d.form.Fields))
	for i, f := range d.form.Fields {
		out[i] = FieldInfo{Name: f.Name, Label: f.Label, Required: f.Required, Value: f.Get(&d.value)}
	}
	return out
}

// Validate is the all-or-nothing save gate: it fails with a *ValidationError
// listing every required field that is blank.
func (d *Draft[T]) Validate() error {
	var missing []string
	for _, f := range d.form.Fields {
		if f.Required && strings.TrimSpace(f.Get(&d.value)) == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
