package masters

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/tripdesk/internal/assets"
	"github.com/dmitrijs2005/tripdesk/internal/crud"
	"github.com/dmitrijs2005/tripdesk/internal/logging"
	"github.com/dmitrijs2005/tripdesk/internal/models"
	"github.com/dmitrijs2005/tripdesk/internal/refdata"
)

// Env carries the collaborators shared by every screen.
type Env struct {
	Refs   *refdata.Provider
	Picker assets.Picker
	Logger logging.Logger
}

func (e Env) logger() logging.Logger {
	if e.Logger == nil {
		return logging.NewNop()
	}
	return e.Logger
}

func (e Env) picker() assets.Picker {
	if e.Picker == nil {
		return assets.NoopPicker{}
	}
	return e.Picker
}

func statusField[T any](ref func(*T) *models.Status) crud.Field[T] {
	return crud.Enum("status", "Status", ref, models.Statuses...)
}

func statusOf[T any](ref func(*T) *models.Status) func(T) string {
	return func(item T) string { return string(*ref(&item)) }
}

func statusColumn[T any](ref func(*T) *models.Status) crud.Column[T] {
	return crud.Column[T]{Title: "Status", Value: statusOf(ref)}
}

// refField binds a required-or-optional foreign key against one reference
// list.
func refField[T any](refs *refdata.Provider, list, name, label string, ref func(*T) *string) crud.Field[T] {
	return crud.Ref(name, label, ref, func(*T) []crud.Option { return refs.Options(list) }, false)
}

// imageField stores the handle the picker returns for a local path. An empty
// value clears the image and re-entering the current handle keeps it; any
// other input goes through the picker.
func imageField[T any](p assets.Picker, name, label string, ref func(*T) *string) crud.Field[T] {
	return crud.Custom(name, label,
		func(t *T) string { return *ref(t) },
		func(ctx context.Context, t *T, v string) error {
			v = strings.TrimSpace(v)
			if v == "" || v == *ref(t) {
				*ref(t) = v
				return nil
			}
			h, err := p.Pick(ctx, v)
			if err != nil {
				return err
			}
			*ref(t) = h
			return nil
		})
}

// resolveName returns the display name of id, or "" when it is unknown.
func resolveName(refs crud.Lookup, list, id string) string {
	if refs == nil || id == "" {
		return ""
	}
	name, _ := refs.Lookup(list, id)
	return name
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
