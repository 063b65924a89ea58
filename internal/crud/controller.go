package crud

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tripdesk/internal/common"
	"github.com/dmitrijs2005/tripdesk/internal/logging"
	"github.com/google/uuid"
)

var _ Session = (*Controller[struct{}])(nil)

// NewShortID returns "<PREFIX>-XXXXXXXX" built from a random UUID.
func NewShortID(prefix string) string {
	s := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	if prefix == "" {
		return s
	}
	return prefix + "-" + s
}

type noLookup struct{}

func (noLookup) Lookup(string, string) (string, bool) { return "", false }

// Controller is the master-detail state machine of one screen: a filtered
// list over a Store, a modal add/edit dialog backed by a Draft, delete behind
// a confirmation, and an optional detail view scoped to one record.
type Controller[T any] struct {
	schema *Schema[T]
	form   *Form[T]
	store  *Store[T]
	refs   Lookup
	logger logging.Logger
	newID  func(prefix string) string

	scope func(T) bool
	stamp func(*T)

	view   View
	query  Query
	draft  *Draft[T]
	detail Session
}

// NewController wires a screen. refs and logger may be nil.
func NewController[T any](schema *Schema[T], store *Store[T], refs Lookup, logger logging.Logger) *Controller[T] {
	if logger == nil {
		logger = logging.NewNop()
	}
	if refs == nil {
		refs = noLookup{}
	}
	return &Controller[T]{
		schema: schema,
		form:   schema.form(),
		store:  store,
		refs:   refs,
		logger: logger.With("screen", schema.Title),
		newID:  NewShortID,
		query:  Query{Category: All},
	}
}

// WithScope restricts the controller to records matching pred; stamp is
// applied to every new draft and every saved record, so records created
// here always satisfy pred.
func (c *Controller[T]) WithScope(pred func(T) bool, stamp func(*T)) *Controller[T] {
	c.scope = pred
	c.stamp = stamp
	return c
}

// WithIDGenerator replaces the id source.
func (c *Controller[T]) WithIDGenerator(fn func(prefix string) string) *Controller[T] {
	c.newID = fn
	return c
}

// Store exposes the backing store.
func (c *Controller[T]) Store() *Store[T] { return c.store }

func (c *Controller[T]) Title() string { return c.schema.Title }

func (c *Controller[T]) View() View { return c.view }

func (c *Controller[T]) Query() Query { return c.query }

func (c *Controller[T]) DetailName() string {
	if c.schema.Detail == nil {
		return ""
	}
	return c.schema.DetailName
}

// Visible returns the records shown in the list for the current query.
func (c *Controller[T]) Visible() []T {
	return c.schema.Filter.Apply(c.scoped(), c.query)
}

func (c *Controller[T]) scoped() []T {
	all := c.store.List()
	if c.scope == nil {
		return all
	}
	out := all[:0]
	for _, item := range all {
		if c.scope(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c *Controller[T]) find(id string) (T, bool) {
	item, ok := c.store.Get(id)
	if !ok || (c.scope != nil && !c.scope(item)) {
		var zero T
		return zero, false
	}
	return item, true
}

func (c *Controller[T]) Headers() []string {
	out := make([]string, len(c.schema.Columns))
	for i, col := range c.schema.Columns {
		out[i] = col.Title
	}
	return out
}

func (c *Controller[T]) Rows() [][]string {
	visible := c.Visible()
	rows := make([][]string, len(visible))
	for i, item := range visible {
		row := make([]string, len(c.schema.Columns))
		for j, col := range c.schema.Columns {
			row[j] = col.Value(item)
		}
		rows[i] = row
	}
	return rows
}

func (c *Controller[T]) requireView(v View) error {
	if c.view != v {
		return fmt.Errorf("%w: %s (need %s)", common.ErrInvalidState, c.view, v)
	}
	return nil
}

// Search sets the keyword of the list query.
func (c *Controller[T]) Search(keyword string) error {
	if err := c.requireView(ViewList); err != nil {
		return err
	}
	c.query.Keyword = strings.TrimSpace(keyword)
	return nil
}

// FilterBy sets the categorical filter; All clears it.
func (c *Controller[T]) FilterBy(category string) error {
	if err := c.requireView(ViewList); err != nil {
		return err
	}
	if c.schema.Filter.Category == nil {
		return common.ErrNoCategory
	}
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, All) {
		category = All
	}
	c.query.Category = category
	return nil
}

// BeginCreate opens the dialog with the screen's default shape.
func (c *Controller[T]) BeginCreate() error {
	if err := c.requireView(ViewList); err != nil {
		return err
	}
	defaults := c.schema.Defaults()
	if c.stamp != nil {
		c.stamp(&defaults)
	}
	c.draft = c.form.NewDraft(defaults)
	c.view = ViewEditing
	return nil
}

// BeginEdit opens the dialog with a copy of the record.
func (c *Controller[T]) BeginEdit(id string) error {
	if err := c.requireView(ViewList); err != nil {
		return err
	}
	item, ok := c.find(id)
	if !ok {
		return fmt.Errorf("%s %q: %w", c.schema.Entity, id, common.ErrorNotFound)
	}
	c.draft = c.form.EditDraft(item)
	c.view = ViewEditing
	return nil
}

// Draft returns the open draft, or nil outside the dialog.
func (c *Controller[T]) Draft() *Draft[T] { return c.draft }

func (c *Controller[T]) Fields() []FieldInfo {
	if c.draft == nil {
		return nil
	}
	return c.draft.Fields()
}

func (c *Controller[T]) FieldOptions(name string) ([]Option, error) {
	if err := c.requireView(ViewEditing); err != nil {
		return nil, err
	}
	return c.draft.Options(name)
}

func (c *Controller[T]) SetField(ctx context.Context, name, value string) error {
	if err := c.requireView(ViewEditing); err != nil {
		return err
	}
	return c.draft.Set(ctx, name, value)
}

// Save validates the draft and commits it. On validation failure the dialog
// stays open with the draft untouched and the store is not written.
func (c *Controller[T]) Save(ctx context.Context) (string, error) {
	if err := c.requireView(ViewEditing); err != nil {
		return "", err
	}
	if err := c.draft.Validate(); err != nil {
		c.logger.Debug(ctx, "save rejected", "entity", c.schema.Entity, "error", err)
		return "", err
	}

	item := c.draft.Value()
	id := c.schema.GetID(item)
	if id == "" {
		id = c.nextID()
		c.schema.SetID(&item, id)
	}
	if c.stamp != nil {
		c.stamp(&item)
	}
	if c.schema.Resolve != nil {
		c.schema.Resolve(&item, c.refs)
	}
	if c.schema.Finalize != nil {
		c.schema.Finalize(&item)
	}

	c.store.Upsert(item)
	c.logger.Info(ctx, "record saved", "entity", c.schema.Entity, "id", id, "new", c.draft.IsNew())

	c.draft = nil
	c.view = ViewList
	return id, nil
}

func (c *Controller[T]) nextID() string {
	for {
		id := c.newID(c.schema.IDPrefix)
		if _, exists := c.store.Get(id); !exists {
			return id
		}
	}
}

// Cancel closes the dialog and discards the draft.
func (c *Controller[T]) Cancel() error {
	if err := c.requireView(ViewEditing); err != nil {
		return err
	}
	c.draft = nil
	c.view = ViewList
	return nil
}

// Delete removes a record after confirm agrees. An unknown id is a no-op, and
// a declined confirmation leaves everything unchanged; both report false.
func (c *Controller[T]) Delete(ctx context.Context, id string, confirm Confirmer) (bool, error) {
	if err := c.requireView(ViewList); err != nil {
		return false, err
	}
	if _, ok := c.find(id); !ok {
		c.logger.Debug(ctx, "delete of unknown record ignored", "entity", c.schema.Entity, "id", id)
		return false, nil
	}
	if confirm != nil && !confirm.Confirm(fmt.Sprintf("Delete %s %s?", c.schema.Entity, id)) {
		return false, nil
	}

	c.store.Remove(id)
	if c.schema.OnDelete != nil {
		c.schema.OnDelete(ctx, id)
	}
	c.logger.Info(ctx, "record deleted", "entity", c.schema.Entity, "id", id)
	return true, nil
}

// OpenDetail switches to the secondary view scoped to one record.
func (c *Controller[T]) OpenDetail(id string) (Session, error) {
	if err := c.requireView(ViewList); err != nil {
		return nil, err
	}
	if c.schema.Detail == nil {
		return nil, common.ErrNoDetail
	}
	item, ok := c.find(id)
	if !ok {
		return nil, fmt.Errorf("%s %q: %w", c.schema.Entity, id, common.ErrorNotFound)
	}
	c.detail = c.schema.Detail(item)
	c.view = ViewDetail
	return c.detail, nil
}

func (c *Controller[T]) Detail() Session { return c.detail }

// CloseDetail returns from the detail view to the list.
func (c *Controller[T]) CloseDetail() error {
	if err := c.requireView(ViewDetail); err != nil {
		return err
	}
	c.detail = nil
	c.view = ViewList
	return nil
}
