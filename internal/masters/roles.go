package masters

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tripdesk/internal/common"
	"github.com/dmitrijs2005/tripdesk/internal/crud"
	"github.com/dmitrijs2005/tripdesk/internal/logging"
	"github.com/dmitrijs2005/tripdesk/internal/models"
	"github.com/dmitrijs2005/tripdesk/internal/roletree"
)

var (
	_ crud.Session  = (*RoleScreen)(nil)
	_ crud.Expander = (*RoleScreen)(nil)
)

// roleDraft is the editable shape of a role: the node's own attributes plus
// where it hangs in the tree.
type roleDraft struct {
	ID          string
	ParentID    string
	Name        string
	Description string
	Status      models.Status
}

func (d roleDraft) node() models.RoleNode {
	return models.RoleNode{ID: d.ID, Name: d.Name, Description: d.Description, Status: d.Status}
}

// RoleScreen edits the organisation chart. It follows the same list, dialog
// and delete flow as crud.Controller, but the list is the expanded tree and a
// delete takes the whole subtree.
type RoleScreen struct {
	tree     *roletree.Tree
	expanded roletree.ExpandSet
	form     *crud.Form[roleDraft]
	filter   crud.Filter[models.RoleNode]
	logger   logging.Logger
	newID    func(prefix string) string

	view  crud.View
	query crud.Query
	draft *crud.Draft[roleDraft]
}

func NewRoles(seed []models.RoleNode, env Env) *RoleScreen {
	s := &RoleScreen{
		tree:     roletree.New(seed...),
		expanded: roletree.ExpandSet{},
		logger:   env.logger().With("screen", "Roles"),
		newID:    crud.NewShortID,
		query:    crud.Query{Category: crud.All},
		filter: crud.Filter[models.RoleNode]{
			Fields: []func(models.RoleNode) string{
				func(n models.RoleNode) string { return n.Name },
				func(n models.RoleNode) string { return n.Description },
			},
			Category: func(n models.RoleNode) string { return string(n.Status) },
		},
	}
	s.form = &crud.Form[roleDraft]{Fields: []crud.Field[roleDraft]{
		crud.Ref("parent", "Parent", func(d *roleDraft) *string { return &d.ParentID }, s.parentOptions, false),
		crud.Text("name", "Name", func(d *roleDraft) *string { return &d.Name }).Require(),
		crud.Text("description", "Description", func(d *roleDraft) *string { return &d.Description }),
		crud.Enum("status", "Status", func(d *roleDraft) *models.Status { return &d.Status }, models.Statuses...),
	}}
	return s
}

// WithIDGenerator replaces the id source.
func (s *RoleScreen) WithIDGenerator(fn func(prefix string) string) *RoleScreen {
	s.newID = fn
	return s
}

// Tree exposes the role tree.
func (s *RoleScreen) Tree() *roletree.Tree { return s.tree }

// parentOptions lists every role except the draft's own subtree.
func (s *RoleScreen) parentOptions(d *roleDraft) []crud.Option {
	var out []crud.Option
	s.tree.Walk(func(n models.RoleNode, depth int) bool {
		if d.ID == "" || !s.tree.IsDescendant(n.ID, d.ID) {
			out = append(out, crud.Option{ID: n.ID, Name: n.Name})
		}
		return true
	})
	return out
}

func (s *RoleScreen) Title() string        { return "Roles" }
func (s *RoleScreen) View() crud.View      { return s.view }
func (s *RoleScreen) Query() crud.Query    { return s.query }
func (s *RoleScreen) DetailName() string   { return "" }
func (s *RoleScreen) Detail() crud.Session { return nil }

func (s *RoleScreen) requireView(v crud.View) error {
	if s.view != v {
		return fmt.Errorf("%w: %s (need %s)", common.ErrInvalidState, s.view, v)
	}
	return nil
}

func (s *RoleScreen) Headers() []string {
	return []string{"ID", "Role", "Description", "Status"}
}

func (s *RoleScreen) searching() bool {
	return s.query.Keyword != "" || (s.query.Category != "" && s.query.Category != crud.All)
}

// Rows renders the expanded tree, or the matching roles flat while a search
// or filter is active.
func (s *RoleScreen) Rows() [][]string {
	var rows [][]string
	if s.searching() {
		s.tree.Walk(func(n models.RoleNode, _ int) bool {
			if s.filter.Match(n, s.query) {
				rows = append(rows, []string{n.ID, n.Name, n.Description, string(n.Status)})
			}
			return true
		})
		return rows
	}
	for _, l := range roletree.Visible(s.tree, s.expanded) {
		marker := "  "
		switch {
		case l.Expanded:
			marker = "- "
		case l.HasChildren:
			marker = "+ "
		}
		name := strings.Repeat("  ", l.Depth) + marker + l.Node.Name
		rows = append(rows, []string{l.Node.ID, name, l.Node.Description, string(l.Node.Status)})
	}
	return rows
}

func (s *RoleScreen) Search(keyword string) error {
	if err := s.requireView(crud.ViewList); err != nil {
		return err
	}
	s.query.Keyword = strings.TrimSpace(keyword)
	return nil
}

func (s *RoleScreen) FilterBy(category string) error {
	if err := s.requireView(crud.ViewList); err != nil {
		return err
	}
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, crud.All) {
		category = crud.All
	}
	s.query.Category = category
	return nil
}

func (s *RoleScreen) Expand(id string) error {
	if err := s.requireView(crud.ViewList); err != nil {
		return err
	}
	if !s.tree.Contains(id) {
		return fmt.Errorf("role %q: %w", id, common.ErrorNotFound)
	}
	s.expanded.Expand(id)
	return nil
}

func (s *RoleScreen) Collapse(id string) error {
	if err := s.requireView(crud.ViewList); err != nil {
		return err
	}
	if !s.tree.Contains(id) {
		return fmt.Errorf("role %q: %w", id, common.ErrorNotFound)
	}
	s.expanded.Collapse(id)
	return nil
}

// BeginCreate opens the dialog for a new role at the top level; set parent
// to place it under an existing role.
func (s *RoleScreen) BeginCreate() error {
	if err := s.requireView(crud.ViewList); err != nil {
		return err
	}
	s.draft = s.form.NewDraft(roleDraft{Status: models.StatusActive})
	s.view = crud.ViewEditing
	return nil
}

func (s *RoleScreen) BeginEdit(id string) error {
	if err := s.requireView(crud.ViewList); err != nil {
		return err
	}
	n, ok := s.tree.Find(id)
	if !ok {
		return fmt.Errorf("role %q: %w", id, common.ErrorNotFound)
	}
	parent, _ := s.tree.ParentOf(id)
	s.draft = s.form.EditDraft(roleDraft{
		ID: n.ID, ParentID: parent, Name: n.Name, Description: n.Description, Status: n.Status,
	})
	s.view = crud.ViewEditing
	return nil
}

func (s *RoleScreen) Fields() []crud.FieldInfo {
	if s.draft == nil {
		return nil
	}
	return s.draft.Fields()
}

func (s *RoleScreen) FieldOptions(name string) ([]crud.Option, error) {
	if err := s.requireView(crud.ViewEditing); err != nil {
		return nil, err
	}
	return s.draft.Options(name)
}

func (s *RoleScreen) SetField(ctx context.Context, name, value string) error {
	if err := s.requireView(crud.ViewEditing); err != nil {
		return err
	}
	return s.draft.Set(ctx, name, value)
}

// Save inserts a new role under its parent, or updates an existing one and
// moves its subtree when the parent changed. The path down to the saved role
// is expanded so it shows up in the list.
func (s *RoleScreen) Save(ctx context.Context) (string, error) {
	if err := s.requireView(crud.ViewEditing); err != nil {
		return "", err
	}
	if err := s.draft.Validate(); err != nil {
		s.logger.Debug(ctx, "save rejected", "entity", "role", "error", err)
		return "", err
	}

	d := s.draft.Value()
	if d.Status == "" {
		d.Status = models.StatusActive
	}

	if s.draft.IsNew() {
		d.ID = s.nextID()
		if err := s.tree.Insert(d.ParentID, d.node()); err != nil {
			return "", err
		}
	} else {
		if err := s.tree.Move(d.ID, d.ParentID); err != nil {
			return "", err
		}
		if err := s.tree.Replace(d.node()); err != nil {
			return "", err
		}
	}
	for p := d.ParentID; p != ""; p, _ = s.tree.ParentOf(p) {
		s.expanded.Expand(p)
	}

	s.logger.Info(ctx, "record saved", "entity", "role", "id", d.ID, "new", s.draft.IsNew(), "parent", d.ParentID)
	s.draft = nil
	s.view = crud.ViewList
	return d.ID, nil
}

func (s *RoleScreen) nextID() string {
	for {
		id := s.newID("ROLE")
		if !s.tree.Contains(id) {
			return id
		}
	}
}

func (s *RoleScreen) Cancel() error {
	if err := s.requireView(crud.ViewEditing); err != nil {
		return err
	}
	s.draft = nil
	s.view = crud.ViewList
	return nil
}

// Delete removes a role and everything under it after confirmation.
func (s *RoleScreen) Delete(ctx context.Context, id string, confirm crud.Confirmer) (bool, error) {
	if err := s.requireView(crud.ViewList); err != nil {
		return false, err
	}
	n, ok := s.tree.Find(id)
	if !ok {
		s.logger.Debug(ctx, "delete of unknown record ignored", "entity", "role", "id", id)
		return false, nil
	}

	prompt := fmt.Sprintf("Delete role %s?", id)
	sub := roletree.New(n)
	if size := sub.Len(); size > 1 {
		prompt = fmt.Sprintf("Delete role %s and %d roles under it?", id, size-1)
	}
	if confirm != nil && !confirm.Confirm(prompt) {
		return false, nil
	}

	sub.Walk(func(n models.RoleNode, _ int) bool {
		s.expanded.Collapse(n.ID)
		return true
	})
	s.tree.Remove(id)
	s.logger.Info(ctx, "record deleted", "entity", "role", "id", id, "subtree", sub.Len())
	return true, nil
}

func (s *RoleScreen) OpenDetail(string) (crud.Session, error) {
	if err := s.requireView(crud.ViewList); err != nil {
		return nil, err
	}
	return nil, common.ErrNoDetail
}

func (s *RoleScreen) CloseDetail() error {
	return s.requireView(crud.ViewDetail)
}
