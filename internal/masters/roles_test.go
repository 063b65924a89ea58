package masters

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/tripdesk/internal/common"
	"github.com/dmitrijs2005/tripdesk/internal/crud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoles(t *testing.T) *RoleScreen {
	t.Helper()
	env, seed := testEnv(t)
	return NewRoles(seed.Roles, env)
}

func names(rows [][]string) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r[1]
	}
	return out
}

func TestRoles_ExpandCollapse(t *testing.T) {
	s := newTestRoles(t)

	assert.Equal(t, []string{"+ Managing Director", "  Accounts Manager"}, names(s.Rows()))

	require.NoError(t, s.Expand("ROLE-1"))
	assert.Equal(t, []string{
		"- Managing Director",
		"  + Sales Head",
		"  + Operations Head",
		"  Accounts Manager",
	}, names(s.Rows()))

	require.NoError(t, s.Expand("ROLE-2"))
	assert.Len(t, s.Rows(), 6)

	require.NoError(t, s.Collapse("ROLE-1"))
	assert.Len(t, s.Rows(), 2)

	assert.True(t, errors.Is(s.Expand("ROLE-404"), common.ErrorNotFound))
}

func TestRoles_SearchRendersFlat(t *testing.T) {
	s := newTestRoles(t)

	require.NoError(t, s.Search("executive"))
	assert.Equal(t, []string{"ROLE-4", "ROLE-5"}, firstColumn(s.Rows()))
	assert.Equal(t, []string{"Sales Executive", "Reservations Executive"}, names(s.Rows()))

	require.NoError(t, s.Search(""))
	require.NoError(t, s.FilterBy("Inactive"))
	assert.Empty(t, s.Rows())
}

func TestRoles_AddUnderParent(t *testing.T) {
	s := newTestRoles(t).WithIDGenerator(ids("ROLE-1", "ROLE-8"))
	ctx := context.Background()

	require.NoError(t, s.BeginCreate())
	require.NoError(t, s.SetField(ctx, "parent", "Operations Head"))
	require.NoError(t, s.SetField(ctx, "name", "Driver Desk"))
	id, err := s.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ROLE-8", id)

	parent, ok := s.Tree().ParentOf("ROLE-8")
	require.True(t, ok)
	assert.Equal(t, "ROLE-3", parent)
	assert.Contains(t, names(s.Rows()), "      Driver Desk", "parent is expanded after insert")
}

func TestRoles_AddValidation(t *testing.T) {
	s := newTestRoles(t)
	ctx := context.Background()

	require.NoError(t, s.BeginCreate())
	_, err := s.Save(ctx)
	assert.True(t, errors.Is(err, common.ErrValidation))
	assert.Equal(t, crud.ViewEditing, s.View())
	assert.Equal(t, 7, s.Tree().Len())

	require.NoError(t, s.Cancel())
	assert.Equal(t, crud.ViewList, s.View())
}

func TestRoles_EditMovesSubtree(t *testing.T) {
	s := newTestRoles(t)
	ctx := context.Background()

	require.NoError(t, s.BeginEdit("ROLE-2"))
	opts, err := s.FieldOptions("parent")
	require.NoError(t, err)
	for _, o := range opts {
		assert.NotContains(t, []string{"ROLE-2", "ROLE-4", "ROLE-5"}, o.ID)
	}
	assert.True(t, errors.Is(s.SetField(ctx, "parent", "ROLE-4"), common.ErrInvalidValue))

	require.NoError(t, s.SetField(ctx, "parent", "ROLE-7"))
	require.NoError(t, s.SetField(ctx, "name", "Sales Lead"))
	_, err = s.Save(ctx)
	require.NoError(t, err)

	p, _ := s.Tree().ParentOf("ROLE-2")
	assert.Equal(t, "ROLE-7", p)
	n, _ := s.Tree().Find("ROLE-2")
	assert.Equal(t, "Sales Lead", n.Name)
	assert.Len(t, n.Children, 2)

	require.NoError(t, s.BeginEdit("ROLE-2"))
	require.NoError(t, s.SetField(ctx, "parent", ""))
	_, err = s.Save(ctx)
	require.NoError(t, err)
	p, _ = s.Tree().ParentOf("ROLE-2")
	assert.Empty(t, p)
}

func TestRoles_DeleteTakesSubtree(t *testing.T) {
	s := newTestRoles(t)
	ctx := context.Background()

	var prompt string
	ok, err := s.Delete(ctx, "ROLE-2", crud.ConfirmFunc(func(p string) bool { prompt = p; return false }))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, strings.Contains(prompt, "2 roles under it"), prompt)
	assert.Equal(t, 7, s.Tree().Len())

	ok, err = s.Delete(ctx, "ROLE-2", yes)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, s.Tree().Len())
	assert.False(t, s.Tree().Contains("ROLE-5"))

	ok, err = s.Delete(ctx, "ROLE-5", yes)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRoles_ViewGuards(t *testing.T) {
	s := newTestRoles(t)

	assert.True(t, errors.Is(s.Cancel(), common.ErrInvalidState))
	_, err := s.OpenDetail("ROLE-1")
	assert.True(t, errors.Is(err, common.ErrNoDetail))

	require.NoError(t, s.BeginEdit("ROLE-1"))
	assert.True(t, errors.Is(s.Expand("ROLE-1"), common.ErrInvalidState))
	_, err = s.Delete(context.Background(), "ROLE-1", yes)
	assert.True(t, errors.Is(err, common.ErrInvalidState))
	assert.True(t, errors.Is(s.BeginCreate(), common.ErrInvalidState))
}
