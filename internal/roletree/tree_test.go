package roletree

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/tripdesk/internal/common"
	"github.com/dmitrijs2005/tripdesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func role(id string, children ...models.RoleNode) models.RoleNode {
	return models.RoleNode{ID: id, Name: "name " + id, Status: models.StatusActive, Children: children}
}

// sample builds:
//
//	A ─┬─ B ─┬─ D
//	   │     └─ E
//	   └─ C ─── F
//	G
func sample() *Tree {
	return New(
		role("A", role("B", role("D"), role("E")), role("C", role("F"))),
		role("G"),
	)
}

func ids(t *Tree) []string {
	var out []string
	t.Walk(func(n models.RoleNode, _ int) bool {
		out = append(out, n.ID)
		return true
	})
	return out
}

func TestWalk_PreOrderWithDepth(t *testing.T) {
	tr := sample()

	var depths []int
	tr.Walk(func(_ models.RoleNode, d int) bool {
		depths = append(depths, d)
		return true
	})

	assert.Equal(t, []string{"A", "B", "D", "E", "C", "F", "G"}, ids(tr))
	assert.Equal(t, []int{0, 1, 2, 2, 1, 2, 0}, depths)
	assert.Equal(t, 7, tr.Len())
}

func TestWalk_Stops(t *testing.T) {
	var seen []string
	sample().Walk(func(n models.RoleNode, _ int) bool {
		seen = append(seen, n.ID)
		return n.ID != "D"
	})
	assert.Equal(t, []string{"A", "B", "D"}, seen)
}

func TestNew_CopiesInput(t *testing.T) {
	in := role("A", role("B"))
	tr := New(in)
	in.Children[0].Name = "changed"

	got, ok := tr.Find("B")
	require.True(t, ok)
	assert.Equal(t, "name B", got.Name)

	roots := tr.Roots()
	roots[0].Children[0].Name = "changed"
	got, _ = tr.Find("B")
	assert.Equal(t, "name B", got.Name)
}

func TestFindAndParent(t *testing.T) {
	tr := sample()

	n, ok := tr.Find("E")
	require.True(t, ok)
	assert.Equal(t, "name E", n.Name)

	_, ok = tr.Find("Z")
	assert.False(t, ok)

	p, ok := tr.ParentOf("F")
	assert.True(t, ok)
	assert.Equal(t, "C", p)

	p, ok = tr.ParentOf("G")
	assert.True(t, ok)
	assert.Empty(t, p)

	_, ok = tr.ParentOf("Z")
	assert.False(t, ok)

	assert.True(t, tr.IsDescendant("E", "A"))
	assert.True(t, tr.IsDescendant("B", "B"))
	assert.False(t, tr.IsDescendant("F", "B"))
}

func TestInsert(t *testing.T) {
	tr := sample()

	require.NoError(t, tr.Insert("C", role("H")))
	require.NoError(t, tr.Insert("", role("I")))
	assert.Equal(t, []string{"A", "B", "D", "E", "C", "F", "H", "G", "I"}, ids(tr))

	err := tr.Insert("Z", role("J"))
	assert.True(t, errors.Is(err, common.ErrorNotFound))

	assert.Error(t, tr.Insert("", role("A")), "duplicate id")
}

func TestReplace_KeepsChildrenAndPosition(t *testing.T) {
	tr := sample()

	require.NoError(t, tr.Replace(models.RoleNode{ID: "B", Name: "Sales", Status: models.StatusInactive}))

	b, _ := tr.Find("B")
	assert.Equal(t, "Sales", b.Name)
	assert.Equal(t, models.StatusInactive, b.Status)
	assert.Len(t, b.Children, 2)
	assert.Equal(t, []string{"A", "B", "D", "E", "C", "F", "G"}, ids(tr))

	assert.True(t, errors.Is(tr.Replace(role("Z")), common.ErrorNotFound))
}

func TestRemove_TakesSubtree(t *testing.T) {
	tr := sample()

	assert.True(t, tr.Remove("B"))
	assert.Equal(t, []string{"A", "C", "F", "G"}, ids(tr))

	assert.False(t, tr.Remove("D"), "already gone with its parent")
	assert.True(t, tr.Remove("G"))
	assert.Equal(t, []string{"A", "C", "F"}, ids(tr))
}

func TestMove(t *testing.T) {
	tr := sample()

	require.NoError(t, tr.Move("C", "G"))
	assert.Equal(t, []string{"A", "B", "D", "E", "G", "C", "F"}, ids(tr))

	require.NoError(t, tr.Move("B", ""))
	p, _ := tr.ParentOf("B")
	assert.Empty(t, p)

	assert.True(t, errors.Is(tr.Move("G", "F"), ErrCycle))
	assert.True(t, errors.Is(tr.Move("G", "G"), ErrCycle))
	assert.True(t, errors.Is(tr.Move("Z", ""), common.ErrorNotFound))
	assert.True(t, errors.Is(tr.Move("A", "Z"), common.ErrorNotFound))

	require.NoError(t, tr.Move("F", "C"), "same parent is a no-op")
}

func TestZeroTree(t *testing.T) {
	var tr Tree
	assert.Equal(t, 0, tr.Len())
	require.NoError(t, tr.Insert("", role("A")))
	assert.True(t, tr.Contains("A"))
}
