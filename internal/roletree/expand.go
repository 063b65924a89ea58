package roletree

import "github.com/dmitrijs2005/tripdesk/internal/models"

// ExpandSet holds the ids of expanded nodes. It belongs to the screen, not to
// the tree, so the tree stays pure data.
type ExpandSet map[string]struct{}

func (s ExpandSet) Expand(id string)   { s[id] = struct{}{} }
func (s ExpandSet) Collapse(id string) { delete(s, id) }

func (s ExpandSet) IsExpanded(id string) bool {
	_, ok := s[id]
	return ok
}

// Line is one rendered row of the tree.
type Line struct {
	Node        models.RoleNode
	Depth       int
	HasChildren bool
	Expanded    bool
}

// Visible returns the rows to render: every root, and the children of every
// expanded node whose ancestors are expanded too.
func Visible(t *Tree, expanded ExpandSet) []Line {
	var out []Line
	var visit func(nodes []models.RoleNode, depth int)
	visit = func(nodes []models.RoleNode, depth int) {
		for _, n := range nodes {
			open := len(n.Children) > 0 && expanded.IsExpanded(n.ID)
			out = append(out, Line{Node: n, Depth: depth, HasChildren: len(n.Children) > 0, Expanded: open})
			if open {
				visit(n.Children, depth+1)
			}
		}
	}
	visit(t.roots, 0)
	return out
}
