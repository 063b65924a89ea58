// Package roletree manipulates the organisation chart. Nodes own their
// children by value, so every edit rewrites a path from the root; there are
// no parent pointers to keep in sync.
package roletree

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tripdesk/internal/common"
	"github.com/dmitrijs2005/tripdesk/internal/models"
)

var ErrCycle = errors.New("role cannot be moved under itself")

// Tree is an ordered forest of roles. The zero value is empty and usable.
type Tree struct {
	roots []models.RoleNode
}

// New builds a tree from deep copies of roots.
func New(roots ...models.RoleNode) *Tree {
	t := &Tree{roots: make([]models.RoleNode, len(roots))}
	for i, r := range roots {
		t.roots[i] = r.Clone()
	}
	return t
}

// Roots returns a deep copy of the forest.
func (t *Tree) Roots() []models.RoleNode {
	return New(t.roots...).roots
}

// Len counts every node.
func (t *Tree) Len() int {
	n := 0
	t.Walk(func(models.RoleNode, int) bool { n++; return true })
	return n
}

// Walk visits nodes depth-first in pre-order. Returning false from fn stops
// the walk.
func (t *Tree) Walk(fn func(n models.RoleNode, depth int) bool) {
	walk(t.roots, 0, fn)
}

func walk(nodes []models.RoleNode, depth int, fn func(models.RoleNode, int) bool) bool {
	for _, n := range nodes {
		if !fn(n, depth) {
			return false
		}
		if !walk(n.Children, depth+1, fn) {
			return false
		}
	}
	return true
}

// Find returns a copy of the node with id.
func (t *Tree) Find(id string) (models.RoleNode, bool) {
	siblings, i := locate(&t.roots, id)
	if siblings == nil {
		return models.RoleNode{}, false
	}
	return (*siblings)[i].Clone(), true
}

// Contains reports whether id is in the tree.
func (t *Tree) Contains(id string) bool {
	siblings, _ := locate(&t.roots, id)
	return siblings != nil
}

// ParentOf returns the id of the node's parent, "" for a root. ok is false
// when id is not in the tree.
func (t *Tree) ParentOf(id string) (parent string, ok bool) {
	for _, r := range t.roots {
		if r.ID == id {
			return "", true
		}
	}
	t.Walk(func(n models.RoleNode, _ int) bool {
		for _, c := range n.Children {
			if c.ID == id {
				parent, ok = n.ID, true
				return false
			}
		}
		return true
	})
	return parent, ok
}

// IsDescendant reports whether id lies in the subtree rooted at ancestor,
// ancestor itself included.
func (t *Tree) IsDescendant(id, ancestor string) bool {
	root, ok := t.Find(ancestor)
	if !ok {
		return false
	}
	return New(root).Contains(id)
}

// Insert appends n as the last child of parentID, or as a new root when
// parentID is empty.
func (t *Tree) Insert(parentID string, n models.RoleNode) error {
	if t.Contains(n.ID) {
		return fmt.Errorf("role %q already exists", n.ID)
	}
	n = n.Clone()
	if parentID == "" {
		t.roots = append(t.roots, n)
		return nil
	}
	siblings, i := locate(&t.roots, parentID)
	if siblings == nil {
		return fmt.Errorf("parent role %q: %w", parentID, common.ErrorNotFound)
	}
	parent := &(*siblings)[i]
	parent.Children = append(parent.Children, n)
	return nil
}

// Replace overwrites the attributes of the node with n.ID. The node keeps its
// place and its children; n.Children is ignored.
func (t *Tree) Replace(n models.RoleNode) error {
	siblings, i := locate(&t.roots, n.ID)
	if siblings == nil {
		return fmt.Errorf("role %q: %w", n.ID, common.ErrorNotFound)
	}
	n.Children = (*siblings)[i].Children
	(*siblings)[i] = n
	return nil
}

// Move reattaches the subtree of id under parentID ("" for root level). A
// node cannot move into its own subtree.
func (t *Tree) Move(id, parentID string) error {
	current, ok := t.ParentOf(id)
	if !ok {
		return fmt.Errorf("role %q: %w", id, common.ErrorNotFound)
	}
	if current == parentID {
		return nil
	}
	if parentID != "" {
		if !t.Contains(parentID) {
			return fmt.Errorf("parent role %q: %w", parentID, common.ErrorNotFound)
		}
		if t.IsDescendant(parentID, id) {
			return ErrCycle
		}
	}
	node, _ := t.Find(id)
	t.Remove(id)
	return t.Insert(parentID, node)
}

// Remove deletes the node with id together with its subtree. It reports
// whether anything was removed.
func (t *Tree) Remove(id string) bool {
	siblings, i := locate(&t.roots, id)
	if siblings == nil {
		return false
	}
	*siblings = append((*siblings)[:i], (*siblings)[i+1:]...)
	return true
}

// locate returns the slice holding id and its index, or nil.
func locate(nodes *[]models.RoleNode, id string) (*[]models.RoleNode, int) {
	for i := range *nodes {
		if (*nodes)[i].ID == id {
			return nodes, i
		}
		if s, j := locate(&(*nodes)[i].Children, id); s != nil {
			return s, j
		}
	}
	return nil, -1
}
