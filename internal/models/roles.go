package models

// RoleNode is one position in the organisation chart. Children are owned by
// value; there is no parent pointer.
type RoleNode struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Status      Status     `json:"status" yaml:"status"`
	Children    []RoleNode `json:"children" yaml:"children"`
}

// Clone deep-copies the node and its subtree.
func (n RoleNode) Clone() RoleNode {
	if n.Children != nil {
		children := make([]RoleNode, len(n.Children))
		for i, c := range n.Children {
			children[i] = c.Clone()
		}
		n.Children = children
	}
	return n
}
