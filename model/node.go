package model

import "slices"

// Node is one element of the tree. It holds positional Values, named
// properties, or both. Property names are unique and keep insertion order.
type Node struct {
	Values  []Value
	IsArray bool

	names []string
	props map[string]*Node

	object *ObjectView
	list   *Model
	dead   bool
}

func NewNode() *Node {
	return &Node{}
}

// NewArray returns an array-shaped node with no children.
func NewArray() *Node {
	return &Node{IsArray: true}
}

func (n *Node) Property(name string) *Node {
	if n.props == nil {
		return nil
	}
	return n.props[name]
}

func (n *Node) PropertyNames() []string {
	return slices.Clone(n.names)
}

func (n *Node) NumProperties() int {
	return len(n.names)
}

func (n *Node) AppendValue(v Value) {
	n.Values = append(n.Values, v)
}

// AppendNode creates a child node as the next positional value of n.
func (n *Node) AppendNode() *Node {
	c := NewNode()
	n.Values = append(n.Values, FromNode(c))
	return c
}

// NewProperty creates a child node stored under name, replacing (and
// destroying) any previous property of that name.
func (n *Node) NewProperty(name string) *Node {
	c := NewNode()
	n.SetProperty(name, c)
	return c
}

func (n *Node) SetProperty(name string, child *Node) {
	if n.props == nil {
		n.props = map[string]*Node{}
	}
	old, ok := n.props[name]
	if !ok {
		n.names = append(n.names, name)
	}
	n.props[name] = child
	if ok && old != child {
		old.destroy()
	}
}

// Destroyed reports whether n has been removed from its tree.
func (n *Node) Destroyed() bool {
	return n.dead
}

func (n *Node) destroy() {
	if n == nil || n.dead {
		return
	}
	n.dead = true
	for _, v := range n.Values {
		if v.kind == NodeKind {
			v.node.destroy()
		}
	}
	for _, name := range n.names {
		n.props[name].destroy()
	}
	n.Values = nil
	n.names = nil
	n.props = nil
	n.dropObject()
	if n.list != nil {
		n.list.root = nil
		n.list = nil
	}
}

// destroyValues destroys every positional child, leaving n itself alive.
func (n *Node) destroyValues() {
	for _, v := range n.Values {
		if v.kind == NodeKind {
			v.node.destroy()
		}
	}
	n.Values = nil
}

func (n *Node) dropObject() {
	if n.object == nil {
		return
	}
	n.object.node = nil
	n.object = nil
}

// Visit walks the subtree rooted at n depth first: positional values in
// order, then properties in insertion order. f is called before (isPost
// false) and after (isPost true) each node's children; returning false
// before skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if v.kind != NodeKind {
				continue
			}
			if err := v.node.Visit(f); err != nil {
				return err
			}
		}
		for _, name := range n.names {
			if err := n.props[name].Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node) Size() int {
	size := 0
	_ = n.Visit(func(_ *Node, isPost bool) (bool, error) {
		if !isPost {
			size++
		}
		return true, nil
	})
	return size
}
