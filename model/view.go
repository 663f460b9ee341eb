package model

import "slices"

// ObjectView is the object-style presentation of a node: its properties
// resolved once, when the view is created. It refers back to the node
// without owning it; once the node is destroyed or changed through Set or
// SetProperty the view is no longer Valid and Get on the model returns a
// fresh one.
type ObjectView struct {
	node   *Node
	names  []string
	values map[string]any
}

func newObjectView(m *Model, n *Node) *ObjectView {
	v := &ObjectView{
		node:   n,
		names:  slices.Clone(n.names),
		values: make(map[string]any, len(n.names)),
	}
	for _, name := range n.names {
		v.values[name] = m.valueForNode(n.props[name])
	}
	return v
}

// Valid reports whether the view still reflects a live, unchanged node.
func (v *ObjectView) Valid() bool {
	return v != nil && v.node != nil
}

func (v *ObjectView) Names() []string {
	return slices.Clone(v.names)
}

func (v *ObjectView) Get(name string) (any, bool) {
	res, ok := v.values[name]
	return res, ok
}

// Value is Get without the presence flag.
func (v *ObjectView) Value(name string) any {
	return v.values[name]
}

// Map returns a copy of the resolved properties.
func (v *ObjectView) Map() map[string]any {
	res := make(map[string]any, len(v.values))
	for k, x := range v.values {
		res[k] = x
	}
	return res
}

// Object returns the resolved properties in declaration order.
func (v *ObjectView) Object() Object {
	res := make(Object, 0, len(v.names))
	for _, name := range v.names {
		res = append(res, Field{Name: name, Value: v.values[name]})
	}
	return res
}
