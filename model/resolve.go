package model

// objectView returns the cached object view of n, creating it on demand.
func (n *Node) objectView(m *Model) *ObjectView {
	if n.object == nil {
		n.object = newObjectView(m, n)
	}
	return n.object
}

// listModel returns the cached model-style view of n, creating it on
// demand. The returned model borrows n.
func (n *Node) listModel() *Model {
	if n.list == nil {
		n.list = &Model{root: n, borrowed: true}
	}
	return n.list
}

// valueForNode resolves a property node for presentation.
func (m *Model) valueForNode(n *Node) any {
	if n == nil {
		return nil
	}
	if n.IsArray {
		return n.listModel()
	}
	if len(n.names) != 0 {
		return n.objectView(m)
	}
	switch len(n.Values) {
	case 0:
		return nil
	case 1:
		v := n.Values[0]
		if v.kind != NodeKind {
			if v.kind == EmptyKind {
				return nil
			}
			return v.Interface()
		}
		if len(v.node.names) != 0 {
			return v.node.objectView(m)
		}
		return v.node.listModel()
	}
	return nil
}
