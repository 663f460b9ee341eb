package model

// Plain converts the subtree under n to plain Go values following the
// presentation rules: []any for array-shaped nodes, Object for nodes with
// properties, and the scalar (string, float64, bool) or nil otherwise.
// Feeding the result back through Append or Set rebuilds an equal tree.
func Plain(n *Node) any {
	if n == nil {
		return nil
	}
	if n.IsArray {
		return plainItems(n)
	}
	if len(n.names) != 0 {
		obj := make(Object, 0, len(n.names))
		for _, name := range n.names {
			obj = append(obj, Field{Name: name, Value: Plain(n.props[name])})
		}
		return obj
	}
	if len(n.Values) != 1 {
		return nil
	}
	v := n.Values[0]
	if v.kind != NodeKind {
		return v.Interface()
	}
	if len(v.node.names) != 0 {
		return Plain(v.node)
	}
	return plainItems(v.node)
}

func plainItems(n *Node) []any {
	res := make([]any, 0, len(n.Values))
	for _, v := range n.Values {
		if v.kind == NodeKind {
			res = append(res, Plain(v.node))
			continue
		}
		res = append(res, v.Interface())
	}
	return res
}

// Items returns the positional values of n as plain Go values. It is how a
// root node, whose values are the items of a list, is presented.
func Items(n *Node) []any {
	if n == nil {
		return []any{}
	}
	return plainItems(n)
}
