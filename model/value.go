package model

import (
	"fmt"
	"strconv"
)

type Kind uint8

const (
	EmptyKind Kind = iota
	NodeKind
	StringKind
	NumberKind
	BoolKind
)

func (k Kind) String() string {
	switch k {
	case EmptyKind:
		return "Empty"
	case NodeKind:
		return "Node"
	case StringKind:
		return "String"
	case NumberKind:
		return "Number"
	case BoolKind:
		return "Bool"
	}
	return "<unknown kind>"
}

func (k Kind) IsScalar() bool {
	switch k {
	case StringKind, NumberKind, BoolKind:
		return true
	default:
		return false
	}
}

// Value is one positional slot of a Node: a nested node, a scalar, or
// nothing. The zero Value is empty.
type Value struct {
	kind Kind
	node *Node
	str  string
	num  float64
	b    bool
}

func Empty() Value {
	return Value{}
}

func FromNode(n *Node) Value {
	if n == nil {
		return Value{}
	}
	return Value{kind: NodeKind, node: n}
}

func FromString(s string) Value {
	return Value{kind: StringKind, str: s}
}

func FromNumber(f float64) Value {
	return Value{kind: NumberKind, num: f}
}

func FromBool(b bool) Value {
	return Value{kind: BoolKind, b: b}
}

func (v Value) Kind() Kind       { return v.kind }
func (v Value) IsEmpty() bool    { return v.kind == EmptyKind }
func (v Value) AsNode() *Node    { return v.node }
func (v Value) AsString() string { return v.str }
func (v Value) AsNumber() float64 {
	return v.num
}
func (v Value) AsBool() bool { return v.b }

// Interface returns the scalar as a Go value (string, float64 or bool),
// the *Node for nested values, and nil for empty.
func (v Value) Interface() any {
	switch v.kind {
	case NodeKind:
		return v.node
	case StringKind:
		return v.str
	case NumberKind:
		return v.num
	case BoolKind:
		return v.b
	}
	return nil
}

func (v Value) String() string {
	switch v.kind {
	case NodeKind:
		return fmt.Sprintf("<node %d values %d props>", len(v.node.Values), len(v.node.names))
	case StringKind:
		return strconv.Quote(v.str)
	case NumberKind:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case BoolKind:
		return strconv.FormatBool(v.b)
	}
	return "<empty>"
}
