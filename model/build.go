package model

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// Field is one named entry of an Object.
type Field struct {
	Name  string
	Value any
}

// Object is an ordered property mapping, the preferred argument shape for
// Append, Insert and Set. Plain map[string]any is accepted too and is taken
// in sorted key order.
type Object []Field

func (o Object) Get(name string) (any, bool) {
	for i := len(o) - 1; i >= 0; i-- {
		if o[i].Name == name {
			return o[i].Value, true
		}
	}
	return nil, false
}

// MarshalJSON encodes o as a JSON object keeping field order.
func (o Object) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, f := range o {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendQuote(buf, f.Name)
		buf = append(buf, ':')
		d, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		buf = append(buf, d...)
	}
	return append(buf, '}'), nil
}

// objectFields returns the fields of an object-shaped argument, with later
// duplicates overriding earlier ones.
func objectFields(v any) (Object, error) {
	var fields Object
	switch x := v.(type) {
	case Object:
		fields = x
	case map[string]any:
		fields = make(Object, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			fields = append(fields, Field{Name: k, Value: x[k]})
		}
	case *ObjectView:
		if x == nil {
			return nil, fmt.Errorf("%w: nil object view", ErrType)
		}
		fields = x.Object()
	case nil:
		return nil, fmt.Errorf("%w: value is not an object", ErrType)
	default:
		if isList(v) {
			return nil, fmt.Errorf("%w: value is an array, not an object", ErrType)
		}
		return nil, fmt.Errorf("%w: value is not an object (%T)", ErrType, v)
	}
	res := make(Object, 0, len(fields))
	idx := map[string]int{}
	for _, f := range fields {
		if i, ok := idx[f.Name]; ok {
			res[i].Value = f.Value
			continue
		}
		idx[f.Name] = len(res)
		res = append(res, f)
	}
	return res, nil
}

func isList(v any) bool {
	switch v.(type) {
	case []any, []Object, []map[string]any:
		return true
	}
	return false
}

func listItems(v any) []any {
	switch x := v.(type) {
	case []any:
		return x
	case []Object:
		res := make([]any, len(x))
		for i := range x {
			res[i] = x[i]
		}
		return res
	case []map[string]any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = x[i]
		}
		return res
	}
	return nil
}

func isObject(v any) bool {
	switch x := v.(type) {
	case Object, map[string]any:
		return true
	case *ObjectView:
		return x != nil
	}
	return false
}

// buildObject builds an item node from object fields.
func buildObject(fields Object) (*Node, error) {
	n := NewNode()
	for _, f := range fields {
		c, err := buildProperty(f.Value)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", f.Name, err)
		}
		n.SetProperty(f.Name, c)
	}
	return n, nil
}

// buildProperty builds the node stored under a property name: lists become
// array-shaped nodes, objects object-shaped nodes and scalars a node holding
// exactly that value.
func buildProperty(v any) (*Node, error) {
	switch {
	case isList(v):
		return buildList(listItems(v))
	case isObject(v):
		fields, err := objectFields(v)
		if err != nil {
			return nil, err
		}
		return buildObject(fields)
	case v == nil:
		return &Node{Values: []Value{Empty()}}, nil
	}
	switch x := v.(type) {
	case *Model:
		if x == nil {
			return &Node{Values: []Value{Empty()}}, nil
		}
		return buildList(x.Plain())
	case Value:
		if x.kind == NodeKind {
			return nil, fmt.Errorf("%w: cannot share node values", ErrType)
		}
		return &Node{Values: []Value{x}}, nil
	}
	sv, err := scalar(v)
	if err != nil {
		return nil, err
	}
	return &Node{Values: []Value{sv}}, nil
}

func buildList(items []any) (*Node, error) {
	n := NewArray()
	for i, item := range items {
		var (
			c   *Node
			err error
		)
		switch {
		case isList(item):
			c, err = buildList(listItems(item))
		case isObject(item):
			var fields Object
			fields, err = objectFields(item)
			if err == nil {
				c, err = buildObject(fields)
			}
		default:
			c, err = buildProperty(item)
		}
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		n.Values = append(n.Values, FromNode(c))
	}
	return n, nil
}

func scalar(v any) (Value, error) {
	switch x := v.(type) {
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case float64:
		return FromNumber(x), nil
	case float32:
		return FromNumber(float64(x)), nil
	case int:
		return FromNumber(float64(x)), nil
	case int8:
		return FromNumber(float64(x)), nil
	case int16:
		return FromNumber(float64(x)), nil
	case int32:
		return FromNumber(float64(x)), nil
	case int64:
		return FromNumber(float64(x)), nil
	case uint:
		return FromNumber(float64(x)), nil
	case uint8:
		return FromNumber(float64(x)), nil
	case uint16:
		return FromNumber(float64(x)), nil
	case uint32:
		return FromNumber(float64(x)), nil
	case uint64:
		return FromNumber(float64(x)), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("%w: %w", ErrType, err)
		}
		return FromNumber(f), nil
	}
	return Value{}, fmt.Errorf("%w: unsupported value type %T", ErrType, v)
}
