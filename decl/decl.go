// Package decl reads list model declarations written in YAML.
//
// A document is either a sequence, whose entries are the items of the
// list, or a mapping of top-level properties where the key "" names the
// default property:
//
//	- name: Apple
//	  cost: 2.45
//	  attributes:
//	    - description: Core
//	    - description: Deciduous
//	- name: Orange
//	  cost: 3.25
//	  attributes: !script "[ ]"
//
// Inside an item, a mapping value is one element, a sequence value assigns
// each of its entries, and strings, numbers and booleans are scalars. The
// !script tag marks a script literal; compile only accepts the empty list
// idiom. An empty flow sequence ("[]") is read as that idiom.
package decl

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"

	"github.com/signadot/listmodel/compile"
)

var ErrDecl = errors.New("declaration error")

const scriptTag = "!script"

func ParseFile(path string) ([]compile.Property, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	props, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return props, nil
}

// Parse reads a declaration. An empty document declares an empty list.
func Parse(d []byte) ([]compile.Property, error) {
	f, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecl, err)
	}
	var body ast.Node
	for _, doc := range f.Docs {
		if doc == nil || doc.Body == nil {
			continue
		}
		if _, ok := doc.Body.(*ast.CommentGroupNode); ok {
			continue
		}
		if body != nil {
			return nil, declErr(doc.Body, "more than one document")
		}
		body = doc.Body
	}
	if body == nil {
		return nil, nil
	}
	switch x := body.(type) {
	case *ast.SequenceNode:
		values, err := items(x)
		if err != nil {
			return nil, err
		}
		return []compile.Property{{Values: values, Pos: pos(x)}}, nil
	case *ast.MappingNode, *ast.MappingValueNode:
		var props []compile.Property
		for _, mv := range pairs(x) {
			name, err := key(mv)
			if err != nil {
				return nil, err
			}
			p := compile.Property{Name: name, Pos: pos(mv.Key)}
			if name == "" {
				seq, ok := mv.Value.(*ast.SequenceNode)
				if !ok {
					return nil, declErr(mv.Value, "default property must be a sequence")
				}
				if p.Values, err = items(seq); err != nil {
					return nil, err
				}
			} else if p.Values, err = values(mv.Value); err != nil {
				return nil, err
			}
			props = append(props, p)
		}
		return props, nil
	}
	return nil, declErr(body, "document must be a sequence or a mapping, not %s", body.Type())
}

// items reads the entries of a default property, which must all be
// elements.
func items(seq *ast.SequenceNode) ([]compile.Literal, error) {
	res := make([]compile.Literal, 0, len(seq.Values))
	for _, v := range seq.Values {
		switch v.(type) {
		case *ast.MappingNode, *ast.MappingValueNode:
		default:
			return nil, declErr(v, "list item must be a mapping, not %s", v.Type())
		}
		elt, err := element(v)
		if err != nil {
			return nil, err
		}
		res = append(res, elt)
	}
	return res, nil
}

func element(n ast.Node) (*compile.Element, error) {
	elt := &compile.Element{Pos: pos(n)}
	for _, mv := range pairs(n) {
		name, err := key(mv)
		if err != nil {
			return nil, err
		}
		vs, err := values(mv.Value)
		if err != nil {
			return nil, err
		}
		elt.Properties = append(elt.Properties, compile.Property{Name: name, Values: vs, Pos: pos(mv.Key)})
	}
	return elt, nil
}

// values reads the right hand side of a property assignment.
func values(n ast.Node) ([]compile.Literal, error) {
	seq, ok := n.(*ast.SequenceNode)
	if !ok {
		v, err := literal(n)
		if err != nil {
			return nil, err
		}
		return []compile.Literal{v}, nil
	}
	if len(seq.Values) == 0 {
		s := compile.Script("[]")
		s.Pos = pos(seq)
		return []compile.Literal{s}, nil
	}
	res := make([]compile.Literal, 0, len(seq.Values))
	for _, v := range seq.Values {
		if _, ok := v.(*ast.SequenceNode); ok {
			return nil, declErr(v, "nested sequences are not supported")
		}
		lit, err := literal(v)
		if err != nil {
			return nil, err
		}
		res = append(res, lit)
	}
	return res, nil
}

func literal(n ast.Node) (compile.Literal, error) {
	var s compile.Scalar
	switch x := n.(type) {
	case *ast.MappingNode, *ast.MappingValueNode:
		elt, err := element(x)
		if err != nil {
			return nil, err
		}
		return elt, nil
	case *ast.TagNode:
		if x.Start == nil || x.Start.Value != scriptTag {
			return nil, declErr(x, "unknown tag")
		}
		text, ok := stringValue(x.Value)
		if !ok {
			return nil, declErr(x, "%s must tag a string", scriptTag)
		}
		s = compile.Script(text)
	case *ast.StringNode, *ast.LiteralNode:
		text, _ := stringValue(x)
		s = compile.String(text)
	case *ast.IntegerNode:
		switch v := x.Value.(type) {
		case int64:
			s = compile.Number(float64(v))
		case uint64:
			s = compile.Number(float64(v))
		default:
			return nil, declErr(x, "bad integer %v", x.Value)
		}
	case *ast.FloatNode:
		s = compile.Number(x.Value)
	case *ast.InfinityNode:
		s = compile.Number(x.Value)
	case *ast.NanNode:
		s = compile.Number(math.NaN())
	case *ast.BoolNode:
		s = compile.Bool(x.Value)
	case *ast.NullNode:
		return nil, declErr(x, "null is not a value")
	default:
		return nil, declErr(n, "unsupported %s", n.Type())
	}
	s.Pos = pos(n)
	return s, nil
}

func stringValue(n ast.Node) (string, bool) {
	switch x := n.(type) {
	case *ast.StringNode:
		return x.Value, true
	case *ast.LiteralNode:
		if x.Value == nil {
			return "", true
		}
		return x.Value.Value, true
	}
	return "", false
}

func pairs(n ast.Node) []*ast.MappingValueNode {
	switch x := n.(type) {
	case *ast.MappingNode:
		return x.Values
	case *ast.MappingValueNode:
		return []*ast.MappingValueNode{x}
	}
	return nil
}

func key(mv *ast.MappingValueNode) (string, error) {
	switch k := mv.Key.(type) {
	case *ast.StringNode:
		return k.Value, nil
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode:
		return k.GetToken().Value, nil
	}
	return "", declErr(mv.Key, "unsupported key %s", mv.Key.Type())
}

func pos(n ast.Node) compile.Pos {
	if n == nil {
		return compile.Pos{}
	}
	return tokenPos(n.GetToken())
}

func tokenPos(t *token.Token) compile.Pos {
	if t == nil || t.Position == nil {
		return compile.Pos{}
	}
	return compile.Pos{Line: t.Position.Line, Column: t.Position.Column}
}

func declErr(n ast.Node, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if p := pos(n); p.IsValid() {
		return fmt.Errorf("%w: %s: %s", ErrDecl, p, msg)
	}
	return fmt.Errorf("%w: %s", ErrDecl, msg)
}
