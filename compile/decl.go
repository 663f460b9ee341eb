package compile

import (
	"fmt"
	"strconv"
)

// Property is a declared property: a name (empty for the default property)
// and the values assigned to it, in order.
type Property struct {
	Name   string
	Values []Literal
	Pos    Pos
}

// Literal is an assigned value: *Element or Scalar.
type Literal interface {
	isLiteral()
}

// Element is a nested list element with its own properties.
type Element struct {
	Properties []Property
	Pos        Pos
}

type ScalarType int

const (
	StringScalar ScalarType = iota
	NumberScalar
	BooleanScalar
	ScriptScalar
)

func (t ScalarType) String() string {
	switch t {
	case StringScalar:
		return "string"
	case NumberScalar:
		return "number"
	case BooleanScalar:
		return "boolean"
	case ScriptScalar:
		return "script"
	}
	return "<unknown scalar>"
}

// Scalar is a literal value. Text holds the string or script source.
type Scalar struct {
	Type   ScalarType
	Text   string
	Number float64
	Bool   bool
	Pos    Pos
}

func (*Element) isLiteral() {}
func (Scalar) isLiteral()   {}

func String(s string) Scalar  { return Scalar{Type: StringScalar, Text: s} }
func Number(f float64) Scalar { return Scalar{Type: NumberScalar, Number: f} }
func Bool(b bool) Scalar      { return Scalar{Type: BooleanScalar, Bool: b} }
func Script(s string) Scalar  { return Scalar{Type: ScriptScalar, Text: s} }

func (s Scalar) String() string {
	switch s.Type {
	case StringScalar:
		return strconv.Quote(s.Text)
	case NumberScalar:
		return strconv.FormatFloat(s.Number, 'g', -1, 64)
	case BooleanScalar:
		return strconv.FormatBool(s.Bool)
	case ScriptScalar:
		return "!script " + strconv.Quote(s.Text)
	}
	return "<unknown scalar>"
}

// Named returns a property with the given name and values.
func Named(name string, values ...Literal) Property {
	return Property{Name: name, Values: values}
}

// NewElement returns an element with the given properties.
func NewElement(props ...Property) *Element {
	return &Element{Properties: props}
}

// Pos is a source position, zero when unknown.
type Pos struct {
	Line, Column int
}

func (p Pos) IsValid() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
