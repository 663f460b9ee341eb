package compile

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/signadot/listmodel/bytecode"
	"github.com/signadot/listmodel/debug"
)

var ErrStructure = errors.New("structural error")

// Compile translates a declaration into a bytecode program. The top level
// may only assign to the default property. Element properties must be
// named and may not be called "id". The only script literal accepted is
// the empty list, "[ ]". Names and strings are stored zero terminated and
// may not contain NUL.
func Compile(props []Property) (*bytecode.Program, error) {
	c := &compiler{prog: &bytecode.Program{}}
	for i := range props {
		prop := &props[i]
		if prop.Name != "" {
			return nil, structErr(prop.Pos, "ListModel: undefined property %q", prop.Name)
		}
		for _, v := range prop.Values {
			if _, ok := v.(*Element); !ok {
				return nil, structErr(prop.Pos, "ListModel: list items must be ListElement, not %s", literalKind(v))
			}
		}
		if err := c.property(prop, false); err != nil {
			return nil, err
		}
	}
	if debug.Compile() {
		debug.Logf("compiled %d instructions, %d data bytes\n", len(c.prog.Instructions), len(c.prog.Data))
	}
	return c.prog, nil
}

type compiler struct {
	prog *bytecode.Program
}

// property emits the values of prop. named is true for properties of an
// element, whose element values make the property an array.
func (c *compiler) property(prop *Property, named bool) error {
	for _, v := range prop.Values {
		switch x := v.(type) {
		case *Element:
			if err := c.element(x, named); err != nil {
				return err
			}
		case Scalar:
			off, err := c.scalar(prop, x)
			if err != nil {
				return err
			}
			c.prog.Emit(bytecode.OpValue, 0, off)
		default:
			return structErr(prop.Pos, "ListElement: unsupported value %T", v)
		}
	}
	return nil
}

func (c *compiler) element(elt *Element, arrayContext bool) error {
	var flags bytecode.Flags
	if arrayContext {
		flags = bytecode.FlagArrayContext
	}
	c.prog.Emit(bytecode.OpPush, flags, -1)
	for i := range elt.Properties {
		prop := &elt.Properties[i]
		switch prop.Name {
		case "":
			return structErr(prop.Pos, "ListElement: cannot use default property")
		case "id":
			return structErr(prop.Pos, "ListElement: cannot use reserved \"id\" property")
		}
		if strings.IndexByte(prop.Name, 0) >= 0 {
			return structErr(prop.Pos, "ListElement: property name %q contains NUL", prop.Name)
		}
		c.prog.Emit(bytecode.OpSet, 0, c.prog.AddName(prop.Name))
		if err := c.property(prop, true); err != nil {
			return err
		}
		c.prog.Emit(bytecode.OpPop, 0, -1)
	}
	c.prog.Emit(bytecode.OpPop, 0, -1)
	return nil
}

func (c *compiler) scalar(prop *Property, s Scalar) (int32, error) {
	switch s.Type {
	case StringScalar:
		if strings.IndexByte(s.Text, 0) >= 0 {
			return 0, structErr(prop.Pos, "ListElement: string value of %q contains NUL", prop.Name)
		}
		return c.prog.AddString(s.Text), nil
	case NumberScalar:
		return c.prog.AddNumber(s.Number), nil
	case BooleanScalar:
		return c.prog.AddBool(s.Bool), nil
	case ScriptScalar:
		if DefinesEmptyList(s.Text) {
			return c.prog.AddEmptyList(), nil
		}
		pos := s.Pos
		if !pos.IsValid() {
			pos = prop.Pos
		}
		return 0, structErr(pos, "ListElement: cannot use script for property value")
	}
	return 0, structErr(prop.Pos, "ListElement: unknown scalar type %d", s.Type)
}

func literalKind(v Literal) string {
	if s, ok := v.(Scalar); ok {
		switch s.Type {
		case StringScalar:
			return "string"
		case NumberScalar:
			return "number"
		case BooleanScalar:
			return "boolean"
		case ScriptScalar:
			return "script"
		}
	}
	return fmt.Sprintf("%T", v)
}

// DefinesEmptyList reports whether a script is "[", whitespace, "]".
func DefinesEmptyList(s string) bool {
	if len(s) < 2 || !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return false
	}
	return strings.IndexFunc(s[1:len(s)-1], func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

func structErr(pos Pos, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if pos.IsValid() {
		return fmt.Errorf("%w: %s: %s", ErrStructure, pos, msg)
	}
	return fmt.Errorf("%w: %s", ErrStructure, msg)
}
