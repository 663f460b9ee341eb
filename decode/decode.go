// Package decode rebuilds a list model tree from a compiled program.
//
// The decoder is a small stack machine. It trusts its input: a program not
// produced by compile.Compile is an internal consistency fault and makes
// Decode panic.
package decode

import (
	"fmt"

	"github.com/signadot/listmodel/bytecode"
	"github.com/signadot/listmodel/debug"
	"github.com/signadot/listmodel/model"
)

// Decode runs p and returns the root of the resulting tree. The root's
// positional values are the declared items.
func Decode(p *bytecode.Program) *model.Node {
	root := model.NewNode()
	stack := []*model.Node{root}
	for i, in := range p.Instructions {
		top := stack[len(stack)-1]
		switch in.Op {
		case bytecode.OpPush:
			stack = append(stack, top.AppendNode())
			if in.ArrayContext() {
				top.IsArray = true
			}

		case bytecode.OpPop:
			if len(stack) == 1 {
				formatError(i, in, "pop of root")
			}
			stack = stack[:len(stack)-1]

		case bytecode.OpValue:
			switch tag := p.TagAt(in.Offset); tag {
			case bytecode.TagInvalid:
				top.IsArray = true
			case bytecode.TagBoolean:
				top.AppendValue(model.FromBool(p.BoolAt(in.Offset)))
			case bytecode.TagNumber:
				f, err := p.NumberAt(in.Offset)
				if err != nil {
					formatError(i, in, err.Error())
				}
				top.AppendValue(model.FromNumber(f))
			case bytecode.TagString:
				top.AppendValue(model.FromString(p.StringAt(in.Offset)))
			default:
				formatError(i, in, "unknown "+tag.String())
			}

		case bytecode.OpSet:
			stack = append(stack, top.NewProperty(p.NameAt(in.Offset)))

		default:
			formatError(i, in, "unknown opcode")
		}
		if debug.Decode() {
			debug.Logf("decode %04d %s depth %d\n", i, in, len(stack)-1)
		}
	}
	return root
}

// Bytes decodes an encoded program.
func Bytes(d []byte) (*model.Node, error) {
	p, err := bytecode.FromBytes(d)
	if err != nil {
		return nil, err
	}
	return Decode(p), nil
}

// Into decodes p and loads the result into m, replacing its items and
// resetting its roles.
func Into(m *model.Model, p *bytecode.Program) error {
	return m.Load(Decode(p))
}

func formatError(i int, in bytecode.Instruction, msg string) {
	panic(fmt.Sprintf("decode: format error at instruction %d (%s): %s", i, in, msg))
}
