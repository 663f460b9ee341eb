package bytecode

import "fmt"

// Opcode is a list model instruction.
type Opcode uint8

const (
	OpPush  Opcode = iota // open a node as the next positional value of the top
	OpPop                 // close the top node
	OpValue               // append the scalar at Offset to the top
	OpSet                 // open a node as the property named at Offset of the top
)

var opcodeNames = map[Opcode]string{
	OpPush:  "PUSH",
	OpPop:   "POP",
	OpValue: "VALUE",
	OpSet:   "SET",
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(0x%02X)", uint8(op))
}

// HasOperand reports whether the instruction's Offset refers to the data
// blob.
func (op Opcode) HasOperand() bool {
	return op == OpValue || op == OpSet
}

// Flags qualify an instruction.
type Flags uint8

const (
	// FlagArrayContext on a PUSH marks the parent node array-shaped: the
	// pushed element is a value of a named array property.
	FlagArrayContext Flags = 1 << iota
)

// Tag is the type of a scalar in the data blob.
type Tag uint8

const (
	TagInvalid Tag = iota // empty list
	TagBoolean
	TagNumber
	TagString
)

func (t Tag) String() string {
	switch t {
	case TagInvalid:
		return "invalid"
	case TagBoolean:
		return "boolean"
	case TagNumber:
		return "number"
	case TagString:
		return "string"
	}
	return fmt.Sprintf("tag(%d)", uint8(t))
}

// Instruction is one fixed size record of the instruction stream.
type Instruction struct {
	Op     Opcode
	Flags  Flags
	Offset int32
}

func (in Instruction) ArrayContext() bool {
	return in.Flags&FlagArrayContext != 0
}

func (in Instruction) String() string {
	switch {
	case in.Op.HasOperand():
		return fmt.Sprintf("%s %d", in.Op, in.Offset)
	case in.ArrayContext():
		return fmt.Sprintf("%s [array]", in.Op)
	}
	return in.Op.String()
}
