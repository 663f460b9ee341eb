package bytecode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	HeaderSize      = 8
	InstructionSize = 8
)

var ErrFormat = errors.New("bytecode format error")

// Program is a compiled list declaration: an instruction stream and the
// data blob its offsets point into.
type Program struct {
	Instructions []Instruction
	Data         []byte
}

// Emit appends an instruction and returns its index.
func (p *Program) Emit(op Opcode, flags Flags, offset int32) int {
	p.Instructions = append(p.Instructions, Instruction{Op: op, Flags: flags, Offset: offset})
	return len(p.Instructions) - 1
}

// AddName stores a property name and returns its data offset. Names are
// zero terminated, so name must not contain NUL.
func (p *Program) AddName(name string) int32 {
	off := int32(len(p.Data))
	p.Data = append(p.Data, name...)
	p.Data = append(p.Data, 0)
	return off
}

// AddScalar stores a tagged scalar payload and returns its data offset.
func (p *Program) AddScalar(tag Tag, payload []byte) int32 {
	off := int32(len(p.Data))
	p.Data = append(p.Data, byte(tag))
	p.Data = append(p.Data, payload...)
	p.Data = append(p.Data, 0)
	return off
}

// AddString stores a string scalar. Like names, s is read back up to its
// first NUL.
func (p *Program) AddString(s string) int32 {
	return p.AddScalar(TagString, []byte(s))
}

func (p *Program) AddNumber(f float64) int32 {
	return p.AddScalar(TagNumber, strconv.AppendFloat(nil, f, 'g', -1, 64))
}

func (p *Program) AddBool(b bool) int32 {
	v := byte(0)
	if b {
		v = 1
	}
	return p.AddScalar(TagBoolean, []byte{v})
}

func (p *Program) AddEmptyList() int32 {
	return p.AddScalar(TagInvalid, nil)
}

// NameAt reads the zero terminated name at off.
func (p *Program) NameAt(off int32) string {
	d := p.Data[off:]
	end := 0
	for end < len(d) && d[end] != 0 {
		end++
	}
	return string(d[:end])
}

// TagAt returns the scalar tag at off.
func (p *Program) TagAt(off int32) Tag {
	return Tag(p.Data[off])
}

func (p *Program) BoolAt(off int32) bool {
	return p.Data[off+1] != 0
}

func (p *Program) StringAt(off int32) string {
	return p.NameAt(off + 1)
}

func (p *Program) NumberAt(off int32) (float64, error) {
	return strconv.ParseFloat(p.NameAt(off+1), 64)
}

// Size is the length of the encoded buffer.
func (p *Program) Size() int {
	return HeaderSize + InstructionSize*len(p.Instructions) + len(p.Data)
}

// Bytes encodes p: a header {dataOffset u32, instructionCount u32}, the
// instruction records {opcode u8, flags u8, pad u16, offset i32} and the
// data blob, all little endian.
func (p *Program) Bytes() []byte {
	dataOffset := HeaderSize + InstructionSize*len(p.Instructions)
	buf := make([]byte, 0, p.Size())
	buf = binary.LittleEndian.AppendUint32(buf, uint32(dataOffset))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(p.Instructions)))
	for _, in := range p.Instructions {
		buf = append(buf, byte(in.Op), byte(in.Flags), 0, 0)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(in.Offset))
	}
	return append(buf, p.Data...)
}

func (p *Program) MarshalBinary() ([]byte, error) {
	return p.Bytes(), nil
}

func (p *Program) UnmarshalBinary(d []byte) error {
	q, err := FromBytes(d)
	if err != nil {
		return err
	}
	*p = *q
	return nil
}

// FromBytes decodes a buffer produced by Bytes. Only the framing is
// checked; instruction contents are trusted.
func FromBytes(d []byte) (*Program, error) {
	if len(d) < HeaderSize {
		return nil, fmt.Errorf("%w: short header (%d bytes)", ErrFormat, len(d))
	}
	dataOffset := binary.LittleEndian.Uint32(d[0:4])
	count := binary.LittleEndian.Uint32(d[4:8])
	if uint64(count) > math.MaxInt32/InstructionSize {
		return nil, fmt.Errorf("%w: instruction count %d", ErrFormat, count)
	}
	want := uint32(HeaderSize + InstructionSize*int(count))
	if dataOffset != want || int(dataOffset) > len(d) {
		return nil, fmt.Errorf("%w: data offset %d (want %d, size %d)", ErrFormat, dataOffset, want, len(d))
	}
	p := &Program{
		Instructions: make([]Instruction, count),
		Data:         d[dataOffset:],
	}
	pos := HeaderSize
	for i := range p.Instructions {
		p.Instructions[i] = Instruction{
			Op:     Opcode(d[pos]),
			Flags:  Flags(d[pos+1]),
			Offset: int32(binary.LittleEndian.Uint32(d[pos+4:])),
		}
		pos += InstructionSize
	}
	return p, nil
}

// Disassemble returns a human-readable listing of p.
func (p *Program) Disassemble() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "; %d instructions, %d data bytes\n", len(p.Instructions), len(p.Data))
	depth := 0
	for i, in := range p.Instructions {
		if in.Op == OpPop && depth > 0 {
			depth--
		}
		fmt.Fprintf(&sb, "%04d  %s%s", i, strings.Repeat("  ", depth), in)
		switch in.Op {
		case OpSet:
			fmt.Fprintf(&sb, "\t; %q", p.NameAt(in.Offset))
		case OpValue:
			sb.WriteString("\t; ")
			sb.WriteString(p.describeScalar(in.Offset))
		}
		sb.WriteByte('\n')
		if in.Op == OpPush || in.Op == OpSet {
			depth++
		}
	}
	return sb.String()
}

func (p *Program) describeScalar(off int32) string {
	if off < 0 || int(off) >= len(p.Data) {
		return "<bad offset>"
	}
	switch tag := p.TagAt(off); tag {
	case TagInvalid:
		return "[]"
	case TagBoolean:
		return strconv.FormatBool(p.BoolAt(off))
	case TagNumber:
		return p.NameAt(off + 1)
	case TagString:
		return strconv.Quote(p.StringAt(off))
	default:
		return tag.String()
	}
}
