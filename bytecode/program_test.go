package bytecode

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sample() *Program {
	p := &Program{}
	p.Emit(OpPush, 0, -1)
	p.Emit(OpSet, 0, p.AddName("name"))
	p.Emit(OpValue, 0, p.AddString("Apple"))
	p.Emit(OpPop, 0, -1)
	p.Emit(OpSet, 0, p.AddName("cost"))
	p.Emit(OpValue, 0, p.AddNumber(2.45))
	p.Emit(OpPop, 0, -1)
	p.Emit(OpSet, 0, p.AddName("ripe"))
	p.Emit(OpValue, 0, p.AddBool(false))
	p.Emit(OpPop, 0, -1)
	p.Emit(OpSet, 0, p.AddName("tags"))
	p.Emit(OpValue, 0, p.AddEmptyList())
	p.Emit(OpPop, 0, -1)
	p.Emit(OpPop, 0, -1)
	return p
}

func TestBytesRoundTrip(t *testing.T) {
	p := sample()
	d := p.Bytes()
	if len(d) != p.Size() {
		t.Fatalf("size %d, want %d", len(d), p.Size())
	}
	q, err := FromBytes(d)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(p, q); diff != "" {
		t.Errorf("program (-want +got):\n%s", diff)
	}
}

func TestLayout(t *testing.T) {
	p := &Program{}
	p.Emit(OpPush, FlagArrayContext, -1)
	p.Emit(OpValue, 0, p.AddString("a"))
	d := p.Bytes()
	want := []byte{
		24, 0, 0, 0, // data offset
		2, 0, 0, 0, // instruction count
		byte(OpPush), byte(FlagArrayContext), 0, 0, 0xff, 0xff, 0xff, 0xff,
		byte(OpValue), 0, 0, 0, 0, 0, 0, 0,
		byte(TagString), 'a', 0,
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("bytes (-want +got):\n%s", diff)
	}
}

func TestScalarAccess(t *testing.T) {
	p := &Program{}
	s := p.AddString("héllo")
	n := p.AddNumber(0.1)
	b := p.AddBool(true)
	e := p.AddEmptyList()
	if got := p.StringAt(s); got != "héllo" {
		t.Errorf("string = %q", got)
	}
	if got, err := p.NumberAt(n); err != nil || got != 0.1 {
		t.Errorf("number = %v, %v", got, err)
	}
	if !p.BoolAt(b) || p.TagAt(b) != TagBoolean {
		t.Errorf("bool at %d wrong", b)
	}
	if p.TagAt(e) != TagInvalid {
		t.Errorf("empty list tag = %s", p.TagAt(e))
	}
}

func TestFromBytesErrors(t *testing.T) {
	good := sample().Bytes()
	tests := []struct {
		name string
		d    []byte
	}{
		{"empty", nil},
		{"short header", good[:5]},
		{"truncated instructions", good[:20]},
		{"bad data offset", append([]byte{9, 0, 0, 0}, good[4:]...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromBytes(tt.d); !errors.Is(err, ErrFormat) {
				t.Errorf("got %v, want ErrFormat", err)
			}
		})
	}
}

func TestDisassemble(t *testing.T) {
	out := sample().Disassemble()
	for _, want := range []string{
		"0000  PUSH\n",
		`0001    SET 0	; "name"`,
		`0002      VALUE 5	; "Apple"`,
		"; 2.45",
		"; false",
		"; []",
		"0013  POP\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}
