package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/listmodel/encode"
	"github.com/signadot/listmodel/model"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (op Op) prefix() string {
	switch op {
	case Insert:
		return "+ "
	case Delete:
		return "- "
	}
	return "  "
}

type Line struct {
	Op   Op
	Text string
}

// Diff is a line diff, in order, of two texts.
type Diff []Line

func (d Diff) Equal() bool {
	for i := range d {
		if d[i].Op != Equal {
			return false
		}
	}
	return true
}

// Stats returns the number of inserted and deleted lines.
func (d Diff) Stats() (ins, del int) {
	for i := range d {
		switch d[i].Op {
		case Insert:
			ins++
		case Delete:
			del++
		}
	}
	return
}

func (d Diff) String() string {
	return d.Format(nil)
}

// Format renders d with one line per entry. color, if not nil, is applied
// to each rendered line.
func (d Diff) Format(color func(Op, string) string) string {
	buf := &strings.Builder{}
	for i := range d {
		ln := d[i].Op.prefix() + d[i].Text
		if color != nil {
			ln = color(d[i].Op, ln)
		}
		buf.WriteString(ln)
		buf.WriteByte('\n')
	}
	return buf.String()
}

// Lines diffs from and to line by line.
func Lines(from, to string) Diff {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res Diff
	for i := range diffs {
		op := Equal
		switch diffs[i].Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, ln := range splitLines(diffs[i].Text) {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Trees diffs the text dumps of two trees.
func Trees(from, to *model.Node) Diff {
	return Lines(dump(from), dump(to))
}

func dump(n *model.Node) string {
	s := encode.MustString(n)
	if s == "" {
		return s
	}
	return s + "\n"
}
