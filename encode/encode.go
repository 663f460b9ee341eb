package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"

	"github.com/signadot/listmodel/format"
	"github.com/signadot/listmodel/model"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format
	colors *Colors
}

// Encode writes the tree under n. In YAML and JSON, n is taken as the root
// of a list and its positional values are written as the items.
func Encode(n *model.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsText() {
		if n == nil {
			return nil
		}
		return encodeText(n, w, es)
	}
	if !es.format.IsItems() {
		return fmt.Errorf("%w: unknown format %d", ErrEncoding, es.format)
	}
	items := model.Items(n)
	switch es.format {
	case format.YAMLFormat:
		return encodeYAML(items, w, es)
	case format.JSONFormat:
		return encodeJSON(items, w, es)
	case format.CBORFormat:
		return encodeCBOR(items, w)
	}
	return fmt.Errorf("%w: unknown format %s", ErrEncoding, es.format)
}

// EncodeModel writes the items of m.
func EncodeModel(m *model.Model, w io.Writer, opts ...EncodeOption) error {
	return Encode(m.Root(), w, opts...)
}

func encodeText(n *model.Node, w io.Writer, es *EncState) error {
	for i, v := range n.Values {
		idx := es.color(model.NodeKind, IndexColor, "["+strconv.Itoa(i)+"]")
		if v.Kind() != model.NodeKind {
			if err := writeLine(w, es, idx+" "+scalar(v, es)); err != nil {
				return err
			}
			continue
		}
		c := v.AsNode()
		if len(c.Values) == 0 && c.NumProperties() == 0 {
			if err := writeLine(w, es, idx+" "+es.color(model.NodeKind, SepColor, "{}")); err != nil {
				return err
			}
			continue
		}
		if err := writeLine(w, es, idx); err != nil {
			return err
		}
		if err := encodeChild(c, w, es); err != nil {
			return err
		}
	}
	for _, name := range n.PropertyNames() {
		c := n.Property(name)
		field := es.color(model.NodeKind, FieldColor, name) + es.color(model.NodeKind, SepColor, ":")
		switch {
		case c.IsArray:
			mark := "[" + strconv.Itoa(len(c.Values)) + "]"
			if err := writeLine(w, es, field+" "+es.color(model.NodeKind, ArrayColor, mark)); err != nil {
				return err
			}
			if len(c.Values) == 0 && c.NumProperties() == 0 {
				continue
			}
		case len(c.Values) == 1 && c.NumProperties() == 0 && c.Values[0].Kind() != model.NodeKind:
			if err := writeLine(w, es, field+" "+scalar(c.Values[0], es)); err != nil {
				return err
			}
			continue
		default:
			if err := writeLine(w, es, field); err != nil {
				return err
			}
		}
		if err := encodeChild(c, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeChild(n *model.Node, w io.Writer, es *EncState) error {
	es.depth++
	defer func() { es.depth-- }()
	return encodeText(n, w, es)
}

func scalar(v model.Value, es *EncState) string {
	var s string
	switch v.Kind() {
	case model.StringKind:
		s = strconv.Quote(v.AsString())
	case model.NumberKind:
		s = strconv.FormatFloat(v.AsNumber(), 'g', -1, 64)
	case model.BoolKind:
		s = strconv.FormatBool(v.AsBool())
	default:
		s = "~"
	}
	return es.color(v.Kind(), ValueColor, s)
}

func (es *EncState) color(k model.Kind, a ColorAttr, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Color(k, a, s)
}

func writeLine(w io.Writer, es *EncState, s string) error {
	return writeString(w, strings.Repeat(" ", es.depth*es.indent)+s+"\n")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func encodeYAML(items []any, w io.Writer, es *EncState) error {
	d, err := yaml.MarshalWithOptions(toYAML(items), yaml.Indent(es.indent), yaml.IndentSequence(true))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if es.colors == nil {
		_, err = w.Write(d)
		return err
	}
	return writeString(w, colorYAML(string(d), es.colors)+"\n")
}

// toYAML turns ordered objects into yaml.MapSlice so that property order
// survives marshaling.
func toYAML(v any) any {
	switch x := v.(type) {
	case model.Object:
		res := make(yaml.MapSlice, len(x))
		for i, f := range x {
			res[i] = yaml.MapItem{Key: f.Name, Value: toYAML(f.Value)}
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = toYAML(x[i])
		}
		return res
	}
	return v
}

func colorYAML(src string, c *Colors) string {
	prop := func(k model.Kind, a ColorAttr) func() *printer.Property {
		return func() *printer.Property {
			pre, suf := c.escape(k, a)
			return &printer.Property{Prefix: pre, Suffix: suf}
		}
	}
	p := printer.Printer{
		MapKey: prop(model.NodeKind, FieldColor),
		String: prop(model.StringKind, ValueColor),
		Number: prop(model.NumberKind, ValueColor),
		Bool:   prop(model.BoolKind, ValueColor),
	}
	return p.PrintTokens(lexer.Tokenize(src))
}

func encodeJSON(items []any, w io.Writer, es *EncState) error {
	d, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	buf := &bytes.Buffer{}
	if err := json.Indent(buf, d, "", strings.Repeat(" ", es.indent)); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("encode: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// encodeCBOR writes items in canonical CBOR, where object keys are sorted.
func encodeCBOR(items []any, w io.Writer) error {
	d, err := cborEncMode.Marshal(toMaps(items))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

func toMaps(v any) any {
	switch x := v.(type) {
	case model.Object:
		res := make(map[string]any, len(x))
		for _, f := range x {
			res[f.Name] = toMaps(f.Value)
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = toMaps(x[i])
		}
		return res
	}
	return v
}
