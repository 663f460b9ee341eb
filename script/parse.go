package script

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/signadot/listmodel/model"
)

var ErrScript = errors.New("script error")

type Op string

const (
	OpAppend      Op = "append"
	OpInsert      Op = "insert"
	OpRemove      Op = "remove"
	OpMove        Op = "move"
	OpSet         Op = "set"
	OpSetProperty Op = "setProperty"
	OpClear       Op = "clear"
	OpGet         Op = "get"
)

// Step is one parsed script step. Which fields are used depends on Op.
type Step struct {
	Op    Op
	Index any
	From  any
	To    any
	Count any
	Name  string
	Item  any
	Value any
}

func ParseFile(path string) ([]Step, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	steps, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return steps, nil
}

func Parse(d []byte) ([]Step, error) {
	var raw []any
	if err := yaml.UnmarshalWithOptions(d, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScript, err)
	}
	res := make([]Step, 0, len(raw))
	for i, r := range raw {
		s, err := parseStep(r)
		if err != nil {
			return nil, fmt.Errorf("%w: step %d: %w", ErrScript, i, err)
		}
		res = append(res, s)
	}
	return res, nil
}

func parseStep(r any) (Step, error) {
	ms, ok := r.(yaml.MapSlice)
	if !ok || len(ms) != 1 {
		return Step{}, errors.New("step must be a mapping with one key")
	}
	name, ok := ms[0].Key.(string)
	if !ok {
		return Step{}, fmt.Errorf("bad step key %v", ms[0].Key)
	}
	s := Step{Op: Op(name)}
	arg := Plain(ms[0].Value)
	switch s.Op {
	case OpAppend:
		s.Item = arg
	case OpRemove, OpGet:
		s.Index = arg
	case OpClear:
		if arg != nil {
			return s, errors.New("clear takes no argument")
		}
	case OpInsert, OpSet:
		fields, err := args(s.Op, arg, "index", "item")
		if err != nil {
			return s, err
		}
		s.Index, s.Item = fields["index"], fields["item"]
	case OpMove:
		fields, err := args(s.Op, arg, "from", "to", "count")
		if err != nil {
			return s, err
		}
		s.From, s.To, s.Count = fields["from"], fields["to"], fields["count"]
	case OpSetProperty:
		fields, err := args(s.Op, arg, "index", "name", "value")
		if err != nil {
			return s, err
		}
		s.Index, s.Value = fields["index"], fields["value"]
		if s.Name, ok = fields["name"].(string); !ok {
			return s, errors.New("setProperty name must be a string")
		}
	default:
		return s, fmt.Errorf("unknown step %q", name)
	}
	return s, nil
}

// args checks that arg is an object carrying exactly the given names.
func args(op Op, arg any, names ...string) (map[string]any, error) {
	obj, ok := arg.(model.Object)
	if !ok {
		return nil, fmt.Errorf("%s takes a mapping", op)
	}
	res := make(map[string]any, len(obj))
	for _, f := range obj {
		res[f.Name] = f.Value
	}
	for _, name := range names {
		if _, ok := res[name]; !ok {
			return nil, fmt.Errorf("%s: missing %q", op, name)
		}
	}
	if len(res) != len(names) {
		return nil, fmt.Errorf("%s: unexpected arguments, want %v", op, names)
	}
	return res, nil
}

// Plain turns values read with yaml.UseOrderedMap into mutation API
// arguments: ordered mappings become model.Object and integers become
// int, recursively.
func Plain(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := make(model.Object, 0, len(x))
		for _, item := range x {
			res = append(res, model.Field{Name: fmt.Sprint(item.Key), Value: Plain(item.Value)})
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = Plain(x[i])
		}
		return res
	case uint64:
		if x <= math.MaxInt {
			return int(x)
		}
	case int64:
		return int(x)
	}
	return v
}
