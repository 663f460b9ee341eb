package script

import (
	"fmt"
	"math"

	"github.com/signadot/listmodel/debug"
	"github.com/signadot/listmodel/model"
)

// Result is the outcome of one step: the notifications it caused, the
// item read by a get step, and the error if the model rejected it.
type Result struct {
	Step   int
	Op     Op
	Events []model.Event
	Value  any
	Err    error
}

func (r *Result) String() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("%d %s: %v", r.Step, r.Op, r.Err)
	case r.Op == OpGet:
		return fmt.Sprintf("%d %s: %v", r.Step, r.Op, r.Value)
	}
	return fmt.Sprintf("%d %s: %v", r.Step, r.Op, r.Events)
}

// Run applies steps to m in order. The returned error is non-nil only when
// a step could not be evaluated; results up to that step are returned with
// it.
func Run(m *model.Model, steps []Step) ([]Result, error) {
	rec := &model.Recorder{}
	cancel := m.Observe(rec)
	defer cancel()

	res := make([]Result, 0, len(steps))
	for i := range steps {
		s := &steps[i]
		r := Result{Step: i, Op: s.Op}
		if err := runStep(m, s, &r); err != nil {
			rec.Take()
			return res, fmt.Errorf("%w: step %d (%s): %w", ErrScript, i, s.Op, err)
		}
		r.Events = rec.Take()
		if debug.Script() {
			debug.Logf("script %s\n", r.String())
		}
		res = append(res, r)
	}
	return res, nil
}

// runStep evaluates the arguments of s and applies it. Only evaluation
// errors are returned; mutation errors land in r.Err.
func runStep(m *model.Model, s *Step, r *Result) error {
	env := baseEnv(m)
	switch s.Op {
	case OpAppend:
		env["index"] = m.Count()
		item, err := expand(s.Item, env)
		if err != nil {
			return err
		}
		r.Err = m.Append(item)

	case OpInsert, OpSet:
		idx, err := index(s.Index, m, env)
		if err != nil {
			return err
		}
		item, err := expand(s.Item, env)
		if err != nil {
			return err
		}
		if s.Op == OpInsert {
			r.Err = m.Insert(idx, item)
		} else {
			r.Err = m.Set(idx, item)
		}

	case OpSetProperty:
		idx, err := index(s.Index, m, env)
		if err != nil {
			return err
		}
		v, err := expand(s.Value, env)
		if err != nil {
			return err
		}
		r.Err = m.SetProperty(idx, s.Name, v)

	case OpRemove:
		idx, err := index(s.Index, m, env)
		if err != nil {
			return err
		}
		r.Err = m.Remove(idx)

	case OpMove:
		var ints [3]int
		for i, v := range []any{s.From, s.To, s.Count} {
			x, err := expand(v, env)
			if err != nil {
				return err
			}
			if ints[i], err = toInt(x); err != nil {
				return err
			}
		}
		r.Err = m.Move(ints[0], ints[1], ints[2])

	case OpGet:
		idx, err := index(s.Index, m, env)
		if err != nil {
			return err
		}
		v := m.Get(idx)
		if v == nil {
			r.Err = fmt.Errorf("%w: get: index %d out of range", model.ErrRange, idx)
			return nil
		}
		r.Value = Resolve(v)

	case OpClear:
		m.Clear()

	default:
		return fmt.Errorf("unknown step %q", s.Op)
	}
	return nil
}

func baseEnv(m *model.Model) map[string]any {
	roles := m.RoleNames()
	names := make([]any, len(roles))
	for i := range roles {
		names[i] = roles[i]
	}
	return map[string]any{
		"count": m.Count(),
		"roles": names,
	}
}

// index evaluates an index argument and, if it names an item, adds that
// item's properties to env.
func index(v any, m *model.Model, env map[string]any) (int, error) {
	x, err := expand(v, env)
	if err != nil {
		return 0, err
	}
	idx, err := toInt(x)
	if err != nil {
		return 0, err
	}
	if idx >= 0 && idx < m.Count() {
		if obj, ok := m.Plain()[idx].(model.Object); ok {
			for _, f := range obj {
				env[f.Name] = envValue(f.Value)
			}
		}
	}
	env["index"] = idx
	return idx, nil
}

func toInt(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case uint64:
		if x > math.MaxInt {
			break
		}
		return int(x), nil
	case float64:
		if x == math.Trunc(x) {
			return int(x), nil
		}
	}
	return 0, fmt.Errorf("%v (%T) is not an integer", v, v)
}

// Resolve turns the resolved values of an object view into plain values:
// nested models become their items and nested views their properties.
func Resolve(v any) any {
	switch x := v.(type) {
	case *model.ObjectView:
		obj := x.Object()
		for i := range obj {
			obj[i].Value = Resolve(obj[i].Value)
		}
		return obj
	case *model.Model:
		return x.Plain()
	}
	return v
}
