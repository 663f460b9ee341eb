package script

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/listmodel/model"
)

func fruits(t *testing.T) *model.Model {
	t.Helper()
	m := model.New()
	for _, item := range []model.Object{
		{{Name: "name", Value: "Apple"}, {Name: "cost", Value: 2.45}},
		{{Name: "name", Value: "Orange"}, {Name: "cost", Value: 3.25}},
	} {
		if err := m.Append(item); err != nil {
			t.Fatal(err)
		}
	}
	return m
}

func TestParse(t *testing.T) {
	src := `
- append: {name: Banana, cost: 1.95}
- insert: {index: 0, item: {name: Cherry}}
- setProperty: {index: 0, name: cost, value: ".[cost * 2]"}
- move: {from: 0, to: 2, count: 1}
- remove: 1
- clear: ~
`
	steps, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	want := []Step{
		{Op: OpAppend, Item: model.Object{{Name: "name", Value: "Banana"}, {Name: "cost", Value: 1.95}}},
		{Op: OpInsert, Index: 0, Item: model.Object{{Name: "name", Value: "Cherry"}}},
		{Op: OpSetProperty, Index: 0, Name: "cost", Value: ".[cost * 2]"},
		{Op: OpMove, From: 0, To: 2, Count: 1},
		{Op: OpRemove, Index: 1},
		{Op: OpClear},
	}
	if diff := cmp.Diff(want, steps); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not a sequence", "append: {}\n"},
		{"two keys", "- {remove: 0, get: 0}\n"},
		{"unknown op", "- frobnicate: 1\n"},
		{"missing argument", "- move: {from: 0, to: 1}\n"},
		{"extra argument", "- insert: {index: 0, item: {}, at: 3}\n"},
		{"clear argument", "- clear: 3\n"},
		{"name type", "- setProperty: {index: 0, name: 3, value: 1}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.in)); !errors.Is(err, ErrScript) {
				t.Errorf("got %v, want ErrScript", err)
			}
		})
	}
}

func TestRun(t *testing.T) {
	m := fruits(t)
	steps := []Step{
		{Op: OpAppend, Item: model.Object{{Name: "name", Value: "Banana"}, {Name: "cost", Value: ".[count * 1.0]"}}},
		{Op: OpSetProperty, Index: 0, Name: "cost", Value: ".[cost * 2]"},
		{Op: OpMove, From: 0, To: 2, Count: 1},
		{Op: OpRemove, Index: 7},
		{Op: OpGet, Index: ".[count - 2]"},
	}
	res, err := Run(m, steps)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != len(steps) {
		t.Fatalf("%d results", len(res))
	}
	wantEvents := [][]model.Event{
		{model.Inserted(2, 1), model.CountChanged(3)},
		{model.Changed(0, 1, 1)},
		{model.Moved(0, 2, 1)},
		nil,
		nil,
	}
	for i := range wantEvents {
		if diff := cmp.Diff(wantEvents[i], res[i].Events); diff != "" {
			t.Errorf("step %d events (-want +got):\n%s", i, diff)
		}
	}
	if !errors.Is(res[3].Err, model.ErrRange) {
		t.Errorf("remove: got %v, want ErrRange", res[3].Err)
	}
	want := model.Object{{Name: "name", Value: "Apple"}, {Name: "cost", Value: 4.9}}
	if diff := cmp.Diff(want, res[4].Value); diff != "" {
		t.Errorf("get (-want +got):\n%s", diff)
	}
	if got := m.Get(2).Value("cost"); got != 2.0 {
		t.Errorf("banana cost = %v, want 2", got)
	}
}

func TestRunEvalErrorStops(t *testing.T) {
	m := fruits(t)
	steps := []Step{
		{Op: OpRemove, Index: 0},
		{Op: OpSetProperty, Index: 0, Name: "cost", Value: ".[nosuch + 1]"},
		{Op: OpClear},
	}
	res, err := Run(m, steps)
	if !errors.Is(err, ErrScript) {
		t.Fatalf("got %v, want ErrScript", err)
	}
	if len(res) != 1 {
		t.Errorf("%d results before the failing step, want 1", len(res))
	}
	if m.Count() != 1 {
		t.Errorf("count %d, want 1", m.Count())
	}
}

func TestRunIndexType(t *testing.T) {
	_, err := Run(fruits(t), []Step{{Op: OpRemove, Index: 0.5}})
	if !errors.Is(err, ErrScript) {
		t.Errorf("got %v, want ErrScript", err)
	}
}

func TestResolveNested(t *testing.T) {
	m := model.New()
	m.Append(model.Object{
		{Name: "attributes", Value: []any{model.Object{{Name: "description", Value: "Core"}}}},
		{Name: "origin", Value: model.Object{{Name: "country", Value: "ES"}}},
	})
	got := Resolve(m.Get(0))
	want := model.Object{
		{Name: "attributes", Value: []any{model.Object{{Name: "description", Value: "Core"}}}},
		{Name: "origin", Value: model.Object{{Name: "country", Value: "ES"}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestGetRaw(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{".[cost]", "cost"},
		{".[ a + b ]", "a + b"},
		{"cost", ""},
		{".[]", ""},
		{"[x]", ""},
	}
	for _, tt := range tests {
		if got := GetRaw(tt.in); got != tt.want {
			t.Errorf("GetRaw(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
