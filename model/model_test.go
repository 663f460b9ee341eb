package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func named(name string) Object {
	return Object{{Name: "name", Value: name}}
}

func newItems(t *testing.T, n int) (*Model, *Recorder) {
	t.Helper()
	m := New()
	for i := range n {
		if err := m.Append(named(fmt.Sprintf("X%d", i))); err != nil {
			t.Fatal(err)
		}
	}
	rec := &Recorder{}
	m.Observe(rec)
	return m, rec
}

func names(m *Model) []string {
	res := make([]string, m.Count())
	for i := range res {
		res[i], _ = m.Get(i).Value("name").(string)
	}
	return res
}

func TestAppendGrowth(t *testing.T) {
	m := New()
	rec := &Recorder{}
	m.Observe(rec)
	for i := range 4 {
		if err := m.Append(named("x")); err != nil {
			t.Fatal(err)
		}
		want := []Event{Inserted(i, 1), CountChanged(i + 1)}
		if diff := cmp.Diff(want, rec.Take()); diff != "" {
			t.Errorf("append %d events (-want +got):\n%s", i, diff)
		}
	}
	if m.Count() != 4 {
		t.Errorf("count = %d, want 4", m.Count())
	}
}

func TestAppendTypeError(t *testing.T) {
	tests := []struct {
		name  string
		props any
	}{
		{"nil", nil},
		{"array", []any{map[string]any{"a": 1}}},
		{"object list", []Object{named("x")}},
		{"string", "x"},
		{"number", 3.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, rec := newItems(t, 1)
			for _, err := range []error{m.Append(tt.props), m.Insert(0, tt.props), m.Set(0, tt.props)} {
				if !errors.Is(err, ErrType) {
					t.Errorf("got %v, want ErrType", err)
				}
			}
			if m.Count() != 1 || len(rec.Events) != 0 {
				t.Errorf("count %d, events %v: want no change", m.Count(), rec.Events)
			}
		})
	}
}

func TestAppendNestedTypeError(t *testing.T) {
	m, rec := newItems(t, 0)
	err := m.Append(Object{{Name: "ok", Value: 1}, {Name: "bad", Value: struct{}{}}})
	if !errors.Is(err, ErrType) {
		t.Fatalf("got %v, want ErrType", err)
	}
	if m.Count() != 0 || len(rec.Events) != 0 {
		t.Errorf("model changed on failed append")
	}
}

func TestInsert(t *testing.T) {
	m, rec := newItems(t, 3)
	if err := m.Insert(1, named("new")); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"X0", "new", "X1", "X2"}, names(m)); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
	if err := m.Insert(4, named("end")); err != nil {
		t.Fatal(err)
	}
	want := []Event{Inserted(1, 1), CountChanged(4), Inserted(4, 1), CountChanged(5)}
	if diff := cmp.Diff(want, rec.Take()); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
	for _, i := range []int{-1, 6} {
		if err := m.Insert(i, named("bad")); !errors.Is(err, ErrRange) {
			t.Errorf("insert(%d): got %v, want ErrRange", i, err)
		}
	}
	if len(rec.Events) != 0 || m.Count() != 5 {
		t.Errorf("failed insert changed the model")
	}
}

func TestInsertIntoEmpty(t *testing.T) {
	m := New()
	if err := m.Insert(0, named("a")); err != nil {
		t.Fatal(err)
	}
	if m.Count() != 1 {
		t.Errorf("count = %d, want 1", m.Count())
	}
}

func TestRemoveShift(t *testing.T) {
	m, rec := newItems(t, 4)
	if err := m.Remove(1); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"X0", "X2", "X3"}, names(m)); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Event{Removed(1, 1), CountChanged(3)}, rec.Take()); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
	for _, i := range []int{-1, 3, 10} {
		if err := m.Remove(i); !errors.Is(err, ErrRange) {
			t.Errorf("remove(%d): got %v, want ErrRange", i, err)
		}
	}
	if m.Count() != 3 || len(rec.Events) != 0 {
		t.Errorf("failed remove changed the model")
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name        string
		from, to, n int
		want        []string
	}{
		{"block forward", 0, 3, 2, []string{"X2", "X0", "X1", "X3", "X4"}},
		{"block backward", 3, 0, 2, []string{"X3", "X4", "X0", "X1", "X2"}},
		{"overlapping backward", 2, 1, 2, []string{"X0", "X2", "X3", "X1", "X4"}},
		{"single forward", 1, 3, 1, []string{"X0", "X2", "X1", "X3", "X4"}},
		{"single backward", 4, 1, 1, []string{"X0", "X4", "X1", "X2", "X3"}},
		{"overlapping forward", 0, 1, 2, []string{"X2", "X0", "X1", "X3", "X4"}},
		{"overlapping forward inner", 1, 2, 2, []string{"X0", "X3", "X1", "X2", "X4"}},
		{"to end", 0, 5, 0, []string{"X0", "X1", "X2", "X3", "X4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, rec := newItems(t, 5)
			if err := m.Move(tt.from, tt.to, tt.n); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, names(m)); diff != "" {
				t.Errorf("items (-want +got):\n%s", diff)
			}
			var want []Event
			if tt.n != 0 {
				want = []Event{Moved(tt.from, tt.to, tt.n)}
			}
			if diff := cmp.Diff(want, rec.Events); diff != "" {
				t.Errorf("events (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMoveNotInverse(t *testing.T) {
	m, _ := newItems(t, 5)
	if err := m.Move(0, 3, 2); err != nil {
		t.Fatal(err)
	}
	if err := m.Move(3, 0, 2); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"X3", "X4", "X2", "X0", "X1"}, names(m)); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
}

func TestMoveNoop(t *testing.T) {
	m, rec := newItems(t, 3)
	for _, args := range [][3]int{{1, 1, 2}, {0, 2, 0}} {
		if err := m.Move(args[0], args[1], args[2]); err != nil {
			t.Errorf("move%v: %v", args, err)
		}
	}
	if len(rec.Events) != 0 {
		t.Errorf("no-op moves emitted %v", rec.Events)
	}
}

func TestMoveRange(t *testing.T) {
	m, rec := newItems(t, 5)
	for _, args := range [][3]int{{4, 0, 2}, {0, 4, 2}, {-1, 2, 1}, {1, -1, 1}, {2, 1, -1}} {
		if err := m.Move(args[0], args[1], args[2]); !errors.Is(err, ErrRange) {
			t.Errorf("move%v: got %v, want ErrRange", args, err)
		}
	}
	if len(rec.Events) != 0 {
		t.Errorf("failed moves emitted %v", rec.Events)
	}
	if diff := cmp.Diff([]string{"X0", "X1", "X2", "X3", "X4"}, names(m)); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
}

func TestSetMerge(t *testing.T) {
	m := New()
	if err := m.Append(Object{{Name: "a", Value: 0}, {Name: "b", Value: 2}}); err != nil {
		t.Fatal(err)
	}
	rec := &Recorder{}
	m.Observe(rec)
	if err := m.Set(0, map[string]any{"a": 1}); err != nil {
		t.Fatal(err)
	}
	got := m.Get(0).Map()
	if diff := cmp.Diff(map[string]any{"a": 1.0, "b": 2.0}, got); diff != "" {
		t.Errorf("item (-want +got):\n%s", diff)
	}
	roleA, _ := m.RoleID("a")
	if diff := cmp.Diff([]Event{Changed(0, 1, roleA)}, rec.Events); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestSetNewNameAndAppend(t *testing.T) {
	m, rec := newItems(t, 1)
	if err := m.Set(0, Object{{Name: "cost", Value: 1.5}, {Name: "name", Value: "Y"}}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"name", "cost"}, m.RoleNames()); diff != "" {
		t.Errorf("roles (-want +got):\n%s", diff)
	}
	if err := m.Set(1, named("Z")); err != nil {
		t.Fatal(err)
	}
	want := []Event{Changed(0, 1, 1, 0), Inserted(1, 1), CountChanged(2)}
	if diff := cmp.Diff(want, rec.Events); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
	if err := m.Set(3, named("bad")); !errors.Is(err, ErrRange) {
		t.Errorf("set(3): got %v, want ErrRange", err)
	}
}

func TestSetProperty(t *testing.T) {
	m, rec := newItems(t, 2)
	if diff := cmp.Diff([]int{0}, m.Roles()); diff != "" {
		t.Errorf("roles (-want +got):\n%s", diff)
	}
	if err := m.SetProperty(1, "cost", 4.9); err != nil {
		t.Fatal(err)
	}
	if got := m.RoleName(1); got != "cost" {
		t.Errorf("role 1 = %q, want cost", got)
	}
	if got := m.Data(1, 1); got != 4.9 {
		t.Errorf("data(1, cost) = %v, want 4.9", got)
	}
	if got := m.Data(0, 1); got != nil {
		t.Errorf("data(0, cost) = %v, want nil", got)
	}
	if diff := cmp.Diff([]Event{Changed(1, 1, 1)}, rec.Take()); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
	if err := m.SetProperty(2, "cost", 1); !errors.Is(err, ErrRange) {
		t.Errorf("got %v, want ErrRange", err)
	}
	if err := m.SetProperty(0, "cost", make(chan int)); !errors.Is(err, ErrType) {
		t.Errorf("got %v, want ErrType", err)
	}
	if len(rec.Events) != 0 {
		t.Errorf("failed setProperty emitted %v", rec.Events)
	}
}

func TestRolesNotRescanned(t *testing.T) {
	m := New()
	if err := m.Append(Object{{Name: "a", Value: 1}}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{0}, m.Roles()); diff != "" {
		t.Errorf("roles (-want +got):\n%s", diff)
	}
	if err := m.Append(Object{{Name: "b", Value: 1}}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{0}, m.Roles()); diff != "" {
		t.Errorf("roles after append (-want +got):\n%s", diff)
	}
	if got := m.RoleName(1); got != "" {
		t.Errorf("role 1 = %q, want none", got)
	}
	m.Clear()
	if err := m.Append(Object{{Name: "b", Value: 1}}); err != nil {
		t.Fatal(err)
	}
	if got := m.RoleName(0); got != "b" {
		t.Errorf("role 0 after clear = %q, want b", got)
	}
}

func TestRolesBeforeFirstAppend(t *testing.T) {
	m := New()
	if got := m.Roles(); len(got) != 0 {
		t.Fatalf("empty model roles = %v", got)
	}
	if err := m.Append(Object{{Name: "name", Value: "Apple"}}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"name"}, m.RoleNames()); diff != "" {
		t.Errorf("roles (-want +got):\n%s", diff)
	}
	if got := m.Data(0, 0); got != "Apple" {
		t.Errorf("data(0, 0) = %v, want Apple", got)
	}
}

func TestRolesAfterClearThenQuery(t *testing.T) {
	m, _ := newItems(t, 2)
	m.Clear()
	if got := m.Roles(); len(got) != 0 {
		t.Fatalf("cleared model roles = %v", got)
	}
	if err := m.Append(Object{{Name: "cost", Value: 2.45}}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"cost"}, m.RoleNames()); diff != "" {
		t.Errorf("roles (-want +got):\n%s", diff)
	}
	if got := m.Data(0, 0); got != 2.45 {
		t.Errorf("data(0, 0) = %v, want 2.45", got)
	}
}

func TestRolesStableAfterRemove(t *testing.T) {
	m := New()
	m.Append(Object{{Name: "a", Value: 1}})
	m.Append(Object{{Name: "b", Value: 1}})
	m.Roles()
	m.Remove(0)
	if diff := cmp.Diff([]string{"a", "b"}, m.RoleNames()); diff != "" {
		t.Errorf("roles (-want +got):\n%s", diff)
	}
}

func TestClear(t *testing.T) {
	m, rec := newItems(t, 2)
	v := m.Get(0)
	m.Clear()
	if m.Count() != 0 || m.Root() != nil {
		t.Errorf("clear left %d items", m.Count())
	}
	if v.Valid() {
		t.Errorf("view survived clear")
	}
	if diff := cmp.Diff([]Event{Removed(0, 2), CountChanged(0)}, rec.Events); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestObserveCancel(t *testing.T) {
	m := New()
	rec := &Recorder{}
	cancel := m.Observe(rec)
	m.Append(named("a"))
	cancel()
	m.Append(named("b"))
	if len(rec.Events) != 2 {
		t.Errorf("got %d events, want 2", len(rec.Events))
	}
}
