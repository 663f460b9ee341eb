package model

import (
	"fmt"
	"slices"

	"github.com/signadot/listmodel/debug"
)

// Model is a list of items, each an object-shaped node, with a role
// registry and change notifications. The zero value is an empty model.
//
// A Model either owns its root or borrows it: models returned as values of
// array-shaped properties borrow the property node and are torn down with
// it.
type Model struct {
	root      *Node
	borrowed  bool
	roles     registry
	observers []Observer
}

func New() *Model {
	return &Model{}
}

// Observe registers o for notifications and returns a function removing it.
func (m *Model) Observe(o Observer) func() {
	m.observers = append(m.observers, o)
	return func() {
		i := slices.Index(m.observers, o)
		if i >= 0 {
			m.observers = slices.Delete(m.observers, i, i+1)
		}
	}
}

// Root returns the root node, nil before the first mutation.
func (m *Model) Root() *Node {
	return m.root
}

// Valid reports whether the model still has a tree to work on. Only
// borrowed models become invalid, when their node is destroyed.
func (m *Model) Valid() bool {
	return !m.borrowed || m.root != nil
}

func (m *Model) Count() int {
	if m.root == nil {
		return 0
	}
	return len(m.root.Values)
}

// Roles returns the role ids, scanning the items' property names on first
// use.
func (m *Model) Roles() []int {
	m.roles.scan(m.root)
	res := make([]int, len(m.roles.names))
	for i := range res {
		res[i] = i
	}
	return res
}

func (m *Model) RoleName(id int) string {
	m.roles.scan(m.root)
	if id < 0 || id >= len(m.roles.names) {
		return ""
	}
	return m.roles.names[id]
}

// RoleNames returns the role names indexed by id.
func (m *Model) RoleNames() []string {
	m.roles.scan(m.root)
	return slices.Clone(m.roles.names)
}

// RoleID returns the id of a role name.
func (m *Model) RoleID(name string) (int, bool) {
	m.roles.scan(m.root)
	return m.roles.id(name)
}

func (m *Model) item(index int) *Node {
	if index < 0 || index >= m.Count() {
		return nil
	}
	return m.root.Values[index].node
}

// Get returns the object view of the item at index, or nil if index is out
// of range.
func (m *Model) Get(index int) *ObjectView {
	n := m.item(index)
	if n == nil {
		m.report(fmt.Errorf("%w: get: index %d out of range", ErrRange, index))
		return nil
	}
	return n.objectView(m)
}

// Data returns the resolved value of role for the item at index, nil if
// either is unknown.
func (m *Model) Data(index, role int) any {
	m.roles.scan(m.root)
	n := m.item(index)
	if n == nil || role < 0 || role >= len(m.roles.names) {
		return nil
	}
	return m.valueForNode(n.Property(m.roles.names[role]))
}

// DataRoles is Data for several roles at once. Roles the item does not
// have are omitted.
func (m *Model) DataRoles(index int, roles []int) map[int]any {
	m.roles.scan(m.root)
	res := map[int]any{}
	n := m.item(index)
	if n == nil {
		return res
	}
	for _, role := range roles {
		if role < 0 || role >= len(m.roles.names) {
			continue
		}
		p := n.Property(m.roles.names[role])
		if p == nil {
			continue
		}
		res[role] = m.valueForNode(p)
	}
	return res
}

// Plain returns the items as plain Go values, see Plain.
func (m *Model) Plain() []any {
	if m.root == nil {
		return []any{}
	}
	return plainItems(m.root)
}

func (m *Model) ensureRoot() error {
	if m.root != nil {
		return nil
	}
	if m.borrowed {
		return ErrDetached
	}
	m.root = NewNode()
	return nil
}

func (m *Model) Append(props any) error {
	fields, err := objectFields(props)
	if err != nil {
		return m.report(fmt.Errorf("append: %w", err))
	}
	n, err := buildObject(fields)
	if err != nil {
		return m.report(fmt.Errorf("append: %w", err))
	}
	if err := m.ensureRoot(); err != nil {
		return m.report(fmt.Errorf("append: %w", err))
	}
	m.root.AppendValue(FromNode(n))
	count := m.Count()
	m.emit(Inserted(count-1, 1), CountChanged(count))
	return nil
}

func (m *Model) Insert(index int, props any) error {
	fields, err := objectFields(props)
	if err != nil {
		return m.report(fmt.Errorf("insert: %w", err))
	}
	count := m.Count()
	if index < 0 || index > count {
		return m.report(fmt.Errorf("%w: insert: index %d out of range", ErrRange, index))
	}
	if index == count {
		return m.Append(fields)
	}
	n, err := buildObject(fields)
	if err != nil {
		return m.report(fmt.Errorf("insert: %w", err))
	}
	m.root.Values = slices.Insert(m.root.Values, index, FromNode(n))
	m.emit(Inserted(index, 1), CountChanged(count+1))
	return nil
}

func (m *Model) Remove(index int) error {
	n := m.item(index)
	if n == nil {
		return m.report(fmt.Errorf("%w: remove: index %d out of range", ErrRange, index))
	}
	m.root.Values = slices.Delete(m.root.Values, index, index+1)
	n.destroy()
	m.emit(Removed(index, 1), CountChanged(m.Count()))
	return nil
}

// Move relocates the block of n items starting at from. A forward move
// (from < to) places the block immediately before the item originally at
// to, or at to when the two ranges overlap; a backward move places it at
// to. Internally a backward move is turned into the equivalent forward
// move of the items it jumps over, so only a single left rotation is ever
// performed. The event carries the arguments as given.
func (m *Model) Move(from, to, n int) error {
	if n == 0 || from == to {
		return nil
	}
	count := m.Count()
	if from+n > count || to+n > count || from < 0 || to < 0 || n < 0 {
		return m.report(fmt.Errorf("%w: move: out of range", ErrRange))
	}
	origFrom, origTo, origN := from, to, n
	if from > to {
		from, to, n = to, from+n, from-to
	}
	end := to
	if to < from+n {
		end = to + n
	}
	rotateLeft(m.root.Values[from:end], n)
	m.emit(Moved(origFrom, origTo, origN))
	return nil
}

func rotateLeft(vs []Value, k int) {
	if k <= 0 || k >= len(vs) {
		return
	}
	slices.Reverse(vs[:k])
	slices.Reverse(vs[k:])
	slices.Reverse(vs)
}

// Set merges props into the item at index. Properties named in props are
// replaced, others are kept. index == Count() appends.
func (m *Model) Set(index int, props any) error {
	fields, err := objectFields(props)
	if err != nil {
		return m.report(fmt.Errorf("set: %w", err))
	}
	count := m.Count()
	if index < 0 || index > count {
		return m.report(fmt.Errorf("%w: set: index %d out of range", ErrRange, index))
	}
	if index == count {
		return m.Append(fields)
	}
	built := make([]*Node, len(fields))
	for i, f := range fields {
		c, err := buildProperty(f.Value)
		if err != nil {
			return m.report(fmt.Errorf("set: property %q: %w", f.Name, err))
		}
		built[i] = c
	}
	n := m.root.Values[index].node
	m.roles.scan(m.root)
	roles := make([]int, len(fields))
	for i, f := range fields {
		roles[i] = m.roles.add(f.Name)
		n.SetProperty(f.Name, built[i])
	}
	n.dropObject()
	m.emit(Changed(index, 1, roles...))
	return nil
}

func (m *Model) SetProperty(index int, name string, value any) error {
	n := m.item(index)
	if n == nil {
		return m.report(fmt.Errorf("%w: setProperty: index %d out of range", ErrRange, index))
	}
	c, err := buildProperty(value)
	if err != nil {
		return m.report(fmt.Errorf("setProperty: property %q: %w", name, err))
	}
	m.roles.scan(m.root)
	role := m.roles.add(name)
	n.SetProperty(name, c)
	n.dropObject()
	m.emit(Changed(index, 1, role))
	return nil
}

// Clear destroys every item and forgets all roles. A borrowed model keeps
// its (now empty) node.
func (m *Model) Clear() {
	count := m.Count()
	if m.borrowed {
		if m.root != nil {
			m.root.destroyValues()
		}
	} else {
		m.root.destroy()
		m.root = nil
	}
	m.roles.reset()
	m.emit(Removed(0, count), CountChanged(0))
}

// Load replaces the whole tree with root, as produced by a decoder, and
// resets the role registry.
func (m *Model) Load(root *Node) error {
	if m.borrowed {
		return m.report(fmt.Errorf("load: %w", ErrDetached))
	}
	old := m.Count()
	m.root.destroy()
	m.root = root
	m.roles.reset()
	var events []Event
	if old > 0 {
		events = append(events, Removed(0, old))
	}
	if count := m.Count(); count > 0 {
		events = append(events, Inserted(0, count))
	}
	m.emit(append(events, CountChanged(m.Count()))...)
	return nil
}

func (m *Model) emit(events ...Event) {
	if debug.Mutate() {
		for _, e := range events {
			debug.Logf("model: %s\n", e)
		}
	}
	for _, o := range m.observers {
		for _, e := range events {
			switch e.Kind {
			case InsertedEvent:
				o.Inserted(e.Index, e.Count)
			case RemovedEvent:
				o.Removed(e.Index, e.Count)
			case MovedEvent:
				o.Moved(e.Index, e.To, e.Count)
			case ChangedEvent:
				o.Changed(e.Index, e.Count, e.Roles)
			case CountChangedEvent:
				o.CountChanged(e.Count)
			}
		}
	}
}

func (m *Model) report(err error) error {
	if debug.Mutate() {
		debug.Logf("model: %v\n", err)
	}
	return err
}
