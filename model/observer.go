package model

import (
	"fmt"
	"slices"
)

// Observer receives change notifications from a Model. Calls are made
// synchronously, in program order, after the tree has been updated.
type Observer interface {
	Inserted(index, count int)
	Removed(index, count int)
	Moved(from, to, count int)
	Changed(index, count int, roles []int)
	CountChanged(count int)
}

type EventKind int

const (
	InsertedEvent EventKind = iota
	RemovedEvent
	MovedEvent
	ChangedEvent
	CountChangedEvent
)

func (k EventKind) String() string {
	switch k {
	case InsertedEvent:
		return "inserted"
	case RemovedEvent:
		return "removed"
	case MovedEvent:
		return "moved"
	case ChangedEvent:
		return "changed"
	case CountChangedEvent:
		return "countChanged"
	}
	return "<unknown event>"
}

// Event is a recorded notification. To is only meaningful for moves and
// Roles only for changes.
type Event struct {
	Kind  EventKind
	Index int
	To    int
	Count int
	Roles []int
}

func (e Event) String() string {
	switch e.Kind {
	case MovedEvent:
		return fmt.Sprintf("%s(%d, %d, %d)", e.Kind, e.Index, e.To, e.Count)
	case ChangedEvent:
		return fmt.Sprintf("%s(%d, %d, %v)", e.Kind, e.Index, e.Count, e.Roles)
	case CountChangedEvent:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Count)
	}
	return fmt.Sprintf("%s(%d, %d)", e.Kind, e.Index, e.Count)
}

func Inserted(index, count int) Event {
	return Event{Kind: InsertedEvent, Index: index, Count: count}
}
func Removed(index, count int) Event {
	return Event{Kind: RemovedEvent, Index: index, Count: count}
}
func Moved(from, to, count int) Event {
	return Event{Kind: MovedEvent, Index: from, To: to, Count: count}
}
func Changed(index, count int, roles ...int) Event {
	return Event{Kind: ChangedEvent, Index: index, Count: count, Roles: roles}
}
func CountChanged(count int) Event {
	return Event{Kind: CountChangedEvent, Count: count}
}

// Recorder is an Observer that keeps every event it receives.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Inserted(index, count int) {
	r.Events = append(r.Events, Inserted(index, count))
}
func (r *Recorder) Removed(index, count int) {
	r.Events = append(r.Events, Removed(index, count))
}
func (r *Recorder) Moved(from, to, count int) {
	r.Events = append(r.Events, Moved(from, to, count))
}
func (r *Recorder) Changed(index, count int, roles []int) {
	r.Events = append(r.Events, Changed(index, count, slices.Clone(roles)...))
}
func (r *Recorder) CountChanged(count int) {
	r.Events = append(r.Events, CountChanged(count))
}

// Take returns the recorded events and resets the recorder.
func (r *Recorder) Take() []Event {
	res := r.Events
	r.Events = nil
	return res
}
