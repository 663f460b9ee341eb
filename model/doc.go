// Package model provides the dynamic list model: a tree of nodes exposed
// to presentation layers as a list of items with named roles.
//
// # Nodes and Values
//
// A Node holds an ordered slice of Values and a set of named properties,
// each itself a Node. A Value is a tagged union: a nested node, a string,
// a number (float64), a bool, or empty.
//
// Nodes are array-shaped (IsArray) when they were built from a list value
// or decoded from an array declaration. Shape is never inferred from
// content: an array-shaped node with no values is still an array.
//
// The root of a Model owns the whole tree. Removing or replacing a node
// destroys its subtree and invalidates any views onto it.
//
// # Roles
//
// Roles are integer ids for property names, used for indexed access by
// views. The registry is filled lazily from the property names of the
// items present when Roles, RoleName or Data is first called, and is not
// rescanned afterwards: names first seen later are registered only through
// Set and SetProperty. Ids are stable until Clear or Load.
//
// # Mutations and Notifications
//
// Append, Insert, Remove, Move, Set, SetProperty and Clear each either
// succeed, updating the tree and notifying observers with one coherent set
// of events, or fail with ErrRange or ErrType leaving the model untouched
// and silent.
//
//	m := model.New()
//	rec := &model.Recorder{}
//	m.Observe(rec)
//	m.Append(model.Object{{Name: "name", Value: "Apple"}, {Name: "cost", Value: 2.45}})
//	// rec.Events: inserted(0, 1), countChanged(1)
//
// # Views
//
// Get returns an *ObjectView, a snapshot of an item's resolved properties
// that refers back to the item without owning it. Array-shaped properties
// resolve to a *Model borrowing the property node, so nested lists can be
// read and mutated with the same API. Views are cached per node and
// recreated on demand after invalidation.
package model
