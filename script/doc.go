// Package script applies mutation scripts to a list model.
//
// A script is a YAML sequence of single key mappings, one per step:
//
//	- append: {name: Banana, cost: 1.95}
//	- insert: {index: 0, item: {name: Cherry}}
//	- setProperty: {index: 0, name: cost, value: ".[cost * 2]"}
//	- move: {from: 0, to: 2, count: 1}
//	- set: {index: 1, item: {ripe: true}}
//	- remove: 0
//	- get: 0
//	- clear: ~
//
// A string of the form .[expr] is an expr-lang expression; inside flow
// mappings it has to be quoted. It is evaluated when its step runs, against
// the properties of the item the step targets plus index (the step's
// index), count (the current number of items) and roles (the role names).
//
// Steps that the model rejects are recorded in their Result and the script
// goes on. Malformed steps and failing expressions stop it.
package script
