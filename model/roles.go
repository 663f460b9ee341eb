package model

import "github.com/signadot/listmodel/debug"

// registry maps property names to role ids. Ids are positions in names and
// are never reused or reordered until reset.
type registry struct {
	names []string
	ids   map[string]int
	valid bool
}

func (r *registry) id(name string) (int, bool) {
	id, ok := r.ids[name]
	return id, ok
}

// add registers name if needed and returns its id.
func (r *registry) add(name string) int {
	if id, ok := r.ids[name]; ok {
		return id
	}
	if r.ids == nil {
		r.ids = map[string]int{}
	}
	id := len(r.names)
	r.names = append(r.names, name)
	r.ids[name] = id
	if debug.Roles() {
		debug.Logf("role %d = %q\n", id, name)
	}
	return id
}

// scan registers the property names of root's children once. An empty
// model stays unscanned so the first items appended define the roles.
func (r *registry) scan(root *Node) {
	if r.valid || root == nil {
		return
	}
	r.valid = true
	for _, v := range root.Values {
		if v.kind != NodeKind {
			continue
		}
		for _, name := range v.node.names {
			r.add(name)
		}
	}
}

func (r *registry) reset() {
	r.names = nil
	r.ids = nil
	r.valid = false
}
