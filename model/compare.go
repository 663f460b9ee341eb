package model

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two trees structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Property order does not matter; properties compare by sorted name.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.IsArray != b.IsArray {
		if !a.IsArray {
			return -1
		}
		return 1
	}
	if c := compareValues(a.Values, b.Values); c != 0 {
		return c
	}
	return compareProps(a, b)
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank orders kinds: Empty < Bool < Number < String < Node
func rank(k Kind) int {
	switch k {
	case EmptyKind:
		return 0
	case BoolKind:
		return 1
	case NumberKind:
		return 2
	case StringKind:
		return 3
	case NodeKind:
		return 4
	}
	return 100
}

func CompareValue(a, b Value) int {
	if c := cmp.Compare(rank(a.kind), rank(b.kind)); c != 0 {
		return c
	}
	switch a.kind {
	case BoolKind:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case NumberKind:
		return cmp.Compare(a.num, b.num)
	case StringKind:
		return strings.Compare(a.str, b.str)
	case NodeKind:
		return Compare(a.node, b.node)
	}
	return 0
}

func compareValues(a, b []Value) int {
	minLen := min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		if c := CompareValue(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareProps(a, b *Node) int {
	aNames := sortedNames(a)
	bNames := sortedNames(b)
	minLen := min(len(aNames), len(bNames))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(aNames[i], bNames[i]); c != 0 {
			return c
		}
		if c := Compare(a.props[aNames[i]], b.props[bNames[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(aNames), len(bNames))
}

func sortedNames(n *Node) []string {
	res := n.PropertyNames()
	slices.Sort(res)
	return res
}
