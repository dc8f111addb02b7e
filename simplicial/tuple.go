// SPDX-License-Identifier: MIT

package simplicial

import (
	"strings"

	"github.com/katalvlaran/freemod/internal/canon"
)

// Tuple is an immutable ordered tuple of simplices.
// The zero value is the empty tuple.
type Tuple struct {
	p string // canon.Join of the simplices' packed vertices
}

// NewTuple returns the tuple of the given simplices, in order.
func NewTuple(simplices ...Simplex) Tuple {
	parts := make([]string, len(simplices))
	for i, s := range simplices {
		parts[i] = s.v
	}

	return Tuple{p: canon.Join(parts...)}
}

// TupleOf builds a tuple from raw vertex lists, one per simplex.
func TupleOf(raw [][]int) Tuple {
	simplices := make([]Simplex, len(raw))
	for i, vs := range raw {
		simplices[i] = NewSimplex(vs...)
	}

	return NewTuple(simplices...)
}

// Simplices returns the simplices in order.
func (t Tuple) Simplices() []Simplex {
	parts := canon.Split(t.p)
	out := make([]Simplex, len(parts))
	for i, p := range parts {
		out[i] = Simplex{v: p}
	}

	return out
}

// Len returns the number of simplices.
func (t Tuple) Len() int { return canon.Count(t.p) }

// Concat returns the simplices of t followed by those of o.
func (t Tuple) Concat(o Tuple) Tuple { return Tuple{p: t.p + o.p} }

// Filter returns the simplices of t for which keep is true, order preserved.
// Complexity: O(Len()).
func (t Tuple) Filter(keep func(Simplex) bool) Tuple {
	var kept []Simplex
	for _, s := range t.Simplices() {
		if keep(s) {
			kept = append(kept, s)
		}
	}

	return NewTuple(kept...)
}

// String renders the tuple as "((0,1),(1,2))".
func (t Tuple) String() string {
	parts := t.Simplices()
	strs := make([]string, len(parts))
	for i, s := range parts {
		strs[i] = s.String()
	}

	return "(" + strings.Join(strs, ",") + ")"
}
