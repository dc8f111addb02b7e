// SPDX-License-Identifier: MIT

package necklace

import "github.com/katalvlaran/freemod/simplicial"

// Necklace is an immutable ordered tuple of simplices.
// The zero value is the empty necklace.
type Necklace struct {
	spx simplicial.Tuple
}

// New returns the necklace of the given simplices, in order.
func New(simplices ...simplicial.Simplex) Necklace {
	return Necklace{spx: simplicial.NewTuple(simplices...)}
}

// FromVertices builds a necklace from raw vertex lists, one per simplex.
func FromVertices(raw [][]int) Necklace {
	return Necklace{spx: simplicial.TupleOf(raw)}
}

// Simplices returns the simplices in order.
func (n Necklace) Simplices() []simplicial.Simplex { return n.spx.Simplices() }

// Len returns the number of simplices.
func (n Necklace) Len() int { return n.spx.Len() }

// Tuple returns the simplices as a simplicial.Tuple.
func (n Necklace) Tuple() simplicial.Tuple { return n.spx }

// OneReduced returns the necklace without its simplices of dimension 1.
// The relative order of the remaining simplices is kept; OneReduced is
// idempotent.
// Complexity: O(Len()).
func (n Necklace) OneReduced() Necklace {
	return Necklace{spx: n.spx.Filter(notDimensionOne)}
}

// String renders the necklace as "((0,1),(1,2,3))".
func (n Necklace) String() string { return n.spx.String() }

func notDimensionOne(s simplicial.Simplex) bool { return s.Dimension() != 1 }
