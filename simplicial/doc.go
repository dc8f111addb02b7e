// SPDX-License-Identifier: MIT

// Package simplicial provides the simplex types that necklaces are made of and
// the free module they project onto.
//
// A Simplex is a finite sequence of vertices; its dimension is one less than
// its length. A Tuple is an ordered tuple of simplices and is the basis key of
// the simplicial free module Element.
//
//	(0,1,2)            Simplex, dimension 2
//	((0,1),(1,2,3))    Tuple of two simplices
//
// Both types are immutable values and comparable with ==, so they serve
// directly as map keys and as module.Element keys. Concatenation is O(1)
// amortised in the packed representation.
//
// Usage:
//
//	s := simplicial.NewSimplex(0, 1).Concat(simplicial.NewSimplex(2)) // (0,1,2)
//	e := simplicial.New([]simplicial.RawTerm{{Key: [][]int{{0, 1, 2}}, Coeff: 1}})
package simplicial
