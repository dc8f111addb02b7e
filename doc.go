// Package freemod is your toolkit for exact arithmetic on free module
// elements, from generic formal sums to necklace words projected onto
// simplicial chains.
//
// 🚀 What is freemod?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Formal sums over any comparable basis key, over Z or Z/nZ
//		• Canonical sparse form after every operation
//		• Torsion-checked addition and subtraction, integer scaling
//		• Necklaces (tuples of simplices) and words of necklaces
//		• One-reduction and the linear projection to simplicial tuples
//
// ✨ Why choose freemod?
//
//   - Exact – integer coefficients, reduced mod n when torsion is set
//   - Honest errors – mismatched torsion is an error, never a coercion
//   - Generic – Element[K] works for strings, ints, structs and words
//   - Pure Go – no cgo, no runtime deps
//
// Under the hood, everything is organized under three subpackages:
//
//	module/     — Element[K], Torsion, arithmetic contract, Lift
//	simplicial/ — Simplex, Tuple and the simplicial free module
//	necklace/   — Necklace, Word, OneReduced, ToSimplicial
//
// Quick example:
//
//	(((0,1,2),(2,3)),((3,4,5)))  ──ToSimplicial──▶  ((0,1,2),(3,4,5))
//
//	go get github.com/katalvlaran/freemod
package freemod
