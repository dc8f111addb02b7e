// SPDX-License-Identifier: MIT

// Package necklace implements free module elements generated by words of
// necklaces, and their projection onto the simplicial free module.
//
// 🚀 Vocabulary
//
//	Necklace  ordered tuple of simplices            ((0,1),(1,2,3))
//	Word      ordered tuple of necklaces            (((0,1)),((1,2,3),(3,4)))
//	Element   module.Element keyed by Word
//
// ✨ Operations
//
//   - Necklace.OneReduced / Word.OneReduced drop every simplex of dimension
//     exactly 1, keeping the order of the rest.
//   - OneReduced(e) lifts that reduction linearly over an Element; words that
//     coincide after reduction accumulate and may cancel.
//   - ToSimplicial(e) concatenates, in order, the simplices of every necklace
//     of each word into one simplicial.Tuple, and by default keeps only the
//     simplices with more than two vertices. The projection is linear and
//     keeps e's torsion.
//
// Usage:
//
//	e := necklace.NewElement([]necklace.RawTerm{
//		{Key: [][][]int{{{0, 1, 2}, {2, 3}}, {{3, 4, 5}}}, Coeff: 1},
//	})
//	s := necklace.ToSimplicial(e) // ((0,1,2),(3,4,5))
package necklace
