// SPDX-License-Identifier: MIT

package necklace

import (
	"strings"

	"github.com/katalvlaran/freemod/internal/canon"
	"github.com/katalvlaran/freemod/simplicial"
)

// Word is an immutable ordered tuple of necklaces, the basis key of Element.
//
// It stores the concatenation of its necklaces together with their lengths,
// so Flatten is O(1) and two words are == exactly when they hold the same
// necklaces in the same order.
type Word struct {
	flat simplicial.Tuple // all simplices, necklace after necklace
	cuts string           // canon.Ints of the necklace lengths
}

// NewWord returns the word of the given necklaces, in order.
func NewWord(necklaces ...Necklace) Word {
	flat := simplicial.Tuple{}
	lens := make([]int, len(necklaces))
	for i, n := range necklaces {
		flat = flat.Concat(n.spx)
		lens[i] = n.Len()
	}

	return Word{flat: flat, cuts: canon.Ints(lens)}
}

// WordOf builds a word from raw input: one entry per necklace, each a list of
// simplices given by their vertices.
func WordOf(raw [][][]int) Word {
	necklaces := make([]Necklace, len(raw))
	for i, r := range raw {
		necklaces[i] = FromVertices(r)
	}

	return NewWord(necklaces...)
}

// Necklaces returns the necklaces in order.
func (w Word) Necklaces() []Necklace {
	lens := canon.DecodeInts(w.cuts)
	simplices := w.flat.Simplices()
	out := make([]Necklace, len(lens))
	for i, l := range lens {
		out[i] = New(simplices[:l]...)
		simplices = simplices[l:]
	}

	return out
}

// Len returns the number of necklaces.
func (w Word) Len() int { return canon.CountInts(w.cuts) }

// Flatten returns the simplices of all necklaces, concatenated in order.
func (w Word) Flatten() simplicial.Tuple { return w.flat }

// OneReduced reduces every necklace of w. The number of necklaces is kept.
func (w Word) OneReduced() Word {
	necklaces := w.Necklaces()
	for i, n := range necklaces {
		necklaces[i] = n.OneReduced()
	}

	return NewWord(necklaces...)
}

// String renders the word as "(((0,1)),((1,2,3),(3,4)))".
func (w Word) String() string {
	necklaces := w.Necklaces()
	strs := make([]string, len(necklaces))
	for i, n := range necklaces {
		strs[i] = n.String()
	}

	return "(" + strings.Join(strs, ",") + ")"
}
