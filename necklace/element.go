// SPDX-License-Identifier: MIT

package necklace

import (
	"github.com/katalvlaran/freemod/module"
	"github.com/katalvlaran/freemod/simplicial"
)

// Element is an element of the free module generated by words of necklaces.
type Element = module.Element[Word]

// Term is one summand of an Element.
type Term = module.Term[Word]

// RawTerm is a summand whose key is given as raw nested vertex lists:
// necklaces, then simplices, then vertices.
type RawTerm struct {
	Key   [][][]int
	Coeff int
}

// NewElement normalises raw keys into Words and builds the Element;
// repeated keys accumulate.
func NewElement(raw []RawTerm, opts ...module.Option) *Element {
	terms := make([]Term, len(raw))
	for i, r := range raw {
		terms[i] = Term{Key: WordOf(r.Key), Coeff: r.Coeff}
	}

	return module.FromTerms(terms, opts...)
}

// OneReduced applies Word.OneReduced to every key of e, linearly.
// Coefficients are untouched; words that coincide after reduction accumulate
// and may cancel.
func OneReduced(e *Element) *Element {
	return module.Lift(e, Word.OneReduced)
}

// DefaultOneReduced is the projection mode of ToSimplicial without options.
const DefaultOneReduced = true

// ProjectOption configures ToSimplicial.
type ProjectOption func(*projectOptions)

type projectOptions struct {
	oneReduced bool
}

// WithOneReduced selects whether ToSimplicial drops the simplices with at
// most two vertices from each projected key.
func WithOneReduced(on bool) ProjectOption {
	return func(o *projectOptions) { o.oneReduced = on }
}

// ToSimplicial projects e onto the simplicial free module.
//
// Each word is flattened into the tuple of its necklaces' simplices, in
// order. In one-reduced mode (the default) the simplices with Len() <= 2 are
// then dropped. The projected terms accumulate into a simplicial.Element with
// e's torsion, so ToSimplicial is linear:
//
//	ToSimplicial(a + b) == ToSimplicial(a) + ToSimplicial(b)
//
// Complexity: O(total number of simplices in e).
func ToSimplicial(e *Element, opts ...ProjectOption) *simplicial.Element {
	o := projectOptions{oneReduced: DefaultOneReduced}
	for _, opt := range opts {
		opt(&o)
	}
	project := Word.Flatten
	if o.oneReduced {
		project = func(w Word) simplicial.Tuple {
			return w.Flatten().Filter(hasSimplicialContent)
		}
	}

	return module.Lift(e, project)
}

// hasSimplicialContent reports whether s has more than two vertices.
func hasSimplicialContent(s simplicial.Simplex) bool { return s.Len() > 2 }
