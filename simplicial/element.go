// SPDX-License-Identifier: MIT

package simplicial

import "github.com/katalvlaran/freemod/module"

// Element is an element of the free module generated by tuples of simplices.
type Element = module.Element[Tuple]

// Term is one summand of an Element.
type Term = module.Term[Tuple]

// RawTerm is a summand whose key is given as vertex lists, one per simplex.
type RawTerm struct {
	Key   [][]int
	Coeff int
}

// New builds an Element from raw terms; repeated keys accumulate.
func New(raw []RawTerm, opts ...module.Option) *Element {
	terms := make([]Term, len(raw))
	for i, r := range raw {
		terms[i] = Term{Key: TupleOf(r.Key), Coeff: r.Coeff}
	}

	return module.FromTerms(terms, opts...)
}

// Zero returns the zero Element with the configured torsion.
func Zero(opts ...module.Option) *Element {
	return module.FromTerms[Tuple](nil, opts...)
}
