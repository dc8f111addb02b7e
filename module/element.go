// SPDX-License-Identifier: MIT

package module

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// Term is one summand Coeff·Key of a formal sum.
type Term[K comparable] struct {
	Key   K
	Coeff int
}

// Element is a free module element: a finite formal sum of basis keys K with
// non-zero coefficients in Z or Z/nZ.
//
// Invariants (hold for every Element a caller observes):
//   - no key maps to 0;
//   - under Mod(n) every coefficient lies in [0, n).
//
// Keys iterate in insertion order; a key removed by cancellation and added
// again moves to the end. The zero value is the zero element with Free torsion.
type Element[K comparable] struct {
	torsion Torsion
	coeffs  map[K]int
	order   []K // live keys, insertion order
}

// New builds an element from a key→coefficient map.
// Keys enter in ascending order of their fmt rendering (%v), ties broken by
// their Go-syntax rendering (%#v), so the result does not depend on map
// iteration order. Keys that agree under both renderings (pointers, NaN
// floats) keep an unspecified relative order; use FromTerms when the order
// matters.
// Complexity: O(k log k).
func New[K comparable](data map[K]int, opts ...Option) *Element[K] {
	type ranked struct {
		term     Term[K]
		str, gos string
	}
	rs := make([]ranked, 0, len(data))
	for k, c := range data {
		rs = append(rs, ranked{term: Term[K]{Key: k, Coeff: c}, str: fmt.Sprint(k), gos: fmt.Sprintf("%#v", k)})
	}
	slices.SortStableFunc(rs, func(a, b ranked) int {
		return cmp.Or(cmp.Compare(a.str, b.str), cmp.Compare(a.gos, b.gos))
	})
	terms := make([]Term[K], len(rs))
	for i, r := range rs {
		terms[i] = r.term
	}

	return FromTerms(terms, opts...)
}

// FromTerms builds an element from an ordered list of terms.
// Repeated keys accumulate their coefficients, as a counter does.
// Complexity: O(len(terms)).
func FromTerms[K comparable](terms []Term[K], opts ...Option) *Element[K] {
	o := gatherOptions[K](opts...)
	e := &Element[K]{torsion: o.torsion}
	for _, t := range terms {
		e.accumulate(t.Key, t.Coeff)
	}
	e.canonicalize()

	return e
}

// Create returns a new element with the receiver's torsion seeded with terms.
// The configuration is copied; data is never shared with the receiver.
// Panics with ErrNilElement on a nil receiver.
func (e *Element[K]) Create(terms ...Term[K]) *Element[K] {
	e.mustNotBeNil()
	out := &Element[K]{torsion: e.torsion}
	for _, t := range terms {
		out.accumulate(t.Key, t.Coeff)
	}
	out.canonicalize()

	return out
}

// Zero returns the additive identity with the receiver's torsion.
func (e *Element[K]) Zero() *Element[K] { return e.Create() }

// Clone returns an independent copy of e.
// Panics with ErrNilElement on a nil receiver.
func (e *Element[K]) Clone() *Element[K] {
	e.mustNotBeNil()
	out := &Element[K]{
		torsion: e.torsion,
		coeffs:  make(map[K]int, len(e.order)),
		order:   slices.Clone(e.order),
	}
	for _, k := range e.order {
		out.coeffs[k] = e.coeffs[k]
	}

	return out
}

// Torsion returns the coefficient ring tag.
// A nil element reads as Free.
func (e *Element[K]) Torsion() Torsion {
	if e == nil {
		return Free
	}

	return e.torsion
}

// Len returns the number of keys with non-zero coefficient.
func (e *Element[K]) Len() int {
	if e == nil {
		return 0
	}

	return len(e.order)
}

// IsZero reports whether e is the additive identity.
func (e *Element[K]) IsZero() bool { return e.Len() == 0 }

// Coeff returns the coefficient of k (0 when absent).
func (e *Element[K]) Coeff(k K) int {
	if e == nil {
		return 0
	}

	return e.coeffs[k]
}

// Keys returns the live keys in iteration order.
func (e *Element[K]) Keys() []K {
	if e == nil {
		return nil
	}

	return slices.Clone(e.order)
}

// Terms returns the summands in iteration order.
func (e *Element[K]) Terms() []Term[K] {
	if e == nil {
		return []Term[K]{}
	}
	out := make([]Term[K], len(e.order))
	for i, k := range e.order {
		out[i] = Term[K]{Key: k, Coeff: e.coeffs[k]}
	}

	return out
}

// All yields (key, coefficient) pairs in iteration order.
// The element must not be mutated during iteration.
func (e *Element[K]) All() iter.Seq2[K, int] {
	return func(yield func(K, int) bool) {
		if e == nil {
			return
		}
		for _, k := range e.order {
			if !yield(k, e.coeffs[k]) {
				return
			}
		}
	}
}

// mustNotBeNil guards the operations that build from or mutate the receiver.
func (e *Element[K]) mustNotBeNil() {
	if e == nil {
		panic(ErrNilElement)
	}
}

// accumulate adds c to the coefficient of k without removing zeros.
// Under Mod(n) the sum is reduced as it is formed, so it cannot overflow.
func (e *Element[K]) accumulate(k K, c int) {
	if e.coeffs == nil {
		e.coeffs = make(map[K]int)
	}
	if _, ok := e.coeffs[k]; !ok {
		e.order = append(e.order, k)
	}
	e.coeffs[k] = e.torsion.add(e.coeffs[k], c)
}

// canonicalize reduces every coefficient mod n (when the torsion is Mod(n))
// and then removes every key with coefficient 0. Reduction runs first because
// it can create zeros.
// Complexity: O(k).
func (e *Element[K]) canonicalize() {
	if !e.torsion.IsFree() {
		for k, c := range e.coeffs {
			e.coeffs[k] = e.torsion.Reduce(c)
		}
	}
	live := e.order[:0]
	for _, k := range e.order {
		if e.coeffs[k] == 0 {
			delete(e.coeffs, k)
			continue
		}
		live = append(live, k)
	}
	clear(e.order[len(live):])
	e.order = live
}
