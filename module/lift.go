// SPDX-License-Identifier: MIT

package module

// Lift extends a map f between basis keys linearly to elements:
//
//	Lift(Σ cᵢ·kᵢ, f) = Σ cᵢ·f(kᵢ)
//
// The result has e's torsion. It equals accumulating Create({f(k): c}) term
// by term with AddInPlace, canonicalised once at the end: keys that collide
// under f accumulate and may cancel. Lift commutes with Add, Sub and Scale.
// Panics with ErrNilElement when e is nil.
// Complexity: O(|e|) calls of f.
func Lift[K, L comparable](e *Element[K], f func(K) L) *Element[L] {
	e.mustNotBeNil()
	out := &Element[L]{torsion: e.torsion}
	for _, k := range e.order {
		out.accumulate(f(k), e.coeffs[k])
	}
	out.canonicalize()

	return out
}
