// SPDX-License-Identifier: MIT

package module

import "hash/maphash"

// hashSeed is fixed per process so Hash is stable for the program's lifetime.
var hashSeed = maphash.MakeSeed()

// Equal reports whether e and o have the same canonical key→coefficient
// mapping. Torsion is not compared: elements with different torsion and equal
// mappings are Equal.
// Complexity: O(|e|).
func (e *Element[K]) Equal(o *Element[K]) bool {
	if e == nil || o == nil {
		return e == o
	}
	if len(e.order) != len(o.order) {
		return false
	}
	for k, c := range e.coeffs {
		if oc, ok := o.coeffs[k]; !ok || oc != c {
			return false
		}
	}

	return true
}

// Hash returns a hash of the key set of e, independent of iteration order and
// of the coefficients. Equal elements hash alike; nil hashes as the zero
// element.
func (e *Element[K]) Hash() uint64 {
	var h uint64
	if e == nil {
		return h
	}
	for _, k := range e.order {
		h += maphash.Comparable(hashSeed, k)
	}

	return h
}
