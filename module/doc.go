// SPDX-License-Identifier: MIT

// Package module implements exact arithmetic on elements of free modules.
//
// An Element is a finite formal sum of basis keys with integer coefficients,
// taken either in Z (torsion Free) or in Z/nZ (torsion Mod(n)):
//
//	x = 2·a − b        (Free)
//	y = a + 2·b        (Mod(3))
//
// 🚀 What lives here?
//
//   - Torsion    — the coefficient ring tag, Free or Mod(n).
//   - Element[K] — the sparse formal sum over any comparable key type K.
//   - Lift       — the module-linear extension of a map between key types.
//
// Canonical form:
//
//	Every Element a caller can observe is canonical. After each mutation the
//	coefficients are reduced into [0, n) when the torsion is Mod(n), and then
//	every key whose coefficient is 0 is removed. The order matters: reduction
//	mod n can create new zeros.
//
// Arithmetic contract:
//
//	Add, Sub          new element; operands must share torsion
//	AddInPlace, ...   mutate and return the receiver
//	Scale, ScaleBy    integer action (ScaleBy checks the scalar dynamically)
//	Neg               Scale(-1)
//	SetTorsion        retag in place and re-canonicalise
//
// Binary operations never coerce torsion: a mismatch returns an error that
// matches ErrTorsionMismatch under errors.Is.
//
// Equality compares canonical mappings only. Two elements with different
// torsion but identical mappings are Equal and hash alike; existing callers
// rely on this.
//
// Nil elements:
//
//	Read-only methods (Len, Coeff, Keys, Terms, All, Equal, Hash, String)
//	treat a nil *Element as the Free zero. Methods that return an error
//	(Add, Sub, the in-place forms, ScaleBy) report ErrNilElement. The rest
//	(Create, Zero, Clone, Scale, Neg, SetTorsion, Lift) panic with
//	ErrNilElement.
//
// Concurrency:
//
//	Elements are plain values with no internal locking. Only the in-place
//	operations mutate, and they must not race with other users of the same
//	pointer.
//
// Usage:
//
//	a := module.New(map[string]int{"a": 1, "b": -1})
//	fmt.Println(a) // a - b
//	b, err := a.Add(a.Create(module.Term[string]{Key: "b", Coeff: 1}))
package module
