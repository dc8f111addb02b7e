// SPDX-License-Identifier: MIT

package module

import (
	"fmt"
	"math/bits"
	"strconv"
)

const freeLabel = "free"

// Torsion tags the coefficient ring of an Element: Z when Free, Z/nZ when Mod(n).
// The zero value is Free.
type Torsion struct {
	n int // 0 ⇒ free, otherwise the modulus (> 0)
}

// Free is the torsion of modules over the integers.
var Free = Torsion{}

// Mod returns the torsion of modules over Z/nZ.
// Panics with ErrInvalidTorsion when n <= 0 (programmer error); use
// ParseTorsion for untrusted input.
func Mod(n int) Torsion {
	if n <= 0 {
		panic(ErrInvalidTorsion)
	}

	return Torsion{n: n}
}

// ParseTorsion reads "free" or a positive decimal modulus.
func ParseTorsion(s string) (Torsion, error) {
	if s == freeLabel {
		return Free, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return Free, fmt.Errorf("%w: %q", ErrInvalidTorsion, s)
	}

	return Torsion{n: n}, nil
}

// IsFree reports whether t is the integer torsion.
func (t Torsion) IsFree() bool { return t.n == 0 }

// Modulus returns n for Mod(n) and 0 for Free.
func (t Torsion) Modulus() int { return t.n }

// Reduce returns c mod n in [0, n) for Mod(n), and c unchanged for Free.
func (t Torsion) Reduce(c int) int {
	if t.n == 0 {
		return c
	}
	r := c % t.n
	if r < 0 {
		r += t.n
	}

	return r
}

// add returns a + b, reduced mod n without overflow for Mod(n).
func (t Torsion) add(a, b int) int {
	if t.n == 0 {
		return a + b
	}
	sum := uint64(t.Reduce(a)) + uint64(t.Reduce(b)) // < 2n, fits in uint64

	return int(sum % uint64(t.n))
}

// mul returns a · b, reduced mod n without overflow for Mod(n).
func (t Torsion) mul(a, b int) int {
	if t.n == 0 {
		return a * b
	}
	hi, lo := bits.Mul64(uint64(t.Reduce(a)), uint64(t.Reduce(b)))

	return int(bits.Rem64(hi, lo, uint64(t.n)))
}

// String renders "free" or the modulus.
func (t Torsion) String() string {
	if t.n == 0 {
		return freeLabel
	}

	return strconv.Itoa(t.n)
}

// MarshalText implements encoding.TextMarshaler.
func (t Torsion) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Torsion) UnmarshalText(b []byte) error {
	parsed, err := ParseTorsion(string(b))
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}
