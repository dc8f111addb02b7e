// SPDX-License-Identifier: MIT
// File: arithmetic.go
// Role: the arithmetic contract of Element.
// Every operation leaves its result canonical. Binary operations check
// torsion first and return a *TorsionError without touching either operand.

package module

import (
	"fmt"
	"math"
	"reflect"
)

// Add returns e + o as a new element.
// Errors: ErrNilElement, ErrTorsionMismatch.
// Complexity: O(|e| + |o|).
func (e *Element[K]) Add(o *Element[K]) (*Element[K], error) {
	if err := e.compatible("add", o); err != nil {
		return nil, err
	}
	out := e.Clone()
	out.update(o, 1)

	return out, nil
}

// Sub returns e - o as a new element.
// Errors: ErrNilElement, ErrTorsionMismatch.
func (e *Element[K]) Sub(o *Element[K]) (*Element[K], error) {
	if err := e.compatible("sub", o); err != nil {
		return nil, err
	}
	out := e.Clone()
	out.update(o, -1)

	return out, nil
}

// AddInPlace adds o into e and returns e.
// Errors: ErrNilElement, ErrTorsionMismatch (e is left untouched).
func (e *Element[K]) AddInPlace(o *Element[K]) (*Element[K], error) {
	if err := e.compatible("add in place", o); err != nil {
		return nil, err
	}
	e.update(o, 1)

	return e, nil
}

// SubInPlace subtracts o from e and returns e.
// Errors: ErrNilElement, ErrTorsionMismatch (e is left untouched).
func (e *Element[K]) SubInPlace(o *Element[K]) (*Element[K], error) {
	if err := e.compatible("sub in place", o); err != nil {
		return nil, err
	}
	e.update(o, -1)

	return e, nil
}

// Scale returns c·e as a new element.
// 0·e is the zero element; 1·e equals e. Under Mod(n) the products are
// formed on residues, so any int scalar gives the exact residue.
// Panics with ErrNilElement on a nil receiver.
func (e *Element[K]) Scale(c int) *Element[K] {
	e.mustNotBeNil()
	out := &Element[K]{torsion: e.torsion}
	for _, k := range e.order {
		out.accumulate(k, e.torsion.mul(c, e.coeffs[k]))
	}
	out.canonicalize()

	return out
}

// ScaleBy is Scale for a dynamically typed scalar, such as a value decoded
// from YAML or JSON. Any Go integer kind is accepted.
// Errors: ErrNilElement, ErrInvalidScalar when c is not an integer or does
// not fit in int.
func (e *Element[K]) ScaleBy(c any) (*Element[K], error) {
	if e == nil {
		return nil, ErrNilElement
	}
	n, ok := asInt(c)
	if !ok {
		return nil, &scalarError{value: c}
	}

	return e.Scale(n), nil
}

// Neg returns -e. Panics with ErrNilElement on a nil receiver.
func (e *Element[K]) Neg() *Element[K] { return e.Scale(-1) }

// SetTorsion retags e in place and re-canonicalises it; coefficients that
// become congruent to 0 disappear. Returns e.
// Panics with ErrNilElement on a nil receiver.
func (e *Element[K]) SetTorsion(t Torsion) *Element[K] {
	e.mustNotBeNil()
	e.torsion = t
	e.canonicalize()

	return e
}

// update accumulates sign·o into e and canonicalises.
func (e *Element[K]) update(o *Element[K], sign int) {
	for _, k := range o.order {
		e.accumulate(k, sign*o.coeffs[k])
	}
	e.canonicalize()
}

// compatible checks the preconditions shared by every binary operation.
func (e *Element[K]) compatible(op string, o *Element[K]) error {
	if e == nil || o == nil {
		return ErrNilElement
	}
	if e.torsion != o.torsion {
		return &TorsionError{Op: op, Left: e.torsion, Right: o.torsion}
	}

	return nil
}

// asInt converts any Go integer kind to int.
func asInt(c any) (int, bool) {
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := v.Int()
		if i < math.MinInt || i > math.MaxInt {
			return 0, false
		}

		return int(i), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt {
			return 0, false
		}

		return int(u), true
	default:
		return 0, false
	}
}

// scalarError wraps ErrInvalidScalar with the offending value's type.
type scalarError struct{ value any }

func (e *scalarError) Error() string {
	return fmt.Sprintf("%s: cannot act by %T", ErrInvalidScalar, e.value)
}

func (e *scalarError) Unwrap() error { return ErrInvalidScalar }
