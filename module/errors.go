// SPDX-License-Identifier: MIT
// Package module: sentinel error set.
// Every message is prefixed with "module: ..." for easy grepping. Callers
// match with errors.Is; TorsionError carries the offending operands.

package module

import (
	"errors"
	"fmt"
)

var (
	// ErrTorsionMismatch is returned by Add, Sub, AddInPlace and SubInPlace
	// when the operands carry different torsion.
	ErrTorsionMismatch = errors.New("module: unequal torsion attribute")

	// ErrInvalidScalar is returned by ScaleBy when the scalar is not an integer
	// or does not fit in int.
	ErrInvalidScalar = errors.New("module: scalar is not an integer")

	// ErrInvalidTorsion signals a modulus <= 0 or an unparsable torsion string.
	ErrInvalidTorsion = errors.New("module: torsion must be 'free' or a positive integer")

	// ErrNilElement indicates that a nil *Element was passed as an operand.
	ErrNilElement = errors.New("module: nil element")
)

// TorsionError describes a binary operation attempted across two torsions.
// It matches ErrTorsionMismatch under errors.Is.
type TorsionError struct {
	Op          string
	Left, Right Torsion
}

func (e *TorsionError) Error() string {
	return fmt.Sprintf("%s: %s (%s vs %s)", ErrTorsionMismatch, e.Op, e.Left, e.Right)
}

// Is reports whether target is ErrTorsionMismatch.
func (e *TorsionError) Is(target error) bool { return target == ErrTorsionMismatch }
