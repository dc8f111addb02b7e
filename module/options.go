// SPDX-License-Identifier: MIT

// Package module: functional configuration for element constructors.
//
// The configuration of an Element is its torsion only. It is resolved once in
// New/FromTerms and then copied by value into every sibling produced by
// Create, Zero and the arithmetic combinators; siblings never alias it.
package module

// TorsionDefaulter is implemented by key types whose modules default to a
// torsion other than Free. New and FromTerms call DefaultTorsion on the zero
// value of the key type when no WithTorsion option is given.
type TorsionDefaulter interface {
	DefaultTorsion() Torsion
}

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	torsion Torsion
}

// WithTorsion sets the coefficient ring of the new element.
func WithTorsion(t Torsion) Option {
	return func(o *Options) { o.torsion = t }
}

// WithModulus is shorthand for WithTorsion(Mod(n)).
// Panics with ErrInvalidTorsion when n <= 0.
func WithModulus(n int) Option {
	t := Mod(n)

	return func(o *Options) { o.torsion = t }
}

// DefaultTorsion returns the torsion of Element[K] built without WithTorsion:
// K's own default when K implements TorsionDefaulter, Free otherwise.
func DefaultTorsion[K comparable]() Torsion {
	var k K
	if d, ok := any(k).(TorsionDefaulter); ok {
		return d.DefaultTorsion()
	}

	return Free
}

// gatherOptions resolves opts over the defaults of key type K.
func gatherOptions[K comparable](opts ...Option) Options {
	o := Options{torsion: DefaultTorsion[K]()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
