// SPDX-License-Identifier: MIT
// Package module_test contains shared fixtures for the module tests.

package module_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/freemod/module"
)

type elem = module.Element[string]

type term = module.Term[string]

func tm(k string, c int) term { return term{Key: k, Coeff: c} }

// mustAdd returns x + y or fails the test.
func mustAdd(tb testing.TB, x, y *elem) *elem {
	tb.Helper()
	out, err := x.Add(y)
	if err != nil {
		tb.Fatalf("add: %v", err)
	}

	return out
}

// mustSub returns x - y or fails the test.
func mustSub(tb testing.TB, x, y *elem) *elem {
	tb.Helper()
	out, err := x.Sub(y)
	if err != nil {
		tb.Fatalf("sub: %v", err)
	}

	return out
}

// requireCanonical fails unless e has no zero coefficient and, under Mod(n),
// every coefficient lies in [0, n).
func requireCanonical(tb testing.TB, e *elem) {
	tb.Helper()
	n := e.Torsion().Modulus()
	for k, c := range e.All() {
		if c == 0 {
			tb.Fatalf("key %q stored with coefficient 0", k)
		}
		if n > 0 && (c < 0 || c >= n) {
			tb.Fatalf("key %q coefficient %d outside [0,%d)", k, c, n)
		}
	}
}

var testKeys = []string{"a", "b", "c", "d", "e", "f"}

// randomElement draws up to len(testKeys) terms with coefficients in [-6, 6].
func randomElement(rng *rand.Rand, t module.Torsion) *elem {
	terms := make([]term, rng.Intn(len(testKeys)+1))
	for i := range terms {
		terms[i] = term{Key: testKeys[rng.Intn(len(testKeys))], Coeff: rng.Intn(13) - 6}
	}

	return module.FromTerms(terms, module.WithTorsion(t))
}

var testTorsions = []module.Torsion{module.Free, module.Mod(2), module.Mod(3), module.Mod(7)}
