// SPDX-License-Identifier: MIT
// Package necklace_test contains random fixtures shared by the necklace tests.

package necklace_test

import (
	"math/rand"

	"github.com/katalvlaran/freemod/module"
	"github.com/katalvlaran/freemod/necklace"
)

// randomRaw draws a raw word: 1..3 necklaces of 0..3 simplices of 0..4
// vertices in [0, 4). Small ranges make key collisions likely.
func randomRaw(rng *rand.Rand) [][][]int {
	word := make([][][]int, 1+rng.Intn(3))
	for i := range word {
		word[i] = make([][]int, rng.Intn(4))
		for j := range word[i] {
			word[i][j] = make([]int, rng.Intn(5))
			for k := range word[i][j] {
				word[i][j][k] = rng.Intn(4)
			}
		}
	}

	return word
}

// randomElement draws up to five terms with coefficients in [-4, 4].
func randomElement(rng *rand.Rand, t module.Torsion) *necklace.Element {
	raw := make([]necklace.RawTerm, rng.Intn(6))
	for i := range raw {
		raw[i] = necklace.RawTerm{Key: randomRaw(rng), Coeff: rng.Intn(9) - 4}
	}

	return necklace.NewElement(raw, module.WithTorsion(t))
}

var testTorsions = []module.Torsion{module.Free, module.Mod(2), module.Mod(5)}
