// SPDX-License-Identifier: MIT

package module_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/freemod/module"
)

func TestNew_DropsZeroCoefficients(t *testing.T) {
	t.Parallel()
	e := module.New(map[string]int{"a": 1, "b": 2, "c": 0})
	require.Equal(t, 2, e.Len())
	require.Equal(t, []string{"a", "b"}, e.Keys())
	require.Zero(t, e.Coeff("c"))
	require.True(t, e.Torsion().IsFree())
}

func TestNew_OrderIsDeterministic(t *testing.T) {
	t.Parallel()
	data := map[string]int{"d": 4, "b": 2, "a": 1, "c": 3}
	for i := 0; i < 16; i++ {
		require.Equal(t, []string{"a", "b", "c", "d"}, module.New(data).Keys())
	}
}

func TestFromTerms_AccumulatesDuplicates(t *testing.T) {
	t.Parallel()
	e := module.FromTerms([]term{tm("x", 2), tm("y", 1), tm("x", 3), tm("y", -1), tm("z", 1)})
	want := []term{tm("x", 5), tm("z", 1)}
	if diff := cmp.Diff(want, e.Terms()); diff != "" {
		t.Fatalf("terms mismatch (-want +got):\n%s", diff)
	}
}

func TestFromTerms_ReducesModTorsion(t *testing.T) {
	t.Parallel()
	e := module.FromTerms([]term{tm("a", 3), tm("b", -1), tm("c", 7), tm("d", -6)}, module.WithModulus(3))
	want := []term{tm("b", 2), tm("c", 1)}
	if diff := cmp.Diff(want, e.Terms()); diff != "" {
		t.Fatalf("terms mismatch (-want +got):\n%s", diff)
	}
	requireCanonical(t, e)
}

// TestFromTerms_ModularSumIsExact: addends are reduced before summing.
func TestFromTerms_ModularSumIsExact(t *testing.T) {
	t.Parallel()
	e := module.FromTerms([]term{tm("a", math.MaxInt), tm("a", 1)}, module.WithModulus(3))
	require.Equal(t, "2a", e.String())

	e = module.FromTerms([]term{tm("a", math.MaxInt), tm("a", math.MaxInt), tm("b", math.MinInt)}, module.WithModulus(5))
	// MaxInt ≡ 2 and MinInt ≡ 2 mod 5.
	require.Equal(t, 4, e.Coeff("a"))
	require.Equal(t, 2, e.Coeff("b"))
	requireCanonical(t, e)
}

// twin renders identically for every value.
type twin struct{ n int }

func (twin) String() string { return "k" }

// TestNew_TiesInRenderingAreOrdered: keys sharing a String() still come out
// in one order.
func TestNew_TiesInRenderingAreOrdered(t *testing.T) {
	t.Parallel()
	data := map[twin]int{{3}: 3, {1}: 1, {2}: 2}
	want := []twin{{1}, {2}, {3}}
	for i := 0; i < 200; i++ {
		e := module.New(data)
		require.Equal(t, want, e.Keys())
		require.Equal(t, "k + 2k + 3k", e.String())
	}
}

// parity is a key type whose modules default to Z/2Z.
type parity int

func (parity) DefaultTorsion() module.Torsion { return module.Mod(2) }

func TestDefaultTorsion_FromKeyType(t *testing.T) {
	t.Parallel()
	require.Equal(t, module.Free, module.DefaultTorsion[string]())
	require.Equal(t, module.Mod(2), module.DefaultTorsion[parity]())

	e := module.New(map[parity]int{1: 3, 2: 4})
	require.Equal(t, module.Mod(2), e.Torsion())
	require.Equal(t, []parity{1}, e.Keys())
	require.Equal(t, 1, e.Coeff(1))

	free := module.New(map[parity]int{1: 3, 2: 4}, module.WithTorsion(module.Free))
	require.Equal(t, module.Free, free.Torsion())
	require.Equal(t, "31 + 42", free.String())
}

func TestCreate_CopiesTorsionNotData(t *testing.T) {
	t.Parallel()
	x := module.New(map[string]int{"a": 1}, module.WithModulus(5))
	y := x.Create(tm("b", 7))
	require.Equal(t, module.Mod(5), y.Torsion())
	require.Equal(t, 2, y.Coeff("b"))
	require.Zero(t, y.Coeff("a"))

	y.SetTorsion(module.Mod(2))
	require.Equal(t, module.Mod(5), x.Torsion(), "sibling configuration must not alias")

	z := x.Zero()
	require.True(t, z.IsZero())
	require.True(t, x.Equal(mustAdd(t, x, z)))
}

func TestElement_ZeroValueIsFreeZero(t *testing.T) {
	t.Parallel()
	var e elem
	require.True(t, e.IsZero())
	require.Equal(t, "0", e.String())

	_, err := e.AddInPlace(module.New(map[string]int{"a": 2}))
	require.NoError(t, err)
	require.Equal(t, 2, e.Coeff("a"))
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()
	x := module.New(map[string]int{"a": 1, "b": 2})
	y := x.Clone()
	_, err := y.AddInPlace(module.New(map[string]int{"a": -1}))
	require.NoError(t, err)
	require.Equal(t, 1, x.Coeff("a"))
	require.Equal(t, []string{"b"}, y.Keys())
}

func TestKeys_CancelledKeyMovesToEnd(t *testing.T) {
	t.Parallel()
	x := module.FromTerms([]term{tm("a", 1), tm("b", 1)})
	_, err := x.SubInPlace(x.Create(tm("a", 1)))
	require.NoError(t, err)
	_, err = x.AddInPlace(x.Create(tm("a", 4)))
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a"}, x.Keys())
}

func TestAll_StopsEarly(t *testing.T) {
	t.Parallel()
	x := module.FromTerms([]term{tm("a", 1), tm("b", 2), tm("c", 3)})
	var seen []string
	for k := range x.All() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}
	require.Equal(t, []string{"a", "b"}, seen)
}
