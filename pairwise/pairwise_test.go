package pairwise_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pairdiff/pairwise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// column is a compact (first, second, diff) triple for expectations.
type column [3]float64

func columns(t *testing.T, tbl *pairwise.Table) []column {
	t.Helper()
	first, second, diff := tbl.First(), tbl.Second(), tbl.Diff()
	require.Len(t, second, len(first))
	require.Len(t, diff, len(first))

	out := make([]column, len(first))
	for k := range first {
		out[k] = column{first[k], second[k], diff[k]}
	}

	return out
}

// TestDifferenceTable_EmptyAndSingle verifies that N=0 and N=1 yield 3×0 tables.
func TestDifferenceTable_EmptyAndSingle(t *testing.T) {
	for _, x := range [][]float64{nil, {}, {42}} {
		tbl, err := pairwise.DifferenceTable(x)
		require.NoError(t, err, "short input must not error")
		assert.Equal(t, 0, tbl.Len())
		assert.Equal(t, len(x), tbl.SourceLen())

		m := tbl.Matrix()
		assert.Equal(t, pairwise.TableRows, m.Rows(), "table always has three rows")
		assert.Equal(t, 0, m.Cols())
		assert.Empty(t, tbl.Diff())
	}
}

// TestDifferenceTable_ThreeValues checks the documented column order for [1,2,3].
func TestDifferenceTable_ThreeValues(t *testing.T) {
	tbl, err := pairwise.DifferenceTable([]float64{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, []column{{1, 2, 1}, {1, 3, 2}, {2, 3, 1}}, columns(t, tbl))
}

// TestDifferenceTable_Descending checks that a single pair keeps input order and a positive diff.
func TestDifferenceTable_Descending(t *testing.T) {
	tbl, err := pairwise.DifferenceTable([]float64{5, 1})
	require.NoError(t, err)

	assert.Equal(t, []column{{5, 1, 4}}, columns(t, tbl))
}

// TestDifferenceTable_Repeated verifies that equal values give zero differences.
func TestDifferenceTable_Repeated(t *testing.T) {
	tbl, err := pairwise.DifferenceTable([]float64{3, 3, 3})
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0, 0}, tbl.Diff())
	assert.Equal(t, []float64{3, 3, 3}, tbl.First())
	assert.Equal(t, []float64{3, 3, 3}, tbl.Second())
}

// TestDifferenceTable_Invariants checks column count and |row0 − row1| over a range of N.
func TestDifferenceTable_Invariants(t *testing.T) {
	for n := 0; n <= 40; n++ {
		x := make([]float64, n)
		for i := range x {
			x[i] = math.Sin(float64(i)*1.7) * 100
		}

		tbl, err := pairwise.DifferenceTable(x)
		require.NoError(t, err)
		require.Equal(t, n*(n-1)/2, tbl.Len(), "column count for n=%d", n)

		for k, c := range columns(t, tbl) {
			assert.Equal(t, math.Abs(c[0]-c[1]), c[2], "n=%d col=%d", n, k)
		}
	}
}

// TestDifferenceTable_Enumeration verifies column k holds (x[a], x[b]) in nested-loop order.
func TestDifferenceTable_Enumeration(t *testing.T) {
	x := []float64{10, 20, 30, 40, 50}
	tbl, err := pairwise.DifferenceTable(x)
	require.NoError(t, err)

	k := 0
	for a := 0; a < len(x); a++ {
		for b := a + 1; b < len(x); b++ {
			p, err := tbl.Column(k)
			require.NoError(t, err)
			assert.Equal(t, pairwise.Pair{I: a, J: b, A: x[a], B: x[b], Diff: x[b] - x[a]}, p)
			k++
		}
	}
	assert.Equal(t, k, tbl.Len())
}

// TestDifferenceTable_Idempotent confirms two calls produce bit-identical tables.
func TestDifferenceTable_Idempotent(t *testing.T) {
	x := []float64{0.1, -7.25, 3e300, -0.0, 1.0 / 3, math.Inf(1), math.NaN()}

	t1, err := pairwise.DifferenceTable(x)
	require.NoError(t, err)
	t2, err := pairwise.DifferenceTable(x)
	require.NoError(t, err)

	c1, c2 := columns(t, t1), columns(t, t2)
	require.Len(t, c2, len(c1))
	for k := range c1 {
		for r := 0; r < pairwise.TableRows; r++ {
			assert.Equal(t, math.Float64bits(c1[k][r]), math.Float64bits(c2[k][r]), "col=%d row=%d", k, r)
		}
	}
}

// TestDifferenceTable_OrderSensitive verifies that permuting the input changes the table.
func TestDifferenceTable_OrderSensitive(t *testing.T) {
	t1, err := pairwise.DifferenceTable([]float64{1, 2, 3})
	require.NoError(t, err)
	t2, err := pairwise.DifferenceTable([]float64{3, 1, 2})
	require.NoError(t, err)

	assert.NotEqual(t, columns(t, t1), columns(t, t2))
	assert.Equal(t, []column{{3, 1, 2}, {3, 2, 1}, {1, 2, 1}}, columns(t, t2))
}

// TestDifferenceTable_InputUntouched confirms the input slice is only read.
func TestDifferenceTable_InputUntouched(t *testing.T) {
	x := []float64{4, -1, 9}
	_, err := pairwise.DifferenceTable(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, -1, 9}, x)
}

// TestDifferenceTable_NonFinite checks that NaN and ±Inf propagate instead of erroring.
func TestDifferenceTable_NonFinite(t *testing.T) {
	inf := math.Inf(1)
	tbl, err := pairwise.DifferenceTable([]float64{math.NaN(), 1, inf, -inf})
	require.NoError(t, err)

	d := tbl.Diff()
	require.Len(t, d, 6)
	// (NaN,1) (NaN,+Inf) (NaN,-Inf) (1,+Inf) (1,-Inf) (+Inf,-Inf)
	assert.True(t, math.IsNaN(d[0]))
	assert.True(t, math.IsNaN(d[1]))
	assert.True(t, math.IsNaN(d[2]))
	assert.True(t, math.IsInf(d[3], 1))
	assert.True(t, math.IsInf(d[4], 1))
	assert.True(t, math.IsInf(d[5], 1))

	same, err := pairwise.DifferenceTable([]float64{inf, inf})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(same.Diff()[0]), "Inf − Inf is NaN")
}

// TestDifferenceTable_LegacyCompare matches AbsDiff on finite data and differs only in the sign of zero.
func TestDifferenceTable_LegacyCompare(t *testing.T) {
	x := []float64{2.5, -1, 7, 7, 0.125, -3e10}
	abs, err := pairwise.DifferenceTable(x)
	require.NoError(t, err)
	legacy, err := pairwise.DifferenceTable(x, pairwise.WithDiffMode(pairwise.LegacyCompare))
	require.NoError(t, err)
	assert.Equal(t, abs.Diff(), legacy.Diff())

	negZero := math.Copysign(0, -1)
	z := []float64{negZero, 0}
	absZ, err := pairwise.DifferenceTable(z)
	require.NoError(t, err)
	legacyZ, err := pairwise.DifferenceTable(z, pairwise.WithDiffMode(pairwise.LegacyCompare))
	require.NoError(t, err)
	assert.False(t, math.Signbit(absZ.Diff()[0]), "math.Abs yields +0")
	assert.True(t, math.Signbit(legacyZ.Diff()[0]), "−0 − +0 yields −0 on the legacy branch")

	nan, err := pairwise.DifferenceTable([]float64{1, math.NaN()}, pairwise.WithDiffMode(pairwise.LegacyCompare))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(nan.Diff()[0]))
}

// TestWithDiffMode_Invalid ensures an unknown mode panics at option construction.
func TestWithDiffMode_Invalid(t *testing.T) {
	assert.Panics(t, func() { pairwise.WithDiffMode(pairwise.DiffMode(7)) })
	assert.Equal(t, "AbsDiff", pairwise.AbsDiff.String())
	assert.Equal(t, "LegacyCompare", pairwise.LegacyCompare.String())
}

// TestEachPair_MatchesTable verifies EachPair visits the same columns in the same order.
func TestEachPair_MatchesTable(t *testing.T) {
	x := []float64{9, -2, 4.5, 0, 11}
	tbl, err := pairwise.DifferenceTable(x)
	require.NoError(t, err)

	k := 0
	pairwise.EachPair(x, func(p pairwise.Pair) bool {
		want, err := tbl.Column(k)
		require.NoError(t, err)
		assert.Equal(t, want, p, "col=%d", k)
		k++

		return true
	})
	assert.Equal(t, tbl.Len(), k)
}

// TestEachPair_EarlyStop verifies that returning false stops the walk.
func TestEachPair_EarlyStop(t *testing.T) {
	var seen []pairwise.Pair
	pairwise.EachPair([]float64{1, 2, 3, 4}, func(p pairwise.Pair) bool {
		seen = append(seen, p)

		return len(seen) < 2
	})
	require.Len(t, seen, 2)
	assert.Equal(t, 0, seen[1].I)
	assert.Equal(t, 2, seen[1].J)

	calls := 0
	pairwise.EachPair([]float64{1}, func(pairwise.Pair) bool { calls++; return true })
	assert.Zero(t, calls)
}
