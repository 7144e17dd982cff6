package pairwise

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pairdiff/matrix"
)

// DifferenceTable — pairwise difference table of a numeric vector
//
// Description:
//
//	Enumerates every unordered index pair (a, b), a < b, of x and writes one
//	column per pair: x[a] in RowFirst, x[b] in RowSecond and the difference
//	magnitude in RowDiff. The table is allocated once, pre-sized to C(N,2)
//	columns, and fully populated before return.
//
// Algorithm Outline:
//  1. cols = C(N,2) in exact integer arithmetic; reject overflow (ErrSizeLimit).
//  2. Allocate a 3×cols Dense (finite-value policy off: NaN/Inf propagate).
//  3. k = 0
//     For a = 0..N-2:
//     For b = a+1..N-1:
//     first[k], second[k], diff[k] = x[a], x[b], d(x[a], x[b]); k++
//
// Edge cases:
//   - N = 0 or N = 1 (nil included): a valid 3×0 table.
//   - Repeated values give RowDiff = 0 for those columns.
//   - Input is read only; the caller may reuse x after return.
//
// Complexity:
//
//	Time   = O(N²)
//	Memory = O(N²)
//
// Errors:
//   - ErrSizeLimit — C(N,2) or 3·C(N,2) does not fit in int.
func DifferenceTable(x []float64, opts ...Option) (*Table, error) {
	o := gatherOptions(opts...)
	n := len(x)

	cols, err := tableCols(n)
	if err != nil {
		return nil, fmt.Errorf("DifferenceTable: %w", err)
	}
	m, err := matrix.NewDense(TableRows, cols, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("DifferenceTable: %w", err)
	}

	// Row views share m's buffer; they are never exposed to callers.
	first, _ := m.RowView(RowFirst)
	second, _ := m.RowView(RowSecond)
	diff, _ := m.RowView(RowDiff)
	d := diffFunc(o.mode)

	var a, b int
	k := 0
	for a = 0; a < n; a++ {
		for b = a + 1; b < n; b++ {
			first[k] = x[a]
			second[k] = x[b]
			diff[k] = d(x[a], x[b])
			k++
		}
	}

	return &Table{m: m, n: n}, nil
}

// EachPair calls fn for every pair of x in table column order and stops early
// when fn returns false. It allocates nothing and never fails; use it when the
// full table is not needed.
func EachPair(x []float64, fn func(Pair) bool, opts ...Option) {
	o := gatherOptions(opts...)
	d := diffFunc(o.mode)
	n := len(x)

	var a, b int
	for a = 0; a < n; a++ {
		for b = a + 1; b < n; b++ {
			if !fn(Pair{I: a, J: b, A: x[a], B: x[b], Diff: d(x[a], x[b])}) {
				return
			}
		}
	}
}

// diffFunc returns the difference kernel for mode.
// Modes are validated by WithDiffMode, so the default branch is AbsDiff.
func diffFunc(mode DiffMode) func(a, b float64) float64 {
	if mode == LegacyCompare {
		return compareDiff
	}

	return absDiff
}

// absDiff is |b − a| via math.Abs; NaN in either operand yields NaN.
func absDiff(a, b float64) float64 {
	return math.Abs(b - a)
}

// compareDiff orders the subtraction with a greater-than branch.
// Any comparison with NaN is false, so NaN falls to a − b (still NaN).
func compareDiff(a, b float64) float64 {
	if b > a {
		return b - a
	}

	return a - b
}
