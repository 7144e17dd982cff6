// Package pairwise builds pairwise difference tables over numeric vectors.
//
// What is a pairwise difference table?
//
//	For an input x of length N, every unordered index pair (a, b) with a < b
//	becomes one column holding x[a], x[b] and |x[a] − x[b]|. The result is a
//	3×C(N,2) matrix, C(N,2) = N·(N−1)/2, that replaces the nested loop a
//	statistical environment would otherwise run itself.
//
// Column order is part of the contract:
//
//	a = 0..N-2 (outer, ascending), b = a+1..N-1 (inner, ascending)
//
//	x = [1, 2, 3]
//	        col0 col1 col2
//	  row0 [ 1,   1,   2 ]   first value  x[a]
//	  row1 [ 2,   3,   3 ]   second value x[b]
//	  row2 [ 1,   2,   1 ]   |x[a] − x[b]|
//
// Key features:
//   - exact integer pair count with overflow rejection (ErrSizeLimit)
//   - inputs of length 0 or 1 give a valid 3×0 table, not an error
//   - EachPair streams the same enumeration without allocating a table
//   - IndexOf / PairAt convert between (a, b) and column index
//   - LegacyCompare mode reproduces comparison-branch differences
//
// Usage:
//
//	import "github.com/katalvlaran/pairdiff/pairwise"
//
//	tbl, err := pairwise.DifferenceTable([]float64{5, 1})
//	if err != nil {
//	  // only ErrSizeLimit for pathological lengths
//	}
//	p, _ := tbl.Column(0) // Pair{I:0, J:1, A:5, B:1, Diff:4}
//
// Performance:
//
//   - Time:   O(N²)
//   - Memory: O(N²), one allocation of 3·C(N,2) float64 values
package pairwise
