// Package pairdiff computes pairwise difference tables over numeric vectors.
//
// What is pairdiff?
//
//	A small, pure-Go, deterministic replacement for the nested loop that
//	compares every pair of values in a vector. For N values it produces a
//	3×C(N,2) table: first value, second value and their absolute difference.
//
// Layout:
//
//	matrix/   — row-major Dense float64 storage, sentinel errors, validators
//	pairwise/ — DifferenceTable, EachPair, PairCount, IndexOf/PairAt
//	columnar/ — Apache Arrow hand-off (Float64 array in, record out)
//
// Quick example:
//
//	tbl, _ := pairwise.DifferenceTable([]float64{1, 2, 3})
//	// [1, 1, 2]
//	// [2, 3, 3]
//	// [1, 2, 1]
//
//	go get github.com/katalvlaran/pairdiff
package pairdiff
