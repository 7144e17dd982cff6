// Package columnar hands pairwise difference tables to and from Apache Arrow.
//
// A host statistical environment typically owns its data as Arrow arrays.
// FromFloat64Array copies a Float64 array into the []float64 input that
// pairwise.DifferenceTable expects, and TableRecord transposes the 3×C(N,2)
// table into a record with one row per pair:
//
//	a float64 | b float64 | diff float64
//
// Row order of the record equals column order of the table. The number of
// source values is recorded in the schema metadata under MetaSourceLen.
//
// Records are reference counted; callers must Release them.
package columnar
