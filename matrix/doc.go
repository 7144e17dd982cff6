// Package matrix provides the row-major float64 storage used by pairdiff.
//
// The matrix package provides:
//
//   - Dense, a flat row-major buffer with bounds-checked At/Set.
//   - Zero-sized shapes (e.g. 3×0), which are legal results for empty inputs.
//   - A finite-value numeric policy (WithValidateNaNInf) applied on Set.
//   - Small validators (ValidateNotNil, ValidateShape) shared by callers.
//
// Producers (see package pairwise) fill a freshly allocated matrix through
// RowView to avoid per-cell checks; consumers read copies through Row.
package matrix
