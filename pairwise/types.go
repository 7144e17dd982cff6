// Package pairwise defines rows, pair records and difference modes.
package pairwise

// Row indices of a difference table.
const (
	RowFirst  = 0 // x[a]
	RowSecond = 1 // x[b]
	RowDiff   = 2 // |x[a] − x[b]|

	// TableRows is the fixed row count of every difference table.
	TableRows = 3
)

// Pair is one column of a difference table together with its source indices.
//
//   - I, J — source indices, I < J.
//   - A, B — x[I] and x[J].
//   - Diff — difference magnitude under the configured DiffMode.
type Pair struct {
	I, J int
	A, B float64
	Diff float64
}

// DiffMode selects how the difference magnitude is computed.
//
//   - AbsDiff       — math.Abs(x[b] − x[a]). Default. Always yields +0 for
//     equal operands and NaN whenever either operand is NaN.
//   - LegacyCompare — x[b] − x[a] if x[b] > x[a], else x[a] − x[b].
//     Matches AbsDiff for every input, NaN and ±Inf included, except for the
//     sign of zero: x[a] = −0, x[b] = +0 gives −0. Kept for callers that must
//     reproduce historical output bit-for-bit.
type DiffMode int

const (
	// AbsDiff uses a direct absolute value of the subtraction.
	AbsDiff DiffMode = iota

	// LegacyCompare uses a greater-than branch to order the subtraction.
	LegacyCompare
)

// String returns the mode name.
func (m DiffMode) String() string {
	switch m {
	case AbsDiff:
		return "AbsDiff"
	case LegacyCompare:
		return "LegacyCompare"
	default:
		return "DiffMode(?)"
	}
}
