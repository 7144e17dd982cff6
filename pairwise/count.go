package pairwise

import (
	"fmt"
	"math"
)

// PairCount returns C(n,2) = n·(n−1)/2, the number of unordered pairs of n items.
//
// The product is formed from the even factor halved first, so the result is
// exact over the whole int range and never passes through float64.
//
// Errors:
//   - ErrNegativeLength if n < 0.
//   - ErrSizeLimit if C(n,2) does not fit in int.
//
// Complexity: O(1).
func PairCount(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("PairCount(%d): %w", n, ErrNegativeLength)
	}
	if n < 2 {
		return 0, nil
	}

	// One of n, n−1 is even; halve it before multiplying.
	p, q := n, n-1
	if p%2 == 0 {
		p /= 2
	} else {
		q /= 2
	}
	if p > math.MaxInt/q {
		return 0, fmt.Errorf("PairCount(%d): %w", n, ErrSizeLimit)
	}

	return p * q, nil
}

// tableCols validates n for table allocation: C(n,2) columns and
// TableRows·C(n,2) cells must both fit in int.
func tableCols(n int) (int, error) {
	cols, err := PairCount(n)
	if err != nil {
		return 0, err
	}
	if cols > math.MaxInt/TableRows {
		return 0, fmt.Errorf("table %dx%d: %w", TableRows, cols, ErrSizeLimit)
	}

	return cols, nil
}

// IndexOf returns the column index of pair (i, j) in a table built from n values.
//
// Columns are numbered in enumeration order (i outer ascending, j inner
// ascending), so the pairs with first index i start at C(n,2) − C(n−i,2).
//
// Errors:
//   - ErrNegativeLength / ErrSizeLimit from PairCount(n).
//   - ErrIndexOutOfRange unless 0 ≤ i < j < n.
//
// Complexity: O(1).
func IndexOf(n, i, j int) (int, error) {
	total, err := PairCount(n)
	if err != nil {
		return 0, err
	}
	if i < 0 || j <= i || j >= n {
		return 0, fmt.Errorf("IndexOf(%d,%d,%d): %w", n, i, j, ErrIndexOutOfRange)
	}
	// C(n−i,2) <= C(n,2), so the subtraction cannot overflow.
	tail, err := PairCount(n - i)
	if err != nil {
		return 0, err
	}

	return total - tail + (j - i - 1), nil
}

// PairAt is the inverse of IndexOf: it returns the source indices (i, j)
// of column k in a table built from n values.
//
// Errors:
//   - ErrNegativeLength / ErrSizeLimit from PairCount(n).
//   - ErrIndexOutOfRange unless 0 ≤ k < C(n,2).
//
// Complexity: O(n) worst case.
func PairAt(n, k int) (i, j int, err error) {
	total, err := PairCount(n)
	if err != nil {
		return 0, 0, err
	}
	if k < 0 || k >= total {
		return 0, 0, fmt.Errorf("PairAt(%d,%d): %w", n, k, ErrIndexOutOfRange)
	}
	// Walk the row blocks; block i holds n−1−i columns.
	for i = 0; i < n-1; i++ {
		width := n - 1 - i
		if k < width {
			return i, i + 1 + k, nil
		}
		k -= width
	}

	// unreachable: k < total guarantees a block was found
	return 0, 0, fmt.Errorf("PairAt(%d,%d): %w", n, k, ErrIndexOutOfRange)
}
