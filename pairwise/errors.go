package pairwise

import "errors"

var (
	// ErrSizeLimit indicates that C(N,2) or the 3·C(N,2) table size does not
	// fit in int. No partial table is produced.
	ErrSizeLimit = errors.New("pairwise: pair table exceeds size limit")

	// ErrNegativeLength indicates a negative sequence length was supplied.
	ErrNegativeLength = errors.New("pairwise: length must be >= 0")

	// ErrIndexOutOfRange indicates a pair index or column index outside the table.
	ErrIndexOutOfRange = errors.New("pairwise: index out of range")

	// ErrNilTable indicates a method was called on a nil *Table.
	ErrNilTable = errors.New("pairwise: nil table")
)
