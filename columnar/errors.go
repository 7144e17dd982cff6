package columnar

import "errors"

var (
	// ErrNilArray indicates a nil input array.
	ErrNilArray = errors.New("columnar: nil array")

	// ErrNullValue indicates a null slot in the input array; pairs of missing
	// values are undefined, so nulls are rejected rather than skipped.
	ErrNullValue = errors.New("columnar: null value in input")

	// ErrNilTable indicates a nil *pairwise.Table.
	ErrNilTable = errors.New("columnar: nil table")
)
