package pairwise

import (
	"fmt"

	"github.com/katalvlaran/pairdiff/matrix"
)

// Table is a read-only 3×C(N,2) pairwise difference table.
//
// The zero value is not usable; tables come from DifferenceTable. Accessors
// return copies, so a Table never changes after construction and is safe
// for concurrent reads.
type Table struct {
	m *matrix.Dense // TableRows × C(n,2), row-major
	n int           // length of the source vector
}

// Len returns the number of columns, C(N,2).
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return t.m.Cols()
}

// SourceLen returns N, the length of the vector the table was built from.
func (t *Table) SourceLen() int {
	if t == nil {
		return 0
	}

	return t.n
}

// At returns the value in row (RowFirst, RowSecond or RowDiff) of column col.
func (t *Table) At(row, col int) (float64, error) {
	if t == nil {
		return 0, ErrNilTable
	}
	v, err := t.m.At(row, col)
	if err != nil {
		return 0, fmt.Errorf("Table.At: %w: %w", ErrIndexOutOfRange, err)
	}

	return v, nil
}

// Column returns column k as a Pair, source indices included.
// Complexity: O(N) for the index inversion.
func (t *Table) Column(k int) (Pair, error) {
	if t == nil {
		return Pair{}, ErrNilTable
	}
	i, j, err := PairAt(t.n, k)
	if err != nil {
		return Pair{}, fmt.Errorf("Table.Column: %w", err)
	}
	first, _ := t.m.RowView(RowFirst)
	second, _ := t.m.RowView(RowSecond)
	diff, _ := t.m.RowView(RowDiff)

	return Pair{I: i, J: j, A: first[k], B: second[k], Diff: diff[k]}, nil
}

// First returns a copy of RowFirst (x[a] for every column).
func (t *Table) First() []float64 { return t.row(RowFirst) }

// Second returns a copy of RowSecond (x[b] for every column).
func (t *Table) Second() []float64 { return t.row(RowSecond) }

// Diff returns a copy of RowDiff (difference magnitudes).
func (t *Table) Diff() []float64 { return t.row(RowDiff) }

func (t *Table) row(i int) []float64 {
	if t == nil {
		return nil
	}
	// i is one of the fixed row constants; Row cannot fail here.
	r, _ := t.m.Row(i)

	return r
}

// Matrix returns a deep copy of the underlying 3×C(N,2) Dense matrix.
// The copy is independent and mutable.
func (t *Table) Matrix() *matrix.Dense {
	if t == nil {
		return nil
	}

	return t.m.Clone().(*matrix.Dense)
}

// String renders the table row by row (see matrix.Dense.String).
func (t *Table) String() string {
	if t == nil {
		return "<nil>"
	}

	return t.m.String()
}
