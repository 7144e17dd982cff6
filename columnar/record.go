package columnar

import (
	"fmt"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/katalvlaran/pairdiff/pairwise"
)

// Record field names, in field order.
const (
	FieldFirst  = "a"
	FieldSecond = "b"
	FieldDiff   = "diff"
)

// MetaSourceLen is the schema metadata key holding N, the source length.
const MetaSourceLen = "pairdiff.source_len"

// fields is the fixed record layout; all columns are non-nullable float64.
var fields = []arrow.Field{
	{Name: FieldFirst, Type: arrow.PrimitiveTypes.Float64},
	{Name: FieldSecond, Type: arrow.PrimitiveTypes.Float64},
	{Name: FieldDiff, Type: arrow.PrimitiveTypes.Float64},
}

// Schema returns the record schema for a table built from n source values.
func Schema(n int) *arrow.Schema {
	md := arrow.NewMetadata([]string{MetaSourceLen}, []string{strconv.Itoa(n)})

	return arrow.NewSchema(fields, &md)
}

// FromFloat64Array copies arr into a new []float64 suitable for
// pairwise.DifferenceTable. Slice offsets of arr are honoured.
//
// Errors:
//   - ErrNilArray if arr is nil.
//   - ErrNullValue (with the slot index) if any slot is null.
func FromFloat64Array(arr *array.Float64) ([]float64, error) {
	if arr == nil {
		return nil, ErrNilArray
	}
	if arr.NullN() > 0 {
		for i := 0; i < arr.Len(); i++ {
			if arr.IsNull(i) {
				return nil, fmt.Errorf("FromFloat64Array: slot %d: %w", i, ErrNullValue)
			}
		}
	}
	vals := arr.Float64Values()
	out := make([]float64, len(vals))
	copy(out, vals)

	return out, nil
}

// TableRecord converts t into an Arrow record with one row per table column.
// A nil mem uses memory.DefaultAllocator. The caller owns the returned
// record and must Release it.
//
// Complexity: O(C(N,2)) time and memory.
func TableRecord(t *pairwise.Table, mem memory.Allocator) (arrow.Record, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if mem == nil {
		mem = memory.DefaultAllocator
	}

	b := array.NewRecordBuilder(mem, Schema(t.SourceLen()))
	defer b.Release()

	n := t.Len()
	rows := [pairwise.TableRows][]float64{t.First(), t.Second(), t.Diff()}
	for i := range rows {
		fb := b.Field(i).(*array.Float64Builder)
		fb.Reserve(n)
		fb.AppendValues(rows[i], nil)
	}

	return b.NewRecord(), nil
}

// DifferenceRecord runs pairwise.DifferenceTable over arr and returns the
// result as a record (see TableRecord).
func DifferenceRecord(arr *array.Float64, mem memory.Allocator, opts ...pairwise.Option) (arrow.Record, error) {
	x, err := FromFloat64Array(arr)
	if err != nil {
		return nil, fmt.Errorf("DifferenceRecord: %w", err)
	}
	t, err := pairwise.DifferenceTable(x, opts...)
	if err != nil {
		return nil, fmt.Errorf("DifferenceRecord: %w", err)
	}

	return TableRecord(t, mem)
}
