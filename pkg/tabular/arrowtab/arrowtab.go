// Package arrowtab adapts Apache Arrow record batches to the tabular.Table
// contract, giving the validation engine an eager columnar backend with
// Arrow-native null accounting.
//
// Supported child array types are the primitive integers, float32/float64,
// strings and booleans; cells of other Arrow types read as null. Dtype tokens
// come straight from arrow.DataType.Name() ("int64", "utf8", "bool", ...) and
// are normalized by tabular.KindOf like any other backend token.
//
// The adapter does not retain or release the record; the caller keeps
// ownership of its lifetime.
package arrowtab

import (
	"github.com/apache/arrow/go/v7/arrow"
	"github.com/apache/arrow/go/v7/arrow/array"

	"github.com/framecheck/framecheck/pkg/tabular"
)

// Table wraps an arrow.Record as a tabular.Table.
type Table struct {
	rec   arrow.Record
	names []string
}

// New adapts a record batch. The record must outlive the returned table.
func New(rec arrow.Record) *Table {
	fields := rec.Schema().Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return &Table{rec: rec, names: names}
}

// Columns returns the schema field names in schema order.
func (t *Table) Columns() []string { return t.names }

// NumRows returns the record row count.
func (t *Table) NumRows() int { return int(t.rec.NumRows()) }

// Dtype returns the Arrow type name of a column, "" for unknown columns.
func (t *Table) Dtype(col string) string {
	i, ok := t.fieldIndex(col)
	if !ok {
		return ""
	}
	return t.rec.Schema().Field(i).Type.Name()
}

// Column returns the named column or nil.
func (t *Table) Column(col string) tabular.Series {
	i, ok := t.fieldIndex(col)
	if !ok {
		return nil
	}
	return &series{arr: t.rec.Column(i)}
}

func (t *Table) fieldIndex(col string) (int, bool) {
	indices := t.rec.Schema().FieldIndices(col)
	if len(indices) == 0 {
		return 0, false
	}
	return indices[0], true
}

type series struct {
	arr arrow.Array
}

func (s *series) Len() int { return s.arr.Len() }

func (s *series) Value(i int) any {
	if s.arr.IsNull(i) {
		return nil
	}
	switch a := s.arr.(type) {
	case *array.Int8:
		return int64(a.Value(i))
	case *array.Int16:
		return int64(a.Value(i))
	case *array.Int32:
		return int64(a.Value(i))
	case *array.Int64:
		return a.Value(i)
	case *array.Uint8:
		return int64(a.Value(i))
	case *array.Uint16:
		return int64(a.Value(i))
	case *array.Uint32:
		return int64(a.Value(i))
	case *array.Uint64:
		return int64(a.Value(i))
	case *array.Float32:
		return float64(a.Value(i))
	case *array.Float64:
		return a.Value(i)
	case *array.String:
		return a.Value(i)
	case *array.Boolean:
		return a.Value(i)
	default:
		return nil
	}
}

func (s *series) IsNull(i int) bool { return s.arr.IsNull(i) }

// NullCount reads the validity bitmap instead of scanning cells.
func (s *series) NullCount() int { return s.arr.NullN() }

func (s *series) DistinctCount() int {
	seen := make(map[any]struct{}, s.arr.Len())
	hasNull := false
	n := 0
	for i := 0; i < s.arr.Len(); i++ {
		v := s.Value(i)
		if tabular.IsNull(v) {
			if !hasNull {
				hasNull = true
				n++
			}
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			n++
		}
	}
	return n
}
