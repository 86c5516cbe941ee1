package tabular

import "iter"

// Table is the read-only contract the validation engine consumes. A Table is
// an eager, immutable snapshot: implementations must not change shape or
// content after construction.
type Table interface {
	// Columns returns the column names in table order.
	Columns() []string
	// NumRows returns the number of rows.
	NumRows() int
	// Dtype returns the backend dtype token for a column, or "" when the
	// column does not exist.
	Dtype(col string) string
	// Column returns the named column, or nil when it does not exist.
	Column(col string) Series
}

// Series is a single column of cell values. A nil cell is a null.
type Series interface {
	Len() int
	// Value returns the cell at index i, or nil when it is null.
	Value(i int) any
	IsNull(i int) bool
	NullCount() int
	// DistinctCount counts distinct cell values, nulls included as one value.
	DistinctCount() int
}

// IterRows iterates a table row by row in table order, yielding the row index
// and a fresh column-name to cell-value mapping for each row.
func IterRows(t Table) iter.Seq2[int, map[string]any] {
	return func(yield func(int, map[string]any) bool) {
		cols := t.Columns()
		series := make([]Series, len(cols))
		for i, c := range cols {
			series[i] = t.Column(c)
		}
		for i := range t.NumRows() {
			row := make(map[string]any, len(cols))
			for j, c := range cols {
				row[c] = series[j].Value(i)
			}
			if !yield(i, row) {
				return
			}
		}
	}
}
