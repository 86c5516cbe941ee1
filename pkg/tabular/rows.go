package tabular

// Rows is the row-oriented native backend: an ordered column list over a
// sequence of records. Cells missing from a record read as null.
type Rows struct {
	cols   []string
	dtypes map[string]string
	series map[string]*memSeries
	nrows  int
}

// RowsOption configures Rows construction.
type RowsOption func(*Rows)

// WithDtypes declares dtype tokens for columns up front. Declared tokens win
// over inference, which matters for empty tables and all-null columns.
func WithDtypes(dtypes map[string]string) RowsOption {
	return func(r *Rows) {
		for col, token := range dtypes {
			r.dtypes[col] = token
		}
	}
}

// NewRows builds a row-oriented table from column names and records. Values
// are normalized (ints to int64, float32 to float64) and copied; the input
// slices stay untouched. Column dtypes are inferred from the first non-null
// cell unless declared via WithDtypes.
func NewRows(columns []string, records []map[string]any, opts ...RowsOption) (*Rows, error) {
	r := &Rows{
		cols:   append([]string(nil), columns...),
		dtypes: make(map[string]string, len(columns)),
		series: make(map[string]*memSeries, len(columns)),
		nrows:  len(records),
	}
	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if _, dup := seen[col]; dup {
			return nil, errDuplicate(col)
		}
		seen[col] = struct{}{}
		values := make([]any, len(records))
		for i, rec := range records {
			values[i] = Normalize(rec[col])
		}
		r.series[col] = &memSeries{values: values}
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, col := range columns {
		if _, ok := r.dtypes[col]; !ok {
			r.dtypes[col] = inferDtype(r.series[col].values)
		}
	}
	return r, nil
}

// Columns returns the column names in table order.
func (r *Rows) Columns() []string { return r.cols }

// NumRows returns the number of records.
func (r *Rows) NumRows() int { return r.nrows }

// Dtype returns the dtype token for a column, "" for unknown columns.
func (r *Rows) Dtype(col string) string { return r.dtypes[col] }

// Column returns the named column or nil.
func (r *Rows) Column(col string) Series {
	s, ok := r.series[col]
	if !ok {
		return nil
	}
	return s
}

// inferDtype derives a dtype token from the first non-null cell.
func inferDtype(values []any) string {
	for _, v := range values {
		if IsNull(v) {
			continue
		}
		if k := KindOfValue(v); k != Unknown {
			return k.String()
		}
	}
	return Unknown.String()
}
