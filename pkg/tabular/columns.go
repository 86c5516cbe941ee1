package tabular

import "fmt"

// Column is one named vector used to construct a Columns table.
type Column struct {
	Name   string
	Token  string // dtype token; inferred from values when empty
	Values []any
}

// Col builds a Column from a typed slice, inferring the dtype token from the
// element type. For []any element slices the token is inferred from the first
// non-null cell instead.
func Col[T any](name string, values []T) Column {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = Normalize(v)
	}
	var zero T
	token := ""
	if k := KindOfValue(Normalize(zero)); k != Unknown {
		token = k.String()
	}
	return Column{Name: name, Token: token, Values: cells}
}

// ColValues builds a Column from untyped cells with an explicit dtype token.
func ColValues(name, token string, values []any) Column {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = Normalize(v)
	}
	return Column{Name: name, Token: token, Values: cells}
}

// Columns is the columnar native backend: ordered, equal-length vectors.
type Columns struct {
	names  []string
	dtypes map[string]string
	series map[string]*memSeries
	nrows  int
}

// NewColumns builds a columnar table. All vectors must share one length and
// column names must be unique.
func NewColumns(cols ...Column) (*Columns, error) {
	t := &Columns{
		names:  make([]string, 0, len(cols)),
		dtypes: make(map[string]string, len(cols)),
		series: make(map[string]*memSeries, len(cols)),
	}
	for i, c := range cols {
		if _, dup := t.series[c.Name]; dup {
			return nil, errDuplicate(c.Name)
		}
		if i == 0 {
			t.nrows = len(c.Values)
		} else if len(c.Values) != t.nrows {
			return nil, fmt.Errorf("%w: column %q has %d values, want %d",
				ErrRaggedColumns, c.Name, len(c.Values), t.nrows)
		}
		values := make([]any, len(c.Values))
		for j, v := range c.Values {
			values[j] = Normalize(v)
		}
		token := c.Token
		if token == "" {
			token = inferDtype(values)
		}
		t.names = append(t.names, c.Name)
		t.dtypes[c.Name] = token
		t.series[c.Name] = &memSeries{values: values}
	}
	return t, nil
}

// Columns returns the column names in table order.
func (t *Columns) Columns() []string { return t.names }

// NumRows returns the vector length.
func (t *Columns) NumRows() int { return t.nrows }

// Dtype returns the dtype token for a column, "" for unknown columns.
func (t *Columns) Dtype(col string) string { return t.dtypes[col] }

// Column returns the named column or nil.
func (t *Columns) Column(col string) Series {
	s, ok := t.series[col]
	if !ok {
		return nil
	}
	return s
}

func errDuplicate(col string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateColumn, col)
}
