package validate

import (
	"fmt"

	"github.com/framecheck/framecheck/pkg/tabular"
)

// Context is the immutable per-call snapshot of a table shared by all
// validators: column order, column set, row count and dtype tokens are read
// once at construction. It also carries the textual call context used purely
// for message formatting.
type Context struct {
	table     tabular.Table
	funcName  string
	paramName string
	isReturn  bool

	columns  []string
	colSet   map[string]struct{}
	rowCount int
	dtypes   map[string]string
}

// NewContext snapshots a table without call context.
func NewContext(t tabular.Table) *Context {
	return NewCallContext(t, "", "", false)
}

// NewCallContext snapshots a table along with the enclosing function name and
// the parameter name (or return-value flag) for message suffixes.
func NewCallContext(t tabular.Table, funcName, paramName string, isReturn bool) *Context {
	cols := t.Columns()
	ctx := &Context{
		table:     t,
		funcName:  funcName,
		paramName: paramName,
		isReturn:  isReturn,
		columns:   append([]string(nil), cols...),
		colSet:    make(map[string]struct{}, len(cols)),
		rowCount:  t.NumRows(),
		dtypes:    make(map[string]string, len(cols)),
	}
	for _, c := range cols {
		ctx.colSet[c] = struct{}{}
		ctx.dtypes[c] = t.Dtype(c)
	}
	return ctx
}

// Table returns the underlying table, for row iteration.
func (c *Context) Table() tabular.Table { return c.table }

// Columns returns the column names in table order.
func (c *Context) Columns() []string { return c.columns }

// RowCount returns the snapshot row count.
func (c *Context) RowCount() int { return c.rowCount }

// HasColumn is an O(1) column existence check.
func (c *Context) HasColumn(col string) bool {
	_, ok := c.colSet[col]
	return ok
}

// Dtype returns the cached dtype token for a column.
func (c *Context) Dtype(col string) string { return c.dtypes[col] }

// Series fetches a column lazily from the underlying table.
func (c *Context) Series(col string) tabular.Series { return c.table.Column(col) }

// ParamInfo formats the call-context suffix appended to violation messages,
// e.g. " in function 'load' parameter 'orders'" or " in function 'load'
// return value". Without a function name it is empty.
func (c *Context) ParamInfo() string {
	if c.funcName == "" {
		return ""
	}
	if c.isReturn {
		return fmt.Sprintf(" in function '%s' return value", c.funcName)
	}
	if c.paramName != "" {
		return fmt.Sprintf(" in function '%s' parameter '%s'", c.funcName, c.paramName)
	}
	return ""
}
