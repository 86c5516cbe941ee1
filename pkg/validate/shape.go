package validate

import "fmt"

// ShapeValidator checks row-count bounds. Every configured bound is checked
// independently; one message per violated bound.
type ShapeValidator struct {
	MinRows    *int
	MaxRows    *int
	ExactRows  *int
	AllowEmpty bool
}

// Validate implements Validator.
func (v *ShapeValidator) Validate(ctx *Context) ([]string, error) {
	var msgs []string
	n := ctx.RowCount()
	if !v.AllowEmpty && n == 0 {
		msgs = append(msgs, fmt.Sprintf("Table%s is empty but allow_empty=false", ctx.ParamInfo()))
	}
	if v.ExactRows != nil && n != *v.ExactRows {
		msgs = append(msgs, fmt.Sprintf("Table%s has %d rows but exact_rows=%d", ctx.ParamInfo(), n, *v.ExactRows))
	}
	if v.MinRows != nil && n < *v.MinRows {
		msgs = append(msgs, fmt.Sprintf("Table%s has %d rows but min_rows=%d", ctx.ParamInfo(), n, *v.MinRows))
	}
	if v.MaxRows != nil && n > *v.MaxRows {
		msgs = append(msgs, fmt.Sprintf("Table%s has %d rows but max_rows=%d", ctx.ParamInfo(), n, *v.MaxRows))
	}
	return msgs, nil
}
