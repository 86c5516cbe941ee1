package validate

import (
	"fmt"
	"strings"

	"github.com/framecheck/framecheck/pkg/tabular"
)

// UniqueValidator checks single-column uniqueness: the duplicate count is the
// row count minus the distinct count.
type UniqueValidator struct {
	Columns []string
}

// Validate implements Validator.
func (v *UniqueValidator) Validate(ctx *Context) ([]string, error) {
	var msgs []string
	for _, col := range v.Columns {
		if !ctx.HasColumn(col) {
			continue
		}
		dups := ctx.RowCount() - ctx.Series(col).DistinctCount()
		if dups > 0 {
			msgs = append(msgs, fmt.Sprintf("Column '%s'%s contains %d duplicate values but unique=true",
				col, ctx.ParamInfo(), dups))
		}
	}
	return msgs, nil
}

// CompositeUniqueValidator checks multi-column uniqueness. A group that
// references a column absent from the table is itself a violation and its
// uniqueness check is skipped.
type CompositeUniqueValidator struct {
	Groups [][]string
}

// Validate implements Validator.
func (v *CompositeUniqueValidator) Validate(ctx *Context) ([]string, error) {
	var msgs []string
	for _, group := range v.Groups {
		var missing []string
		for _, col := range group {
			if !ctx.HasColumn(col) {
				missing = append(missing, col)
			}
		}
		desc := groupDesc(group)
		if len(missing) > 0 {
			msgs = append(msgs, fmt.Sprintf("composite_unique references missing columns %s in combination [%s]%s",
				formatNames(missing), desc, ctx.ParamInfo()))
			continue
		}
		dups := ctx.RowCount() - v.distinctTuples(ctx, group)
		if dups > 0 {
			msgs = append(msgs, fmt.Sprintf("Columns %s%s contain %d duplicate combinations but composite_unique is set",
				desc, ctx.ParamInfo(), dups))
		}
	}
	return msgs, nil
}

func (v *CompositeUniqueValidator) distinctTuples(ctx *Context, group []string) int {
	series := make([]tabular.Series, len(group))
	for i, col := range group {
		series[i] = ctx.Series(col)
	}
	seen := make(map[string]struct{}, ctx.RowCount())
	for i := 0; i < ctx.RowCount(); i++ {
		var key strings.Builder
		for _, s := range series {
			cell := s.Value(i)
			// Type-tagged so values from different families never collide.
			fmt.Fprintf(&key, "%T:%v\x1f", cell, cell)
		}
		seen[key.String()] = struct{}{}
	}
	return len(seen)
}

func groupDesc(group []string) string {
	quoted := make([]string, len(group))
	for i, col := range group {
		quoted[i] = "'" + col + "'"
	}
	return strings.Join(quoted, " + ")
}
