package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/framecheck/framecheck/pkg/tabular"
)

// ColumnsExistValidator reports identifiers whose resolved match set was
// empty. The missing list is precomputed during resolution; the validator only
// formats it.
type ColumnsExistValidator struct {
	Missing   []string
	Available []string
}

// Validate implements Validator.
func (v *ColumnsExistValidator) Validate(ctx *Context) ([]string, error) {
	if len(v.Missing) == 0 {
		return nil, nil
	}
	msg := fmt.Sprintf("Missing columns: %s%s. Got columns: %s",
		formatNames(v.Missing), ctx.ParamInfo(), formatNames(v.Available))
	return []string{msg}, nil
}

// DtypeExpectation pairs a real column name with its expected dtype, in spec
// order so messages are deterministic.
type DtypeExpectation struct {
	Column string
	Dtype  any
}

// DtypeValidator checks column dtypes. Both sides are normalized through
// tabular.KindOf before comparing, so informal aliases ("str", "object",
// "int") match their canonical forms case-insensitively. Tokens neither side
// recognizes fall back to a case-insensitive literal comparison.
type DtypeValidator struct {
	Expected []DtypeExpectation
}

// Validate implements Validator.
func (v *DtypeValidator) Validate(ctx *Context) ([]string, error) {
	var msgs []string
	for _, e := range v.Expected {
		if !ctx.HasColumn(e.Column) {
			continue
		}
		actual := ctx.Dtype(e.Column)
		expected := dtypeToken(e.Dtype)
		if !dtypeMatches(actual, expected) {
			msgs = append(msgs, fmt.Sprintf("Column %s%s has wrong dtype. Was %s, expected %s",
				e.Column, ctx.ParamInfo(), actual, expected))
		}
	}
	return msgs, nil
}

func dtypeToken(dtype any) string {
	switch d := dtype.(type) {
	case string:
		return d
	case tabular.Kind:
		return d.String()
	default:
		return fmt.Sprintf("%v", d)
	}
}

func dtypeMatches(actual, expected string) bool {
	ak, ek := tabular.KindOf(actual), tabular.KindOf(expected)
	if ak == tabular.Unknown && ek == tabular.Unknown {
		return strings.EqualFold(actual, expected)
	}
	return ak == ek
}

// NullableValidator checks that listed columns contain no nulls. A single
// affected column gets a focused message; several affected columns are folded
// into one combined message with per-column counts.
type NullableValidator struct {
	Columns []string
}

// Validate implements Validator.
func (v *NullableValidator) Validate(ctx *Context) ([]string, error) {
	type hit struct {
		col   string
		nulls int
	}
	var hits []hit
	for _, col := range v.Columns {
		if !ctx.HasColumn(col) {
			continue
		}
		if n := ctx.Series(col).NullCount(); n > 0 {
			hits = append(hits, hit{col, n})
		}
	}
	switch len(hits) {
	case 0:
		return nil, nil
	case 1:
		return []string{fmt.Sprintf("Column '%s'%s contains %d null values but nullable=false",
			hits[0].col, ctx.ParamInfo(), hits[0].nulls)}, nil
	default:
		names := make([]string, len(hits))
		counts := make([]string, len(hits))
		for i, h := range hits {
			names[i] = h.col
			counts[i] = fmt.Sprintf("'%s': %d", h.col, h.nulls)
		}
		return []string{fmt.Sprintf("Columns %s%s contain null values but nullable=false (%s)",
			formatNames(names), ctx.ParamInfo(), strings.Join(counts, ", "))}, nil
	}
}

// StrictValidator rejects columns outside the allow-list. The allow-list is
// the union of the spec's identifiers and every column matched by a regex
// identifier.
type StrictValidator struct {
	Allowed map[string]struct{}
}

// Validate implements Validator.
func (v *StrictValidator) Validate(ctx *Context) ([]string, error) {
	var extra []string
	for _, col := range ctx.Columns() {
		if _, ok := v.Allowed[col]; !ok {
			extra = append(extra, col)
		}
	}
	if len(extra) == 0 {
		return nil, nil
	}
	sort.Strings(extra)
	return []string{fmt.Sprintf("Table%s contained unexpected column(s): %s",
		ctx.ParamInfo(), strings.Join(extra, ", "))}, nil
}
