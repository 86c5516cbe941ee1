package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/framecheck/framecheck/pkg/rowmodel"
	"github.com/framecheck/framecheck/pkg/tabular"
)

// RowValidator validates every row against an external row-schema model. It
// runs last in the pipeline because its cost is proportional to the data
// volume. NaN cells are normalized to nil before the model sees the row.
type RowValidator struct {
	Model rowmodel.Model
	// MaxErrors caps how many failing rows are reported in detail.
	MaxErrors int
	// EarlyTermination stops the scan once MaxErrors detailed failures have
	// been collected and one more is seen; the report then states a lower
	// bound instead of an exact total.
	EarlyTermination bool
}

// ShouldSkip implements Skippable: a zero-row table passes trivially.
func (v *RowValidator) ShouldSkip(ctx *Context) bool { return ctx.RowCount() == 0 }

// Validate implements Validator.
func (v *RowValidator) Validate(ctx *Context) ([]string, error) {
	type failedRow struct {
		index int
		err   error
	}
	var failed []failedRow
	total := 0
	stopped := false
	for i, row := range tabular.IterRows(ctx.Table()) {
		for col, cell := range row {
			if tabular.IsNull(cell) {
				row[col] = nil
			}
		}
		err := v.Model.ValidateRow(row)
		if err == nil {
			continue
		}
		total++
		if len(failed) < v.MaxErrors {
			failed = append(failed, failedRow{index: i, err: err})
		} else if v.EarlyTermination {
			stopped = true
			break
		}
	}
	if len(failed) == 0 {
		return nil, nil
	}

	lines := []string{fmt.Sprintf("Row validation failed for %d out of %d rows:", total, ctx.RowCount()), ""}
	for _, f := range failed {
		lines = append(lines, fmt.Sprintf("  Row %d:", f.index))
		var ferrs rowmodel.Errors
		if errors.As(f.err, &ferrs) {
			for _, fe := range ferrs {
				if fe.Field != "" {
					lines = append(lines, fmt.Sprintf("    - %s: %s", fe.Field, fe.Message))
				} else {
					lines = append(lines, "    - "+fe.Message)
				}
			}
		} else {
			lines = append(lines, "    - "+f.err.Error())
		}
		lines = append(lines, "")
	}
	if rest := total - len(failed); rest > 0 {
		if stopped {
			lines = append(lines, fmt.Sprintf("  ... stopped scanning early (at least %d more row(s) with errors)", rest))
		} else {
			lines = append(lines, fmt.Sprintf("  ... and %d more row(s) with errors", rest))
		}
	}
	return []string{strings.Join(lines, "\n") + ctx.ParamInfo()}, nil
}
