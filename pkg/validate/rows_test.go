package validate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framecheck/framecheck/pkg/rowmodel"
	"github.com/framecheck/framecheck/pkg/validate"
)

// modelFunc adapts a func to rowmodel.Model for test doubles.
type modelFunc func(row map[string]any) error

func (f modelFunc) ValidateRow(row map[string]any) error { return f(row) }

func ageModel() rowmodel.Model {
	return rowmodel.NewSchema(
		rowmodel.Field("age", rowmodel.Required(), rowmodel.MinNum(0)),
	)
}

func TestRowValidator(t *testing.T) {
	t.Parallel()

	t.Run("valid rows pass", func(t *testing.T) {
		t.Parallel()

		tbl := mustRows(t, []string{"age"}, []map[string]any{
			{"age": 1}, {"age": 2},
		})
		v := &validate.RowValidator{Model: ageModel(), MaxErrors: 5, EarlyTermination: true}
		msgs, err := v.Validate(validate.NewContext(tbl))
		require.NoError(t, err)
		assert.Empty(t, msgs)
	})

	t.Run("failing rows produce one report", func(t *testing.T) {
		t.Parallel()

		tbl := mustRows(t, []string{"age"}, []map[string]any{
			{"age": -1}, {"age": 5}, {"age": -2},
		})
		v := &validate.RowValidator{Model: ageModel(), MaxErrors: 5, EarlyTermination: true}
		msgs, err := v.Validate(validate.NewContext(tbl))
		require.NoError(t, err)
		require.Len(t, msgs, 1)

		assert.Equal(t, "Row validation failed for 2 out of 3 rows:\n\n"+
			"  Row 0:\n    - age: must be at least 0\n\n"+
			"  Row 2:\n    - age: must be at least 0\n", msgs[0])
	})

	t.Run("all field errors of a row are listed", func(t *testing.T) {
		t.Parallel()

		model := rowmodel.NewSchema(
			rowmodel.Field("age", rowmodel.Required(), rowmodel.MinNum(0), rowmodel.MaxNum(150)),
		)
		tbl := mustRows(t, []string{"age"}, []map[string]any{{"age": nil}})
		v := &validate.RowValidator{Model: model, MaxErrors: 5}
		msgs, err := v.Validate(validate.NewContext(tbl))
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "    - age: field is required")
		// Null values skip the range rules rather than double-reporting.
		assert.NotContains(t, msgs[0], "must be at least")
	})

	t.Run("early termination stops the scan", func(t *testing.T) {
		t.Parallel()

		records := make([]map[string]any, 8)
		for i := range records {
			records[i] = map[string]any{"age": -1}
		}
		tbl := mustRows(t, []string{"age"}, records)

		scanned := 0
		model := modelFunc(func(map[string]any) error {
			scanned++
			return rowmodel.Errors{{Field: "age", Message: "bad"}}
		})
		v := &validate.RowValidator{Model: model, MaxErrors: 2, EarlyTermination: true}
		msgs, err := v.Validate(validate.NewContext(tbl))
		require.NoError(t, err)
		require.Len(t, msgs, 1)

		assert.Equal(t, 3, scanned, "stops right after the first overflow row")
		assert.Contains(t, msgs[0], "  Row 0:")
		assert.Contains(t, msgs[0], "  Row 1:")
		assert.NotContains(t, msgs[0], "  Row 2:")
		assert.Contains(t, msgs[0], "... stopped scanning early (at least 1 more row(s) with errors)")
	})

	t.Run("full scan reports the exact overflow", func(t *testing.T) {
		t.Parallel()

		records := make([]map[string]any, 8)
		for i := range records {
			records[i] = map[string]any{"age": -1}
		}
		tbl := mustRows(t, []string{"age"}, records)
		v := &validate.RowValidator{Model: ageModel(), MaxErrors: 2, EarlyTermination: false}
		msgs, err := v.Validate(validate.NewContext(tbl))
		require.NoError(t, err)
		require.Len(t, msgs, 1)

		assert.Contains(t, msgs[0], "Row validation failed for 8 out of 8 rows:")
		assert.Contains(t, msgs[0], "... and 6 more row(s) with errors")
		assert.NotContains(t, msgs[0], "stopped scanning early")
	})

	t.Run("NaN cells reach the model as nil", func(t *testing.T) {
		t.Parallel()

		tbl := mustRows(t, []string{"v"}, []map[string]any{
			{"v": math.NaN()},
		})
		var got any = "unset"
		model := modelFunc(func(row map[string]any) error {
			got = row["v"]
			return nil
		})
		v := &validate.RowValidator{Model: model, MaxErrors: 5}
		_, err := v.Validate(validate.NewContext(tbl))
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("opaque errors are reported verbatim", func(t *testing.T) {
		t.Parallel()

		tbl := mustRows(t, []string{"v"}, []map[string]any{{"v": 1}})
		model := modelFunc(func(map[string]any) error {
			return assert.AnError
		})
		v := &validate.RowValidator{Model: model, MaxErrors: 5}
		msgs, err := v.Validate(validate.NewContext(tbl))
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "    - "+assert.AnError.Error())
	})

	t.Run("zero-row tables skip row validation", func(t *testing.T) {
		t.Parallel()

		tbl := mustRows(t, []string{"age"}, nil)
		v := &validate.RowValidator{Model: ageModel(), MaxErrors: 5}
		assert.True(t, v.ShouldSkip(validate.NewContext(tbl)))

		full := mustRows(t, []string{"age"}, []map[string]any{{"age": 1}})
		assert.False(t, v.ShouldSkip(validate.NewContext(full)))
	})

	t.Run("call context suffix trails the report", func(t *testing.T) {
		t.Parallel()

		tbl := mustRows(t, []string{"age"}, []map[string]any{{"age": -1}})
		ctx := validate.NewCallContext(tbl, "ingest", "", true)
		v := &validate.RowValidator{Model: ageModel(), MaxErrors: 5}
		msgs, err := v.Validate(ctx)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.True(t, len(msgs[0]) > 0)
		assert.Contains(t, msgs[0], " in function 'ingest' return value")
	})
}
