package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framecheck/framecheck/pkg/tabular"
	"github.com/framecheck/framecheck/pkg/validate"
)

// runCheck applies a single named check to one column of a table.
func runCheck(t *testing.T, tbl tabular.Table, col, name string, value any) ([]string, error) {
	t.Helper()
	v := &validate.ChecksValidator{
		Columns: []validate.ColumnChecks{
			{Column: col, Checks: []validate.NamedCheck{{Name: name, Value: value}}},
		},
		MaxSamples: 5,
	}
	return v.Validate(validate.NewContext(tbl))
}

func numTable(t *testing.T, values ...any) tabular.Table {
	t.Helper()
	records := make([]map[string]any, len(values))
	for i, v := range values {
		records[i] = map[string]any{"v": v}
	}
	return mustRows(t, []string{"v"}, records)
}

func TestChecksComparisons(t *testing.T) {
	t.Parallel()

	tbl := numTable(t, 1, 2, 3)

	t.Run("gt is strict, ge is inclusive", func(t *testing.T) {
		t.Parallel()

		msgs, err := runCheck(t, tbl, "v", "gt", 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"Column 'v' failed check gt: 2 values failed. Examples: [1, 2]"}, msgs)

		msgs, err = runCheck(t, tbl, "v", "ge", 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"Column 'v' failed check ge: 1 values failed. Examples: [1]"}, msgs)
	})

	t.Run("lt is strict, le is inclusive", func(t *testing.T) {
		t.Parallel()

		msgs, err := runCheck(t, tbl, "v", "lt", 2)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "failed check lt: 2 values failed")

		msgs, err = runCheck(t, tbl, "v", "le", 2)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "failed check le: 1 values failed")
	})

	t.Run("thresholds compare across numeric types", func(t *testing.T) {
		t.Parallel()

		msgs, err := runCheck(t, tbl, "v", "gt", 1.5)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "failed check gt: 1 values failed")
	})

	t.Run("between bounds are inclusive on both ends", func(t *testing.T) {
		t.Parallel()

		four := numTable(t, 1, 2, 3, 4)
		msgs, err := runCheck(t, four, "v", "between", []any{2, 3})
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "failed check between: 2 values failed")

		msgs, err = runCheck(t, four, "v", "between", []any{1, 4})
		require.NoError(t, err)
		assert.Empty(t, msgs)
	})

	t.Run("between rejects wrong arity", func(t *testing.T) {
		t.Parallel()

		_, err := runCheck(t, tbl, "v", "between", []any{1, 2, 3})
		require.Error(t, err)
		assert.ErrorIs(t, err, validate.ErrCheckFailed)
	})
}

func TestChecksEquality(t *testing.T) {
	t.Parallel()

	tbl := numTable(t, 1, 2, 2, 3)

	t.Run("eq and ne partition the column", func(t *testing.T) {
		t.Parallel()

		eqMsgs, err := runCheck(t, tbl, "v", "eq", 2)
		require.NoError(t, err)
		require.Len(t, eqMsgs, 1)
		assert.Contains(t, eqMsgs[0], "failed check eq: 2 values failed")

		neMsgs, err := runCheck(t, tbl, "v", "ne", 2)
		require.NoError(t, err)
		require.Len(t, neMsgs, 1)
		assert.Contains(t, neMsgs[0], "failed check ne: 2 values failed")
	})

	t.Run("isin and notin partition the column", func(t *testing.T) {
		t.Parallel()

		isinMsgs, err := runCheck(t, tbl, "v", "isin", []any{1, 2})
		require.NoError(t, err)
		require.Len(t, isinMsgs, 1)
		assert.Contains(t, isinMsgs[0], "failed check isin: 1 values failed")

		notinMsgs, err := runCheck(t, tbl, "v", "notin", []any{1, 2})
		require.NoError(t, err)
		require.Len(t, notinMsgs, 1)
		assert.Contains(t, notinMsgs[0], "failed check notin: 3 values failed")
	})

	t.Run("widening the isin set never adds failures", func(t *testing.T) {
		t.Parallel()

		msgs, err := runCheck(t, tbl, "v", "isin", []any{1, 2, 3})
		require.NoError(t, err)
		assert.Empty(t, msgs)
	})

	t.Run("typed slices work as sequence arguments", func(t *testing.T) {
		t.Parallel()

		msgs, err := runCheck(t, tbl, "v", "isin", []int{1, 2, 3})
		require.NoError(t, err)
		assert.Empty(t, msgs)
	})
}

func TestChecksNulls(t *testing.T) {
	t.Parallel()

	tbl := numTable(t, 1, nil, 3)

	t.Run("null cells fail every value check", func(t *testing.T) {
		t.Parallel()

		msgs, err := runCheck(t, tbl, "v", "gt", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"Column 'v' failed check gt: 1 values failed. Examples: [null]"}, msgs)

		msgs, err = runCheck(t, tbl, "v", "isin", []any{1, 3})
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "1 values failed")
	})

	t.Run("notnull fails exactly the null cells", func(t *testing.T) {
		t.Parallel()

		msgs, err := runCheck(t, tbl, "v", "notnull", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"Column 'v' failed check notnull: 1 values failed. Examples: [null]"}, msgs)

		clean := numTable(t, 1, 2)
		msgs, err = runCheck(t, clean, "v", "notnull", nil)
		require.NoError(t, err)
		assert.Empty(t, msgs)
	})
}

func TestChecksStrings(t *testing.T) {
	t.Parallel()

	tbl, err := tabular.NewRows([]string{"s"}, []map[string]any{
		{"s": "user_1"}, {"s": "admin_2"}, {"s": "user_3"},
	})
	require.NoError(t, err)

	t.Run("str_regex is an anchored prefix match", func(t *testing.T) {
		t.Parallel()

		msgs, err := runCheck(t, tbl, "s", "str_regex", "user_")
		require.NoError(t, err)
		assert.Equal(t, []string{"Column 's' failed check str_regex: 1 values failed. Examples: ['admin_2']"}, msgs)

		// "ser_" appears inside every value but prefixes none.
		msgs, err = runCheck(t, tbl, "s", "str_regex", "ser_")
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "3 values failed")
	})

	t.Run("str_startswith", func(t *testing.T) {
		t.Parallel()

		msgs, err := runCheck(t, tbl, "s", "str_startswith", "user_")
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "failed check str_startswith: 1 values failed")
	})

	t.Run("str_endswith", func(t *testing.T) {
		t.Parallel()

		msgs, err := runCheck(t, tbl, "s", "str_endswith", "2")
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "failed check str_endswith: 2 values failed")
	})

	t.Run("str_contains", func(t *testing.T) {
		t.Parallel()

		msgs, err := runCheck(t, tbl, "s", "str_contains", "_")
		require.NoError(t, err)
		assert.Empty(t, msgs)
	})

	t.Run("str_length counts runes inclusively", func(t *testing.T) {
		t.Parallel()

		vals, err := tabular.NewRows([]string{"s"}, []map[string]any{
			{"s": "ab"}, {"s": "abc"}, {"s": "héllo"},
		})
		require.NoError(t, err)

		msgs, err := runCheck(t, vals, "s", "str_length", []any{2, 5})
		require.NoError(t, err)
		assert.Empty(t, msgs, "héllo is 5 runes")

		msgs, err = runCheck(t, vals, "s", "str_length", []any{3, 5})
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "failed check str_length: 1 values failed")
	})

	t.Run("non-string cells fail string checks", func(t *testing.T) {
		t.Parallel()

		mixed := numTable(t, 1, 2)
		msgs, err := runCheck(t, mixed, "v", "str_startswith", "u")
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "2 values failed")
	})
}

func TestChecksSampling(t *testing.T) {
	t.Parallel()

	t.Run("max samples caps examples, not the count", func(t *testing.T) {
		t.Parallel()

		tbl := numTable(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
		v := &validate.ChecksValidator{
			Columns: []validate.ColumnChecks{
				{Column: "v", Checks: []validate.NamedCheck{{Name: "gt", Value: 100}}},
			},
			MaxSamples: 3,
		}
		msgs, err := v.Validate(validate.NewContext(tbl))
		require.NoError(t, err)
		assert.Equal(t, []string{"Column 'v' failed check gt: 10 values failed. Examples: [1, 2, 3]"}, msgs)
	})

	t.Run("empty table passes trivially", func(t *testing.T) {
		t.Parallel()

		tbl := numTable(t)
		msgs, err := runCheck(t, tbl, "v", "gt", 100)
		require.NoError(t, err)
		assert.Empty(t, msgs)
	})

	t.Run("absent column is skipped", func(t *testing.T) {
		t.Parallel()

		tbl := numTable(t, 1)
		msgs, err := runCheck(t, tbl, "ghost", "gt", 0)
		require.NoError(t, err)
		assert.Empty(t, msgs)
	})
}

func TestChecksCustom(t *testing.T) {
	t.Parallel()

	tbl := numTable(t, 1, -2, 3)

	t.Run("mask drives failures and samples", func(t *testing.T) {
		t.Parallel()

		positive := validate.CheckFunc(func(s tabular.Series) ([]bool, error) {
			mask := make([]bool, s.Len())
			for i := range mask {
				c, ok := tabular.Compare(s.Value(i), 0)
				mask[i] = ok && c > 0
			}
			return mask, nil
		})
		msgs, err := runCheck(t, tbl, "v", "positive", positive)
		require.NoError(t, err)
		assert.Equal(t, []string{"Column 'v' failed check positive: 1 values failed. Examples: [-2]"}, msgs)
	})

	t.Run("all-true mask passes", func(t *testing.T) {
		t.Parallel()

		always := validate.CheckFunc(func(s tabular.Series) ([]bool, error) {
			mask := make([]bool, s.Len())
			for i := range mask {
				mask[i] = true
			}
			return mask, nil
		})
		msgs, err := runCheck(t, tbl, "v", "anything", always)
		require.NoError(t, err)
		assert.Empty(t, msgs)
	})

	t.Run("returned error aborts the run", func(t *testing.T) {
		t.Parallel()

		boom := validate.CheckFunc(func(tabular.Series) ([]bool, error) {
			return nil, errors.New("backend unavailable")
		})
		msgs, err := runCheck(t, tbl, "v", "broken", boom)
		require.Error(t, err)
		assert.ErrorIs(t, err, validate.ErrCheckFailed)
		assert.Contains(t, err.Error(), `custom check "broken"`)
		assert.Contains(t, err.Error(), "backend unavailable")
		assert.Nil(t, msgs)
	})

	t.Run("panic is recovered into an error", func(t *testing.T) {
		t.Parallel()

		panicky := validate.CheckFunc(func(tabular.Series) ([]bool, error) {
			panic("index out of range")
		})
		_, err := runCheck(t, tbl, "v", "panicky", panicky)
		require.Error(t, err)
		assert.ErrorIs(t, err, validate.ErrCheckFailed)
		assert.Contains(t, err.Error(), "panicked")
	})

	t.Run("misaligned mask aborts the run", func(t *testing.T) {
		t.Parallel()

		short := validate.CheckFunc(func(tabular.Series) ([]bool, error) {
			return []bool{true}, nil
		})
		_, err := runCheck(t, tbl, "v", "short", short)
		require.Error(t, err)
		assert.ErrorIs(t, err, validate.ErrBadCheckMask)
	})

	t.Run("raw function values are accepted", func(t *testing.T) {
		t.Parallel()

		raw := func(s tabular.Series) ([]bool, error) {
			mask := make([]bool, s.Len())
			for i := range mask {
				mask[i] = true
			}
			return mask, nil
		}
		msgs, err := runCheck(t, tbl, "v", "raw", raw)
		require.NoError(t, err)
		assert.Empty(t, msgs)
	})

	t.Run("custom names bypass the builtin set", func(t *testing.T) {
		t.Parallel()

		_, err := runCheck(t, tbl, "v", "no_such_check", 42)
		require.Error(t, err)
		assert.ErrorIs(t, err, validate.ErrUnknownCheck)
	})
}
