package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/framecheck/framecheck/pkg/tabular"
)

// builtinChecks is the closed set of named checks. Anything else must carry a
// CheckFunc value.
var builtinChecks = map[string]struct{}{
	"gt": {}, "ge": {}, "lt": {}, "le": {},
	"between": {}, "eq": {}, "ne": {},
	"isin": {}, "notin": {}, "notnull": {},
	"str_regex": {}, "str_startswith": {}, "str_endswith": {},
	"str_contains": {}, "str_length": {},
}

// ColumnChecks carries the checks declared for one real column, in
// deterministic (sorted) check order.
type ColumnChecks struct {
	Column string
	Checks []NamedCheck
}

type NamedCheck struct {
	Name  string
	Value any
}

// ChecksValidator evaluates value checks against column cells. For every
// check except notnull, a null cell counts as a failure. Failure counts are
// exact; only the example values are capped by MaxSamples.
type ChecksValidator struct {
	Columns    []ColumnChecks
	MaxSamples int
}

// Validate implements Validator. Hard failures from custom checks (returned
// errors, panics, wrong-shaped masks) and unusable check values abort the run
// as errors; data failures become violation messages.
func (v *ChecksValidator) Validate(ctx *Context) ([]string, error) {
	var msgs []string
	for _, cc := range v.Columns {
		if !ctx.HasColumn(cc.Column) {
			continue
		}
		series := ctx.Series(cc.Column)
		for _, check := range cc.Checks {
			failCount, samples, err := applyCheck(series, check.Name, check.Value, v.MaxSamples)
			if err != nil {
				return nil, err
			}
			if failCount > 0 {
				msgs = append(msgs, fmt.Sprintf("Column '%s'%s failed check %s: %d values failed. Examples: %s",
					cc.Column, ctx.ParamInfo(), check.Name, failCount, formatValues(samples)))
			}
		}
	}
	return msgs, nil
}

// applyCheck runs one check over one column, returning the exact failure
// count and up to maxSamples failing values.
func applyCheck(s tabular.Series, name string, value any, maxSamples int) (int, []any, error) {
	if fn, ok := asCheckFunc(value); ok {
		return applyCustomCheck(s, name, fn, maxSamples)
	}
	if _, ok := builtinChecks[name]; !ok {
		return 0, nil, fmt.Errorf("%w: %q", ErrUnknownCheck, name)
	}
	pass, err := buildPredicate(name, value)
	if err != nil {
		return 0, nil, err
	}
	failCount := 0
	var samples []any
	for i := 0; i < s.Len(); i++ {
		cell := s.Value(i)
		var fail bool
		if name == "notnull" {
			fail = tabular.IsNull(cell)
		} else if tabular.IsNull(cell) {
			// Nulls cannot satisfy a value constraint.
			fail = true
		} else {
			fail = !pass(cell)
		}
		if fail {
			failCount++
			if len(samples) < maxSamples {
				samples = append(samples, cell)
			}
		}
	}
	return failCount, samples, nil
}

func asCheckFunc(value any) (CheckFunc, bool) {
	switch fn := value.(type) {
	case CheckFunc:
		return fn, fn != nil
	case func(tabular.Series) ([]bool, error):
		return fn, fn != nil
	default:
		return nil, false
	}
}

// applyCustomCheck invokes a user predicate and verifies its mask is aligned
// to the column. True in the mask means the value is valid. Errors are
// wrapped naming the check; panics are recovered and wrapped the same way.
func applyCustomCheck(s tabular.Series, name string, fn CheckFunc, maxSamples int) (failCount int, samples []any, err error) {
	defer func() {
		if r := recover(); r != nil {
			failCount, samples = 0, nil
			err = fmt.Errorf("%w: custom check %q panicked: %v", ErrCheckFailed, name, r)
		}
	}()
	mask, err := fn(s)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: custom check %q: %v", ErrCheckFailed, name, err)
	}
	if len(mask) != s.Len() {
		return 0, nil, fmt.Errorf("%w: custom check %q must return a mask of length %d, got %d",
			ErrBadCheckMask, name, s.Len(), len(mask))
	}
	for i, ok := range mask {
		if ok {
			continue
		}
		failCount++
		if len(samples) < maxSamples {
			samples = append(samples, s.Value(i))
		}
	}
	return failCount, samples, nil
}

// buildPredicate compiles a builtin check into a per-cell pass predicate.
// Compilation happens once per check, not per row, so regex checks pay their
// compile cost a single time.
func buildPredicate(name string, arg any) (func(any) bool, error) {
	switch name {
	case "gt":
		return orderedPredicate(arg, func(c int) bool { return c > 0 }), nil
	case "ge":
		return orderedPredicate(arg, func(c int) bool { return c >= 0 }), nil
	case "lt":
		return orderedPredicate(arg, func(c int) bool { return c < 0 }), nil
	case "le":
		return orderedPredicate(arg, func(c int) bool { return c <= 0 }), nil
	case "between":
		lo, hi, err := asPair(name, arg)
		if err != nil {
			return nil, err
		}
		return func(v any) bool {
			cl, ok := tabular.Compare(v, lo)
			if !ok || cl < 0 {
				return false
			}
			ch, ok := tabular.Compare(v, hi)
			return ok && ch <= 0
		}, nil
	case "eq":
		return func(v any) bool { return tabular.Equal(v, arg) }, nil
	case "ne":
		return func(v any) bool { return !tabular.Equal(v, arg) }, nil
	case "isin":
		allowed, err := asSlice(name, arg)
		if err != nil {
			return nil, err
		}
		return func(v any) bool { return containsValue(allowed, v) }, nil
	case "notin":
		denied, err := asSlice(name, arg)
		if err != nil {
			return nil, err
		}
		return func(v any) bool { return !containsValue(denied, v) }, nil
	case "notnull":
		// Null handling is special-cased by the caller.
		return func(any) bool { return true }, nil
	case "str_regex":
		pat, ok := arg.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %q requires a string pattern, got %T", ErrCheckFailed, name, arg)
		}
		re, err := regexp.Compile("^(?:" + pat + ")")
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrCheckFailed, name, err)
		}
		return stringPredicate(func(s string) bool { return re.MatchString(s) }), nil
	case "str_startswith":
		prefix, ok := arg.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %q requires a string prefix, got %T", ErrCheckFailed, name, arg)
		}
		return stringPredicate(func(s string) bool { return strings.HasPrefix(s, prefix) }), nil
	case "str_endswith":
		suffix, ok := arg.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %q requires a string suffix, got %T", ErrCheckFailed, name, arg)
		}
		return stringPredicate(func(s string) bool { return strings.HasSuffix(s, suffix) }), nil
	case "str_contains":
		sub, ok := arg.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %q requires a string substring, got %T", ErrCheckFailed, name, arg)
		}
		return stringPredicate(func(s string) bool { return strings.Contains(s, sub) }), nil
	case "str_length":
		lo, hi, err := asPair(name, arg)
		if err != nil {
			return nil, err
		}
		min, okLo := asInt(lo)
		max, okHi := asInt(hi)
		if !okLo || !okHi {
			return nil, fmt.Errorf("%w: %q requires integer bounds", ErrCheckFailed, name)
		}
		return stringPredicate(func(s string) bool {
			n := utf8.RuneCountInString(s)
			return n >= min && n <= max
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCheck, name)
	}
}

func orderedPredicate(arg any, accept func(int) bool) func(any) bool {
	return func(v any) bool {
		c, ok := tabular.Compare(v, arg)
		return ok && accept(c)
	}
}

func stringPredicate(pass func(string) bool) func(any) bool {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && pass(s)
	}
}

func containsValue(values []any, v any) bool {
	for _, candidate := range values {
		if tabular.Equal(v, candidate) {
			return true
		}
	}
	return false
}

// asPair accepts any two-element slice or array as an inclusive range.
func asPair(name string, arg any) (any, any, error) {
	vals, err := asSlice(name, arg)
	if err != nil {
		return nil, nil, err
	}
	if len(vals) != 2 {
		return nil, nil, fmt.Errorf("%w: %q requires exactly two values, got %d", ErrCheckFailed, name, len(vals))
	}
	return vals[0], vals[1], nil
}

// asSlice reflects an arbitrary slice or array into []any.
func asSlice(name string, arg any) ([]any, error) {
	rv := reflect.ValueOf(arg)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, fmt.Errorf("%w: %q requires a sequence value, got %T", ErrCheckFailed, name, arg)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

func asInt(v any) (int, bool) {
	switch x := tabular.Normalize(v).(type) {
	case int64:
		return int(x), true
	case float64:
		if x == float64(int(x)) {
			return int(x), true
		}
	}
	return 0, false
}

// sortedChecks flattens a checks-by-column map into deterministic order.
func sortedChecks(byColumn map[string]map[string]any, order []string) []ColumnChecks {
	out := make([]ColumnChecks, 0, len(byColumn))
	for _, col := range order {
		checks := byColumn[col]
		names := make([]string, 0, len(checks))
		for name := range checks {
			names = append(names, name)
		}
		sort.Strings(names)
		cc := ColumnChecks{Column: col}
		for _, name := range names {
			cc.Checks = append(cc.Checks, NamedCheck{Name: name, Value: checks[name]})
		}
		out = append(out, cc)
	}
	return out
}
