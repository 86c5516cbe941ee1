package rowmodel

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/framecheck/framecheck/pkg/tabular"
)

// Rule is a single stateless field constraint: Check receives the cell value
// and whether the field was present in the row, and reports pass/fail.
type Rule struct {
	Check   func(value any, present bool) bool
	Message string
}

// FieldSpec binds rules to one field name.
type FieldSpec struct {
	name  string
	rules []Rule
}

// Field declares a schema field with its rules.
func Field(name string, rules ...Rule) FieldSpec {
	return FieldSpec{name: name, rules: rules}
}

// Schema is the rules-based Model implementation. Immutable after
// construction.
type Schema struct {
	fields []FieldSpec
}

// NewSchema builds a row schema from field declarations.
func NewSchema(fields ...FieldSpec) *Schema {
	return &Schema{fields: append([]FieldSpec(nil), fields...)}
}

// ValidateRow implements Model: every rule of every declared field runs, and
// all failures are reported together.
func (s *Schema) ValidateRow(row map[string]any) error {
	var errs Errors
	for _, f := range s.fields {
		value, present := row[f.name]
		for _, r := range f.rules {
			if !r.Check(value, present) {
				errs = append(errs, FieldError{Field: f.name, Message: r.Message})
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Required fails when the field is absent or null.
func Required() Rule {
	return Rule{
		Check: func(v any, present bool) bool {
			return present && !tabular.IsNull(v)
		},
		Message: "field is required",
	}
}

// NotNull fails when the field is present but null. Absent fields pass; pair
// with Required to forbid absence too.
func NotNull() Rule {
	return Rule{
		Check: func(v any, present bool) bool {
			return !present || !tabular.IsNull(v)
		},
		Message: "must not be null",
	}
}

// OfKind fails when a non-null value is not of the given canonical kind.
func OfKind(kind tabular.Kind) Rule {
	return Rule{
		Check: func(v any, present bool) bool {
			if !present || tabular.IsNull(v) {
				return true
			}
			return tabular.KindOfValue(v) == kind
		},
		Message: fmt.Sprintf("must be of type %s", kind),
	}
}

// MinNum fails when a non-null value is numeric-comparable and below min, or
// not numeric at all.
func MinNum(min float64) Rule {
	return Rule{
		Check: func(v any, present bool) bool {
			if !present || tabular.IsNull(v) {
				return true
			}
			c, ok := tabular.Compare(v, min)
			return ok && c >= 0
		},
		Message: fmt.Sprintf("must be at least %v", min),
	}
}

// MaxNum fails when a non-null value is numeric-comparable and above max, or
// not numeric at all.
func MaxNum(max float64) Rule {
	return Rule{
		Check: func(v any, present bool) bool {
			if !present || tabular.IsNull(v) {
				return true
			}
			c, ok := tabular.Compare(v, max)
			return ok && c <= 0
		},
		Message: fmt.Sprintf("must be at most %v", max),
	}
}

// OneOf fails when a non-null value equals none of the allowed values.
func OneOf(allowed ...any) Rule {
	parts := make([]string, len(allowed))
	for i, a := range allowed {
		parts[i] = fmt.Sprintf("%v", a)
	}
	return Rule{
		Check: func(v any, present bool) bool {
			if !present || tabular.IsNull(v) {
				return true
			}
			for _, a := range allowed {
				if tabular.Equal(v, a) {
					return true
				}
			}
			return false
		},
		Message: "must be one of: " + strings.Join(parts, ", "),
	}
}

// Match fails when a non-null value is not a string matching the pattern,
// anchored at the start. An invalid pattern panics at schema construction;
// model misdeclaration should prevent startup rather than surface per row.
func Match(pattern string) Rule {
	re := regexp.MustCompile("^(?:" + pattern + ")")
	return Rule{
		Check: func(v any, present bool) bool {
			if !present || tabular.IsNull(v) {
				return true
			}
			s, ok := v.(string)
			return ok && re.MatchString(s)
		},
		Message: fmt.Sprintf("must match pattern %s", pattern),
	}
}

// LenBetween fails when a non-null value is not a string of min..max runes
// inclusive.
func LenBetween(min, max int) Rule {
	return Rule{
		Check: func(v any, present bool) bool {
			if !present || tabular.IsNull(v) {
				return true
			}
			s, ok := v.(string)
			if !ok {
				return false
			}
			n := utf8.RuneCountInString(s)
			return n >= min && n <= max
		},
		Message: fmt.Sprintf("length must be between %d and %d", min, max),
	}
}
