package validate

import (
	"fmt"
	"strings"
)

// Validator is the contract every stage implements. Validate returns one
// violation message per detected problem; an empty slice means pass. The error
// return is reserved for hard failures (misbehaving custom checks) that must
// abort the run in either execution mode; data problems are never errors
// here.
type Validator interface {
	Validate(ctx *Context) ([]string, error)
}

// Skippable is an optional capability: a validator can opt out of a run
// entirely (e.g. row validation on an empty table). The pipeline probes for it
// with a type assertion.
type Skippable interface {
	ShouldSkip(ctx *Context) bool
}

// formatNames renders column identifiers as a quoted list: ['a', 'b'].
func formatNames(names []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(n)
		b.WriteByte('\'')
	}
	b.WriteByte(']')
	return b.String()
}

// formatValues renders sample cell values: [0, 'x']. Strings are quoted,
// nulls render as null.
func formatValues(values []any) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatValue(v))
	}
	b.WriteByte(']')
	return b.String()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return "'" + x + "'"
	default:
		return fmt.Sprintf("%v", x)
	}
}
