package validate

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidPattern is returned when a regex column marker has an empty
	// body or does not compile.
	ErrInvalidPattern = errors.New("invalid column pattern")

	// ErrUnknownCheck is returned when a check name is not a builtin and its
	// value is not a custom check function.
	ErrUnknownCheck = errors.New("unknown check")

	// ErrCheckFailed is returned when a custom check function returns an
	// error, panics, or is given an unusable check value.
	ErrCheckFailed = errors.New("check execution failed")

	// ErrBadCheckMask is returned when a custom check function returns a mask
	// that is not aligned to the column.
	ErrBadCheckMask = errors.New("check returned invalid mask")
)

// Error is the violation-carrying validation error. Every detected problem is
// one entry in Violations; in fail-fast mode there is exactly one.
type Error struct {
	Violations []string
}

// Error joins all violations, separating stages with a blank line.
func (e *Error) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	return strings.Join(e.Violations, "\n\n")
}
