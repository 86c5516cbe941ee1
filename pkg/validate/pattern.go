package validate

import (
	"fmt"
	"regexp"
)

// Regex column markers are written "r/<body>/".
const (
	patternPrefix = "r/"
	patternSuffix = "/"
)

// IsPattern reports whether a column identifier is a regex marker: prefix
// "r/", suffix "/", non-empty body.
func IsPattern(id string) bool {
	return len(id) > len(patternPrefix)+len(patternSuffix) &&
		id[:len(patternPrefix)] == patternPrefix &&
		id[len(id)-len(patternSuffix):] == patternSuffix
}

// CompilePattern compiles the body of a regex marker. The compiled pattern is
// anchored at the start, so matching is an anchored prefix match: the pattern
// does not have to consume the whole column name.
func CompilePattern(id string) (*regexp.Regexp, error) {
	if !IsPattern(id) {
		return nil, fmt.Errorf("%w: %q is not of the form r/pattern/", ErrInvalidPattern, id)
	}
	body := id[len(patternPrefix) : len(id)-len(patternSuffix)]
	re, err := regexp.Compile("^(?:" + body + ")")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, body, err)
	}
	return re, nil
}

// MatchColumns returns every column name the pattern matches, preserving the
// table's column order.
func MatchColumns(re *regexp.Regexp, columns []string) []string {
	var matched []string
	for _, col := range columns {
		if re.MatchString(col) {
			matched = append(matched, col)
		}
	}
	return matched
}
