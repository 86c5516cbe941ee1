package rowmodel

import (
	"fmt"
	"strings"
)

// Model validates a single row. A nil return means the row is valid; a
// structured failure is an Errors value carrying one entry per violated
// constraint.
type Model interface {
	ValidateRow(row map[string]any) error
}

// FieldError is one violated constraint on one field.
type FieldError struct {
	Field   string
	Message string
}

// Errors is the structured failure type produced by Schema and consumed by
// the row validator.
type Errors []FieldError

// Error implements the error interface.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "row validation failed"
	}
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "row validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any error concerns the given field.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the collection holds no errors.
func (e Errors) IsEmpty() bool { return len(e) == 0 }
