package tabular

import "errors"

var (
	// ErrDuplicateColumn is returned when a table is constructed with two
	// columns sharing a name.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrRaggedColumns is returned when a columnar table is constructed from
	// vectors of unequal length.
	ErrRaggedColumns = errors.New("columns have unequal lengths")
)
