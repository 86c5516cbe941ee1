package tabular

import (
	"strings"
	"time"
)

// Kind is the canonical dtype of a column. Backends report free-form tokens;
// KindOf folds them into this closed set before any comparison happens.
type Kind int

const (
	Unknown Kind = iota
	String
	Int64
	Float64
	Bool
	Time
)

// String returns the canonical token for the kind.
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int64:
		return "int64"
	case Float64:
		return "float64"
	case Bool:
		return "boolean"
	case Time:
		return "time"
	default:
		return "unknown"
	}
}

// kindAliases maps lower-cased backend dtype tokens to canonical kinds. The
// table is deliberately a plain lookup so tests can pin every alias.
var kindAliases = map[string]Kind{
	"string":     String,
	"str":        String,
	"object":     String,
	"utf8":       String,
	"large_utf8": String,
	"text":       String,
	"varchar":    String,

	"int":    Int64,
	"int8":   Int64,
	"int16":  Int64,
	"int32":  Int64,
	"int64":  Int64,
	"i64":    Int64,
	"uint":   Int64,
	"uint8":  Int64,
	"uint16": Int64,
	"uint32": Int64,
	"uint64": Int64,

	"float":   Float64,
	"float32": Float64,
	"float64": Float64,
	"f64":     Float64,
	"double":  Float64,

	"bool":    Bool,
	"boolean": Bool,

	"time":      Time,
	"timestamp": Time,
	"datetime":  Time,
	"date":      Time,
	"date32":    Time,
	"date64":    Time,
}

// KindOf normalizes a backend dtype token to its canonical kind. Matching is
// case-insensitive; unrecognized tokens map to Unknown.
func KindOf(token string) Kind {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(token))]; ok {
		return k
	}
	return Unknown
}

// KindOfValue reports the canonical kind of a single cell value. Nil cells
// have no kind.
func KindOfValue(v any) Kind {
	switch v.(type) {
	case nil:
		return Unknown
	case string:
		return String
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Int64
	case float32, float64:
		return Float64
	case bool:
		return Bool
	case time.Time:
		return Time
	default:
		return Unknown
	}
}
