package tabular

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// IsNull reports whether a cell value is null. Nil cells and NaN floats both
// count as null: row-oriented sources produce nils, float-backed columnar
// sources produce NaNs, and validation must treat them the same way.
func IsNull(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	default:
		return false
	}
}

// Normalize folds a cell value into the canonical cell types: int64, float64,
// string, bool, time.Time or nil. Values outside that set pass through
// unchanged.
func Normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case float32:
		return float64(x)
	default:
		return v
	}
}

// asDecimal converts a numeric cell to a decimal. NaN and infinities are not
// representable and report false.
func asDecimal(v any) (decimal.Decimal, bool) {
	switch x := Normalize(v).(type) {
	case int64:
		return decimal.NewFromInt(x), true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(x), true
	default:
		return decimal.Decimal{}, false
	}
}

// Compare orders two cell values. It returns -1, 0 or 1 and true when the
// values are comparable: numeric pairs compare through decimal arithmetic so
// int64 cells can be measured against float64 thresholds exactly, strings
// compare lexically and times chronologically. Nulls and mixed families are
// not comparable.
func Compare(a, b any) (int, bool) {
	if IsNull(a) || IsNull(b) {
		return 0, false
	}
	if da, ok := asDecimal(a); ok {
		if db, ok := asDecimal(b); ok {
			return da.Cmp(db), true
		}
		return 0, false
	}
	switch x := Normalize(a).(type) {
	case string:
		if y, ok := Normalize(b).(string); ok {
			return strings.Compare(x, y), true
		}
	case time.Time:
		if y, ok := Normalize(b).(time.Time); ok {
			return x.Compare(y), true
		}
	}
	return 0, false
}

// Equal reports backend-neutral cell equality: comparable values are equal
// when Compare says so, everything else falls back to normalized equality.
// Two nulls are equal to each other.
func Equal(a, b any) bool {
	if IsNull(a) || IsNull(b) {
		return IsNull(a) && IsNull(b)
	}
	if c, ok := Compare(a, b); ok {
		return c == 0
	}
	return Normalize(a) == Normalize(b)
}
