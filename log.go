package framecheck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/framecheck/framecheck/pkg/tabular"
)

// Describe renders a table's structure for log lines: its column names and,
// when requested, their dtype tokens.
func Describe(t tabular.Table, withDtypes bool) string {
	cols := t.Columns()
	var b strings.Builder
	b.WriteString("columns: [")
	for i, c := range cols {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("'" + c + "'")
	}
	b.WriteByte(']')
	if withDtypes {
		b.WriteString(" with dtypes [")
		for i, c := range cols {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(t.Dtype(c))
		}
		b.WriteByte(']')
	}
	return b.String()
}

// TableAttr groups a table's metadata as a structured log attribute.
func TableAttr(key string, t tabular.Table) slog.Attr {
	return slog.Group(key,
		slog.Any("columns", t.Columns()),
		slog.Int("rows", t.NumRows()),
	)
}

// Log wraps a function taking a table so its input (and its output, when the
// result is also a table) is logged on every call. A nil logger means
// slog.Default(); nothing is validated here, pair with In/Out for that.
func Log[T tabular.Table, R any](logger *slog.Logger, level slog.Level, fn func(T) (R, error)) func(T) (R, error) {
	name := funcName(fn)
	return func(t T) (R, error) {
		l := logger
		if l == nil {
			l = slog.Default()
		}
		l.Log(context.Background(), level,
			fmt.Sprintf("function %s received a table", name),
			slog.String("func", name), TableAttr("table", t))
		r, err := fn(t)
		if rt, ok := any(r).(tabular.Table); ok && err == nil {
			l.Log(context.Background(), level,
				fmt.Sprintf("function %s returned a table", name),
				slog.String("func", name), TableAttr("table", rt))
		}
		return r, err
	}
}
