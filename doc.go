// Package framecheck provides runtime contract checking for tabular data at
// function boundaries: declare the columns, dtypes and constraints a function
// expects or produces, and get a descriptive error the moment a table that
// does not conform crosses the boundary.
//
// Key features:
//
//   - Declarative column specifications: literal names or r/regex/ markers,
//     dtype constraints, nullability, uniqueness, value-range checks
//   - Row-count shape bounds and composite uniqueness
//   - Per-row structural validation against a row-schema model
//   - Fail-fast or accumulate-all execution
//   - Backend-neutral: row-oriented tables, columnar tables and Apache Arrow
//     record batches through one adapter interface
//
// Basic usage:
//
//	guard := framecheck.New(
//		framecheck.Columns(map[string]any{
//			"id":    framecheck.Column{Dtype: "int64", Unique: true},
//			"price": framecheck.Column{Checks: map[string]any{"gt": 0}},
//		}),
//		framecheck.Strict(true),
//	)
//
//	func load(orders tabular.Table) error {
//		if err := guard.ValidateIn(orders, "load", "orders"); err != nil {
//			return err
//		}
//		// orders conforms
//		return nil
//	}
//
// Or wrap a function so the check happens on every call:
//
//	load := framecheck.In(guard, "orders", func(orders tabular.Table) (int, error) {
//		return process(orders)
//	})
//
// Strict mode, lazy mode and the reporting caps fall back to environment
// configuration (see pkg/config) when not set explicitly. The validation
// engine itself lives in pkg/validate; this package only assembles its
// parameters and attaches call context to messages.
package framecheck
