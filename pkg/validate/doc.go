// Package validate is the table validation engine: it compiles a declarative
// column specification into an ordered pipeline of independent validators and
// executes them against one table snapshot.
//
// # Architecture
//
// A validation call moves through four stages:
//
//  1. The spec parser normalizes the user-facing column specification, either
//     an ordered list of column identifiers or a mapping from identifier to a
//     dtype shorthand or a Constraint, into a canonical parsed form.
//  2. The pattern resolver expands each identifier against the table's actual
//     columns. Identifiers of the form "r/<body>/" are regex markers matched
//     as anchored prefixes; everything else is a literal name. Resolution
//     happens once and is reused by every validator that needs it.
//  3. The pipeline builder decides which validators the parameters call for
//     and assembles them in a fixed order: shape first (cheapest), then
//     column existence, dtypes, nullability, uniqueness, value checks, strict
//     mode, composite uniqueness, and row validation last (most expensive).
//  4. The pipeline runs every validator against one shared Context. In the
//     default fail-fast mode the first violation raises immediately; in lazy
//     mode every validator runs and all violations are reported at once.
//
// Validators are stateless values: calling Validate twice on the same context
// yields identical results. They report data problems as plain violation
// strings and never construct errors themselves; Pipeline.Run is the single
// point where violations become a *Error. Hard failures (an invalid regex
// marker, a custom check that misbehaves) are ordinary Go errors and surface
// immediately in either mode.
//
// # Usage
//
//	p := validate.NewParams()
//	p.Columns = map[string]any{
//		"price": validate.Constraint{Checks: map[string]any{"gt": 0}},
//		"r/tag_\\d+/": "string",
//	}
//	p.Lazy = true
//	if err := validate.Validate(tbl, p); err != nil {
//		var verr *validate.Error
//		if errors.As(err, &verr) {
//			// verr.Violations holds one message per detected problem
//		}
//	}
package validate
