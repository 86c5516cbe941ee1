// Package tabular provides a backend-neutral view over eager in-memory tables.
//
// The validation engine never talks to a concrete table library directly.
// Instead it consumes the small Table and Series interfaces defined here, which
// expose exactly the operations validation needs: an ordered column list, a row
// count, per-column dtype tokens, null and distinct counts, and cell access.
// Two native backends are included, Rows (row-oriented records) and Columns
// (columnar vectors), and the arrowtab subpackage adapts Apache Arrow record
// batches to the same contract.
//
// # Dtype model
//
// Backends report dtypes as free-form string tokens ("int64", "utf8", "object",
// ...). The Kind enum is the closed canonical set those tokens normalize into,
// and KindOf is the single normalization point. The alias table is explicit so
// it can be tested directly.
//
// # Cell values
//
// Cells are untyped (any). Backends normalize integers to int64 and float32 to
// float64 on ingestion so comparisons are stable across column sources. A nil
// cell is a null; NaN floats are treated as null as well. Compare and Equal
// implement backend-neutral ordering and equality, using decimal arithmetic for
// numeric pairs so int64 and float64 cells compare against mixed-type
// thresholds without precision surprises.
//
// # Usage
//
//	tbl, err := tabular.NewColumns(
//		tabular.Col("id", []int64{1, 2, 3}),
//		tabular.Col("name", []string{"a", "b", "c"}),
//	)
//	if err != nil {
//		// handle error
//	}
//	for i, row := range tabular.IterRows(tbl) {
//		_ = row["name"] // cell value, nil when null
//		_ = i
//	}
package tabular
