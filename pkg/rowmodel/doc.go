// Package rowmodel defines the row-schema model contract used by row-level
// table validation, plus a rules-based implementation.
//
// A Model validates one row, a column-name to cell-value mapping, and
// reports structured per-field failures. The table validation engine only
// depends on the Model interface; any record validator that can produce
// (field, message) pairs plugs in.
//
// # Rules implementation
//
// Schema is the bundled implementation: declare fields and attach stateless
// rules to each. Rules receive the cell value (and whether the field was
// present at all) and never mutate anything, so one Schema is safe to share
// across goroutines and validation calls.
//
//	model := rowmodel.NewSchema(
//		rowmodel.Field("id", rowmodel.Required(), rowmodel.OfKind(tabular.Int64)),
//		rowmodel.Field("email", rowmodel.Required(), rowmodel.Match(`[^@]+@[^@]+`)),
//		rowmodel.Field("age", rowmodel.MinNum(0), rowmodel.MaxNum(150)),
//	)
//	if err := model.ValidateRow(row); err != nil {
//		var ferrs rowmodel.Errors
//		errors.As(err, &ferrs) // one FieldError per failed rule
//	}
//
// Fields absent from the schema are ignored: a model constrains what it
// declares, nothing more. Null cells pass every rule except Required and
// NotNull, mirroring how nullability is an explicit constraint elsewhere in
// the library.
package rowmodel
