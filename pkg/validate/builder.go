package validate

import (
	"github.com/framecheck/framecheck/pkg/rowmodel"
	"github.com/framecheck/framecheck/pkg/tabular"
)

// Params is the full set of validation parameters a guarded call translates
// into a pipeline. Use NewParams for the documented defaults.
type Params struct {
	// Columns is the column specification: nil, a []string sequence of
	// identifiers, or a map[string]any from identifier to dtype shorthand or
	// Constraint.
	Columns any
	// Strict rejects table columns outside the specification.
	Strict bool
	// Lazy selects accumulate mode instead of fail-fast.
	Lazy bool
	// CompositeUnique lists column groups whose value tuples must be unique.
	CompositeUnique [][]string
	// RowModel validates each row when set.
	RowModel rowmodel.Model

	MinRows    *int
	MaxRows    *int
	ExactRows  *int
	AllowEmpty bool

	// MaxSamples caps example values per failed check.
	MaxSamples int
	// MaxErrors caps detailed row failures in the row validation report.
	MaxErrors int
	// EarlyTermination stops the row scan once MaxErrors failures are known.
	EarlyTermination bool
}

// NewParams returns Params with the documented defaults: allow empty tables,
// five check samples, five detailed row errors, early termination on.
func NewParams() Params {
	return Params{
		AllowEmpty:       true,
		MaxSamples:       5,
		MaxErrors:        5,
		EarlyTermination: true,
	}
}

// Build translates parameters into an ordered pipeline against a concrete
// column list. Ordering is fixed and load-bearing: shape rejects degenerate
// tables before any column work, row validation runs last because it is the
// only data-volume-proportional stage, and everything in between assumes its
// predecessors' concerns were already checked. Regex expansion happens here,
// once, so every matched real column inherits its identifier's constraints.
// The only failure mode is a malformed regex marker.
func Build(p Params, tableColumns []string) (*Pipeline, error) {
	pipeline := NewPipeline(p.Lazy)

	if p.MinRows != nil || p.MaxRows != nil || p.ExactRows != nil || !p.AllowEmpty {
		pipeline.Add(&ShapeValidator{
			MinRows:    p.MinRows,
			MaxRows:    p.MaxRows,
			ExactRows:  p.ExactRows,
			AllowEmpty: p.AllowEmpty,
		})
	}

	if p.Columns != nil {
		if err := buildColumnValidators(pipeline, p, tableColumns); err != nil {
			return nil, err
		}
	}

	if len(p.CompositeUnique) > 0 {
		pipeline.Add(&CompositeUniqueValidator{Groups: p.CompositeUnique})
	}

	if p.RowModel != nil {
		pipeline.Add(&RowValidator{
			Model:            p.RowModel,
			MaxErrors:        p.MaxErrors,
			EarlyTermination: p.EarlyTermination,
		})
	}

	return pipeline, nil
}

func buildColumnValidators(pipeline *Pipeline, p Params, tableColumns []string) error {
	spec := parseColumnSpec(p.Columns)

	resolvedRequired, err := Resolve(spec.required, tableColumns)
	if err != nil {
		return err
	}
	if len(spec.required) > 0 {
		pipeline.Add(&ColumnsExistValidator{
			Missing:   resolvedRequired.MissingSpecs,
			Available: tableColumns,
		})
	}

	resolvedAll, err := Resolve(spec.allColumns(), tableColumns)
	if err != nil {
		return err
	}

	if expected := expandDtypes(spec, resolvedAll); len(expected) > 0 {
		pipeline.Add(&DtypeValidator{Expected: expected})
	}
	if cols := expandNames(spec.nonNullable, resolvedAll); len(cols) > 0 {
		pipeline.Add(&NullableValidator{Columns: cols})
	}
	if cols := expandNames(spec.unique, resolvedAll); len(cols) > 0 {
		pipeline.Add(&UniqueValidator{Columns: cols})
	}
	if checks, order := expandChecks(spec, resolvedAll); len(checks) > 0 {
		pipeline.Add(&ChecksValidator{
			Columns:    sortedChecks(checks, order),
			MaxSamples: p.MaxSamples,
		})
	}

	if p.Strict {
		allowed := make(map[string]struct{})
		for _, id := range spec.allColumns() {
			allowed[id] = struct{}{}
		}
		for col := range resolvedAll.AllMatched {
			allowed[col] = struct{}{}
		}
		pipeline.Add(&StrictValidator{Allowed: allowed})
	}
	return nil
}

// expandNames maps identifiers to their matched real columns, preserving
// identifier order.
func expandNames(specs []string, resolved *Resolved) []string {
	var out []string
	for _, spec := range specs {
		out = append(out, resolved.ColumnsFor(spec)...)
	}
	return out
}

// expandDtypes expands dtype constraints so every regex-matched column
// inherits the identifier's expected dtype. Later identifiers win on overlap.
func expandDtypes(spec *parsedSpec, resolved *Resolved) []DtypeExpectation {
	index := make(map[string]int)
	var out []DtypeExpectation
	for _, id := range spec.dtypeOrder {
		for _, col := range resolved.ColumnsFor(id) {
			if i, seen := index[col]; seen {
				out[i].Dtype = spec.dtypes[id]
				continue
			}
			index[col] = len(out)
			out = append(out, DtypeExpectation{Column: col, Dtype: spec.dtypes[id]})
		}
	}
	return out
}

// expandChecks expands checks-by-identifier into checks-by-real-column.
func expandChecks(spec *parsedSpec, resolved *Resolved) (map[string]map[string]any, []string) {
	byColumn := make(map[string]map[string]any)
	var order []string
	for _, id := range spec.checksOrder {
		for _, col := range resolved.ColumnsFor(id) {
			if _, seen := byColumn[col]; !seen {
				order = append(order, col)
			}
			byColumn[col] = spec.checks[id]
		}
	}
	return byColumn, order
}

// Validate builds and runs a pipeline against one table.
func Validate(t tabular.Table, p Params) error {
	return run(NewContext(t), p)
}

// ValidateCall is Validate with call context for message suffixes: the
// enclosing function name and the parameter name, or the return-value flag.
func ValidateCall(t tabular.Table, p Params, funcName, paramName string, isReturn bool) error {
	return run(NewCallContext(t, funcName, paramName, isReturn), p)
}

func run(ctx *Context, p Params) error {
	pipeline, err := Build(p, ctx.Columns())
	if err != nil {
		return err
	}
	return pipeline.Run(ctx)
}
