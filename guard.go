package framecheck

import (
	"github.com/framecheck/framecheck/pkg/config"
	"github.com/framecheck/framecheck/pkg/rowmodel"
	"github.com/framecheck/framecheck/pkg/tabular"
	"github.com/framecheck/framecheck/pkg/validate"
)

// Column is the per-column constraint object used as a value in Columns maps.
type Column = validate.Constraint

// CheckFunc is a custom check predicate usable as a Checks value.
type CheckFunc = validate.CheckFunc

// Guard holds a compiled set of validation parameters. Build one per contract
// (typically at package init) and reuse it; every Validate call builds a
// fresh pipeline against the concrete table it receives.
type Guard struct {
	params validate.Params

	strictSet  bool
	lazySet    bool
	samplesSet bool
	errorsSet  bool
}

// Option configures a Guard.
type Option func(*Guard)

// New builds a Guard. Strict, Lazy, MaxSamples and MaxErrors fall back to the
// environment configuration when their options were not given; if the
// environment cannot be parsed the compiled-in defaults apply.
func New(opts ...Option) *Guard {
	g := &Guard{params: validate.NewParams()}
	for _, opt := range opts {
		opt(g)
	}
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	if !g.strictSet {
		g.params.Strict = cfg.Strict
	}
	if !g.lazySet {
		g.params.Lazy = cfg.Lazy
	}
	if !g.samplesSet {
		g.params.MaxSamples = cfg.ChecksMaxSamples
	}
	if !g.errorsSet {
		g.params.MaxErrors = cfg.RowMaxErrors
	}
	return g
}

// Columns declares the mapping form of a column specification: identifier to
// dtype shorthand (string or tabular.Kind) or Column constraint object.
func Columns(spec map[string]any) Option {
	return func(g *Guard) { g.params.Columns = spec }
}

// ColumnNames declares the sequence form: every identifier is required.
func ColumnNames(names ...string) Option {
	return func(g *Guard) { g.params.Columns = names }
}

// Strict rejects table columns outside the specification.
func Strict(strict bool) Option {
	return func(g *Guard) {
		g.params.Strict = strict
		g.strictSet = true
	}
}

// Lazy selects accumulate mode: every validator runs and all violations are
// reported in one error.
func Lazy(lazy bool) Option {
	return func(g *Guard) {
		g.params.Lazy = lazy
		g.lazySet = true
	}
}

// MinRows requires at least n rows.
func MinRows(n int) Option {
	return func(g *Guard) { g.params.MinRows = &n }
}

// MaxRows allows at most n rows.
func MaxRows(n int) Option {
	return func(g *Guard) { g.params.MaxRows = &n }
}

// ExactRows requires exactly n rows.
func ExactRows(n int) Option {
	return func(g *Guard) { g.params.ExactRows = &n }
}

// AllowEmpty controls whether a zero-row table passes; the default is true.
func AllowEmpty(allow bool) Option {
	return func(g *Guard) { g.params.AllowEmpty = allow }
}

// CompositeUnique requires each listed column group to have unique value
// tuples across rows.
func CompositeUnique(groups ...[]string) Option {
	return func(g *Guard) { g.params.CompositeUnique = append(g.params.CompositeUnique, groups...) }
}

// RowModel validates every row against a row-schema model.
func RowModel(m rowmodel.Model) Option {
	return func(g *Guard) { g.params.RowModel = m }
}

// MaxSamples caps example values per failed check.
func MaxSamples(n int) Option {
	return func(g *Guard) {
		g.params.MaxSamples = n
		g.samplesSet = true
	}
}

// MaxErrors caps detailed row failures in the row validation report.
func MaxErrors(n int) Option {
	return func(g *Guard) {
		g.params.MaxErrors = n
		g.errorsSet = true
	}
}

// EarlyTermination controls whether the row scan stops once MaxErrors
// failures are known; the default is true.
func EarlyTermination(on bool) Option {
	return func(g *Guard) { g.params.EarlyTermination = on }
}

// Params exposes the compiled parameters, mainly for inspection in tests.
func (g *Guard) Params() validate.Params { return g.params }

// Validate checks a table without call context.
func (g *Guard) Validate(t tabular.Table) error {
	return validate.Validate(t, g.params)
}

// ValidateIn checks a table received as a parameter; funcName and paramName
// appear in violation messages.
func (g *Guard) ValidateIn(t tabular.Table, funcName, paramName string) error {
	return validate.ValidateCall(t, g.params, funcName, paramName, false)
}

// ValidateOut checks a table produced as a return value.
func (g *Guard) ValidateOut(t tabular.Table, funcName string) error {
	return validate.ValidateCall(t, g.params, funcName, "", true)
}
