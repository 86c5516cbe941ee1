package validate

import (
	"sort"

	"github.com/framecheck/framecheck/pkg/tabular"
)

// Constraint is the full per-column specification. The zero value means
// "required, nullable, no dtype, no checks", matching the defaults of the
// shorthand forms.
type Constraint struct {
	// Dtype is the expected dtype: a token string or a tabular.Kind. Nil
	// means unconstrained.
	Dtype any
	// Nullable defaults to true; only an explicit false forbids nulls.
	Nullable *bool
	// Unique requires all non-null values to be distinct.
	Unique bool
	// Required defaults to true; an explicit false makes the column optional.
	// Optional columns are still dtype/nullable/unique/checks-validated when
	// present, but their absence is not a violation.
	Required *bool
	// Checks maps check names to check values: a builtin name with its
	// argument, or any name with a CheckFunc custom predicate.
	Checks map[string]any
}

// CheckFunc is a custom check: it receives the column and returns a mask
// aligned to it where true means the value is valid.
type CheckFunc func(tabular.Series) ([]bool, error)

// parsedSpec is the canonical intermediate form of a column specification,
// built once per validation call and immutable thereafter.
type parsedSpec struct {
	required    []string
	optional    []string
	dtypes      map[string]any
	dtypeOrder  []string
	nonNullable []string
	unique      []string
	checks      map[string]map[string]any
	checksOrder []string
}

// allColumns returns required plus optional identifiers, used for strict-mode
// allow-listing and constraint expansion.
func (p *parsedSpec) allColumns() []string {
	all := make([]string, 0, len(p.required)+len(p.optional))
	all = append(all, p.required...)
	return append(all, p.optional...)
}

// parseColumnSpec normalizes the two accepted shapes of a column
// specification: a sequence of identifiers (all required), or a mapping from
// identifier to a dtype shorthand or a Constraint. Parsing never fails;
// unrecognized spec types yield an empty parsed spec. The mapping form is
// traversed in sorted key order so downstream messages are deterministic.
func parseColumnSpec(columns any) *parsedSpec {
	p := &parsedSpec{
		dtypes: make(map[string]any),
		checks: make(map[string]map[string]any),
	}
	switch spec := columns.(type) {
	case nil:
	case []string:
		p.required = append(p.required, spec...)
	case map[string]any:
		ids := make([]string, 0, len(spec))
		for id := range spec {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			p.addMappingEntry(id, spec[id])
		}
	}
	return p
}

func (p *parsedSpec) addMappingEntry(id string, value any) {
	c, ok := asConstraint(value)
	if !ok {
		// Anything that is not a constraint object is a dtype shorthand,
		// and shorthand columns are implicitly required.
		p.required = append(p.required, id)
		p.setDtype(id, value)
		return
	}
	if c.Required == nil || *c.Required {
		p.required = append(p.required, id)
	} else {
		p.optional = append(p.optional, id)
	}
	if c.Dtype != nil {
		p.setDtype(id, c.Dtype)
	}
	if c.Nullable != nil && !*c.Nullable {
		p.nonNullable = append(p.nonNullable, id)
	}
	if c.Unique {
		p.unique = append(p.unique, id)
	}
	if len(c.Checks) > 0 {
		p.checks[id] = c.Checks
		p.checksOrder = append(p.checksOrder, id)
	}
}

func (p *parsedSpec) setDtype(id string, dtype any) {
	if _, seen := p.dtypes[id]; !seen {
		p.dtypeOrder = append(p.dtypeOrder, id)
	}
	p.dtypes[id] = dtype
}

func asConstraint(value any) (Constraint, bool) {
	switch c := value.(type) {
	case Constraint:
		return c, true
	case *Constraint:
		if c == nil {
			return Constraint{}, true
		}
		return *c, true
	default:
		return Constraint{}, false
	}
}
