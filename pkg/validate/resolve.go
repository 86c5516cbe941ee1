package validate

// ResolvedColumn is a single identifier expanded to the actual column names it
// denotes: a literal matches itself when present, a regex marker matches every
// column its pattern prefixes.
type ResolvedColumn struct {
	Spec    string
	IsRegex bool
	Matched []string
}

// Exists reports whether the identifier matched anything.
func (r ResolvedColumn) Exists() bool { return len(r.Matched) > 0 }

// Resolved is the full resolution result, built once per validation call and
// reused by every validator that needs identifier expansion.
type Resolved struct {
	Resolved []ResolvedColumn
	// AllMatched aggregates every concrete column name touched by any
	// identifier; strict mode allow-lists are derived from it.
	AllMatched map[string]struct{}
	// MissingSpecs lists identifiers with zero matches, in spec order.
	MissingSpecs []string

	bySpec map[string][]string
}

// Resolve expands identifiers against a table's actual columns. It fails only
// on a malformed regex marker, before any validator runs.
func Resolve(specs []string, tableColumns []string) (*Resolved, error) {
	r := &Resolved{
		AllMatched: make(map[string]struct{}),
		bySpec:     make(map[string][]string, len(specs)),
	}
	colSet := make(map[string]struct{}, len(tableColumns))
	for _, c := range tableColumns {
		colSet[c] = struct{}{}
	}
	for _, spec := range specs {
		var matched []string
		isRegex := IsPattern(spec)
		if isRegex {
			re, err := CompilePattern(spec)
			if err != nil {
				return nil, err
			}
			matched = MatchColumns(re, tableColumns)
		} else if _, ok := colSet[spec]; ok {
			matched = []string{spec}
		}
		rc := ResolvedColumn{Spec: spec, IsRegex: isRegex, Matched: matched}
		r.Resolved = append(r.Resolved, rc)
		r.bySpec[spec] = matched
		for _, col := range matched {
			r.AllMatched[col] = struct{}{}
		}
		if !rc.Exists() {
			r.MissingSpecs = append(r.MissingSpecs, spec)
		}
	}
	return r, nil
}

// ColumnsFor returns the matched columns for one identifier; unknown
// identifiers yield an empty list, not an error.
func (r *Resolved) ColumnsFor(spec string) []string { return r.bySpec[spec] }
