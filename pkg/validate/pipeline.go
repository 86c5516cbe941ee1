package validate

// Pipeline is an ordered validator sequence plus an execution mode. It is
// built fresh for every validation call: different calls may carry different
// concrete tables, so nothing is cached across calls.
type Pipeline struct {
	lazy       bool
	validators []Validator
}

// NewPipeline creates an empty pipeline. Lazy selects accumulate mode: every
// validator runs and all violations are reported together. The default
// fail-fast mode stops at the first violating validator and reports only its
// first message.
func NewPipeline(lazy bool) *Pipeline {
	return &Pipeline{lazy: lazy}
}

// Add appends a validator. Returns the pipeline for chaining.
func (p *Pipeline) Add(v Validator) *Pipeline {
	p.validators = append(p.validators, v)
	return p
}

// Len returns the number of validator stages.
func (p *Pipeline) Len() int { return len(p.validators) }

// Validators returns the ordered stages, mainly for inspection in tests.
func (p *Pipeline) Validators() []Validator { return p.validators }

// Run executes the stages in order against one context. Violations surface as
// a single *Error; both modes build messages through the same validator code,
// so a solitary accumulated violation is textually identical to its fail-fast
// counterpart. Hard validator errors abort immediately in either mode.
func (p *Pipeline) Run(ctx *Context) error {
	var all []string
	for _, v := range p.validators {
		if s, ok := v.(Skippable); ok && s.ShouldSkip(ctx) {
			continue
		}
		msgs, err := v.Validate(ctx)
		if err != nil {
			return err
		}
		if len(msgs) == 0 {
			continue
		}
		if !p.lazy {
			return &Error{Violations: msgs[:1]}
		}
		all = append(all, msgs...)
	}
	if len(all) > 0 {
		return &Error{Violations: all}
	}
	return nil
}
