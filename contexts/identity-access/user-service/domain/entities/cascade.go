package entities

// CascadeStep records one point mutation attempted while cascading a user
// deletion. Steps are independent: a failed step never rolls back the
// primary delete or stops later steps.
type CascadeStep struct {
	Name   string
	Target string
	Err    error
}

// CascadeResult is the structured outcome of a user-deletion cascade,
// surfaced to callers that need more than the primary delete's success.
type CascadeResult struct {
	Steps []CascadeStep
}

// Failed returns the steps that did not complete.
func (r CascadeResult) Failed() []CascadeStep {
	var failed []CascadeStep
	for _, step := range r.Steps {
		if step.Err != nil {
			failed = append(failed, step)
		}
	}
	return failed
}

// Clean reports whether every cascade step completed.
func (r CascadeResult) Clean() bool {
	return len(r.Failed()) == 0
}
