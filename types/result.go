package types

import "errors"

// Output is a fully materialized artifact
type Output struct {
	Spec      EnumSpec
	Artifact  *Artifact
	Path      string // destination the content was written to
	Content   []byte // rendered and formatted text
	Formatted bool   // false when no formatter ran
	Changed   bool   // false when the destination already held the same content
}

// Failure is a spec whose task did not complete.
// Artifact is set when generation succeeded but a later step failed.
type Failure struct {
	Spec     EnumSpec
	Artifact *Artifact
	Err      error
}

// Report aggregates the outcome of one dispatcher run
type Report struct {
	Succeeded []*Output
	Failed    []*Failure
}

func NewReport() *Report {
	return &Report{
		Succeeded: make([]*Output, 0),
		Failed:    make([]*Failure, 0),
	}
}

// OK reports whether every task succeeded
func (r *Report) OK() bool {
	return len(r.Failed) == 0
}

// Err joins every failure into one error, or returns nil
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, 0, len(r.Failed))
	for _, f := range r.Failed {
		errs = append(errs, f.Err)
	}
	return errors.Join(errs...)
}

// Names returns the names of the succeeded and failed specs
func (r *Report) Names() (succeeded, failed []string) {
	for _, o := range r.Succeeded {
		succeeded = append(succeeded, o.Spec.Name)
	}
	for _, f := range r.Failed {
		failed = append(failed, f.Spec.Name)
	}
	return succeeded, failed
}

// Failure returns the failure recorded for name, if any
func (r *Report) Failure(name string) (*Failure, bool) {
	for _, f := range r.Failed {
		if f.Spec.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Output returns the output recorded for name, if any
func (r *Report) Output(name string) (*Output, bool) {
	for _, o := range r.Succeeded {
		if o.Spec.Name == name {
			return o, true
		}
	}
	return nil, false
}
