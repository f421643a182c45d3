// Package sink defines where assertion failures go. Instead of
// being tied to ambient test-run state, every run reports into
// an explicit sink: usually *testing.T, optionally a Recorder
// that hands the caller the ordered failure list.
package sink

import "fmt"

// Failure is one reported assertion failure, attributed to the
// source line where the failing case was constructed.
type Failure struct {
	File    string `json:"file" yaml:"file"`
	Line    int    `json:"line" yaml:"line"`
	Message string `json:"message" yaml:"message"`
}

// String formats the failure with its file:line attribution.
func (f Failure) String() string {
	if f.File == "" {
		return f.Message
	}
	return fmt.Sprintf("%s:%d: %s", f.File, f.Line, f.Message)
}

// Sink receives structured failures. A reporting target that
// implements Sink gets file and line as data rather than folded
// into a message string.
type Sink interface {
	// Report delivers one failure.
	Report(f Failure)
}

// PassReporter is an optional extension for sinks that also want
// to hear about cases that passed, e.g. to compute pass rates.
type PassReporter interface {
	// CasePassed announces a passing case at its construction
	// site.
	CasePassed(file string, line int)
}

// Recorder is an in-memory sink collecting every outcome of a
// run. It satisfies the minimal testing surface expected by the
// check package, so it can stand in for *testing.T when the
// caller wants the failures back instead of a failed test.
type Recorder struct {
	failures []Failure
	passed   int
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Report stores one structured failure.
func (r *Recorder) Report(f Failure) {
	r.failures = append(r.failures, f)
}

// CasePassed counts a passing case.
func (r *Recorder) CasePassed(_ string, _ int) {
	r.passed++
}

// Errorf stores a preformatted failure with no structured
// location. It exists so a Recorder can be used anywhere a
// testing.T-shaped value is expected.
func (r *Recorder) Errorf(format string, args ...any) {
	r.failures = append(r.failures, Failure{
		Message: fmt.Sprintf(format, args...),
	})
}

// Failures returns the recorded failures in report order.
func (r *Recorder) Failures() []Failure {
	return r.failures
}

// Passed returns the number of cases that passed.
func (r *Recorder) Passed() int {
	return r.passed
}

// Failed returns the number of recorded failures.
func (r *Recorder) Failed() int {
	return len(r.failures)
}

// Total returns the number of outcomes seen so far.
func (r *Recorder) Total() int {
	return r.passed + len(r.failures)
}

// Reset clears the recorder for reuse.
func (r *Recorder) Reset() {
	r.failures = nil
	r.passed = 0
}
