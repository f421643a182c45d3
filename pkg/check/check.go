// Package check runs one comparison over every active case of a
// table, reporting each mismatch at the source line where the
// failing case was written. Selection happens strictly before
// evaluation: operands of excluded or unfocused cases are never
// invoked.
package check

import (
	"digital.vasic.tabletest/pkg/pair"
	"digital.vasic.tabletest/pkg/sink"
)

// TestingT is the minimal failure-reporting surface required
// from the host test framework. *testing.T satisfies it, as does
// sink.Recorder.
type TestingT interface {
	// Errorf reports a failure without stopping the test.
	Errorf(format string, args ...any)
}

// tHelper marks calling frames as test helpers, as *testing.T
// does.
type tHelper interface {
	Helper()
}

func helper(t TestingT) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
}

// Fail reports one failure against the given source location.
// Targets implementing sink.Sink receive it structured; anything
// else gets an Errorf with a file:line prefix. Custom comparison
// routines use Fail to keep attribution on the case literal.
func Fail(t TestingT, loc pair.Location, msg string) {
	helper(t)
	if s, ok := t.(sink.Sink); ok {
		s.Report(sink.Failure{
			File:    loc.File,
			Line:    loc.Line,
			Message: msg,
		})
		return
	}
	t.Errorf("%s: %s", loc, msg)
}

// pass announces a passing case to targets that track them.
func pass(t TestingT, loc pair.Location) {
	if p, ok := t.(sink.PassReporter); ok {
		p.CasePassed(loc.File, loc.Line)
	}
}

// probe wraps a reporting target to observe whether a custom
// comparison reported anything, while forwarding every report
// unchanged.
type probe struct {
	t      TestingT
	failed bool
}

func (p *probe) Errorf(format string, args ...any) {
	p.failed = true
	helper(p.t)
	p.t.Errorf(format, args...)
}

func (p *probe) Helper() {
	helper(p.t)
}

func (p *probe) Report(f sink.Failure) {
	p.failed = true
	if s, ok := p.t.(sink.Sink); ok {
		s.Report(f)
		return
	}
	helper(p.t)
	p.t.Errorf("%s", f)
}
