// Package pair models one declarative comparison case for
// table-driven tests: a left/right operand pair with deferred
// evaluation, a deferred failure message, a participation tag,
// and the source location where the case literal was written.
package pair

import (
	"fmt"
	"runtime"
)

// Participation is the tri-state selection tag on a case.
type Participation int

const (
	// ParticipationNormal is the default: the case runs unless
	// another case in the same list is focused.
	ParticipationNormal Participation = iota
	// ParticipationExcluded drops the case from the run without
	// deleting it from the table.
	ParticipationExcluded
	// ParticipationFocused restricts the run to focused cases
	// only.
	ParticipationFocused
)

// String returns the string representation of a participation
// tag.
func (p Participation) String() string {
	switch p {
	case ParticipationNormal:
		return "normal"
	case ParticipationExcluded:
		return "excluded"
	case ParticipationFocused:
		return "focused"
	default:
		return "unknown"
	}
}

// Location is the source position where a case was constructed.
// Failures are attributed here, not to the engine's loop.
type Location struct {
	File string
	Line int
}

// String formats the location as file:line.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// thunk is a deferred computation forced at most once. The
// result is memoized, so copies of a Case sharing the same cell
// observe a single invocation.
type thunk[T any] struct {
	fn     func() T
	forced bool
	value  T
}

func (t *thunk[T]) force() T {
	if !t.forced {
		t.value = t.fn()
		t.forced = true
		t.fn = nil
	}
	return t.value
}

// Case is one input/expected-output comparison. It is immutable
// after construction and is consumed by exactly one run.
type Case[L, R any] struct {
	left  *thunk[L]
	right *thunk[R]
	msg   *thunk[string]
	tag   Participation
	loc   Location
}

// CaseOption customizes a case at construction time.
type CaseOption func(*caseSettings)

type caseSettings struct {
	msg func() string
	loc *Location
}

// WithMessage attaches a deferred failure annotation. The
// function is invoked at most once, and only when the engine
// needs the message.
func WithMessage(msg func() string) CaseOption {
	return func(s *caseSettings) {
		s.msg = msg
	}
}

// WithMessagef attaches a failure annotation built from a format
// string. Formatting is deferred until the message is needed.
func WithMessagef(format string, args ...any) CaseOption {
	return func(s *caseSettings) {
		s.msg = func() string {
			return fmt.Sprintf(format, args...)
		}
	}
}

// At overrides the captured source location. It is meant for
// helpers that build cases on behalf of their own caller.
func At(file string, line int) CaseOption {
	return func(s *caseSettings) {
		s.loc = &Location{File: file, Line: line}
	}
}

// New builds a normal case. The operand functions are not
// invoked here; the engine forces them, left before right, only
// if the case survives selection.
func New[L, R any](
	left func() L,
	right func() R,
	opts ...CaseOption,
) Case[L, R] {
	return newCase(ParticipationNormal, left, right, opts)
}

// Excluded builds a case that selection drops from the run. The
// operands of an excluded case are never invoked.
func Excluded[L, R any](
	left func() L,
	right func() R,
	opts ...CaseOption,
) Case[L, R] {
	return newCase(ParticipationExcluded, left, right, opts)
}

// Focused builds a case that, when present, restricts the run to
// focused cases only. Several focused cases in one list all run.
func Focused[L, R any](
	left func() L,
	right func() R,
	opts ...CaseOption,
) Case[L, R] {
	return newCase(ParticipationFocused, left, right, opts)
}

// newCase is shared by the three constructors. The caller of the
// exported constructor sits two frames up.
func newCase[L, R any](
	tag Participation,
	left func() L,
	right func() R,
	opts []CaseOption,
) Case[L, R] {
	settings := caseSettings{
		msg: func() string { return "" },
	}
	for _, opt := range opts {
		opt(&settings)
	}

	loc := Location{}
	if settings.loc != nil {
		loc = *settings.loc
	} else if _, file, line, ok := runtime.Caller(2); ok {
		loc = Location{File: file, Line: line}
	}

	return Case[L, R]{
		left:  &thunk[L]{fn: left},
		right: &thunk[R]{fn: right},
		msg:   &thunk[string]{fn: settings.msg},
		tag:   tag,
		loc:   loc,
	}
}

// Left forces and returns the left operand. The producer runs at
// most once; repeat calls return the memoized value.
func (c Case[L, R]) Left() L {
	return c.left.force()
}

// Right forces and returns the right operand. The producer runs
// at most once; repeat calls return the memoized value.
func (c Case[L, R]) Right() R {
	return c.right.force()
}

// Message forces and returns the failure annotation, empty when
// none was supplied. The producer runs at most once.
func (c Case[L, R]) Message() string {
	return c.msg.force()
}

// Participation returns the case's selection tag.
func (c Case[L, R]) Participation() Participation {
	return c.tag
}

// Location returns the source position captured when the case
// was constructed.
func (c Case[L, R]) Location() Location {
	return c.loc
}
