package check

import (
	"fmt"
	"math"
	"reflect"

	"github.com/google/go-cmp/cmp"

	"digital.vasic.tabletest/pkg/logging"
	"digital.vasic.tabletest/pkg/pair"
)

// Number constrains the operand types accepted by the tolerance
// comparators.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Ordered constrains the operand types accepted by the ordering
// comparators.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

// Equal asserts deep equality of left and right for every active
// case.
func Equal[T any](
	t TestingT,
	cases []pair.Case[T, T],
	opts ...Option,
) {
	helper(t)
	run(t, cases, opts, func(l, r T) (bool, string) {
		if reflect.DeepEqual(l, r) {
			return true, ""
		}
		detail := fmt.Sprintf(
			"not equal: left %#v, right %#v", l, r,
		)
		if d := renderDiff(l, r); d != "" {
			detail += "\ndiff (-right +left):\n" + d
		}
		return false, detail
	})
}

// NotEqual asserts that left and right differ for every active
// case.
func NotEqual[T any](
	t TestingT,
	cases []pair.Case[T, T],
	opts ...Option,
) {
	helper(t)
	run(t, cases, opts, func(l, r T) (bool, string) {
		if !reflect.DeepEqual(l, r) {
			return true, ""
		}
		return false, fmt.Sprintf(
			"unexpectedly equal: %#v", l,
		)
	})
}

// EqualWithTolerance asserts that left and right are within the
// given absolute tolerance for every active case. A difference
// equal to the tolerance passes.
func EqualWithTolerance[T Number](
	t TestingT,
	tolerance float64,
	cases []pair.Case[T, T],
	opts ...Option,
) {
	helper(t)
	run(t, cases, opts, func(l, r T) (bool, string) {
		d := math.Abs(float64(l) - float64(r))
		if d <= tolerance {
			return true, ""
		}
		return false, fmt.Sprintf(
			"difference %g exceeds tolerance %g (left %v, right %v)",
			d, tolerance, l, r,
		)
	})
}

// NotEqualWithTolerance asserts that left and right differ by
// more than the given absolute tolerance for every active case.
func NotEqualWithTolerance[T Number](
	t TestingT,
	tolerance float64,
	cases []pair.Case[T, T],
	opts ...Option,
) {
	helper(t)
	run(t, cases, opts, func(l, r T) (bool, string) {
		d := math.Abs(float64(l) - float64(r))
		if d > tolerance {
			return true, ""
		}
		return false, fmt.Sprintf(
			"difference %g within tolerance %g (left %v, right %v)",
			d, tolerance, l, r,
		)
	})
}

// LessThan asserts left < right for every active case.
func LessThan[T Ordered](
	t TestingT,
	cases []pair.Case[T, T],
	opts ...Option,
) {
	helper(t)
	run(t, cases, opts, func(l, r T) (bool, string) {
		if l < r {
			return true, ""
		}
		return false, fmt.Sprintf(
			"left %v is not less than right %v", l, r,
		)
	})
}

// GreaterThan asserts left > right for every active case.
func GreaterThan[T Ordered](
	t TestingT,
	cases []pair.Case[T, T],
	opts ...Option,
) {
	helper(t)
	run(t, cases, opts, func(l, r T) (bool, string) {
		if l > r {
			return true, ""
		}
		return false, fmt.Sprintf(
			"left %v is not greater than right %v", l, r,
		)
	})
}

// LessOrEqual asserts left <= right for every active case.
func LessOrEqual[T Ordered](
	t TestingT,
	cases []pair.Case[T, T],
	opts ...Option,
) {
	helper(t)
	run(t, cases, opts, func(l, r T) (bool, string) {
		if l <= r {
			return true, ""
		}
		return false, fmt.Sprintf(
			"left %v is greater than right %v", l, r,
		)
	})
}

// GreaterOrEqual asserts left >= right for every active case.
func GreaterOrEqual[T Ordered](
	t TestingT,
	cases []pair.Case[T, T],
	opts ...Option,
) {
	helper(t)
	run(t, cases, opts, func(l, r T) (bool, string) {
		if l >= r {
			return true, ""
		}
		return false, fmt.Sprintf(
			"left %v is less than right %v", l, r,
		)
	})
}

// Boolean asserts that left matches the expected truth value
// carried on the right for every active case.
func Boolean(
	t TestingT,
	cases []pair.Case[bool, bool],
	opts ...Option,
) {
	helper(t)
	run(t, cases, opts, func(l, r bool) (bool, string) {
		if l == r {
			return true, ""
		}
		return false, fmt.Sprintf(
			"expected %t, got %t", r, l,
		)
	})
}

// Comparison is a caller-supplied comparison routine used with
// Custom. It receives the reporting target and one surviving
// case with operands already forced; it decides what to check
// and reports failures itself, typically via Fail with
// c.Location() so attribution stays on the case literal.
type Comparison[L, R any] func(t TestingT, c pair.Case[L, R])

// Custom applies a caller-supplied comparison to every active
// case. Operands are forced, left before right, before the
// routine runs; a panic inside the routine fails that case and
// the remaining cases still run.
func Custom[L, R any](
	t TestingT,
	compare Comparison[L, R],
	cases []pair.Case[L, R],
	opts ...Option,
) {
	helper(t)
	s := newSettings(opts)

	active := pair.ToTest(cases)
	logSelection(s.logger, len(cases), len(active))

	for _, c := range active {
		if _, _, err := force(c); err != nil {
			Fail(t, c.Location(), failText(c, err.Error()))
			continue
		}

		p := &probe{t: t}
		if err := protect(func() { compare(p, c) }); err != nil {
			Fail(t, c.Location(), failText(
				c, "custom comparison panicked: "+err.Error(),
			))
			continue
		}

		if p.failed {
			s.logger.Debug("case failed",
				logging.StringField("at", c.Location().String()),
			)
			continue
		}

		s.logger.Debug("case passed",
			logging.StringField("at", c.Location().String()),
		)
		pass(t, c.Location())
	}
}

// renderDiff produces a go-cmp diff for equality failures.
// cmp.Diff panics on types it cannot compare, e.g. structs with
// unexported fields and no options; those failures fall back to
// the plain value dump.
func renderDiff[T any](l, r T) (d string) {
	defer func() {
		if recover() != nil {
			d = ""
		}
	}()
	return cmp.Diff(r, l)
}
