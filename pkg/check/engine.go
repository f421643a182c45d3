package check

import (
	"fmt"

	"digital.vasic.tabletest/pkg/logging"
	"digital.vasic.tabletest/pkg/pair"
)

// run is the shared evaluation loop behind every comparator. It
// filters first, then walks the survivors in original order,
// forcing left before right exactly once each and reporting any
// mismatch at the case's construction site. A panic while
// forcing operands fails that one case and the remaining cases
// still run.
func run[L, R any](
	t TestingT,
	cases []pair.Case[L, R],
	opts []Option,
	compare func(l L, r R) (bool, string),
) {
	helper(t)
	s := newSettings(opts)

	active := pair.ToTest(cases)
	logSelection(s.logger, len(cases), len(active))

	for _, c := range active {
		l, r, err := force(c)
		if err != nil {
			s.logger.Debug("case errored",
				logging.StringField("at", c.Location().String()),
			)
			Fail(t, c.Location(), failText(c, err.Error()))
			continue
		}

		ok, detail := compare(l, r)
		if ok {
			s.logger.Debug("case passed",
				logging.StringField("at", c.Location().String()),
			)
			pass(t, c.Location())
			continue
		}

		s.logger.Debug("case failed",
			logging.StringField("at", c.Location().String()),
		)
		Fail(t, c.Location(), failText(c, detail))
	}
}

// logSelection traces how many cases survived filtering.
func logSelection(logger logging.Logger, total, active int) {
	if total == active {
		logger.Debug("running all cases",
			logging.IntField("cases", total),
		)
		return
	}
	logger.Debug("cases filtered",
		logging.IntField("total", total),
		logging.IntField("active", active),
	)
}

// force evaluates a case's operands, left before right,
// converting a panic in either producer into an error.
func force[L, R any](c pair.Case[L, R]) (l L, r R, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf(
				"operand evaluation panicked: %v", p,
			)
		}
	}()
	l = c.Left()
	r = c.Right()
	return l, r, nil
}

// message forces the case's annotation, tolerating a producer
// that panics.
func message[L, R any](c pair.Case[L, R]) (m string) {
	defer func() {
		if p := recover(); p != nil {
			m = fmt.Sprintf(
				"(message evaluation panicked: %v)", p,
			)
		}
	}()
	return c.Message()
}

// failText prefixes the comparison detail with the case's
// annotation, when it has one. The annotation is forced here,
// on the failure path only.
func failText[L, R any](c pair.Case[L, R], detail string) string {
	if m := message(c); m != "" {
		return m + ": " + detail
	}
	return detail
}

// protect runs fn, converting a panic into an error.
func protect(fn func()) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%v", p)
		}
	}()
	fn()
	return nil
}
