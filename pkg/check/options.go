package check

import "digital.vasic.tabletest/pkg/logging"

// Option configures a single comparator run.
type Option func(*settings)

type settings struct {
	logger logging.Logger
}

func newSettings(opts []Option) settings {
	s := settings{
		logger: logging.NullLogger{},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithLogger sets the logger used to trace selection and
// per-case outcomes at debug level. The default discards all
// output.
func WithLogger(logger logging.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}
