// Package report turns a recorded assertion run into JSON,
// YAML, or Markdown summaries, e.g. for CI artifacts.
package report

import (
	"fmt"
	"strings"
	"time"

	"digital.vasic.tabletest/pkg/sink"
)

// Summary aggregates the outcome of one recorded run.
type Summary struct {
	GeneratedAt time.Time      `json:"generated_at" yaml:"generated_at"`
	Total       int            `json:"total" yaml:"total"`
	Passed      int            `json:"passed" yaml:"passed"`
	Failed      int            `json:"failed" yaml:"failed"`
	PassRate    float64        `json:"pass_rate" yaml:"pass_rate"`
	Failures    []sink.Failure `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// Summarize builds a Summary from a recorder's collected
// outcomes.
func Summarize(rec *sink.Recorder) *Summary {
	s := &Summary{
		GeneratedAt: time.Now(),
		Total:       rec.Total(),
		Passed:      rec.Passed(),
		Failed:      rec.Failed(),
		Failures:    rec.Failures(),
	}

	if s.Total > 0 {
		s.PassRate = float64(s.Passed) / float64(s.Total)
	}

	return s
}

// Markdown renders the summary as a Markdown document with a
// statistics table and one row per failure.
func Markdown(s *Summary) string {
	var sb strings.Builder

	sb.WriteString("# Assertion Run Summary\n\n")
	sb.WriteString(
		fmt.Sprintf(
			"**Generated:** %s\n\n",
			s.GeneratedAt.Format(time.RFC3339),
		),
	)

	sb.WriteString("## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(
		fmt.Sprintf("| Total Cases | %d |\n", s.Total),
	)
	sb.WriteString(
		fmt.Sprintf("| Passed | %d |\n", s.Passed),
	)
	sb.WriteString(
		fmt.Sprintf("| Failed | %d |\n", s.Failed),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Pass Rate | %.0f%% |\n", s.PassRate*100,
		),
	)

	if len(s.Failures) > 0 {
		sb.WriteString("\n## Failures\n\n")
		sb.WriteString("| Location | Message |\n")
		sb.WriteString("|----------|--------|\n")
		for _, f := range s.Failures {
			sb.WriteString(
				fmt.Sprintf(
					"| %s:%d | %s |\n",
					f.File, f.Line,
					strings.ReplaceAll(f.Message, "\n", " "),
				),
			)
		}
	}

	sb.WriteString("\n---\n")

	return sb.String()
}
