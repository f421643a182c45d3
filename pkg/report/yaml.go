package report

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLReporter serializes run summaries to YAML.
type YAMLReporter struct{}

// NewYAMLReporter creates a new YAML reporter.
func NewYAMLReporter() *YAMLReporter {
	return &YAMLReporter{}
}

// Generate serializes a summary to YAML.
func (r *YAMLReporter) Generate(s *Summary) ([]byte, error) {
	return yaml.Marshal(s)
}

// Write writes a YAML summary to the specified writer.
func (r *YAMLReporter) Write(w io.Writer, s *Summary) error {
	data, err := r.Generate(s)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
