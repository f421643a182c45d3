package report

import (
	"encoding/json"
	"io"
)

// JSONReporter serializes run summaries to JSON.
type JSONReporter struct {
	pretty bool
}

// NewJSONReporter creates a new JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(pretty bool) *JSONReporter {
	return &JSONReporter{pretty: pretty}
}

// Generate serializes a summary to JSON.
func (r *JSONReporter) Generate(s *Summary) ([]byte, error) {
	if r.pretty {
		return json.MarshalIndent(s, "", "  ")
	}
	return json.Marshal(s)
}

// Write writes a JSON summary to the specified writer.
func (r *JSONReporter) Write(w io.Writer, s *Summary) error {
	data, err := r.Generate(s)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
