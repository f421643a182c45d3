package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestYAMLReporter_Generate(t *testing.T) {
	data, err := NewYAMLReporter().
		Generate(Summarize(recordedRun()))
	require.NoError(t, err)

	var decoded Summary
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, 4, decoded.Total)
	assert.Equal(t, 3, decoded.Passed)
	require.Len(t, decoded.Failures, 1)
	assert.Equal(t, 13, decoded.Failures[0].Line)
}

func TestYAMLReporter_Write(t *testing.T) {
	var buf bytes.Buffer

	err := NewYAMLReporter().
		Write(&buf, Summarize(recordedRun()))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "total: 4")
	assert.Contains(t, buf.String(), "failures:")
}
