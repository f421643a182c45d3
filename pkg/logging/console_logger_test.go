package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestConsoleLogger(verbose bool) (*ConsoleLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(verbose)
	logger.output = buf
	return logger, buf
}

func TestConsoleLogger_Info(t *testing.T) {
	logger, buf := newTestConsoleLogger(false)

	logger.Info("case passed",
		StringField("at", "table_test.go:12"))

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "case passed")
	assert.Contains(t, out, "at=table_test.go:12")
}

func TestConsoleLogger_Levels(t *testing.T) {
	logger, buf := newTestConsoleLogger(false)

	logger.Warn("w")
	logger.Error("e")

	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "ERROR")
}

func TestConsoleLogger_DebugRequiresVerbose(t *testing.T) {
	logger, buf := newTestConsoleLogger(false)

	logger.Debug("hidden")

	assert.Empty(t, buf.String())
}

func TestConsoleLogger_DebugWhenVerbose(t *testing.T) {
	logger, buf := newTestConsoleLogger(true)

	logger.Debug("cases filtered", IntField("active", 2))

	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "cases filtered")
	assert.Contains(t, buf.String(), "active=2")
}

func TestConsoleLogger_WithFields(t *testing.T) {
	logger, buf := newTestConsoleLogger(false)

	child := logger.WithFields(StringField("suite", "codec"))
	child.Info("running")

	assert.Contains(t, buf.String(), "suite=codec")
}

func TestConsoleLogger_CallFieldsShadowDefaults(t *testing.T) {
	logger, buf := newTestConsoleLogger(false)

	child := logger.WithFields(StringField("suite", "codec"))
	child.Info("running", StringField("suite", "parser"))

	assert.Contains(t, buf.String(), "suite=parser")
	assert.NotContains(t, buf.String(), "suite=codec")
}

func TestConsoleLogger_Close(t *testing.T) {
	logger, _ := newTestConsoleLogger(false)

	assert.NoError(t, logger.Close())
}
