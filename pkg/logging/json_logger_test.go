package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEntries(t *testing.T, path string) []LogEntry {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var entries []LogEntry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry LogEntry
		require.NoError(
			t, json.Unmarshal(scanner.Bytes(), &entry),
		)
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())

	return entries
}

func TestJSONLogger_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	logger, err := NewJSONLogger(LoggerConfig{
		OutputPath: path,
	})
	require.NoError(t, err)

	logger.Info("case failed",
		StringField("at", "table_test.go:20"))
	logger.Warn("slow case")
	require.NoError(t, logger.Close())

	entries := readEntries(t, path)
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0].Level)
	assert.Equal(t, "case failed", entries[0].Message)
	assert.Equal(t,
		"table_test.go:20", entries[0].Fields["at"])
	assert.Equal(t, "WARN", entries[1].Level)
}

func TestJSONLogger_CreatesLogDirectory(t *testing.T) {
	path := filepath.Join(
		t.TempDir(), "nested", "dir", "run.log",
	)

	logger, err := NewJSONLogger(LoggerConfig{
		OutputPath: path,
	})
	require.NoError(t, err)
	defer logger.Close()

	logger.Info("hello")

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestJSONLogger_LevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	logger, err := NewJSONLogger(LoggerConfig{
		OutputPath: path,
		Level:      LevelWarn,
	})
	require.NoError(t, err)

	logger.Info("filtered out")
	logger.Error("kept")
	require.NoError(t, logger.Close())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0].Level)
}

func TestJSONLogger_DebugRequiresVerbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	logger, err := NewJSONLogger(LoggerConfig{
		OutputPath: path,
		Verbose:    true,
	})
	require.NoError(t, err)

	logger.Debug("case passed")
	require.NoError(t, logger.Close())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "DEBUG", entries[0].Level)
}

func TestJSONLogger_WithFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	logger, err := NewJSONLogger(LoggerConfig{
		OutputPath: path,
	})
	require.NoError(t, err)

	child := logger.WithFields(StringField("suite", "codec"))
	child.Info("running")
	require.NoError(t, logger.Close())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "codec", entries[0].Fields["suite"])
}

func TestJSONLogger_ClosedLoggerDropsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	logger, err := NewJSONLogger(LoggerConfig{
		OutputPath: path,
	})
	require.NoError(t, err)

	require.NoError(t, logger.Close())
	logger.Info("too late")
	require.NoError(t, logger.Close())

	assert.Empty(t, readEntries(t, path))
}

func TestJSONLogger_MarshalFailureIsDropped(t *testing.T) {
	original := jsonMarshal
	jsonMarshal = func(any) ([]byte, error) {
		return nil, errors.New("marshal broken")
	}
	defer func() { jsonMarshal = original }()

	path := filepath.Join(t.TempDir(), "run.log")
	logger, err := NewJSONLogger(LoggerConfig{
		OutputPath: path,
	})
	require.NoError(t, err)

	logger.Info("unmarshalable")
	require.NoError(t, logger.Close())

	assert.Empty(t, readEntries(t, path))
}

func TestJSONLogger_DefaultsToStdout(t *testing.T) {
	logger, err := NewJSONLogger(LoggerConfig{})
	require.NoError(t, err)

	assert.Equal(t, os.Stdout, logger.output)
	assert.NoError(t, logger.Close())
}
