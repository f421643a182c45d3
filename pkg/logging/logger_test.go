package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestFieldConstructors(t *testing.T) {
	assert.Equal(t,
		Field{Key: "k", Value: "v"}, LogField("k", "v"))
	assert.Equal(t,
		Field{Key: "s", Value: "x"}, StringField("s", "x"))
	assert.Equal(t,
		Field{Key: "n", Value: 3}, IntField("n", 3))
	assert.Equal(t,
		Field{Key: "f", Value: 1.5}, Float64Field("f", 1.5))
	assert.Equal(t,
		Field{Key: "b", Value: true}, BoolField("b", true))
}
