package util

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := &Logger{
		level:  LevelInfo,
		fields: map[string]interface{}{},
	}
	logger.AddOutput(NewConsoleOutput(&buf, FormatText))

	logger.Debug("hidden")
	logger.Info("shown")
	logger.Warnf("formatted %d", 42)

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "[INFO] shown")
	assert.Contains(t, output, "[WARN] formatted 42")
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := &Logger{
		level:  LevelDebug,
		fields: map[string]interface{}{},
	}
	logger.AddOutput(NewConsoleOutput(&buf, FormatText))

	logger.With(Field{Key: "slots", Value: 48}).Info("aggregated")

	assert.Contains(t, buf.String(), "slots=48")
}

func TestConsoleOutputJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := &Logger{
		level:  LevelDebug,
		fields: map[string]interface{}{},
	}
	logger.AddOutput(NewConsoleOutput(&buf, FormatJSON))

	logger.Info("hello")

	assert.Contains(t, buf.String(), `"message":"hello"`)
	assert.Contains(t, buf.String(), `"level":"INFO"`)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{input: "debug", expected: LevelDebug},
		{input: "INFO", expected: LevelInfo},
		{input: "warning", expected: LevelWarn},
		{input: "error", expected: LevelError},
		{input: "fatal", expected: LevelFatal},
		{input: "bogus", expected: LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.input))
		})
	}
}

func TestFileOutput(t *testing.T) {
	path := t.TempDir() + "/app.log"

	output, err := NewFileOutput(path, FormatText)
	require.NoError(t, err)

	logger := &Logger{
		level:  LevelDebug,
		fields: map[string]interface{}{},
	}
	logger.AddOutput(output)
	logger.Info("persisted")
	require.NoError(t, output.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "persisted")
}
