package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource(t *testing.T) {
	content := "reboot   system boot  Wed Jan 16 21:36:54 2013 - Wed Jan 16 22:05:50 2013  (00:28)\n" +
		"\n" +
		"wtmp begins Wed Jan 16 21:36:54 2013\n"

	path := filepath.Join(t.TempDir(), "last-output.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	src := NewFileSource(path)
	lines, err := src.Lines()

	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "reboot   system boot")
	assert.Equal(t, "", lines[1])
	assert.Equal(t, path, src.String())
}

func TestFileSourceMissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "does-not-exist.txt"))

	lines, err := src.Lines()

	assert.Nil(t, lines)
	assert.Error(t, err)
}

func TestCommandSource(t *testing.T) {
	src := NewCommandSource("echo hello world")

	lines, err := src.Lines()

	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "hello world", lines[0])
	assert.Equal(t, "echo hello world", src.String())
}

func TestCommandSourceEmptyCommand(t *testing.T) {
	_, err := NewCommandSource("  ").Lines()
	assert.Error(t, err)
}

func TestCommandSourceFailure(t *testing.T) {
	_, err := NewCommandSource("false").Lines()
	assert.Error(t, err)
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty input", input: "", expected: nil},
		{name: "trailing newline stripped", input: "a\nb\n", expected: []string{"a", "b"}},
		{name: "empty interior lines kept", input: "a\n\nb", expected: []string{"a", "", "b"}},
		{name: "windows line endings", input: "a\r\nb\r\n", expected: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitLines(tt.input))
		})
	}
}
