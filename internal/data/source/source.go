package source

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/penwyp/go-uptime-chart/internal/util"
)

// DefaultCommand is the log source this tool was built around: last(1) with
// full timestamps, restricted to reboot records.
const DefaultCommand = "last -R -F reboot"

// LogSource produces the raw record lines the parser consumes. The pipeline
// only depends on the line format, not on where the text came from.
type LogSource interface {
	Lines() ([]string, error)
	String() string
}

// CommandSource invokes an external command once and captures its standard
// output. There are no retries; a failing or hanging command fails or blocks
// the whole run.
type CommandSource struct {
	command string
}

// NewCommandSource creates a source backed by a shell-less command invocation.
func NewCommandSource(command string) *CommandSource {
	return &CommandSource{command: command}
}

func (s *CommandSource) String() string {
	return s.command
}

// Lines runs the command and returns its output split into lines.
func (s *CommandSource) Lines() ([]string, error) {
	args := strings.Fields(s.command)
	if len(args) == 0 {
		return nil, fmt.Errorf("empty log source command")
	}

	start := time.Now()
	util.LogDebugf("Invoking log source: %s", s.command)

	output, err := exec.Command(args[0], args[1:]...).Output()
	if err != nil {
		return nil, fmt.Errorf("log source '%s' failed: %w", s.command, err)
	}

	lines := splitLines(string(output))
	util.LogDebugf("Log source produced %d lines in %v", len(lines), time.Since(start))
	return lines, nil
}

// FileSource reads previously captured log source output from a file. Useful
// for rendering another machine's history or replaying fixtures.
type FileSource struct {
	path string
}

// NewFileSource creates a source backed by a text file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) String() string {
	return s.path
}

// Lines reads the whole file and returns it split into lines.
func (s *FileSource) Lines() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read log source file: %w", err)
	}
	lines := splitLines(string(data))
	util.LogDebugf("Log source file %s produced %d lines", s.path, len(lines))
	return lines, nil
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
