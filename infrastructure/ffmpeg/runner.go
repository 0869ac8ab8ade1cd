package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"extract-audio-from-video/domain/audio"
)

// CommandRunner defines the interface for running external commands
// This allows mocking exec.Command in tests
type CommandRunner interface {
	// Run executes a command to completion, capturing stderr for
	// diagnostics
	Run(ctx context.Context, name string, args ...string) error
	// Output executes a command and returns its stdout
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// Stream executes a command, invoking onLine for every line the
	// command writes to stderr
	Stream(ctx context.Context, onLine func(string), name string, args ...string) error
}

// ExecCommandRunner is the production implementation using os/exec.
// Arguments are always passed as a vector; nothing is ever interpolated
// into a shell.
type ExecCommandRunner struct{}

// diagnosticTail bounds how much stderr is kept for error reporting
const diagnosticTail = 4096

// Run executes a command and converts an abnormal exit into an
// *audio.ExtractionError carrying the exit code and stderr
func (r *ExecCommandRunner) Run(ctx context.Context, name string, args ...string) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return wrapExit(err, stderr.String())
	}
	return nil
}

// Output executes a command and returns its stdout
func (r *ExecCommandRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Output()
}

// Stream executes a command and feeds its stderr to onLine a line at a
// time. ffmpeg rewrites its status line with carriage returns, so both
// \r and \n terminate a line here.
func (r *ExecCommandRunner) Stream(ctx context.Context, onLine func(string), name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}

	var tail bytes.Buffer
	scanner := bufio.NewScanner(stderr)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(scanStatusLines)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if tail.Len() < diagnosticTail {
			tail.WriteString(line)
			tail.WriteByte('\n')
		}
		if onLine != nil {
			onLine(line)
		}
	}

	if err := cmd.Wait(); err != nil {
		return wrapExit(err, tail.String())
	}
	return nil
}

// scanStatusLines is a bufio.SplitFunc treating both \n and \r as line
// terminators
func scanStatusLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// wrapExit converts a command failure into the domain error type,
// preserving the exit code and captured diagnostics
func wrapExit(err error, output string) error {
	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &audio.ExtractionError{
		ExitCode: code,
		Output:   strings.TrimSpace(output),
		Err:      err,
	}
}
