package transcription

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"extract-audio-from-video/domain/audio"
	"extract-audio-from-video/domain/transcription"
	"extract-audio-from-video/infrastructure/ffmpeg"
)

// Client invokes the external whisper command-line utility over a chunk
// file. The model itself is out of scope here; this adapter only shells
// out and locates the transcript the utility writes next to the audio.
type Client struct {
	command  string
	model    string
	language string
	runner   ffmpeg.CommandRunner
	lookPath func(string) (string, error)
}

// ClientOption is a functional option for configuring Client
type ClientOption func(*Client)

// WithCommand sets a custom transcription executable
func WithCommand(command string) ClientOption {
	return func(c *Client) {
		if command != "" {
			c.command = command
		}
	}
}

// WithModel sets the model name passed to the utility
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithLanguage sets the spoken language hint
func WithLanguage(language string) ClientOption {
	return func(c *Client) {
		c.language = language
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner ffmpeg.CommandRunner) ClientOption {
	return func(c *Client) {
		c.runner = runner
	}
}

// WithLookPath overrides binary resolution (for testing)
func WithLookPath(fn func(string) (string, error)) ClientOption {
	return func(c *Client) {
		c.lookPath = fn
	}
}

// NewClient creates a new whisper CLI client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		command:  "whisper",
		model:    "base",
		runner:   &ffmpeg.ExecCommandRunner{},
		lookPath: exec.LookPath,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Transcribe implements transcription.Transcriber
func (c *Client) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if _, err := c.lookPath(c.command); err != nil {
		return "", fmt.Errorf("%w: %q is not on this host", audio.ErrToolNotFound, c.command)
	}

	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("audio file does not exist: %s", audioPath)
	}

	outDir := filepath.Dir(audioPath)
	args := []string{
		audioPath,
		"--model", c.model,
		"--output_dir", outDir,
		"--output_format", "txt",
	}
	if c.language != "" {
		args = append(args, "--language", c.language)
	}

	if err := c.runner.Run(ctx, c.command, args...); err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	transcriptPath := filepath.Join(outDir, stem+".txt")
	if _, err := os.Stat(transcriptPath); err != nil {
		return "", fmt.Errorf("transcript was not written: %w", err)
	}

	return transcriptPath, nil
}

// Ensure Client implements transcription.Transcriber
var _ transcription.Transcriber = (*Client)(nil)
