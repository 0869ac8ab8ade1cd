package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"extract-audio-from-video/domain/audio"
)

// Accelerator implements audio.Accelerator using the ffmpeg atempo filter
type Accelerator struct {
	ffmpegPath string
	runner     CommandRunner
	lookPath   func(string) (string, error)
}

// AcceleratorOption is a functional option for configuring Accelerator
type AcceleratorOption func(*Accelerator)

// WithAcceleratorFFmpegPath sets a custom ffmpeg executable path
func WithAcceleratorFFmpegPath(path string) AcceleratorOption {
	return func(a *Accelerator) {
		if path != "" {
			a.ffmpegPath = path
		}
	}
}

// WithAcceleratorCommandRunner sets a custom command runner (for testing)
func WithAcceleratorCommandRunner(runner CommandRunner) AcceleratorOption {
	return func(a *Accelerator) {
		a.runner = runner
	}
}

// WithAcceleratorLookPath overrides binary resolution (for testing)
func WithAcceleratorLookPath(fn func(string) (string, error)) AcceleratorOption {
	return func(a *Accelerator) {
		a.lookPath = fn
	}
}

// NewAccelerator creates a new FFmpeg-based speed changer
func NewAccelerator(opts ...AcceleratorOption) *Accelerator {
	a := &Accelerator{
		ffmpegPath: "ffmpeg",
		runner:     &ExecCommandRunner{},
		lookPath:   exec.LookPath,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Accelerate implements audio.Accelerator. The speed factor is
// decomposed into a chain of atempo steps since ffmpeg rejects factors
// outside [0.5, 2.0].
func (a *Accelerator) Accelerate(ctx context.Context, req *audio.AccelerationRequest, outputPath string) error {
	if _, err := a.lookPath(a.ffmpegPath); err != nil {
		return fmt.Errorf("%w: %q is not on this host", audio.ErrToolNotFound, a.ffmpegPath)
	}

	steps := audio.TempoChain(req.Speed)
	filters := make([]string, len(steps))
	for i, step := range steps {
		filters[i] = fmt.Sprintf("atempo=%.2f", step)
	}

	args := []string{
		"-i", req.SourcePath,
		"-filter:a", strings.Join(filters, ","),
		"-vn",
		"-y",
		outputPath,
	}

	if err := a.runner.Run(ctx, a.ffmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg tempo change failed: %w", err)
	}

	return nil
}

// Ensure Accelerator implements audio.Accelerator
var _ audio.Accelerator = (*Accelerator)(nil)
