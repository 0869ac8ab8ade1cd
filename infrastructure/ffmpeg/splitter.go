package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"extract-audio-from-video/domain/audio"
	"extract-audio-from-video/domain/progress"
)

// Splitter implements audio.Splitter using ffmpeg stream copy
type Splitter struct {
	ffmpegPath string
	runner     CommandRunner
	reporter   progress.Reporter
	lookPath   func(string) (string, error)
}

// SplitterOption is a functional option for configuring Splitter
type SplitterOption func(*Splitter)

// WithSplitterFFmpegPath sets a custom ffmpeg executable path
func WithSplitterFFmpegPath(path string) SplitterOption {
	return func(s *Splitter) {
		if path != "" {
			s.ffmpegPath = path
		}
	}
}

// WithSplitterCommandRunner sets a custom command runner (for testing)
func WithSplitterCommandRunner(runner CommandRunner) SplitterOption {
	return func(s *Splitter) {
		s.runner = runner
	}
}

// WithSplitterReporter sets the progress reporter
func WithSplitterReporter(r progress.Reporter) SplitterOption {
	return func(s *Splitter) {
		s.reporter = r
	}
}

// WithSplitterLookPath overrides binary resolution (for testing)
func WithSplitterLookPath(fn func(string) (string, error)) SplitterOption {
	return func(s *Splitter) {
		s.lookPath = fn
	}
}

// NewSplitter creates a new FFmpeg-based chunk splitter
func NewSplitter(opts ...SplitterOption) *Splitter {
	s := &Splitter{
		ffmpegPath: "ffmpeg",
		runner:     &ExecCommandRunner{},
		reporter:   progress.Nop{},
		lookPath:   exec.LookPath,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Cut implements audio.Splitter. Ranges are cut strictly one subprocess
// at a time; each slice is stream-copied, not re-encoded. A failure on
// range k leaves chunks 1..k-1 on disk and returns them alongside the
// error.
func (s *Splitter) Cut(ctx context.Context, sourcePath string, plan audio.Plan, outputDir, baseName string) ([]audio.ChunkFile, error) {
	if _, err := s.lookPath(s.ffmpegPath); err != nil {
		return nil, fmt.Errorf("%w: %q is not on this host", audio.ErrToolNotFound, s.ffmpegPath)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	s.reporter.Begin("splitting audio")
	defer s.reporter.Done()

	chunks := make([]audio.ChunkFile, 0, len(plan))
	for i, rng := range plan {
		partPath := filepath.Join(outputDir, audio.ChunkFilename(baseName, rng.Index))

		args := []string{
			"-i", sourcePath,
			"-ss", formatSeconds(rng.Start),
			"-t", formatSeconds(rng.Duration()),
			"-acodec", "copy", // Copy without re-encoding
			"-avoid_negative_ts", "make_zero",
			"-y",
			partPath,
		}

		if err := s.runner.Run(ctx, s.ffmpegPath, args...); err != nil {
			return chunks, fmt.Errorf("failed to cut chunk %d: %w", rng.Index, err)
		}

		info, err := os.Stat(partPath)
		if err != nil {
			return chunks, fmt.Errorf("chunk %d was not written: %w", rng.Index, err)
		}

		chunks = append(chunks, audio.ChunkFile{Path: partPath, Size: info.Size()})
		s.reporter.Update(float64(i+1) / float64(len(plan)))
	}

	return chunks, nil
}

// Ensure Splitter implements audio.Splitter
var _ audio.Splitter = (*Splitter)(nil)
