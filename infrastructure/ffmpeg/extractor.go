package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"extract-audio-from-video/domain/audio"
	"extract-audio-from-video/domain/progress"
)

// Extractor implements audio.Extractor using ffmpeg
type Extractor struct {
	ffmpegPath string
	runner     CommandRunner
	reporter   progress.Reporter
	lookPath   func(string) (string, error)
}

// ExtractorOption is a functional option for configuring Extractor
type ExtractorOption func(*Extractor)

// WithExtractorFFmpegPath sets a custom ffmpeg executable path
func WithExtractorFFmpegPath(path string) ExtractorOption {
	return func(e *Extractor) {
		if path != "" {
			e.ffmpegPath = path
		}
	}
}

// WithExtractorCommandRunner sets a custom command runner (for testing)
func WithExtractorCommandRunner(runner CommandRunner) ExtractorOption {
	return func(e *Extractor) {
		e.runner = runner
	}
}

// WithExtractorReporter sets the progress reporter
func WithExtractorReporter(r progress.Reporter) ExtractorOption {
	return func(e *Extractor) {
		e.reporter = r
	}
}

// WithExtractorLookPath overrides binary resolution (for testing)
func WithExtractorLookPath(fn func(string) (string, error)) ExtractorOption {
	return func(e *Extractor) {
		e.lookPath = fn
	}
}

// NewExtractor creates a new FFmpeg-based audio extractor
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		ffmpegPath: "ffmpeg",
		runner:     &ExecCommandRunner{},
		reporter:   progress.Nop{},
		lookPath:   exec.LookPath,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Extract implements audio.Extractor. The decode is capped to a single
// thread and the track downmixed to mono to bound CPU and memory use on
// constrained hosts. ffmpeg's time= markers on stderr drive the
// progress reporter, scaled against the video duration.
func (e *Extractor) Extract(ctx context.Context, req *audio.ExtractionRequest, outputPath string) error {
	if _, err := e.lookPath(e.ffmpegPath); err != nil {
		return fmt.Errorf("%w: %q is not on this host", audio.ErrToolNotFound, e.ffmpegPath)
	}

	args := []string{
		"-i", req.SourceVideoPath,
		"-vn",                   // No video
		"-acodec", "libmp3lame", // MP3 codec
		"-b:a", req.Quality.Bitrate,
		"-ar", strconv.Itoa(req.Quality.SampleRate),
		"-ac", strconv.Itoa(req.Quality.Channels),
		"-threads", "1",
		"-y", // Overwrite output file if it exists
		outputPath,
	}

	e.reporter.Begin("extracting audio")
	defer e.reporter.Done()

	err := e.runner.Stream(ctx, func(line string) {
		elapsed, ok := parseProgressTime(line)
		if !ok || req.VideoDuration <= 0 {
			return
		}
		fraction := elapsed / req.VideoDuration
		if fraction > 1 {
			fraction = 1
		}
		if fraction < 0 {
			fraction = 0
		}
		e.reporter.Update(fraction)
	}, e.ffmpegPath, args...)
	if err != nil {
		return fmt.Errorf("ffmpeg audio extraction failed: %w", err)
	}

	return nil
}

// VerifyInstalled checks that ffmpeg is available without spawning a
// transcode
func (e *Extractor) VerifyInstalled(ctx context.Context) error {
	if _, err := e.lookPath(e.ffmpegPath); err != nil {
		return fmt.Errorf("%w: %q is not on this host", audio.ErrToolNotFound, e.ffmpegPath)
	}
	return nil
}

// Ensure Extractor implements audio.Extractor
var _ audio.Extractor = (*Extractor)(nil)
