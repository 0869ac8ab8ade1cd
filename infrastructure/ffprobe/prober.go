package ffprobe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"extract-audio-from-video/domain/audio"
	"extract-audio-from-video/domain/media"
	"extract-audio-from-video/infrastructure/ffmpeg"
)

// Prober implements media.Prober using the ffprobe command-line tool.
// It is the default prober; the OpenCV adapter replaces it when built
// with -tags=opencv.
type Prober struct {
	ffprobePath string
	runner      ffmpeg.CommandRunner
	lookPath    func(string) (string, error)
}

// ProberOption is a functional option for configuring Prober
type ProberOption func(*Prober)

// WithFFprobePath sets a custom ffprobe executable path
func WithFFprobePath(path string) ProberOption {
	return func(p *Prober) {
		if path != "" {
			p.ffprobePath = path
		}
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner ffmpeg.CommandRunner) ProberOption {
	return func(p *Prober) {
		p.runner = runner
	}
}

// WithLookPath overrides binary resolution (for testing)
func WithLookPath(fn func(string) (string, error)) ProberOption {
	return func(p *Prober) {
		p.lookPath = fn
	}
}

// NewProber creates a new ffprobe-based prober
func NewProber(opts ...ProberOption) *Prober {
	p := &Prober{
		ffprobePath: "ffprobe",
		runner:      &ffmpeg.ExecCommandRunner{},
		lookPath:    exec.LookPath,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

type probeStream struct {
	CodecType  string `json:"codec_type"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	RFrameRate string `json:"r_frame_rate,omitempty"`
	NbFrames   string `json:"nb_frames,omitempty"`
}

type probeFormat struct {
	Duration string `json:"duration"`
}

type probeOutput struct {
	Streams []probeStream `json:"streams"`
	Format  probeFormat   `json:"format"`
}

// Probe implements media.Prober
func (p *Prober) Probe(ctx context.Context, path string) (*media.Info, error) {
	if _, err := p.lookPath(p.ffprobePath); err != nil {
		return nil, fmt.Errorf("%w: %q is not on this host", audio.ErrToolNotFound, p.ffprobePath)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", media.ErrOpen, path)
	}

	args := []string{
		"-v", "error",
		"-print_format", "json",
		"-show_streams",
		"-show_format",
		path,
	}

	out, err := p.runner.Output(ctx, p.ffprobePath, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", media.ErrOpen, path, err)
	}

	var probed probeOutput
	if err := json.Unmarshal(out, &probed); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	duration, err := strconv.ParseFloat(probed.Format.Duration, 64)
	if err != nil || duration <= 0 {
		return nil, fmt.Errorf("%w: %s reports duration %q", media.ErrMetadata, path, probed.Format.Duration)
	}

	info := &media.Info{
		Path:     path,
		Duration: duration,
	}

	for _, stream := range probed.Streams {
		if stream.CodecType != "video" {
			continue
		}
		info.FPS = parseRate(stream.RFrameRate)
		info.Width = stream.Width
		info.Height = stream.Height
		if frames, err := strconv.Atoi(stream.NbFrames); err == nil {
			info.FrameCount = frames
		} else if info.FPS > 0 {
			info.FrameCount = int(duration * info.FPS)
		}
		break
	}

	return info, nil
}

// Duration returns the duration in seconds of any media file ffprobe
// can read. Used when splitting an existing audio file without a video
// probe.
func (p *Prober) Duration(ctx context.Context, path string) (float64, error) {
	if _, err := p.lookPath(p.ffprobePath); err != nil {
		return 0, fmt.Errorf("%w: %q is not on this host", audio.ErrToolNotFound, p.ffprobePath)
	}

	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	out, err := p.runner.Output(ctx, p.ffprobePath, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", media.ErrOpen, path, err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil || duration <= 0 {
		return 0, fmt.Errorf("%w: %s", media.ErrMetadata, path)
	}

	return duration, nil
}

// parseRate converts an ffprobe rational like "30000/1001" to a float
func parseRate(rate string) float64 {
	if rate == "" {
		return 0
	}
	parts := strings.SplitN(rate, "/", 2)
	num, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0
	}
	if len(parts) == 1 {
		return num
	}
	den, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || den == 0 {
		return 0
	}
	return num / den
}

// Ensure Prober implements media.Prober
var _ media.Prober = (*Prober)(nil)
