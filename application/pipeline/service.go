package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"

	appaudio "extract-audio-from-video/application/audio"
	"extract-audio-from-video/domain/audio"
	"extract-audio-from-video/domain/media"
)

// FileRemover deletes files left behind by the pipeline
type FileRemover interface {
	Remove(path string) error
}

// Service sequences probe, extraction, splitting and cleanup. It is the
// sole recovery boundary: component errors are caught here and encoded
// into the returned Result instead of being propagated.
type Service struct {
	prober      media.Prober
	extractor   audio.Extractor
	splitter    audio.Splitter
	fileChecker media.FileChecker
	remover     FileRemover
	logger      hclog.Logger
	output      io.Writer
}

// Option is a functional option for configuring Service
type Option func(*Service)

// WithLogger sets the structured logger
func WithLogger(logger hclog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithOutput sets the writer for user-facing status lines
func WithOutput(out io.Writer) Option {
	return func(s *Service) {
		s.output = out
	}
}

// NewService creates a new pipeline service
func NewService(
	prober media.Prober,
	extractor audio.Extractor,
	splitter audio.Splitter,
	fileChecker media.FileChecker,
	remover FileRemover,
	opts ...Option,
) *Service {
	s := &Service{
		prober:      prober,
		extractor:   extractor,
		splitter:    splitter,
		fileChecker: fileChecker,
		remover:     remover,
		logger:      hclog.NewNullLogger(),
		output:      io.Discard,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Request enumerates the pipeline inputs with their documented defaults
type Request struct {
	VideoPath string
	Parts     int
	OutputDir string // default "output"
	Quality   string // default "medium"
	Cleanup   bool   // remove the intermediate file after splitting
}

// NewRequest returns a Request for videoPath and parts with the
// remaining fields at their defaults
func NewRequest(videoPath string, parts int) Request {
	return Request{
		VideoPath: videoPath,
		Parts:     parts,
		OutputDir: "output",
		Quality:   audio.DefaultQuality,
		Cleanup:   true,
	}
}

// Run executes the full pipeline: probe, extract the intermediate mono
// MP3, split it into numbered chunks, then remove the intermediate file
// when requested. It always returns a Result; failures are reported via
// Success=false and a descriptive Error message.
func (s *Service) Run(ctx context.Context, req Request) *Result {
	if req.OutputDir == "" {
		req.OutputDir = "output"
	}
	if req.Quality == "" {
		req.Quality = audio.DefaultQuality
	}

	res := &Result{
		OriginalVideo: req.VideoPath,
		Parts:         req.Parts,
		OutputDir:     req.OutputDir,
		Quality:       req.Quality,
	}

	// Caller-input validation happens before any I/O
	if _, err := audio.ResolveQuality(req.Quality); err != nil {
		return s.fail(res, err)
	}
	if req.Parts < 1 {
		return s.fail(res, fmt.Errorf("%w: got %d", audio.ErrInvalidPartCount, req.Parts))
	}

	// A missing transcoder should produce a clear diagnostic up front,
	// not a generic subprocess failure halfway through.
	if verifiable, ok := s.extractor.(interface{ VerifyInstalled(context.Context) error }); ok {
		if err := verifiable.VerifyInstalled(ctx); err != nil {
			return s.fail(res, err)
		}
	}

	s.logger.Info("starting pipeline",
		"video", req.VideoPath, "parts", req.Parts, "quality", req.Quality)

	fmt.Fprintf(s.output, "[1/2] Extracting audio...\n")
	extractService := appaudio.NewExtractService(s.prober, s.extractor, s.fileChecker, req.OutputDir)
	extracted, err := extractService.Extract(ctx, appaudio.ExtractInput{
		SourcePath: req.VideoPath,
		Quality:    req.Quality,
	})
	if err != nil {
		return s.fail(res, err)
	}
	res.VideoInfo = extracted.Info
	fmt.Fprintf(s.output, "      Created: %s (%.2fs of audio)\n\n", extracted.OutputPath, extracted.Info.Duration)

	if req.Cleanup {
		// Cleanup runs even when a later step fails, but must never
		// mask that failure.
		defer func() {
			if err := s.remover.Remove(extracted.OutputPath); err != nil {
				s.logger.Warn("could not remove intermediate file",
					"path", extracted.OutputPath, "error", err)
				return
			}
			s.logger.Debug("removed intermediate file", "path", extracted.OutputPath)
		}()
	}

	fmt.Fprintf(s.output, "[2/2] Splitting into %d parts...\n", req.Parts)
	splitService := appaudio.NewSplitService(s.splitter, s.fileChecker, req.OutputDir)
	split, err := splitService.Split(ctx, appaudio.SplitInput{
		SourcePath: extracted.OutputPath,
		Duration:   extracted.Info.Duration,
		Parts:      req.Parts,
		BaseName:   appaudio.VideoBaseName(req.VideoPath),
	})
	if split != nil {
		// Only chunks confirmed to exist with a readable size are
		// reported, even on partial failure.
		for _, c := range split.Chunks {
			res.SplitFiles = append(res.SplitFiles, c.Path)
			res.TotalSizeBytes += c.Size
		}
	}
	if err != nil {
		return s.fail(res, err)
	}

	res.Success = true
	s.logger.Info("pipeline complete",
		"files", len(res.SplitFiles), "bytes", res.TotalSizeBytes)
	return res
}

func (s *Service) fail(res *Result, err error) *Result {
	res.Success = false
	res.Error = err.Error()
	s.logger.Error("pipeline failed", "error", err)
	return res
}
