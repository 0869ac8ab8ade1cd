package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"extract-audio-from-video/domain/audio"
	"extract-audio-from-video/domain/media"
)

// ExtractResult contains the result of an audio extraction operation
type ExtractResult struct {
	OutputPath string
	Info       *media.Info
}

// ExtractService coordinates full-track audio extraction
type ExtractService struct {
	prober      media.Prober
	extractor   audio.Extractor
	fileChecker media.FileChecker
	outputDir   string
}

// NewExtractService creates a new ExtractService
func NewExtractService(prober media.Prober, extractor audio.Extractor, fileChecker media.FileChecker, outputDir string) *ExtractService {
	return &ExtractService{
		prober:      prober,
		extractor:   extractor,
		fileChecker: fileChecker,
		outputDir:   outputDir,
	}
}

// ExtractInput represents the input for an audio extraction operation
type ExtractInput struct {
	SourcePath string
	Quality    string // Optional, uses the medium tier if empty
}

// Extract probes the source video and extracts its full audio track
// into a single mono MP3 named after the video inside the output
// directory. The quality tier is validated before any filesystem or
// subprocess work happens.
func (s *ExtractService) Extract(ctx context.Context, input ExtractInput) (*ExtractResult, error) {
	if !s.fileChecker.Exists(input.SourcePath) {
		return nil, fmt.Errorf("source video does not exist: %s", input.SourcePath)
	}

	tier := input.Quality
	if tier == "" {
		tier = audio.DefaultQuality
	}
	quality, err := audio.ResolveQuality(tier)
	if err != nil {
		return nil, err
	}

	info, err := s.prober.Probe(ctx, input.SourcePath)
	if err != nil {
		return nil, err
	}

	req, err := audio.NewExtractionRequest(input.SourcePath, quality, info.Duration)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	outputPath := filepath.Join(s.outputDir, VideoBaseName(input.SourcePath)+".mp3")
	if err := s.extractor.Extract(ctx, req, outputPath); err != nil {
		return nil, err
	}

	return &ExtractResult{OutputPath: outputPath, Info: info}, nil
}

// VideoBaseName returns the file name without directory or extension
func VideoBaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
