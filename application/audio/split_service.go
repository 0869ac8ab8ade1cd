package audio

import (
	"context"
	"fmt"

	"extract-audio-from-video/domain/audio"
	"extract-audio-from-video/domain/media"
)

// SplitResult contains the chunk files produced by a split
type SplitResult struct {
	Plan   audio.Plan
	Chunks []audio.ChunkFile
}

// TotalSize returns the combined size of the produced chunks in bytes
func (r *SplitResult) TotalSize() int64 {
	var total int64
	for _, c := range r.Chunks {
		total += c.Size
	}
	return total
}

// SplitService coordinates planning and cutting of an audio file
type SplitService struct {
	splitter    audio.Splitter
	fileChecker media.FileChecker
	outputDir   string
}

// NewSplitService creates a new SplitService
func NewSplitService(splitter audio.Splitter, fileChecker media.FileChecker, outputDir string) *SplitService {
	return &SplitService{
		splitter:    splitter,
		fileChecker: fileChecker,
		outputDir:   outputDir,
	}
}

// SplitInput represents the input for a split operation
type SplitInput struct {
	SourcePath string  // Intermediate audio file to cut
	Duration   float64 // Total duration in seconds
	Parts      int
	BaseName   string // Optional, derived from SourcePath if empty
}

// Split plans the chunk ranges and cuts the source file accordingly.
// On a partial cut failure the chunks confirmed so far are still
// returned together with the error.
func (s *SplitService) Split(ctx context.Context, input SplitInput) (*SplitResult, error) {
	if !s.fileChecker.Exists(input.SourcePath) {
		return nil, fmt.Errorf("audio file does not exist: %s", input.SourcePath)
	}

	plan, err := audio.PlanChunks(input.Duration, input.Parts)
	if err != nil {
		return nil, err
	}

	baseName := input.BaseName
	if baseName == "" {
		baseName = VideoBaseName(input.SourcePath)
	}

	chunks, err := s.splitter.Cut(ctx, input.SourcePath, plan, s.outputDir, baseName)
	result := &SplitResult{Plan: plan, Chunks: chunks}
	if err != nil {
		return result, err
	}

	return result, nil
}
