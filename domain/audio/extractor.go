package audio

import (
	"context"
	"fmt"
)

// ExtractionRequest represents a request to pull the full audio track
// out of a video into a single intermediate mono MP3
type ExtractionRequest struct {
	SourceVideoPath string
	Quality         QualitySetting
	VideoDuration   float64 // seconds, scales subprocess progress updates
}

// NewExtractionRequest creates a new ExtractionRequest with validation
func NewExtractionRequest(sourcePath string, quality QualitySetting, videoDuration float64) (*ExtractionRequest, error) {
	if sourcePath == "" {
		return nil, fmt.Errorf("source video path is required")
	}

	return &ExtractionRequest{
		SourceVideoPath: sourcePath,
		Quality:         quality,
		VideoDuration:   videoDuration,
	}, nil
}

// Extractor defines the interface for audio extraction operations
// This is a port that can be implemented by different infrastructure adapters
type Extractor interface {
	// Extract extracts audio from a video according to the request and
	// saves to outputPath, overwriting any existing file
	Extract(ctx context.Context, req *ExtractionRequest, outputPath string) error
}

// Splitter cuts an intermediate audio file into the chunks described
// by a Plan
type Splitter interface {
	// Cut writes one numbered file per range into outputDir, in index
	// order. On failure it returns the chunks confirmed before the
	// failing range together with the error; earlier chunks are not
	// rolled back.
	Cut(ctx context.Context, sourcePath string, plan Plan, outputDir, baseName string) ([]ChunkFile, error)
}
