package audio

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// AccelerationRequest represents a request to change the playback speed
// of an audio file
type AccelerationRequest struct {
	SourcePath string
	Speed      float64 // >1 speeds up, <1 slows down
}

// NewAccelerationRequest creates a new AccelerationRequest with validation
func NewAccelerationRequest(sourcePath string, speed float64) (*AccelerationRequest, error) {
	if sourcePath == "" {
		return nil, fmt.Errorf("source audio path is required")
	}
	if speed <= 0 {
		return nil, fmt.Errorf("speed factor must be positive, got %.2f", speed)
	}

	return &AccelerationRequest{
		SourcePath: sourcePath,
		Speed:      speed,
	}, nil
}

// OutputPath returns the destination next to the source file, named
// {stem}_speed_{factor}.mp3
func (r *AccelerationRequest) OutputPath() string {
	base := filepath.Base(r.SourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	name := fmt.Sprintf("%s_speed_%.2f.mp3", stem, r.Speed)
	return filepath.Join(filepath.Dir(r.SourcePath), name)
}

// Accelerator defines the interface for audio speed changes
type Accelerator interface {
	Accelerate(ctx context.Context, req *AccelerationRequest, outputPath string) error
}

// TempoChain decomposes a speed factor into individual tempo steps.
// The ffmpeg atempo filter only accepts factors between 0.5 and 2.0,
// so factors outside that range are reached by chaining filters.
func TempoChain(speed float64) []float64 {
	var chain []float64
	for speed > 2.0 {
		chain = append(chain, 2.0)
		speed /= 2.0
	}
	for speed < 0.5 {
		chain = append(chain, 0.5)
		speed /= 0.5
	}
	return append(chain, speed)
}
