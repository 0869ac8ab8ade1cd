//go:build opencv

package opencv

import (
	"context"
	"fmt"

	"extract-audio-from-video/domain/media"

	"gocv.io/x/gocv"
)

// Prober implements media.Prober by opening the container with an
// OpenCV VideoCapture handle and reading its stream properties
type Prober struct{}

// NewProber creates a new OpenCV-based prober
func NewProber() *Prober {
	return &Prober{}
}

// Available reports whether the OpenCV prober was compiled in
func Available() bool {
	return true
}

// Probe implements media.Prober. The capture handle is always released
// before returning, including on metadata failures.
func (p *Prober) Probe(ctx context.Context, path string) (*media.Info, error) {
	capture, err := gocv.OpenVideoCapture(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", media.ErrOpen, path, err)
	}
	defer capture.Close()

	if !capture.IsOpened() {
		return nil, fmt.Errorf("%w: %s", media.ErrOpen, path)
	}

	fps := capture.Get(gocv.VideoCaptureFPS)
	frameCount := capture.Get(gocv.VideoCaptureFrameCount)
	if fps <= 0 || frameCount <= 0 {
		return nil, fmt.Errorf("%w: %s reports fps=%.2f frames=%.0f", media.ErrMetadata, path, fps, frameCount)
	}

	return &media.Info{
		Path:       path,
		Duration:   frameCount / fps,
		FPS:        fps,
		FrameCount: int(frameCount),
		Width:      int(capture.Get(gocv.VideoCaptureFrameWidth)),
		Height:     int(capture.Get(gocv.VideoCaptureFrameHeight)),
	}, nil
}

// Ensure Prober implements media.Prober
var _ media.Prober = (*Prober)(nil)
