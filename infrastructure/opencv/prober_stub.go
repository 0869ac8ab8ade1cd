//go:build !opencv

package opencv

import (
	"context"
	"fmt"

	"extract-audio-from-video/domain/media"
)

// Prober is a stub when GoCV/OpenCV is not available
type Prober struct{}

// NewProber creates a stub prober (requires building with -tags=opencv)
func NewProber() *Prober {
	return &Prober{}
}

// Available reports whether the OpenCV prober was compiled in
func Available() bool {
	return false
}

// Probe returns an error indicating OpenCV probing is not available
func (p *Prober) Probe(ctx context.Context, path string) (*media.Info, error) {
	return nil, fmt.Errorf("opencv probing not available: build with '-tags=opencv' and install OpenCV/GoCV")
}

// Ensure Prober implements media.Prober
var _ media.Prober = (*Prober)(nil)
