package filesystem

import (
	"os"

	"extract-audio-from-video/domain/media"
)

// Checker implements media.FileChecker using the os package
type Checker struct{}

// NewChecker creates a new filesystem checker
func NewChecker() *Checker {
	return &Checker{}
}

// Exists returns true if the file exists
func (c *Checker) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Ensure Checker implements media.FileChecker
var _ media.FileChecker = (*Checker)(nil)

// Sizer reports file sizes
type Sizer struct{}

// NewSizer creates a new filesystem sizer
func NewSizer() *Sizer {
	return &Sizer{}
}

// Size returns the file size in bytes, or 0 when the file cannot be
// read
func (s *Sizer) Size(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// Remover deletes files left behind by the pipeline
type Remover struct{}

// NewRemover creates a new filesystem remover
func NewRemover() *Remover {
	return &Remover{}
}

// Remove deletes the file at path
func (r *Remover) Remove(path string) error {
	return os.Remove(path)
}
