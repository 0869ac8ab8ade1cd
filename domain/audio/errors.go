package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuality is returned for a quality tier outside low/medium/high
	ErrInvalidQuality = errors.New("invalid quality tier")

	// ErrInvalidPartCount is returned when fewer than one chunk is requested
	ErrInvalidPartCount = errors.New("part count must be at least 1")

	// ErrToolNotFound is returned when an external media tool is missing
	// on the host. It is raised before any subprocess is spawned and is
	// not retryable.
	ErrToolNotFound = errors.New("external media tool not found")
)

// ExtractionError reports an abnormal exit of the external transcoder,
// carrying the exit code and the captured diagnostic output.
type ExtractionError struct {
	ExitCode int
	Output   string
	Err      error
}

func (e *ExtractionError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("ffmpeg exited with code %d: %s", e.ExitCode, e.Output)
	}
	return fmt.Sprintf("ffmpeg exited with code %d", e.ExitCode)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
