package media

import "errors"

var (
	// ErrOpen is returned when the path does not exist or the container
	// cannot be opened
	ErrOpen = errors.New("cannot open video file")

	// ErrMetadata is returned when the container opens but its duration
	// cannot be determined
	ErrMetadata = errors.New("cannot determine video duration")
)
