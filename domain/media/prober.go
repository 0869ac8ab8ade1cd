package media

import "context"

// Prober defines the interface for reading video metadata
// This is a port that can be implemented by different infrastructure adapters
type Prober interface {
	// Probe opens the container at path, reads its metadata and releases
	// the handle before returning, on every exit path
	Probe(ctx context.Context, path string) (*Info, error)
}

// FileChecker defines the interface for checking file existence
// This is used to validate that source files exist before processing
type FileChecker interface {
	// Exists returns true if the file exists
	Exists(path string) bool
}
