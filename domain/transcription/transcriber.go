package transcription

import "context"

// Transcriber defines the interface to the decoupled transcription
// utility. It consumes a chunk file produced by the split pipeline and
// writes a text transcript next to it; the model itself lives outside
// this codebase.
type Transcriber interface {
	// Transcribe runs the external utility over audioPath and returns
	// the path of the transcript it wrote
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
