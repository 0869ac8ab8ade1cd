package pipeline

import "extract-audio-from-video/domain/media"

// Result is the structured outcome of a pipeline run. Callers must
// check Success rather than rely on an error value: Run never returns
// one.
type Result struct {
	Success        bool
	OriginalVideo  string
	VideoInfo      *media.Info
	Parts          int
	SplitFiles     []string
	OutputDir      string
	TotalSizeBytes int64
	Quality        string
	Error          string
}

// TotalSizeMB returns the combined chunk size in megabytes, for display
func (r *Result) TotalSizeMB() float64 {
	return float64(r.TotalSizeBytes) / 1024 / 1024
}
