package media

// Info holds the metadata read from a video container.
// It is produced once by a Prober and treated as read-only afterwards.
type Info struct {
	Path       string
	Duration   float64 // seconds
	FPS        float64
	FrameCount int
	Width      int
	Height     int
}
