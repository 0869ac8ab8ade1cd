package audio

import "fmt"

// ChunkRange is one contiguous slice of the intermediate audio file.
// Index is 1-based.
type ChunkRange struct {
	Index int
	Start float64 // seconds
	End   float64 // seconds
}

// Duration returns the length of the range in seconds
func (r ChunkRange) Duration() float64 {
	return r.End - r.Start
}

// Plan is an ordered sequence of contiguous, non-overlapping ranges
// covering [0, duration] exactly
type Plan []ChunkRange

// PlanChunks splits duration into nParts contiguous ranges of equal
// length. The final range always ends at the exact duration, so
// accumulated float rounding never truncates trailing audio.
func PlanChunks(duration float64, nParts int) (Plan, error) {
	if nParts < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPartCount, nParts)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("invalid duration: %.2f seconds", duration)
	}

	segment := duration / float64(nParts)
	plan := make(Plan, 0, nParts)
	start := 0.0
	for i := 0; i < nParts; i++ {
		// Each start is the previous end, so rounding can never open a
		// gap between adjacent ranges.
		end := float64(i+1) * segment
		if i == nParts-1 || end > duration {
			end = duration
		}
		plan = append(plan, ChunkRange{Index: i + 1, Start: start, End: end})
		start = end
	}

	return plan, nil
}
