package terminal

import (
	"fmt"
	"io"

	"extract-audio-from-video/domain/progress"
)

// Reporter implements progress.Reporter by writing a single-line
// percentage indicator to an io.Writer
type Reporter struct {
	out   io.Writer
	stage string
	last  int
}

// NewReporter creates a reporter writing to out
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out, last: -1}
}

// Begin implements progress.Reporter
func (r *Reporter) Begin(stage string) {
	r.stage = stage
	r.last = -1
}

// Update rewrites the current line. Updates are throttled to whole
// percentage points so piped output stays readable.
func (r *Reporter) Update(fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	pct := int(fraction * 100)
	if pct == r.last {
		return
	}
	r.last = pct
	fmt.Fprintf(r.out, "\r  %s: %3d%%", r.stage, pct)
}

// Done implements progress.Reporter
func (r *Reporter) Done() {
	if r.last >= 0 {
		fmt.Fprintf(r.out, "\r  %s: 100%%\n", r.stage)
	} else {
		fmt.Fprintf(r.out, "  %s: done\n", r.stage)
	}
	r.stage = ""
	r.last = -1
}

// Ensure Reporter implements progress.Reporter
var _ progress.Reporter = (*Reporter)(nil)
