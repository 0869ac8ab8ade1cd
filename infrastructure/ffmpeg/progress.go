package ffmpeg

import (
	"regexp"
	"strconv"
)

// timeRegex matches the time= marker on ffmpeg's status line
var timeRegex = regexp.MustCompile(`time=\s*(\d+):(\d+):(\d+(?:\.\d+)?)`)

// parseProgressTime extracts the elapsed output time in seconds from a
// line of ffmpeg stderr. Returns ok=false when the line carries no time
// marker.
func parseProgressTime(line string) (float64, bool) {
	matches := timeRegex.FindStringSubmatch(line)
	if matches == nil {
		return 0, false
	}

	hours, err1 := strconv.ParseFloat(matches[1], 64)
	minutes, err2 := strconv.ParseFloat(matches[2], 64)
	seconds, err3 := strconv.ParseFloat(matches[3], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, false
	}

	return hours*3600 + minutes*60 + seconds, true
}

// formatSeconds renders a boundary timestamp as an ffmpeg argument
// without losing precision
func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
