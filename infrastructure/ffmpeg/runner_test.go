package ffmpeg

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"extract-audio-from-video/domain/audio"
)

func TestScanStatusLines_SplitsOnCarriageReturn(t *testing.T) {
	input := "frame=1 time=00:00:01.00\rframe=2 time=00:00:02.00\rdone\n"

	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Split(scanStatusLines)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scanner error: %v", err)
	}

	want := []string{
		"frame=1 time=00:00:01.00",
		"frame=2 time=00:00:02.00",
		"done",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %v, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWrapExit(t *testing.T) {
	err := wrapExit(errors.New("exit status 1"), "  stderr diagnostics here \n")

	var extractionErr *audio.ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("wrapExit returned %T, want *audio.ExtractionError", err)
	}

	// A plain error carries no exec exit code; -1 marks that.
	if extractionErr.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1", extractionErr.ExitCode)
	}
	if extractionErr.Output != "stderr diagnostics here" {
		t.Errorf("Output = %q, want trimmed diagnostics", extractionErr.Output)
	}
}
