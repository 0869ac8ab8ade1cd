package audio

import (
	"errors"
	"math"
	"testing"
)

func TestPlanChunks_FiveEqualParts(t *testing.T) {
	plan, err := PlanChunks(300.0, 5)
	if err != nil {
		t.Fatalf("PlanChunks returned error: %v", err)
	}

	if len(plan) != 5 {
		t.Fatalf("expected 5 chunks, got %d", len(plan))
	}

	expected := []ChunkRange{
		{Index: 1, Start: 0, End: 60},
		{Index: 2, Start: 60, End: 120},
		{Index: 3, Start: 120, End: 180},
		{Index: 4, Start: 180, End: 240},
		{Index: 5, Start: 240, End: 300},
	}

	for i, want := range expected {
		got := plan[i]
		if got.Index != want.Index || got.Start != want.Start || got.End != want.End {
			t.Errorf("chunk %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestPlanChunks_FinalBoundaryIsExact(t *testing.T) {
	// 100/3 does not divide evenly; the last chunk must still end at
	// exactly 100.0, not 99.999...
	plan, err := PlanChunks(100.0, 3)
	if err != nil {
		t.Fatalf("PlanChunks returned error: %v", err)
	}

	if len(plan) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(plan))
	}

	last := plan[len(plan)-1]
	if last.End != 100.0 {
		t.Errorf("last chunk end = %v, want exactly 100.0", last.End)
	}

	segment := 100.0 / 3.0
	if math.Abs(plan[0].End-segment) > 1e-9 {
		t.Errorf("first chunk end = %v, want about %v", plan[0].End, segment)
	}
}

func TestPlanChunks_CoversDurationWithoutGaps(t *testing.T) {
	durations := []float64{1, 59.94, 100, 300, 3600.5, 7261.333}
	partCounts := []int{1, 2, 3, 7, 24, 100}

	for _, duration := range durations {
		for _, parts := range partCounts {
			plan, err := PlanChunks(duration, parts)
			if err != nil {
				t.Fatalf("PlanChunks(%v, %d) returned error: %v", duration, parts, err)
			}

			if len(plan) != parts {
				t.Fatalf("PlanChunks(%v, %d) produced %d chunks", duration, parts, len(plan))
			}

			if plan[0].Start != 0 {
				t.Errorf("PlanChunks(%v, %d): first chunk starts at %v", duration, parts, plan[0].Start)
			}
			if plan[len(plan)-1].End != duration {
				t.Errorf("PlanChunks(%v, %d): last chunk ends at %v, want %v",
					duration, parts, plan[len(plan)-1].End, duration)
			}

			for i := 1; i < len(plan); i++ {
				if plan[i].Start != plan[i-1].End {
					t.Errorf("PlanChunks(%v, %d): gap between chunk %d (end %v) and chunk %d (start %v)",
						duration, parts, i, plan[i-1].End, i+1, plan[i].Start)
				}
				if plan[i].Index != i+1 {
					t.Errorf("PlanChunks(%v, %d): chunk %d has index %d", duration, parts, i, plan[i].Index)
				}
			}
		}
	}
}

func TestPlanChunks_InvalidInputs(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		parts    int
		wantErr  error
	}{
		{name: "zero parts", duration: 100, parts: 0, wantErr: ErrInvalidPartCount},
		{name: "negative parts", duration: 100, parts: -3, wantErr: ErrInvalidPartCount},
		{name: "zero duration", duration: 0, parts: 2},
		{name: "negative duration", duration: -10, parts: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanChunks(tt.duration, tt.parts)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestChunkRange_Duration(t *testing.T) {
	r := ChunkRange{Index: 1, Start: 33.5, End: 67.25}
	if got := r.Duration(); got != 33.75 {
		t.Errorf("Duration() = %v, want 33.75", got)
	}
}
