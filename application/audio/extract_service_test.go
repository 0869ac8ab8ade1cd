package audio

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"extract-audio-from-video/domain/audio"
	"extract-audio-from-video/domain/media"
)

type mockProber struct {
	info  *media.Info
	err   error
	calls []string
}

func (m *mockProber) Probe(ctx context.Context, path string) (*media.Info, error) {
	m.calls = append(m.calls, path)
	return m.info, m.err
}

type mockExtractor struct {
	err     error
	request *audio.ExtractionRequest
	output  string
}

func (m *mockExtractor) Extract(ctx context.Context, req *audio.ExtractionRequest, outputPath string) error {
	m.request = req
	m.output = outputPath
	return m.err
}

type mockChecker struct {
	existing map[string]bool
}

func (m *mockChecker) Exists(path string) bool { return m.existing[path] }

func TestExtractService_Extract(t *testing.T) {
	outputDir := t.TempDir()
	prober := &mockProber{info: &media.Info{Path: "videos/clip.mp4", Duration: 300, FPS: 30}}
	extractor := &mockExtractor{}
	checker := &mockChecker{existing: map[string]bool{"videos/clip.mp4": true}}
	service := NewExtractService(prober, extractor, checker, outputDir)

	result, err := service.Extract(context.Background(), ExtractInput{
		SourcePath: "videos/clip.mp4",
		Quality:    "high",
	})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	wantPath := filepath.Join(outputDir, "clip.mp3")
	if result.OutputPath != wantPath {
		t.Errorf("OutputPath = %q, want %q", result.OutputPath, wantPath)
	}
	if result.Info.Duration != 300 {
		t.Errorf("Info.Duration = %v, want 300", result.Info.Duration)
	}
	if extractor.output != wantPath {
		t.Errorf("extractor received output %q, want %q", extractor.output, wantPath)
	}
	if extractor.request.Quality.Tier != "high" {
		t.Errorf("extractor received quality %q, want high", extractor.request.Quality.Tier)
	}
	if extractor.request.VideoDuration != 300 {
		t.Errorf("extractor received duration %v, want 300", extractor.request.VideoDuration)
	}
}

func TestExtractService_Extract_DefaultsToMediumQuality(t *testing.T) {
	prober := &mockProber{info: &media.Info{Duration: 10}}
	extractor := &mockExtractor{}
	checker := &mockChecker{existing: map[string]bool{"clip.mp4": true}}
	service := NewExtractService(prober, extractor, checker, t.TempDir())

	if _, err := service.Extract(context.Background(), ExtractInput{SourcePath: "clip.mp4"}); err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if extractor.request.Quality.Tier != "medium" {
		t.Errorf("quality tier = %q, want medium", extractor.request.Quality.Tier)
	}
}

func TestExtractService_Extract_MissingSource(t *testing.T) {
	prober := &mockProber{}
	service := NewExtractService(prober, &mockExtractor{}, &mockChecker{}, t.TempDir())

	_, err := service.Extract(context.Background(), ExtractInput{SourcePath: "absent.mp4"})
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if len(prober.calls) != 0 {
		t.Error("prober was called for a missing source")
	}
}

func TestExtractService_Extract_InvalidQualityBeforeAnyIO(t *testing.T) {
	prober := &mockProber{}
	checker := &mockChecker{existing: map[string]bool{"clip.mp4": true}}
	service := NewExtractService(prober, &mockExtractor{}, checker, t.TempDir())

	_, err := service.Extract(context.Background(), ExtractInput{
		SourcePath: "clip.mp4",
		Quality:    "ultra",
	})
	if !errors.Is(err, audio.ErrInvalidQuality) {
		t.Fatalf("Extract error = %v, want ErrInvalidQuality", err)
	}
	if len(prober.calls) != 0 {
		t.Error("prober was called despite invalid quality")
	}
}

func TestExtractService_Extract_ProbeFailure(t *testing.T) {
	prober := &mockProber{err: media.ErrMetadata}
	checker := &mockChecker{existing: map[string]bool{"clip.mp4": true}}
	service := NewExtractService(prober, &mockExtractor{}, checker, t.TempDir())

	_, err := service.Extract(context.Background(), ExtractInput{SourcePath: "clip.mp4"})
	if !errors.Is(err, media.ErrMetadata) {
		t.Fatalf("Extract error = %v, want ErrMetadata", err)
	}
}

func TestExtractService_Extract_ExtractorFailure(t *testing.T) {
	prober := &mockProber{info: &media.Info{Duration: 10}}
	extractor := &mockExtractor{err: &audio.ExtractionError{ExitCode: 1, Output: "boom"}}
	checker := &mockChecker{existing: map[string]bool{"clip.mp4": true}}
	service := NewExtractService(prober, extractor, checker, t.TempDir())

	_, err := service.Extract(context.Background(), ExtractInput{SourcePath: "clip.mp4"})
	var extractionErr *audio.ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("Extract error = %v, want *audio.ExtractionError", err)
	}
}

func TestVideoBaseName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "videos/clip.mp4", want: "clip"},
		{path: "clip.mkv", want: "clip"},
		{path: "/abs/path/my.video.mp4", want: "my.video"},
		{path: "noext", want: "noext"},
	}

	for _, tt := range tests {
		if got := VideoBaseName(tt.path); got != tt.want {
			t.Errorf("VideoBaseName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
