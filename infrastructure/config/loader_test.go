package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	content := `paths:
  output_directory: /tmp/chunks
audio:
  quality: high
  parts: 8
  cleanup: false
tools:
  ffmpeg_path: /opt/ffmpeg/bin/ffmpeg
  ffprobe_path: /opt/ffmpeg/bin/ffprobe
transcription:
  command: whisper
  model: small
  language: pt
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.OutputDirectory() != "/tmp/chunks" {
		t.Errorf("OutputDirectory() = %q", cfg.OutputDirectory())
	}
	if cfg.Quality() != "high" {
		t.Errorf("Quality() = %q", cfg.Quality())
	}
	if cfg.Parts() != 8 {
		t.Errorf("Parts() = %d", cfg.Parts())
	}
	if cfg.Cleanup() {
		t.Error("Cleanup() = true, want false")
	}
	if cfg.FFmpegPath() != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("FFmpegPath() = %q", cfg.FFmpegPath())
	}
	if cfg.FFprobePath() != "/opt/ffmpeg/bin/ffprobe" {
		t.Errorf("FFprobePath() = %q", cfg.FFprobePath())
	}
	if cfg.Transcription.Model != "small" || cfg.Transcription.Language != "pt" {
		t.Errorf("Transcription = %+v", cfg.Transcription)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("paths: [not: a: mapping"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestConfig_Defaults(t *testing.T) {
	var cfg *Config

	if cfg.OutputDirectory() != "output" {
		t.Errorf("nil config OutputDirectory() = %q, want %q", cfg.OutputDirectory(), "output")
	}
	if cfg.Quality() != "medium" {
		t.Errorf("nil config Quality() = %q, want %q", cfg.Quality(), "medium")
	}
	if cfg.Parts() != 5 {
		t.Errorf("nil config Parts() = %d, want 5", cfg.Parts())
	}
	if !cfg.Cleanup() {
		t.Error("nil config Cleanup() = false, want true")
	}
	if cfg.FFmpegPath() != "" || cfg.FFprobePath() != "" {
		t.Error("nil config tool paths should be empty")
	}

	empty := &Config{}
	if empty.Parts() != 5 || empty.Quality() != "medium" || !empty.Cleanup() {
		t.Error("empty config should fall back to defaults")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cleanup := false
	cfg := &Config{}
	cfg.Paths.OutputDirectory = "chunks"
	cfg.Audio.Quality = "low"
	cfg.Audio.Parts = 3
	cfg.Audio.Cleanup = &cleanup
	cfg.Tools.FFmpegPath = "/usr/local/bin/ffmpeg"

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if loaded.OutputDirectory() != "chunks" {
		t.Errorf("OutputDirectory() = %q", loaded.OutputDirectory())
	}
	if loaded.Quality() != "low" {
		t.Errorf("Quality() = %q", loaded.Quality())
	}
	if loaded.Parts() != 3 {
		t.Errorf("Parts() = %d", loaded.Parts())
	}
	if loaded.Cleanup() {
		t.Error("Cleanup() = true, want persisted false")
	}
	if loaded.FFmpegPath() != "/usr/local/bin/ffmpeg" {
		t.Errorf("FFmpegPath() = %q", loaded.FFmpegPath())
	}
}
