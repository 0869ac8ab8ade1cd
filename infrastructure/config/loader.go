package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"extract-audio-from-video/domain/audio"
)

// Config represents the complete application configuration
type Config struct {
	Paths         PathsConfig         `yaml:"paths"`
	Audio         AudioConfig         `yaml:"audio"`
	Tools         ToolsConfig         `yaml:"tools"`
	Transcription TranscriptionConfig `yaml:"transcription"`
}

// PathsConfig contains directory paths for media processing
type PathsConfig struct {
	OutputDirectory string `yaml:"output_directory"`
}

// AudioConfig contains extraction and splitting defaults
type AudioConfig struct {
	Quality string `yaml:"quality"`
	Parts   int    `yaml:"parts"`
	Cleanup *bool  `yaml:"cleanup"`
}

// ToolsConfig points at the external binaries
type ToolsConfig struct {
	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`
}

// TranscriptionConfig configures the external transcription utility
type TranscriptionConfig struct {
	Command  string `yaml:"command"`
	Model    string `yaml:"model"`
	Language string `yaml:"language"`
}

// Load reads and parses the configuration from the specified YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration to the specified YAML file
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// OutputDirectory returns the configured output directory or "output"
func (c *Config) OutputDirectory() string {
	if c == nil || c.Paths.OutputDirectory == "" {
		return "output"
	}
	return c.Paths.OutputDirectory
}

// Quality returns the configured quality tier or the default
func (c *Config) Quality() string {
	if c == nil || c.Audio.Quality == "" {
		return audio.DefaultQuality
	}
	return c.Audio.Quality
}

// Parts returns the configured part count or 5
func (c *Config) Parts() int {
	if c == nil || c.Audio.Parts == 0 {
		return 5
	}
	return c.Audio.Parts
}

// Cleanup returns whether the intermediate file should be removed
// after splitting; defaults to true
func (c *Config) Cleanup() bool {
	if c == nil || c.Audio.Cleanup == nil {
		return true
	}
	return *c.Audio.Cleanup
}

// FFmpegPath returns the configured ffmpeg path, or "" for the default
func (c *Config) FFmpegPath() string {
	if c == nil {
		return ""
	}
	return c.Tools.FFmpegPath
}

// FFprobePath returns the configured ffprobe path, or "" for the default
func (c *Config) FFprobePath() string {
	if c == nil {
		return ""
	}
	return c.Tools.FFprobePath
}
