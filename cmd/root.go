package cmd

import (
	"fmt"
	"os"

	"extract-audio-from-video/infrastructure/config"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "extract-audio-from-video",
	Short: "Extract audio from a video and split it into MP3 chunks",
	Long: `extract-audio-from-video pulls the audio track out of a video file and
splits it into a configurable number of equal-duration MP3 chunks,
tuned for hosts with little memory and CPU:

  - Probe video duration and frame rate
  - Extract a single mono MP3 at a quality-dependent bitrate
  - Cut it into numbered chunks with exact boundary timestamps

Example:
  extract-audio-from-video process --source video.mp4 --parts 5 --quality medium`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = "config/config.yaml"
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// Config file is optional; every setting has a default
		cfg = nil
	}
}

// GetConfig returns the loaded configuration, possibly nil
func GetConfig() *config.Config {
	return cfg
}

// newLogger builds the structured logger shared by the commands
func newLogger() hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:  "extract-audio",
		Level: level,
	})
}
