package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var probeSourcePath string

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Show duration and frame rate of a video file",
	Long: `Read duration, frame rate and resolution from a video container
without touching its streams.

Example:
  extract-audio-from-video probe --source video.mp4`,
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
	probeCmd.Flags().StringVar(&probeSourcePath, "source", "", "Path to source video file (required)")
	probeCmd.MarkFlagRequired("source")
}

func runProbe(cmd *cobra.Command, args []string) error {
	info, err := newProber().Probe(cmd.Context(), probeSourcePath)
	if err != nil {
		return err
	}

	fmt.Printf("Duration:   %.2fs\n", info.Duration)
	fmt.Printf("FPS:        %.2f\n", info.FPS)
	fmt.Printf("Frames:     %d\n", info.FrameCount)
	if info.Width > 0 {
		fmt.Printf("Resolution: %dx%d\n", info.Width, info.Height)
	}
	return nil
}
