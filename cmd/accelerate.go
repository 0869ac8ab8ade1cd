package cmd

import (
	"fmt"

	"extract-audio-from-video/domain/audio"
	"extract-audio-from-video/infrastructure/ffmpeg"

	"github.com/spf13/cobra"
)

var (
	accelerateSourcePath string
	accelerateSpeed      float64
)

var accelerateCmd = &cobra.Command{
	Use:   "accelerate",
	Short: "Change the playback speed of an MP3 chunk",
	Long: `Re-encode an MP3 at a different playback speed using the ffmpeg
atempo filter. Factors outside the filter's 0.5-2.0 range are reached
by chaining multiple steps.

Example:
  extract-audio-from-video accelerate --source output/video_parte_001.mp3 --speed 1.5`,
	RunE: runAccelerate,
}

func init() {
	rootCmd.AddCommand(accelerateCmd)
	accelerateCmd.Flags().StringVar(&accelerateSourcePath, "source", "", "Path to MP3 file (required)")
	accelerateCmd.Flags().Float64Var(&accelerateSpeed, "speed", 1.5, "Speed factor (>1 speeds up, <1 slows down)")
	accelerateCmd.MarkFlagRequired("source")
}

func runAccelerate(cmd *cobra.Command, args []string) error {
	req, err := audio.NewAccelerationRequest(accelerateSourcePath, accelerateSpeed)
	if err != nil {
		return err
	}

	accelerator := ffmpeg.NewAccelerator(
		ffmpeg.WithAcceleratorFFmpegPath(GetConfig().FFmpegPath()),
	)

	outputPath := req.OutputPath()
	fmt.Printf("Re-encoding %s at %.2fx...\n", accelerateSourcePath, accelerateSpeed)
	if err := accelerator.Accelerate(cmd.Context(), req, outputPath); err != nil {
		return err
	}

	fmt.Printf("Created: %s\n", outputPath)
	return nil
}
