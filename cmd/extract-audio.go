package cmd

import (
	"fmt"
	"os"

	appaudio "extract-audio-from-video/application/audio"
	"extract-audio-from-video/infrastructure/ffmpeg"
	"extract-audio-from-video/infrastructure/filesystem"
	"extract-audio-from-video/infrastructure/terminal"

	"github.com/spf13/cobra"
)

var (
	extractSourcePath string
	extractQuality    string
	extractOutputDir  string
)

var extractAudioCmd = &cobra.Command{
	Use:   "extract-audio",
	Short: "Extract the audio track of a video into a single MP3",
	Long: `Extract the full audio track of a video into one mono MP3 file,
named after the video, without splitting it.

Example:
  extract-audio-from-video extract-audio --source video.mp4
  extract-audio-from-video extract-audio --source video.mp4 --quality high --output audio`,
	RunE: runExtractAudio,
}

func init() {
	rootCmd.AddCommand(extractAudioCmd)
	extractAudioCmd.Flags().StringVar(&extractSourcePath, "source", "", "Path to source video file (required)")
	extractAudioCmd.Flags().StringVar(&extractQuality, "quality", "", "Quality tier: low, medium or high")
	extractAudioCmd.Flags().StringVar(&extractOutputDir, "output", "", "Output directory")
	extractAudioCmd.MarkFlagRequired("source")
}

func runExtractAudio(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	outputDir := extractOutputDir
	if outputDir == "" {
		outputDir = cfg.OutputDirectory()
	}
	quality := extractQuality
	if quality == "" {
		quality = cfg.Quality()
	}

	extractor := ffmpeg.NewExtractor(
		ffmpeg.WithExtractorFFmpegPath(cfg.FFmpegPath()),
		ffmpeg.WithExtractorReporter(terminal.NewReporter(os.Stdout)),
	)
	service := appaudio.NewExtractService(newProber(), extractor, filesystem.NewChecker(), outputDir)

	fmt.Printf("Extracting audio from %s (quality %s)...\n", extractSourcePath, quality)

	result, err := service.Extract(cmd.Context(), appaudio.ExtractInput{
		SourcePath: extractSourcePath,
		Quality:    quality,
	})
	if err != nil {
		return err
	}

	size := filesystem.NewSizer().Size(result.OutputPath)
	fmt.Printf("Created: %s (%.2f MB)\n", result.OutputPath, float64(size)/1024/1024)
	return nil
}
