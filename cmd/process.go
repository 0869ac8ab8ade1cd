package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"extract-audio-from-video/application/pipeline"
	"extract-audio-from-video/domain/media"
	"extract-audio-from-video/infrastructure/ffmpeg"
	"extract-audio-from-video/infrastructure/ffprobe"
	"extract-audio-from-video/infrastructure/filesystem"
	"extract-audio-from-video/infrastructure/opencv"
	"extract-audio-from-video/infrastructure/terminal"

	"github.com/spf13/cobra"
)

var (
	processSourcePath string
	processParts      int
	processOutputDir  string
	processQuality    string
	processNoCleanup  bool
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Extract audio from a video and split it into MP3 chunks",
	Long: `Run the full pipeline: probe the video, extract its audio track into a
single mono MP3, split that file into equal-duration numbered chunks and
remove the intermediate file.

Chunks are written to the output directory as {video}_parte_001.mp3,
{video}_parte_002.mp3 and so on, ordered by start time.

Example:
  extract-audio-from-video process --source video.mp4 --parts 5
  extract-audio-from-video process --source talk.mkv --parts 3 --quality high --keep-intermediate`,
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)
	processCmd.Flags().StringVar(&processSourcePath, "source", "", "Path to source video file (required)")
	processCmd.Flags().IntVar(&processParts, "parts", 0, "Number of chunks to produce (default from config or 5)")
	processCmd.Flags().StringVar(&processOutputDir, "output", "", "Output directory (default from config or \"output\")")
	processCmd.Flags().StringVar(&processQuality, "quality", "", "Quality tier: low, medium or high (default from config or \"medium\")")
	processCmd.Flags().BoolVar(&processNoCleanup, "keep-intermediate", false, "Keep the intermediate full-length MP3")
	processCmd.MarkFlagRequired("source")
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	parts := processParts
	if parts == 0 {
		parts = cfg.Parts()
	}
	outputDir := processOutputDir
	if outputDir == "" {
		outputDir = cfg.OutputDirectory()
	}
	quality := processQuality
	if quality == "" {
		quality = cfg.Quality()
	}
	cleanup := cfg.Cleanup() && !processNoCleanup

	reporter := terminal.NewReporter(os.Stdout)
	extractor := ffmpeg.NewExtractor(
		ffmpeg.WithExtractorFFmpegPath(cfg.FFmpegPath()),
		ffmpeg.WithExtractorReporter(reporter),
	)
	splitter := ffmpeg.NewSplitter(
		ffmpeg.WithSplitterFFmpegPath(cfg.FFmpegPath()),
		ffmpeg.WithSplitterReporter(reporter),
	)

	service := pipeline.NewService(
		newProber(),
		extractor,
		splitter,
		filesystem.NewChecker(),
		filesystem.NewRemover(),
		pipeline.WithLogger(newLogger()),
		pipeline.WithOutput(os.Stdout),
	)

	result := service.Run(cmd.Context(), pipeline.Request{
		VideoPath: processSourcePath,
		Parts:     parts,
		OutputDir: outputDir,
		Quality:   quality,
		Cleanup:   cleanup,
	})

	if !result.Success {
		return fmt.Errorf("processing failed: %s", result.Error)
	}

	fmt.Printf("Done! %d chunks in %s (%.2f MB total, quality %s)\n",
		len(result.SplitFiles), result.OutputDir, result.TotalSizeMB(), result.Quality)
	for _, path := range result.SplitFiles {
		fmt.Printf("  %s\n", filepath.Base(path))
	}
	return nil
}

// newProber picks the OpenCV prober when it was compiled in, falling
// back to ffprobe otherwise
func newProber() media.Prober {
	if opencv.Available() {
		return opencv.NewProber()
	}
	return ffprobe.NewProber(ffprobe.WithFFprobePath(GetConfig().FFprobePath()))
}
