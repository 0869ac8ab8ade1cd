package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	appaudio "extract-audio-from-video/application/audio"
	"extract-audio-from-video/infrastructure/ffmpeg"
	"extract-audio-from-video/infrastructure/ffprobe"
	"extract-audio-from-video/infrastructure/filesystem"
	"extract-audio-from-video/infrastructure/terminal"

	"github.com/spf13/cobra"
)

var (
	splitSourcePath string
	splitParts      int
	splitOutputDir  string
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split an existing MP3 into equal-duration chunks",
	Long: `Split an already extracted MP3 into a number of equal-duration
numbered chunks. The file's duration is re-probed so the chunk
boundaries match the encoded audio, not the original video.

Example:
  extract-audio-from-video split --source output/video.mp3 --parts 5`,
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().StringVar(&splitSourcePath, "source", "", "Path to MP3 file (required)")
	splitCmd.Flags().IntVar(&splitParts, "parts", 0, "Number of chunks to produce (default from config or 5)")
	splitCmd.Flags().StringVar(&splitOutputDir, "output", "", "Output directory")
	splitCmd.MarkFlagRequired("source")
}

func runSplit(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	parts := splitParts
	if parts == 0 {
		parts = cfg.Parts()
	}
	outputDir := splitOutputDir
	if outputDir == "" {
		outputDir = cfg.OutputDirectory()
	}

	prober := ffprobe.NewProber(ffprobe.WithFFprobePath(cfg.FFprobePath()))
	duration, err := prober.Duration(cmd.Context(), splitSourcePath)
	if err != nil {
		return err
	}

	splitter := ffmpeg.NewSplitter(
		ffmpeg.WithSplitterFFmpegPath(cfg.FFmpegPath()),
		ffmpeg.WithSplitterReporter(terminal.NewReporter(os.Stdout)),
	)
	service := appaudio.NewSplitService(splitter, filesystem.NewChecker(), outputDir)

	fmt.Printf("Splitting %s (%.2fs) into %d parts...\n", splitSourcePath, duration, parts)

	result, err := service.Split(cmd.Context(), appaudio.SplitInput{
		SourcePath: splitSourcePath,
		Duration:   duration,
		Parts:      parts,
	})
	if err != nil {
		return err
	}

	for _, chunk := range result.Chunks {
		fmt.Printf("  %s (%.2f MB)\n", filepath.Base(chunk.Path), float64(chunk.Size)/1024/1024)
	}
	fmt.Printf("Done! %d chunks, %.2f MB total\n", len(result.Chunks), float64(result.TotalSize())/1024/1024)
	return nil
}
