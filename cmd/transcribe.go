package cmd

import (
	"fmt"
	"path/filepath"

	"extract-audio-from-video/infrastructure/transcription"

	"github.com/spf13/cobra"
)

var transcribeSourcePath string

var transcribeCmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Transcribe an MP3 chunk with the external whisper utility",
	Long: `Run the external whisper command-line utility over a chunk file and
write a text transcript next to it. The transcription model is a
separate install; this command only drives it.

By default the first chunk of the conventional output layout is used.

Example:
  extract-audio-from-video transcribe
  extract-audio-from-video transcribe --source output/video_parte_002.mp3`,
	RunE: runTranscribe,
}

func init() {
	rootCmd.AddCommand(transcribeCmd)
	transcribeCmd.Flags().StringVar(&transcribeSourcePath, "source", "", "Path to MP3 file (default first chunk in the output directory)")
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	sourcePath := transcribeSourcePath
	if sourcePath == "" {
		// Conventional name of the first chunk produced by process
		sourcePath = filepath.Join(cfg.OutputDirectory(), "video_parte_001.mp3")
	}

	var opts []transcription.ClientOption
	if cfg != nil {
		opts = append(opts,
			transcription.WithCommand(cfg.Transcription.Command),
			transcription.WithModel(cfg.Transcription.Model),
			transcription.WithLanguage(cfg.Transcription.Language),
		)
	}
	client := transcription.NewClient(opts...)

	fmt.Printf("Transcribing %s...\n", sourcePath)
	transcriptPath, err := client.Transcribe(cmd.Context(), sourcePath)
	if err != nil {
		return err
	}

	fmt.Printf("Transcript saved to: %s\n", transcriptPath)
	return nil
}
