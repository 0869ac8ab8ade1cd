package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"extract-audio-from-video/domain/audio"
	"extract-audio-from-video/infrastructure/config"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// Prompter interface for interactive prompts (allows mocking in tests)
type Prompter interface {
	Input(message string, defaultValue string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

// SurveyPrompter implements Prompter using the survey library
type SurveyPrompter struct{}

func (p *SurveyPrompter) Input(message string, defaultValue string) (string, error) {
	result := ""
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	result := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

// DefaultPrompter is the prompter used in production
var DefaultPrompter Prompter = &SurveyPrompter{}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create configuration file interactively",
	Long: `Prompts for configuration values and creates config.yaml.

All settings have working defaults, so setup is optional; run it when
you want a different output directory, quality tier or tool path.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	return RunSetupWithPrompter(DefaultPrompter, "config/config.yaml")
}

// RunSetupWithPrompter runs the setup with a given prompter (for testing)
func RunSetupWithPrompter(prompter Prompter, configPath string) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := prompter.Confirm("config.yaml already exists. Overwrite?", false)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if !overwrite {
			fmt.Println("Setup cancelled.")
			return nil
		}
	}

	fmt.Println("Welcome to extract-audio-from-video setup!")
	fmt.Println()

	cfg := &config.Config{}

	outputDir, err := prompter.Input("Output directory for chunks:", "output")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Paths.OutputDirectory = outputDir

	quality, err := prompter.Input("Default quality tier (low, medium, high):", audio.DefaultQuality)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if _, err := audio.ResolveQuality(quality); err != nil {
		return err
	}
	cfg.Audio.Quality = quality

	partsStr, err := prompter.Input("Default number of chunks:", "5")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	parts, err := strconv.Atoi(partsStr)
	if err != nil || parts < 1 {
		return fmt.Errorf("invalid part count %q: expected an integer >= 1", partsStr)
	}
	cfg.Audio.Parts = parts

	cleanup, err := prompter.Confirm("Remove the intermediate MP3 after splitting?", true)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Audio.Cleanup = &cleanup

	ffmpegPath, err := prompter.Input("ffmpeg path (empty for PATH lookup):", "")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Tools.FFmpegPath = ffmpegPath

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Println()
	fmt.Printf("Configuration saved to %s\n", configPath)
	return nil
}
