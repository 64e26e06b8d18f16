package cmd

import (
	"errors"
	"io"
	"os"
	"strings"

	"vid2mp3/application/convert"
	"vid2mp3/infrastructure/config"
	"vid2mp3/infrastructure/console"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the configuration file interactively",
	Long: `Prompts for configuration values and writes them to the config file.

The file uses KEY=value lines. Recognized keys:
  DEFAULT_DIR  directory offered for video scanning
  FFMPEG_PATH  FFmpeg executable name or path`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultFile
	}
	return RunSetupWithPrompter(DefaultPrompter, path, os.Stdout)
}

// RunSetupWithPrompter runs the setup with a given prompter (for testing)
func RunSetupWithPrompter(prompter convert.Prompter, configPath string, output io.Writer) error {
	printer := console.NewPrinter(output)

	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := prompter.Confirm(configPath+" already exists. Overwrite?", false)
		if err != nil {
			return setupAbort(printer, err)
		}
		if !overwrite {
			printer.Infof("Setup cancelled.")
			return nil
		}
	}

	defaults := config.Default()

	dir, err := prompter.Input("Directory to scan for videos?", defaults.DefaultDir)
	if err != nil {
		return setupAbort(printer, err)
	}
	enginePath, err := prompter.Input("FFmpeg executable?", defaults.EnginePath)
	if err != nil {
		return setupAbort(printer, err)
	}

	cfg := &config.Config{
		DefaultDir: strings.TrimSpace(dir),
		EnginePath: strings.TrimSpace(enginePath),
	}
	if cfg.DefaultDir == "" {
		cfg.DefaultDir = defaults.DefaultDir
	}
	if cfg.EnginePath == "" {
		cfg.EnginePath = defaults.EnginePath
	}

	if err := config.Save(cfg, configPath); err != nil {
		return err
	}

	printer.Successf("Configuration saved to %s", configPath)
	return nil
}

// setupAbort turns a prompt interruption into a graceful goodbye
func setupAbort(printer *console.Printer, err error) error {
	if errors.Is(err, convert.ErrInterrupted) {
		printer.Infof("Goodbye!")
		return nil
	}
	return err
}
