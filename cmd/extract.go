package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"vid2mp3/application/convert"
	"vid2mp3/domain/media"
	"vid2mp3/infrastructure/console"
	"vid2mp3/infrastructure/ffmpeg"
	"vid2mp3/infrastructure/filesystem"

	"github.com/spf13/cobra"
)

var (
	extractInput  string
	extractOutput string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Convert a video to MP3 without prompts",
	Long: `Convert a single video file or URL to MP3 in one shot.

The input may be a local path or an http(s) URL. When --output is omitted
the MP3 lands next to a local input, or in the current directory for a URL.

Example:
  vid2mp3 extract --input "/videos/talk.mp4"
  vid2mp3 extract --input "https://example.com/talk.mp4" --output talk.mp3`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVar(&extractInput, "input", "", "Video file path or URL (required)")
	extractCmd.Flags().StringVar(&extractOutput, "output", "", "Output MP3 path (default is derived from the input)")
	extractCmd.MarkFlagRequired("input")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := requireConfig()
	if err != nil {
		return err
	}

	printer := console.NewPrinter(os.Stdout)
	runner := ffmpeg.NewRunner(
		ffmpeg.WithEnginePath(cfg.EnginePath),
		ffmpeg.WithProgress(func(elapsed time.Duration) {
			printer.Stepf("Still working... (%s elapsed)", elapsed.Round(time.Second))
		}),
	)
	service := convert.NewService(runner, filesystem.NewChecker(), filesystem.NewSizer())

	return RunExtractWithDependencies(cmd.Context(), service, extractInput, extractOutput, os.Stdout)
}

// RunExtractWithDependencies runs the extract command with injected
// dependencies (for testing)
func RunExtractWithDependencies(
	ctx context.Context,
	service *convert.Service,
	locator string,
	outputPath string,
	output io.Writer,
) error {
	if outputPath == "" {
		outputPath = media.DeriveOutputPath(locator)
	}

	printer := console.NewPrinter(output)
	printer.Stepf("Converting %s", locator)
	printer.Plainf("  output: %s", outputPath)

	res, err := service.ConvertTo(ctx, locator, outputPath)
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	return convert.Report(printer, res.Outcome)
}
