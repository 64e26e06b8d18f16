package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"vid2mp3/infrastructure/console"
	"vid2mp3/infrastructure/ffmpeg"

	"github.com/spf13/cobra"
)

// EngineVerifier reports whether the transcoding engine is runnable
type EngineVerifier interface {
	Verify(ctx context.Context) (string, error)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the FFmpeg engine is installed",
	Long: `Run the configured FFmpeg binary and print its version.

Exits nonzero with an install hint when the engine cannot be run.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := requireConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	runner := ffmpeg.NewRunner(ffmpeg.WithEnginePath(cfg.EnginePath))
	return RunCheckWithDependencies(ctx, runner, os.Stdout)
}

// RunCheckWithDependencies runs the check command with injected
// dependencies (for testing)
func RunCheckWithDependencies(ctx context.Context, verifier EngineVerifier, output io.Writer) error {
	printer := console.NewPrinter(output)

	version, err := verifier.Verify(ctx)
	if err != nil {
		printer.Errorf("FFmpeg is not available")
		return fmt.Errorf("%w; install FFmpeg and ensure it is on your PATH", err)
	}

	printer.Successf("%s", version)
	return nil
}
