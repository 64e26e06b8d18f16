package cmd

import (
	"io"
	"os"
	"strings"

	"vid2mp3/application/convert"
	"vid2mp3/domain/media"
	"vid2mp3/infrastructure/console"
	"vid2mp3/infrastructure/filesystem"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [directory]",
	Short: "List convertible video files in a directory",
	Long: `List the supported video files of a directory with their sizes.

Without an argument the configured default directory is scanned.

Example:
  vid2mp3 list
  vid2mp3 list ~/Videos`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := requireConfig()
	if err != nil {
		return err
	}

	dir := cfg.DefaultDir
	if len(args) > 0 {
		dir = args[0]
	}

	return RunListWithDependencies(filesystem.NewCatalog(), dir, os.Stdout)
}

// RunListWithDependencies runs the list command with injected dependencies
// (for testing)
func RunListWithDependencies(catalog convert.Catalog, dir string, output io.Writer) error {
	printer := console.NewPrinter(output)

	entries, err := catalog.List(dir)
	if err != nil {
		return err
	}

	printer.Plainf("Working in: %s", dir)
	if len(entries) == 0 {
		printer.Infof("No supported video files found.")
		printer.Plainf("Supported formats: %s", strings.Join(media.SupportedExtensionList(), ", "))
		return nil
	}

	printer.Infof("Found %d video file(s):", len(entries))
	for _, e := range entries {
		printer.Plainf("  %s", e.String())
	}
	return nil
}
