package cmd

import (
	"fmt"
	"os"
	"time"

	"vid2mp3/application/convert"
	"vid2mp3/infrastructure/config"
	"vid2mp3/infrastructure/console"
	"vid2mp3/infrastructure/ffmpeg"
	"vid2mp3/infrastructure/filesystem"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "vid2mp3",
	Short: "Convert video files to MP3 audio",
	Long: `vid2mp3 extracts the audio track of a video file as an MP3 using FFmpeg.

Run it without arguments to pick a video interactively from a directory,
or use the subcommands for one-shot operation:

  vid2mp3                          interactive conversion
  vid2mp3 extract --input clip.mp4 convert without prompts
  vid2mp3 list ~/Videos            show convertible files
  vid2mp3 check                    verify FFmpeg is installed
  vid2mp3 setup                    write the configuration file`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSession,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.env)")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = config.DefaultFile
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// A malformed config file surfaces when a command asks for it
		cfg = nil
	}
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	return cfg
}

func requireConfig() (*config.Config, error) {
	if cfg == nil {
		return nil, fmt.Errorf("failed to load config file %s", cfgFile)
	}
	return cfg, nil
}

func runSession(cmd *cobra.Command, args []string) error {
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

	checker := filesystem.NewChecker()
	service := convert.NewService(runner, checker, filesystem.NewSizer())
	session := convert.NewSession(service, filesystem.NewCatalog(), DefaultPrompter, checker, printer, cfg.DefaultDir)

	return session.Run(cmd.Context())
}
