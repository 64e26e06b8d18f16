package convert

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vid2mp3/domain/media"
	"vid2mp3/infrastructure/console"
)

// ErrInterrupted is returned by prompters when the user cancels a prompt
var ErrInterrupted = errors.New("interrupted")

// manualOption is the extra listing entry that switches to manual input
const manualOption = "Enter a path or URL manually"

// Catalog lists the supported video files of a directory
type Catalog interface {
	List(dir string) ([]media.Entry, error)
}

// Prompter asks the user a question and returns a validated answer
type Prompter interface {
	Input(message string, defaultValue string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
	// Select presents options and returns the chosen index
	Select(message string, options []string) (int, error)
}

// Session drives the interactive flow from directory prompt to outcome
// report
type Session struct {
	service    *Service
	catalog    Catalog
	prompter   Prompter
	checker    media.FileChecker
	printer    *console.Printer
	defaultDir string
}

// NewSession creates a new interactive session
func NewSession(
	service *Service,
	catalog Catalog,
	prompter Prompter,
	checker media.FileChecker,
	printer *console.Printer,
	defaultDir string,
) *Session {
	return &Session{
		service:    service,
		catalog:    catalog,
		prompter:   prompter,
		checker:    checker,
		printer:    printer,
		defaultDir: defaultDir,
	}
}

// Run executes the interactive flow. It returns nil on success and on a
// graceful abort; every failure comes back as an error so the caller can
// exit nonzero.
func (s *Session) Run(ctx context.Context) error {
	s.printer.Infof("Video to MP3 Converter")
	s.printer.Plainf("")

	dir, err := s.askDirectory()
	if err != nil {
		return s.promptAbort(err)
	}
	s.printer.Plainf("Working in: %s", dir)

	entries, err := s.catalog.List(dir)
	if err != nil {
		return err
	}

	raw, err := s.selectInput(entries)
	if err != nil {
		return s.promptAbort(err)
	}
	if raw == "" {
		return nil
	}

	locator := media.ResolveInput(raw, dir)
	outputPath := media.DeriveOutputPath(locator)

	s.printer.Plainf("")
	s.printer.Stepf("Converting %s", locator)
	s.printer.Plainf("  output: %s", outputPath)

	res, err := s.service.ConvertTo(ctx, locator, outputPath)
	if err != nil {
		if errors.Is(err, ErrInputNotFound) {
			s.printer.Errorf("File not found: %s", locator)
			return nil
		}
		return err
	}

	return Report(s.printer, res.Outcome)
}

// askDirectory offers the configured default directory and, when it is
// declined, keeps prompting until an existing directory is supplied
func (s *Session) askDirectory() (string, error) {
	useDefault, err := s.prompter.Confirm(fmt.Sprintf("Use default directory (%s)?", s.defaultDir), true)
	if err != nil {
		return "", err
	}
	if useDefault {
		return s.defaultDir, nil
	}

	for {
		dir, err := s.prompter.Input("Directory to scan:", "")
		if err != nil {
			return "", err
		}
		dir = strings.TrimSpace(dir)
		if dir != "" && s.checker.DirExists(dir) {
			return dir, nil
		}
		s.printer.Errorf("Directory does not exist: %s", dir)
	}
}

// selectInput turns the catalog into a selection prompt. It returns the
// raw selection (a file name or manual path/URL) or "" when the user
// aborts.
func (s *Session) selectInput(entries []media.Entry) (string, error) {
	if len(entries) == 0 {
		s.printer.Infof("No supported video files found.")
		s.printer.Plainf("Supported formats: %s", strings.Join(media.SupportedExtensionList(), ", "))

		manual, err := s.prompter.Confirm("Enter a path or URL manually?", true)
		if err != nil {
			return "", err
		}
		if !manual {
			s.printer.Infof("Goodbye!")
			return "", nil
		}
		return s.askLocator()
	}

	s.printer.Infof("Found %d video file(s):", len(entries))

	options := make([]string, 0, len(entries)+1)
	for _, e := range entries {
		options = append(options, e.String())
	}
	options = append(options, manualOption)

	idx, err := s.prompter.Select("Select a video to convert:", options)
	if err != nil {
		return "", err
	}
	if idx == len(entries) {
		return s.askLocator()
	}
	return entries[idx].Name, nil
}

// askLocator reads a manual path or URL; an empty answer aborts
func (s *Session) askLocator() (string, error) {
	raw, err := s.prompter.Input("Path or URL of the video:", "")
	if err != nil {
		return "", err
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		s.printer.Errorf("No path provided")
	}
	return raw, nil
}

// promptAbort converts a prompt interruption into a graceful goodbye; any
// other prompt failure stays an error
func (s *Session) promptAbort(err error) error {
	if errors.Is(err, ErrInterrupted) {
		s.printer.Plainf("")
		s.printer.Infof("Goodbye!")
		return nil
	}
	return err
}

// Report renders outcome on printer. Failures come back as errors carrying
// the classification so the process exits nonzero.
func Report(printer *console.Printer, outcome media.Outcome) error {
	switch outcome.Status {
	case media.StatusSucceeded:
		if outcome.SizeBytes > 0 {
			printer.Successf("Saved %s (%.2f MB)", outcome.OutputPath, float64(outcome.SizeBytes)/(1024*1024))
		} else {
			printer.Successf("Saved %s", outcome.OutputPath)
		}
		return nil
	case media.StatusEngineMissing:
		return fmt.Errorf("%s; install FFmpeg and ensure it is on your PATH", outcome.Message)
	default:
		if outcome.Detail != "" {
			return fmt.Errorf("conversion failed: %s\n%s", outcome.Message, outcome.Detail)
		}
		return fmt.Errorf("conversion failed: %s", outcome.Message)
	}
}
