package media

import "fmt"

// TranscodeRequest represents a single conversion order: where the audio
// comes from and where the MP3 lands. It is built once per run and
// consumed exactly once.
type TranscodeRequest struct {
	InputLocator string
	OutputPath   string
}

// NewTranscodeRequest creates a new TranscodeRequest with validation
func NewTranscodeRequest(inputLocator, outputPath string) (*TranscodeRequest, error) {
	if inputLocator == "" {
		return nil, fmt.Errorf("input locator is required")
	}

	if outputPath == "" {
		return nil, fmt.Errorf("output path is required")
	}

	return &TranscodeRequest{
		InputLocator: inputLocator,
		OutputPath:   outputPath,
	}, nil
}
