package convert

import (
	"context"
	"errors"
	"fmt"

	"vid2mp3/domain/media"
)

// ErrInputNotFound is returned when a resolved local input file does not
// exist on disk
var ErrInputNotFound = errors.New("input file not found")

// FileSizer provides file size information
type FileSizer interface {
	Size(path string) int64
}

// Service runs the conversion pipeline: validate the input, build the
// request, run the engine and stat the produced artifact
type Service struct {
	transcoder media.Transcoder
	checker    media.FileChecker
	sizer      FileSizer
}

// NewService creates a new convert service
func NewService(transcoder media.Transcoder, checker media.FileChecker, sizer FileSizer) *Service {
	return &Service{
		transcoder: transcoder,
		checker:    checker,
		sizer:      sizer,
	}
}

// Result contains the classified outcome of a conversion together with
// the request that produced it
type Result struct {
	Request *media.TranscodeRequest
	Outcome media.Outcome
}

// Convert transcodes locator to an MP3 at the derived output path
func (s *Service) Convert(ctx context.Context, locator string) (*Result, error) {
	return s.ConvertTo(ctx, locator, media.DeriveOutputPath(locator))
}

// ConvertTo transcodes locator to an MP3 at outputPath. Local inputs must
// exist on disk; remote locators are handed to the engine untouched.
func (s *Service) ConvertTo(ctx context.Context, locator, outputPath string) (*Result, error) {
	if media.Classify(locator) == media.Local && !s.checker.Exists(locator) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, locator)
	}

	req, err := media.NewTranscodeRequest(locator, outputPath)
	if err != nil {
		return nil, err
	}

	outcome := s.transcoder.Run(ctx, req)
	if outcome.OK() {
		outcome.SizeBytes = s.sizer.Size(outcome.OutputPath)
	}

	return &Result{Request: req, Outcome: outcome}, nil
}
