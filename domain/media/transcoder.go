package media

import "context"

// Transcoder defines the interface for running a transcode request
// This is a port that can be implemented by different infrastructure adapters
type Transcoder interface {
	// Run launches the engine for req, waits for it to finish and
	// classifies the result
	Run(ctx context.Context, req *TranscodeRequest) Outcome
}

// FileChecker defines the interface for checking paths on disk
// This is used to validate inputs before launching the engine
type FileChecker interface {
	// Exists returns true if the file exists
	Exists(path string) bool
	// DirExists returns true if path exists and is a directory
	DirExists(path string) bool
}
