package media

import "fmt"

// OutcomeStatus tags a TranscodeOutcome with its failure class
type OutcomeStatus int

const (
	// StatusSucceeded means the engine exited with code zero
	StatusSucceeded OutcomeStatus = iota
	// StatusExitFailure means the engine exited with a nonzero code
	StatusExitFailure
	// StatusSignaled means the engine was terminated without an exit code
	StatusSignaled
	// StatusEngineMissing means the engine executable could not be located
	StatusEngineMissing
	// StatusError covers every other launch or wait failure
	StatusError
)

// Outcome is the classified result of one transcode run
type Outcome struct {
	Status     OutcomeStatus
	OutputPath string
	SizeBytes  int64  // size of the produced artifact, 0 when unknown
	ExitCode   int    // engine exit code, meaningful for StatusExitFailure
	Message    string // human-readable failure description
	Detail     string // trailing engine diagnostics, empty on success
}

// Succeeded creates an Outcome for a zero engine exit
func Succeeded(outputPath string) Outcome {
	return Outcome{Status: StatusSucceeded, OutputPath: outputPath}
}

// FailedWithExitCode creates an Outcome for a nonzero engine exit
func FailedWithExitCode(code int, detail string) Outcome {
	return Outcome{
		Status:   StatusExitFailure,
		ExitCode: code,
		Message:  fmt.Sprintf("engine exited with code %d", code),
		Detail:   detail,
	}
}

// FailedBySignal creates an Outcome for an engine terminated without an
// exit code. state describes the termination, e.g. "signal: killed".
func FailedBySignal(state, detail string) Outcome {
	return Outcome{
		Status:  StatusSignaled,
		Message: fmt.Sprintf("engine terminated abnormally (%s)", state),
		Detail:  detail,
	}
}

// EngineNotFound creates an Outcome for a missing engine executable
func EngineNotFound(enginePath string) Outcome {
	return Outcome{
		Status:  StatusEngineMissing,
		Message: fmt.Sprintf("transcoding engine %q not found", enginePath),
	}
}

// OtherError creates an Outcome for any other launch or wait failure
func OtherError(err error) Outcome {
	return Outcome{Status: StatusError, Message: err.Error()}
}

// OK returns true if the transcode produced its artifact
func (o Outcome) OK() bool {
	return o.Status == StatusSucceeded
}
