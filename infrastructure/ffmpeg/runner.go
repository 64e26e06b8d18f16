package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"vid2mp3/domain/media"
)

// audioBitrate is the fixed bitrate passed to the engine
const audioBitrate = "192k"

// tailLimit bounds how much trailing engine output is kept for failure
// reports
const tailLimit = 4 * 1024

// defaultHeartbeat is how often the progress callback fires while the
// engine runs
const defaultHeartbeat = 5 * time.Second

// ProgressFunc receives the elapsed running time at each heartbeat
type ProgressFunc func(elapsed time.Duration)

// Runner implements media.Transcoder by supervising an ffmpeg subprocess
type Runner struct {
	enginePath string
	heartbeat  time.Duration
	progress   ProgressFunc
}

// RunnerOption is a functional option for configuring Runner
type RunnerOption func(*Runner)

// WithEnginePath sets a custom ffmpeg executable path
func WithEnginePath(path string) RunnerOption {
	return func(r *Runner) {
		if path != "" {
			r.enginePath = path
		}
	}
}

// WithProgress sets a callback fired periodically while the engine runs
func WithProgress(fn ProgressFunc) RunnerOption {
	return func(r *Runner) {
		r.progress = fn
	}
}

// WithHeartbeat sets the progress callback interval
func WithHeartbeat(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.heartbeat = d
		}
	}
}

// NewRunner creates a new ffmpeg-based transcode runner
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		enginePath: "ffmpeg",
		heartbeat:  defaultHeartbeat,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run implements media.Transcoder. It launches the engine with the fixed
// extraction arguments, drains its diagnostic stream until the process
// exits and classifies the result. A request is attempted exactly once;
// there is no timeout and no retry.
func (r *Runner) Run(ctx context.Context, req *media.TranscodeRequest) media.Outcome {
	args := []string{
		"-i", req.InputLocator,
		"-vn",                   // No video
		"-acodec", "libmp3lame", // MP3 codec
		"-ab", audioBitrate,     // Audio bitrate
		"-y",                    // Overwrite output file if it exists
		req.OutputPath,
	}

	cmd := exec.CommandContext(ctx, r.enginePath, args...)
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return media.OtherError(fmt.Errorf("failed to open diagnostic stream: %w", err))
	}

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return media.EngineNotFound(r.enginePath)
		}
		return media.OtherError(fmt.Errorf("failed to start engine: %w", err))
	}

	// The engine logs everything on stderr. Keep reading until the pipe
	// closes so a full pipe buffer can never stall the engine; only the
	// tail is retained for failure reports.
	tail := newTailBuffer(tailLimit)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		io.Copy(tail, stderr)
	}()

	r.waitForDrain(drained)

	err = cmd.Wait()
	if err == nil {
		return media.Succeeded(req.OutputPath)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return media.FailedWithExitCode(code, tail.String())
		}
		return media.FailedBySignal(exitErr.ProcessState.String(), tail.String())
	}
	return media.OtherError(fmt.Errorf("failed waiting for engine: %w", err))
}

// waitForDrain blocks until the diagnostic stream closes, firing the
// progress callback at each heartbeat
func (r *Runner) waitForDrain(drained <-chan struct{}) {
	if r.progress == nil {
		<-drained
		return
	}

	start := time.Now()
	ticker := time.NewTicker(r.heartbeat)
	defer ticker.Stop()
	for {
		select {
		case <-drained:
			return
		case <-ticker.C:
			r.progress(time.Since(start))
		}
	}
}

// Verify checks that the engine is runnable and returns its version line
func (r *Runner) Verify(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, r.enginePath, "-version").Output()
	if err != nil {
		return "", fmt.Errorf("ffmpeg not found or not executable: %w", err)
	}

	version := strings.TrimSpace(string(out))
	if i := strings.IndexByte(version, '\n'); i >= 0 {
		version = strings.TrimSpace(version[:i])
	}
	return version, nil
}

// Ensure Runner implements media.Transcoder
var _ media.Transcoder = (*Runner)(nil)

// tailBuffer is an io.Writer that retains only the last limit bytes
// written to it
type tailBuffer struct {
	limit int
	buf   []byte
}

func newTailBuffer(limit int) *tailBuffer {
	return &tailBuffer{limit: limit}
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = t.buf[over:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return strings.TrimSpace(string(t.buf))
}
