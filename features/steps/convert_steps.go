//go:build integration

package steps

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"vid2mp3/application/convert"
	"vid2mp3/cmd"
	"vid2mp3/domain/media"

	"github.com/cucumber/godog"
	"github.com/fatih/color"
)

// recordingTranscoder stands in for the ffmpeg runner, recording the
// request and returning a scripted outcome
type recordingTranscoder struct {
	outcome func(req *media.TranscodeRequest) media.Outcome
	calls   int
	input   string
	output  string
}

func (r *recordingTranscoder) Run(ctx context.Context, req *media.TranscodeRequest) media.Outcome {
	r.calls++
	r.input = req.InputLocator
	r.output = req.OutputPath
	return r.outcome(req)
}

type stubChecker struct {
	existingFiles map[string]bool
}

func (c *stubChecker) Exists(path string) bool    { return c.existingFiles[path] }
func (c *stubChecker) DirExists(path string) bool { return c.existingFiles[path] }

type stubSizer struct{}

func (s *stubSizer) Size(path string) int64 { return 0 }

// convertContext holds test state for extraction scenarios
type convertContext struct {
	transcoder *recordingTranscoder
	checker    *stubChecker
	output     *bytes.Buffer
	err        error
}

var SharedConvertContext = &convertContext{}

func InitializeConvertScenario(ctx *godog.ScenarioContext) {
	testCtx := SharedConvertContext

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		color.NoColor = true
		testCtx.transcoder = &recordingTranscoder{
			outcome: func(req *media.TranscodeRequest) media.Outcome {
				return media.Succeeded(req.OutputPath)
			},
		}
		testCtx.checker = &stubChecker{existingFiles: make(map[string]bool)}
		testCtx.output = &bytes.Buffer{}
		testCtx.err = nil
		return c, nil
	})

	ctx.Step(`^the video file "([^"]*)" exists$`, testCtx.theVideoFileExists)
	ctx.Step(`^the engine succeeds$`, testCtx.theEngineSucceeds)
	ctx.Step(`^the engine fails with exit code (\d+)$`, testCtx.theEngineFailsWithExitCode)
	ctx.Step(`^the engine is not installed$`, testCtx.theEngineIsNotInstalled)
	ctx.Step(`^I extract "([^"]*)"$`, testCtx.iExtract)
	ctx.Step(`^I extract "([^"]*)" to "([^"]*)"$`, testCtx.iExtractTo)
	ctx.Step(`^the engine should receive input "([^"]*)"$`, testCtx.theEngineShouldReceiveInput)
	ctx.Step(`^the engine should receive output "([^"]*)"$`, testCtx.theEngineShouldReceiveOutput)
	ctx.Step(`^the report should show success for "([^"]*)"$`, testCtx.theReportShouldShowSuccessFor)
	ctx.Step(`^the command should fail with "([^"]*)"$`, testCtx.theCommandShouldFailWith)
	ctx.Step(`^the engine should not have run$`, testCtx.theEngineShouldNotHaveRun)
}

func (s *convertContext) theVideoFileExists(path string) error {
	s.checker.existingFiles[path] = true
	return nil
}

func (s *convertContext) theEngineSucceeds() error {
	s.transcoder.outcome = func(req *media.TranscodeRequest) media.Outcome {
		return media.Succeeded(req.OutputPath)
	}
	return nil
}

func (s *convertContext) theEngineFailsWithExitCode(code int) error {
	s.transcoder.outcome = func(req *media.TranscodeRequest) media.Outcome {
		return media.FailedWithExitCode(code, "Invalid data found when processing input")
	}
	return nil
}

func (s *convertContext) theEngineIsNotInstalled() error {
	s.transcoder.outcome = func(req *media.TranscodeRequest) media.Outcome {
		return media.EngineNotFound("ffmpeg")
	}
	return nil
}

func (s *convertContext) iExtract(locator string) error {
	return s.iExtractTo(locator, "")
}

func (s *convertContext) iExtractTo(locator, outputPath string) error {
	service := convert.NewService(s.transcoder, s.checker, &stubSizer{})
	s.err = cmd.RunExtractWithDependencies(context.Background(), service, locator, outputPath, s.output)
	return nil
}

func (s *convertContext) theEngineShouldReceiveInput(input string) error {
	if s.transcoder.input != input {
		return fmt.Errorf("engine input = %q, want %q", s.transcoder.input, input)
	}
	return nil
}

func (s *convertContext) theEngineShouldReceiveOutput(output string) error {
	if s.transcoder.output != output {
		return fmt.Errorf("engine output = %q, want %q", s.transcoder.output, output)
	}
	return nil
}

func (s *convertContext) theReportShouldShowSuccessFor(path string) error {
	if s.err != nil {
		return fmt.Errorf("command failed: %v", s.err)
	}
	want := "Saved " + path
	if !strings.Contains(s.output.String(), want) {
		return fmt.Errorf("output does not contain %q:\n%s", want, s.output.String())
	}
	return nil
}

func (s *convertContext) theCommandShouldFailWith(fragment string) error {
	if s.err == nil {
		return fmt.Errorf("command succeeded, want failure containing %q", fragment)
	}
	if !strings.Contains(s.err.Error(), fragment) {
		return fmt.Errorf("error %q does not contain %q", s.err.Error(), fragment)
	}
	return nil
}

func (s *convertContext) theEngineShouldNotHaveRun() error {
	if s.transcoder.calls != 0 {
		return fmt.Errorf("engine ran %d time(s), want 0", s.transcoder.calls)
	}
	return nil
}
