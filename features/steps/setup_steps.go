//go:build integration

package steps

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vid2mp3/cmd"
	"vid2mp3/infrastructure/config"

	"github.com/cucumber/godog"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// mockPrompter answers Input prompts by message prefix and Confirm
// prompts from a queue
type mockPrompter struct {
	answers  map[string]string
	confirms []bool
}

func (m *mockPrompter) Input(message string, defaultValue string) (string, error) {
	for prefix, answer := range m.answers {
		if strings.HasPrefix(message, prefix) {
			return answer, nil
		}
	}
	return defaultValue, nil
}

func (m *mockPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	if len(m.confirms) == 0 {
		return defaultValue, nil
	}
	v := m.confirms[0]
	m.confirms = m.confirms[1:]
	return v, nil
}

func (m *mockPrompter) Select(message string, options []string) (int, error) {
	return 0, nil
}

// setupContext holds test state for setup scenarios
type setupContext struct {
	tempDir    string
	configPath string
	prompter   *mockPrompter
	output     *bytes.Buffer
	err        error
}

var SharedSetupContext = &setupContext{}

func InitializeSetupScenario(ctx *godog.ScenarioContext) {
	testCtx := SharedSetupContext

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		color.NoColor = true
		tempDir, err := os.MkdirTemp("", "setup-test-*")
		if err != nil {
			return c, err
		}
		testCtx.tempDir = tempDir
		testCtx.configPath = filepath.Join(tempDir, ".env")
		testCtx.prompter = &mockPrompter{answers: make(map[string]string)}
		testCtx.output = &bytes.Buffer{}
		testCtx.err = nil
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if testCtx.tempDir != "" {
			os.RemoveAll(testCtx.tempDir)
		}
		SharedSetupContext = &setupContext{}
		return c, nil
	})

	ctx.Step(`^no config file exists$`, testCtx.noConfigFileExists)
	ctx.Step(`^a config file with default directory "([^"]*)"$`, testCtx.aConfigFileWithDefaultDirectory)
	ctx.Step(`^I run setup with inputs:$`, testCtx.iRunSetupWithInputs)
	ctx.Step(`^I run setup declining the overwrite$`, testCtx.iRunSetupDecliningTheOverwrite)
	ctx.Step(`^I run setup confirming the overwrite with inputs:$`, testCtx.iRunSetupConfirmingTheOverwriteWithInputs)
	ctx.Step(`^a config file should exist$`, testCtx.aConfigFileShouldExist)
	ctx.Step(`^the config should have default directory "([^"]*)"$`, testCtx.theConfigShouldHaveDefaultDirectory)
	ctx.Step(`^the config should have engine path "([^"]*)"$`, testCtx.theConfigShouldHaveEnginePath)
	ctx.Step(`^the output should contain "([^"]*)"$`, testCtx.theOutputShouldContain)
}

func (s *setupContext) noConfigFileExists() error {
	return nil
}

func (s *setupContext) aConfigFileWithDefaultDirectory(dir string) error {
	return config.Save(&config.Config{DefaultDir: dir, EnginePath: "ffmpeg"}, s.configPath)
}

func (s *setupContext) applyInputs(table *godog.Table) {
	for _, row := range table.Rows {
		s.prompter.answers[row.Cells[0].Value] = row.Cells[1].Value
	}
}

func (s *setupContext) iRunSetupWithInputs(table *godog.Table) error {
	s.applyInputs(table)
	s.err = cmd.RunSetupWithPrompter(s.prompter, s.configPath, s.output)
	return nil
}

func (s *setupContext) iRunSetupDecliningTheOverwrite() error {
	s.prompter.confirms = []bool{false}
	s.err = cmd.RunSetupWithPrompter(s.prompter, s.configPath, s.output)
	return nil
}

func (s *setupContext) iRunSetupConfirmingTheOverwriteWithInputs(table *godog.Table) error {
	s.prompter.confirms = []bool{true}
	return s.iRunSetupWithInputs(table)
}

func (s *setupContext) aConfigFileShouldExist() error {
	if _, err := os.Stat(s.configPath); err != nil {
		return fmt.Errorf("config file missing: %v", err)
	}
	return nil
}

// readConfigFile reads the written file directly, bypassing the loader's
// environment overlay
func (s *setupContext) readConfigFile() (map[string]string, error) {
	if s.err != nil {
		return nil, fmt.Errorf("setup failed: %v", s.err)
	}
	return godotenv.Read(s.configPath)
}

func (s *setupContext) theConfigShouldHaveDefaultDirectory(dir string) error {
	values, err := s.readConfigFile()
	if err != nil {
		return err
	}
	if values[config.KeyDefaultDir] != dir {
		return fmt.Errorf("%s = %q, want %q", config.KeyDefaultDir, values[config.KeyDefaultDir], dir)
	}
	return nil
}

func (s *setupContext) theConfigShouldHaveEnginePath(path string) error {
	values, err := s.readConfigFile()
	if err != nil {
		return err
	}
	if values[config.KeyEnginePath] != path {
		return fmt.Errorf("%s = %q, want %q", config.KeyEnginePath, values[config.KeyEnginePath], path)
	}
	return nil
}

func (s *setupContext) theOutputShouldContain(fragment string) error {
	if !strings.Contains(s.output.String(), fragment) {
		return fmt.Errorf("output does not contain %q:\n%s", fragment, s.output.String())
	}
	return nil
}
