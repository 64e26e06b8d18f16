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
	"vid2mp3/infrastructure/filesystem"

	"github.com/cucumber/godog"
	"github.com/fatih/color"
)

// catalogContext holds test state for listing scenarios
type catalogContext struct {
	scanDir string
	output  *bytes.Buffer
	err     error
}

var SharedCatalogContext = &catalogContext{}

func InitializeCatalogScenario(ctx *godog.ScenarioContext) {
	testCtx := SharedCatalogContext

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		color.NoColor = true
		dir, err := os.MkdirTemp("", "catalog-test-*")
		if err != nil {
			return c, err
		}
		testCtx.scanDir = dir
		testCtx.output = &bytes.Buffer{}
		testCtx.err = nil
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if testCtx.scanDir != "" {
			os.RemoveAll(testCtx.scanDir)
		}
		SharedCatalogContext = &catalogContext{}
		return c, nil
	})

	ctx.Step(`^a scan directory containing files:$`, testCtx.aScanDirectoryContainingFiles)
	ctx.Step(`^an empty scan directory$`, testCtx.anEmptyScanDirectory)
	ctx.Step(`^I list the scan directory$`, testCtx.iListTheScanDirectory)
	ctx.Step(`^I list the directory "([^"]*)"$`, testCtx.iListTheDirectory)
	ctx.Step(`^the listing should contain (\d+) file\(s\)$`, testCtx.theListingShouldContainFiles)
	ctx.Step(`^the listing should show "([^"]*)" before "([^"]*)"$`, testCtx.theListingShouldShowBefore)
	ctx.Step(`^the listing should report no supported video files$`, testCtx.theListingShouldReportNoFiles)
	ctx.Step(`^the listing should mention the format "([^"]*)"$`, testCtx.theListingShouldMentionTheFormat)
}

func (s *catalogContext) aScanDirectoryContainingFiles(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // header
		}
		name := row.Cells[0].Value
		path := filepath.Join(s.scanDir, name)
		if err := os.WriteFile(path, nil, 0644); err != nil {
			return err
		}
		var size int64
		fmt.Sscanf(row.Cells[1].Value, "%d", &size)
		if err := os.Truncate(path, size); err != nil {
			return err
		}
	}
	return nil
}

func (s *catalogContext) anEmptyScanDirectory() error {
	return nil
}

func (s *catalogContext) iListTheScanDirectory() error {
	return s.iListTheDirectory(s.scanDir)
}

func (s *catalogContext) iListTheDirectory(dir string) error {
	s.err = cmd.RunListWithDependencies(filesystem.NewCatalog(), dir, s.output)
	return nil
}

func (s *catalogContext) theListingShouldContainFiles(count int) error {
	want := fmt.Sprintf("Found %d video file(s):", count)
	if !strings.Contains(s.output.String(), want) {
		return fmt.Errorf("output does not contain %q:\n%s", want, s.output.String())
	}
	return nil
}

func (s *catalogContext) theListingShouldShowBefore(first, second string) error {
	out := s.output.String()
	i, j := strings.Index(out, first), strings.Index(out, second)
	if i < 0 || j < 0 {
		return fmt.Errorf("output is missing %q or %q:\n%s", first, second, out)
	}
	if i > j {
		return fmt.Errorf("%q appears after %q:\n%s", first, second, out)
	}
	return nil
}

func (s *catalogContext) theListingShouldReportNoFiles() error {
	if !strings.Contains(s.output.String(), "No supported video files found") {
		return fmt.Errorf("output does not report an empty listing:\n%s", s.output.String())
	}
	return nil
}

func (s *catalogContext) theListingShouldMentionTheFormat(format string) error {
	if !strings.Contains(s.output.String(), format) {
		return fmt.Errorf("output does not mention format %q:\n%s", format, s.output.String())
	}
	return nil
}
