package generate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bsthun/gut"

	"go.scnd.dev/open/glyph/command/glyph/index"
	"go.scnd.dev/open/glyph/utility/proc"
)

type testApp struct {
	directory string
	config    *index.Config
}

func (r *testApp) Verbose() *bool {
	return gut.Ptr(false)
}

func (r *testApp) Directory() *string {
	return &r.directory
}

func (r *testApp) Config() *index.Config {
	return r.config
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return &testApp{
		directory: t.TempDir(),
		config: &index.Config{
			SourceDir:          gut.Ptr("icons"),
			OutputDir:          gut.Ptr("components"),
			ComponentExtension: gut.Ptr("tsx"),
			BrowsePage:         gut.Ptr("icons.html"),
		},
	}
}

func writeIcon(t *testing.T, app *testApp, fileName string) {
	t.Helper()
	source := filepath.Join(app.directory, *app.config.SourceDir)
	if err := os.MkdirAll(source, 0o755); err != nil {
		t.Fatalf("Failed to create source directory: %v", err)
	}
	content := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M0 0h24v24H0z"/></svg>`
	if err := os.WriteFile(filepath.Join(source, fileName), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write icon: %v", err)
	}
}

func TestRunGeneratesComponentsAndPage(t *testing.T) {
	app := newTestApp(t)
	app.config.Formatter = &index.ToolConfig{
		Command: gut.Ptr("prettier"),
		Args:    []string{"--write"},
	}
	writeIcon(t, app, "arrow-up.svg")
	writeIcon(t, app, "2-circles.svg")

	recorder := new(proc.Recorder)
	if err := Run(app, &Command{}, recorder); err != nil {
		t.Fatalf("Failed to run: %v", err)
	}

	dest := filepath.Join(app.directory, "components")
	for _, fileName := range []string{"ArrowUpIcon.tsx", "Icon2Circles.tsx"} {
		if _, err := os.Stat(filepath.Join(dest, fileName)); err != nil {
			t.Errorf("Expected %s to exist: %v", fileName, err)
		}
	}

	page, err := os.ReadFile(filepath.Join(app.directory, "icons.html"))
	if err != nil {
		t.Fatalf("Expected browse page: %v", err)
	}
	if !strings.Contains(string(page), "ArrowUpIcon") {
		t.Error("Expected derived names in browse page")
	}

	// Formatter invoked once with the destination appended
	if len(recorder.Invocations) != 1 {
		t.Fatalf("Expected 1 tool invocation, got %d", len(recorder.Invocations))
	}
	invocation := recorder.Invocations[0]
	if *invocation.Command != "prettier" {
		t.Errorf("Expected prettier, got %s", *invocation.Command)
	}
	if invocation.Args[len(invocation.Args)-1] != dest {
		t.Errorf("Expected destination argument, got %v", invocation.Args)
	}
}

func TestRunSkipsFormatterWithoutDestination(t *testing.T) {
	app := newTestApp(t)
	app.config.Formatter = &index.ToolConfig{Command: gut.Ptr("prettier")}
	writeIcon(t, app, "dot.svg")

	recorder := new(proc.Recorder)
	if err := Run(app, &Command{SkipFormat: true}, recorder); err != nil {
		t.Fatalf("Failed to run: %v", err)
	}
	if len(recorder.Invocations) != 0 {
		t.Errorf("Expected no invocations with --skip-format, got %v", recorder.Invocations)
	}
}

func TestFormatSkipsMissingDestination(t *testing.T) {
	app := newTestApp(t)
	app.config.Formatter = &index.ToolConfig{Command: gut.Ptr("prettier")}

	recorder := new(proc.Recorder)
	dest := filepath.Join(app.directory, "components")
	if err := format(context.Background(), app, dest, recorder); err != nil {
		t.Fatalf("Expected absent destination to degrade to a skip: %v", err)
	}
	if len(recorder.Invocations) != 0 {
		t.Errorf("Expected no formatter invocation, got %v", recorder.Invocations)
	}
}

func TestFormatSkipsFileDestination(t *testing.T) {
	app := newTestApp(t)
	app.config.Formatter = &index.ToolConfig{Command: gut.Ptr("prettier")}

	dest := filepath.Join(app.directory, "components")
	if err := os.WriteFile(dest, []byte("not a directory"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	recorder := new(proc.Recorder)
	if err := format(context.Background(), app, dest, recorder); err != nil {
		t.Fatalf("Expected file destination to degrade to a skip: %v", err)
	}
	if len(recorder.Invocations) != 0 {
		t.Errorf("Expected no formatter invocation, got %v", recorder.Invocations)
	}
}

func TestRunEmptySourceIsNoOp(t *testing.T) {
	app := newTestApp(t)
	app.config.Formatter = &index.ToolConfig{Command: gut.Ptr("prettier")}
	source := filepath.Join(app.directory, "icons")
	if err := os.MkdirAll(source, 0o755); err != nil {
		t.Fatalf("Failed to create source directory: %v", err)
	}

	recorder := new(proc.Recorder)
	if err := Run(app, &Command{}, recorder); err != nil {
		t.Fatalf("Failed to run: %v", err)
	}

	if _, err := os.Stat(filepath.Join(app.directory, "components")); !os.IsNotExist(err) {
		t.Error("Expected destination to stay absent on a no-op run")
	}
	if _, err := os.Stat(filepath.Join(app.directory, "icons.html")); !os.IsNotExist(err) {
		t.Error("Expected no browse page on a no-op run")
	}
	if len(recorder.Invocations) != 0 {
		t.Errorf("Expected no tool invocations, got %v", recorder.Invocations)
	}
}

func TestRunRejectsFileAsSource(t *testing.T) {
	app := newTestApp(t)
	source := filepath.Join(app.directory, "icons")
	if err := os.WriteFile(source, []byte("not a directory"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	err := Run(app, &Command{}, new(proc.Recorder))
	if err == nil {
		t.Fatal("Expected error for file at source path")
	}
	if !strings.Contains(err.Error(), source) {
		t.Errorf("Expected offending path in error, got %v", err)
	}
}

func TestRunRequiresGeneratorForMissingSource(t *testing.T) {
	app := newTestApp(t)

	if err := Run(app, &Command{}, new(proc.Recorder)); err == nil {
		t.Fatal("Expected error for missing source without generator")
	}
}

// populatingRunner simulates a generator tool that creates the source
// directory with one icon.
type populatingRunner struct {
	proc.Recorder
	source string
}

func (r *populatingRunner) Run(ctx context.Context, dir string, command string, args ...string) error {
	if err := os.MkdirAll(r.source, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(r.source, "seed.svg"), []byte("<svg/>"), 0o644); err != nil {
		return err
	}
	return r.Recorder.Run(ctx, dir, command, args...)
}

func TestRunInvokesGeneratorWhenSourceMissing(t *testing.T) {
	app := newTestApp(t)
	app.config.Generator = &index.ToolConfig{
		Command: gut.Ptr("node"),
		Args:    []string{"scripts/fetch-icons.mjs"},
	}

	runner := &populatingRunner{source: filepath.Join(app.directory, "icons")}
	if err := Run(app, &Command{}, runner); err != nil {
		t.Fatalf("Failed to run: %v", err)
	}

	if len(runner.Invocations) != 1 {
		t.Fatalf("Expected generator invocation, got %d", len(runner.Invocations))
	}
	if *runner.Invocations[0].Command != "node" {
		t.Errorf("Expected node, got %s", *runner.Invocations[0].Command)
	}
	if _, err := os.Stat(filepath.Join(app.directory, "components", "SeedIcon.tsx")); err != nil {
		t.Errorf("Expected generated component from seeded source: %v", err)
	}
}

func TestRunFailsOnRecordedGeneratorState(t *testing.T) {
	app := newTestApp(t)
	app.config.Generator = &index.ToolConfig{Command: gut.Ptr("node")}

	// The recorder runs nothing, so the source directory stays absent
	err := Run(app, &Command{}, new(proc.Recorder))
	if err == nil {
		t.Fatal("Expected error when generator leaves no source directory")
	}
}
