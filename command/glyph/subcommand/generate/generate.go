package generate

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"go.scnd.dev/open/glyph/command/glyph/app"
	"go.scnd.dev/open/glyph/command/glyph/index"
	browsepage "go.scnd.dev/open/glyph/command/glyph/procedure/browse"
	"go.scnd.dev/open/glyph/command/glyph/procedure/pipeline"
	"go.scnd.dev/open/glyph/command/glyph/procedure/printer"
	"go.scnd.dev/open/glyph/command/glyph/procedure/transform"
	"go.scnd.dev/open/glyph/package/telemetry"
	"go.scnd.dev/open/glyph/utility/proc"
	"go.scnd.dev/open/glyph/utility/value"
)

type Command struct {
	SkipFormat bool `help:"Skip the formatter pass over generated files."`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r, new(proc.Exec))
}

// Run converts every svg in the source directory into one component file,
// rewrites the browse page, and formats the output. The source directory
// is populated through the generator tool when it is entirely absent.
func Run(app index.App, command *Command, runner proc.Runner) error {
	ctx := context.Background()
	cfg := app.Config()

	tel, err := telemetry.New(cfg)
	if err != nil {
		return fmt.Errorf("unable to initialize telemetry: %w", err)
	}
	defer func() {
		// * bound the flush so an unreachable collector cannot stall exit
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		tel.Shutdown(shutdownCtx)
	}()

	started := time.Now()
	runId := value.Random(value.RandomLowercaseAlphaNum, 8)
	ctx, span := tel.Tracer.Start(ctx, "glyph.generate")
	span.SetAttributes(attribute.String("glyph.run_id", *runId))
	defer span.End()

	if *app.Verbose() {
		log.Printf("starting run %s", *runId)
	}

	source := filepath.Join(*app.Directory(), *cfg.SourceDir)
	dest := filepath.Join(*app.Directory(), *cfg.OutputDir)

	// * guard the source directory, generating it when absent
	if err := ensureSource(ctx, app, source, runner); err != nil {
		tel.Instrument.RunDurationRecord(ctx, time.Since(started).Milliseconds(), "failed")
		return err
	}

	// * transform every svg into one component file
	transformCtx, transformSpan := tel.Tracer.Start(ctx, "glyph.transform")
	written, err := pipeline.Transform(source, dest, *cfg.ComponentExtension, new(transform.Component))
	transformSpan.End()
	if err != nil {
		tel.Instrument.RunDurationRecord(ctx, time.Since(started).Milliseconds(), "failed")
		return err
	}
	if len(written) == 0 {
		tel.Instrument.RunDurationRecord(ctx, time.Since(started).Milliseconds(), "empty")
		return nil
	}
	tel.Instrument.ComponentGenerated(transformCtx, int64(len(written)), *cfg.SourceDir)

	// * rebuild the browse page
	page := filepath.Join(*app.Directory(), *cfg.BrowsePage)
	if err := browsepage.WritePage(source, page); err != nil {
		tel.Instrument.RunDurationRecord(ctx, time.Since(started).Milliseconds(), "failed")
		return err
	}
	log.Printf("wrote browse page %s", page)

	// * format generated files in place
	if !command.SkipFormat {
		if err := format(ctx, app, dest, runner); err != nil {
			tel.Instrument.RunDurationRecord(ctx, time.Since(started).Milliseconds(), "failed")
			return err
		}
	}

	// * print the output summary
	tree, err := printer.PrintOutputTree(*cfg.OutputDir, written)
	if err != nil {
		return err
	}
	fmt.Print(tree)
	log.Printf("generated %d components in %s", len(written), dest)

	tel.Instrument.RunDurationRecord(ctx, time.Since(started).Milliseconds(), "generated")
	return nil
}

// ensureSource resolves the source directory state. A file at the source
// path is a precondition violation; an absent path triggers the generator
// tool, which must leave a directory behind.
func ensureSource(ctx context.Context, app index.App, source string, runner proc.Runner) error {
	state, err := pipeline.Probe(source)
	if err != nil {
		return err
	}

	switch state {
	case pipeline.StateDirectory:
		return nil
	case pipeline.StateFile:
		return fmt.Errorf("source path %s is a file, expected a directory", source)
	}

	cfg := app.Config()
	if cfg.Generator == nil {
		return fmt.Errorf("source directory %s is missing and no generator tool is configured", source)
	}

	log.Printf("source directory %s is missing, running generator", source)
	if err := runner.Run(ctx, *app.Directory(), *cfg.Generator.Command, cfg.Generator.Args...); err != nil {
		return fmt.Errorf("generator tool failed: %w", err)
	}

	state, err = pipeline.Probe(source)
	if err != nil {
		return err
	}
	if state != pipeline.StateDirectory {
		return fmt.Errorf("generator tool did not produce source directory %s", source)
	}
	return nil
}

// format runs the external formatter over the destination directory.
// A missing or non-directory destination degrades to a logged skip.
func format(ctx context.Context, app index.App, dest string, runner proc.Runner) error {
	cfg := app.Config()
	if cfg.Formatter == nil {
		if *app.Verbose() {
			log.Printf("no formatter configured, skipping")
		}
		return nil
	}

	state, err := pipeline.Probe(dest)
	if err != nil {
		return err
	}
	if state != pipeline.StateDirectory {
		log.Printf("destination %s is %s, skipping formatter", dest, state)
		return nil
	}

	args := append(append([]string{}, cfg.Formatter.Args...), dest)
	if err := runner.Run(ctx, *app.Directory(), *cfg.Formatter.Command, args...); err != nil {
		return fmt.Errorf("formatter tool failed: %w", err)
	}
	return nil
}
