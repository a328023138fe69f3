package preview

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"go.scnd.dev/open/glyph/command/glyph/app"
	"go.scnd.dev/open/glyph/command/glyph/index"
	browsepage "go.scnd.dev/open/glyph/command/glyph/procedure/browse"
	"go.scnd.dev/open/glyph/compat/common"
	"go.scnd.dev/open/glyph/package/telemetry"
)

type Command struct{}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

// Run serves the browse page and the generated components over HTTP until
// interrupted. The page is rebuilt per request so it always reflects the
// current source directory.
func Run(app index.App, command *Command) error {
	cfg := app.Config()

	tel, err := telemetry.New(cfg)
	if err != nil {
		return fmt.Errorf("unable to initialize telemetry: %w", err)
	}

	directory := *app.Directory()
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(cfg, tel),
		fx.Provide(func(config *index.Config) common.FiberConfig { return config }),
		fx.Provide(common.Fiber),
		fx.Invoke(func(server *fiber.App, config *index.Config, tel *telemetry.Telemetry) {
			register(server, config, directory, tel)
		}),
	)

	fxApp.Run()
	return nil
}

func register(server *fiber.App, config *index.Config, directory string, tel *telemetry.Telemetry) {
	source := filepath.Join(directory, *config.SourceDir)
	dest := filepath.Join(directory, *config.OutputDir)

	server.Use(tel.Middleware())

	// * browse page
	server.Get("/", func(c fiber.Ctx) error {
		entries, err := browsepage.Collect(source)
		if err != nil {
			return err
		}
		page, err := browsepage.BuildPage(entries)
		if err != nil {
			return err
		}
		c.Type("html")
		return c.SendString(page)
	})

	// * generated component sources
	server.Get("/components/:name", func(c fiber.Ctx) error {
		name := c.Params("name")
		if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
			return fiber.ErrBadRequest
		}
		return c.SendFile(filepath.Join(dest, name))
	})
}
