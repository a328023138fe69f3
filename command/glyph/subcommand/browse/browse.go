package browse

import (
	"fmt"
	"log"
	"path/filepath"

	"go.scnd.dev/open/glyph/command/glyph/app"
	"go.scnd.dev/open/glyph/command/glyph/index"
	browsepage "go.scnd.dev/open/glyph/command/glyph/procedure/browse"
	"go.scnd.dev/open/glyph/command/glyph/procedure/pipeline"
)

type Command struct{}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

// Run rebuilds the static browse page without regenerating components.
func Run(app index.App, command *Command) error {
	cfg := app.Config()
	source := filepath.Join(*app.Directory(), *cfg.SourceDir)

	state, err := pipeline.Probe(source)
	if err != nil {
		return err
	}
	if state != pipeline.StateDirectory {
		return fmt.Errorf("source path %s is %s, expected a directory", source, state)
	}

	page := filepath.Join(*app.Directory(), *cfg.BrowsePage)
	if err := browsepage.WritePage(source, page); err != nil {
		return err
	}

	log.Printf("wrote browse page %s", page)
	return nil
}
