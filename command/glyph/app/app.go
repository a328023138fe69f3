package app

import (
	"github.com/bsthun/gut"

	"go.scnd.dev/open/glyph/command/glyph/index"
	"go.scnd.dev/open/glyph/compat/common"
)

type App struct {
	verbose   bool
	directory string
	config    *index.Config
}

func New(verbose bool, directory string) *App {
	config := common.Config[index.Config](directory)

	// * fill defaults for optional settings
	if config.ComponentExtension == nil {
		config.ComponentExtension = gut.Ptr("tsx")
	}
	if config.BrowsePage == nil {
		config.BrowsePage = gut.Ptr("icons.html")
	}
	if config.Preview == nil {
		config.Preview = new(index.PreviewConfig)
	}
	if config.Preview.Listen == nil {
		config.Preview.Listen = gut.Ptr(":4173")
	}

	return &App{
		verbose:   verbose,
		directory: directory,
		config:    config,
	}
}

func (r *App) Verbose() *bool {
	return &r.verbose
}

func (r *App) Directory() *string {
	return &r.directory
}

func (r *App) Config() *index.Config {
	return r.config
}
