package main

import (
	"github.com/alecthomas/kong"

	"go.scnd.dev/open/glyph/command/glyph/app"
	"go.scnd.dev/open/glyph/command/glyph/subcommand/browse"
	"go.scnd.dev/open/glyph/command/glyph/subcommand/fetch"
	"go.scnd.dev/open/glyph/command/glyph/subcommand/generate"
	"go.scnd.dev/open/glyph/command/glyph/subcommand/preview"
)

type Command struct {
	Verbose   bool   `help:"Enable verbose output." short:"v"`
	Directory string `help:"Project directory containing glyph.yml." short:"C" default:"."`

	Generate *generate.Command `cmd:"generate" help:"Generate typed components from the icon source directory."`
	Browse   *browse.Command   `cmd:"browse" help:"Rebuild the static browse page."`
	Fetch    *fetch.Command    `cmd:"fetch" help:"Fetch the icon set from the configured bucket."`
	Preview  *preview.Command  `cmd:"preview" help:"Serve the icon set over HTTP for inspection."`
}

func main() {
	command := new(Command)
	ctx := kong.Parse(
		command,
		kong.Name("glyph"),
		kong.Description("Glyph Command Line Interface"),
	)
	err := ctx.Run(app.New(command.Verbose, command.Directory))
	ctx.FatalIfErrorf(err)
}
