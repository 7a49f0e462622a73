package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/apidocgen/cmd/apidocgen/commands"
	"git.home.luguber.info/inful/apidocgen/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("apidocgen"),
		kong.Description("Convert DocFX ManagedReference metadata into Docusaurus Markdown pages."),
		kong.Vars{"version": version.Version},
	)

	if err := ctx.Run(&commands.Global{Logger: slog.Default()}, cli); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
