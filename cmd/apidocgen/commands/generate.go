package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/apidocgen/internal/config"
	"git.home.luguber.info/inful/apidocgen/internal/generator"
)

// GenerateCmd implements the 'generate' command: the full DocFX metadata to
// Docusaurus Markdown pipeline.
type GenerateCmd struct{}

func (g *GenerateCmd) Run(_ *Global, cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	slog.Info("Starting API reference generation",
		"metadata", cfg.Paths.MetadataDir,
		"output", cfg.Paths.OutputDir)

	return generator.New(cfg).Run()
}
