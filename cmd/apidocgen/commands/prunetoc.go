package commands

import (
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/apidocgen/internal/config"
	"git.home.luguber.info/inful/apidocgen/internal/toc"
)

// PruneTocCmd implements the 'prune-toc' command.
type PruneTocCmd struct {
	Path string `arg:"" optional:"" help:"Path to toc.json (overrides the configured default)"`
}

func (p *PruneTocCmd) Run(_ *Global, cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	tocPath := p.Path
	if tocPath == "" {
		tocPath = cfg.Paths.TOC
	}
	if _, err := os.Stat(tocPath); err != nil {
		return fmt.Errorf("toc file not found: %s", tocPath)
	}

	slog.Info("Pruning table of contents", "path", tocPath)
	return toc.PruneFile(tocPath, toc.DefaultKeepMembers)
}
