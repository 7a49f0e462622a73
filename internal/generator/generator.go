// Package generator orchestrates the metadata-to-Markdown build: extract
// examples, load types, classify, render, post-process, write. Data flows
// strictly forward through the stages.
package generator

import (
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/apidocgen/internal/classify"
	"git.home.luguber.info/inful/apidocgen/internal/config"
	"git.home.luguber.info/inful/apidocgen/internal/docfx"
	"git.home.luguber.info/inful/apidocgen/internal/examples"
	"git.home.luguber.info/inful/apidocgen/internal/landing"
	"git.home.luguber.info/inful/apidocgen/internal/logfields"
	"git.home.luguber.info/inful/apidocgen/internal/pipeline"
	"git.home.luguber.info/inful/apidocgen/internal/render"
	"git.home.luguber.info/inful/apidocgen/internal/sidebar"
	"git.home.luguber.info/inful/apidocgen/internal/writer"
)

// Generator runs the full documentation generation pipeline.
type Generator struct {
	cfg    *config.Config
	tables classify.Tables
}

// New creates a generator for the given configuration.
func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg, tables: classify.DefaultTables()}
}

// Run executes all pipeline stages. The metadata directory is the only hard
// precondition; every other missing input degrades to empty data.
func (g *Generator) Run() error {
	paths := g.cfg.Paths

	if _, err := os.Stat(paths.MetadataDir); err != nil {
		return fmt.Errorf("metadata directory not found: %s (run `docfx metadata` first)", paths.MetadataDir)
	}

	slog.Info("Loading code examples", logfields.Stage("examples"),
		logfields.Path(paths.OverwriteDir))
	uidExamples, err := examples.LoadOverwrites(paths.OverwriteDir, paths.ExamplesDir)
	if err != nil {
		return fmt.Errorf("load examples: %w", err)
	}
	slog.Info("Code examples loaded", logfields.Count(len(uidExamples)))

	slog.Info("Loading type metadata", logfields.Stage("load"),
		logfields.Path(paths.MetadataDir))
	types, err := docfx.LoadTypes(paths.MetadataDir, uidExamples)
	if err != nil {
		return fmt.Errorf("load types: %w", err)
	}
	slog.Info("Types loaded", logfields.Count(len(types)))

	buckets := classify.Classify(types, g.tables)
	logBucketSizes(buckets)

	pages := []*pipeline.Page{
		{Name: "index.md", Content: render.Index(buckets)},
		{Name: "camunda-client.md", Content: render.Client(buckets.Client)},
		{Name: "configuration.md", Content: render.Configuration(buckets.Configuration)},
		{Name: "runtime.md", Content: render.Runtime(buckets.Runtime)},
		{Name: "models.md", Content: render.Models(buckets.Models)},
		{Name: "enums.md", Content: render.Enums(buckets.Enums)},
		{Name: "keys.md", Content: render.Keys(buckets.Keys)},
	}

	if err := pipeline.Apply(pages,
		pipeline.RewriteDocsLinks(pipeline.ReferencePageDepth, pipeline.DefaultPathOverrides),
		pipeline.InjectBanner(pipeline.TechPreviewBanner),
	); err != nil {
		return fmt.Errorf("post-process pages: %w", err)
	}

	w := writer.New(paths.OutputDir, paths.LandingDir)
	for _, page := range pages {
		if err := w.WritePage(page.Name, page.Content); err != nil {
			return err
		}
	}
	if err := w.WriteSidebar(sidebar.Manifest()); err != nil {
		return err
	}

	readme, err := os.ReadFile(paths.Readme)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("README not found, skipping landing page", logfields.Path(paths.Readme))
			return nil
		}
		return fmt.Errorf("read README: %w", err)
	}
	if err := w.WriteLanding(landing.Derive(string(readme))); err != nil {
		return err
	}

	return nil
}

func logBucketSizes(b classify.Buckets) {
	for _, bucket := range []struct {
		name  string
		count int
	}{
		{"camunda-client", len(b.Client)},
		{"configuration", len(b.Configuration)},
		{"runtime", len(b.Runtime)},
		{"models", len(b.Models)},
		{"enums", len(b.Enums)},
		{"keys", len(b.Keys)},
	} {
		slog.Info("Types classified", logfields.Bucket(bucket.name), logfields.Count(bucket.count))
	}
}
