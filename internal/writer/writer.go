// Package writer persists generated pages, the sidebar manifest and the
// landing page to the output directory tree.
package writer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/apidocgen/internal/logfields"
)

const (
	sidebarFileName = "sidebar.js"
	landingFileName = "csharp-sdk.md"
)

// Writer writes build artifacts under the configured roots.
type Writer struct {
	outputDir  string // API reference pages + sidebar
	landingDir string // landing page
}

// New creates a writer for the given output roots.
func New(outputDir, landingDir string) *Writer {
	return &Writer{
		outputDir:  filepath.Clean(outputDir),
		landingDir: filepath.Clean(landingDir),
	}
}

// WritePage writes one generated reference page.
func (w *Writer) WritePage(name, content string) error {
	return w.write(filepath.Join(w.outputDir, name), content)
}

// WriteSidebar writes the sidebar manifest next to the pages.
func (w *Writer) WriteSidebar(content string) error {
	return w.write(filepath.Join(w.outputDir, sidebarFileName), content)
}

// WriteLanding writes the landing page into the landing directory.
func (w *Writer) WriteLanding(content string) error {
	return w.write(filepath.Join(w.landingDir, landingFileName), content)
}

func (w *Writer) write(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	slog.Info("Wrote artifact", logfields.Path(path), logfields.Bytes(len(content)))
	return nil
}
