package docfx

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/apidocgen/internal/logfields"
)

const kindNamespace = "Namespace"

// rawFile mirrors the record list of a ManagedReference metadata file.
// Every field is optional; missing values decode to zero values.
type rawFile struct {
	Items []rawItem `yaml:"items"`
}

type rawItem struct {
	UID         string    `yaml:"uid"`
	Name        string    `yaml:"name"`
	FullName    string    `yaml:"fullName"`
	Type        string    `yaml:"type"`
	Summary     string    `yaml:"summary"`
	Remarks     string    `yaml:"remarks"`
	Namespace   string    `yaml:"namespace"`
	Parent      string    `yaml:"parent"`
	Inheritance []string  `yaml:"inheritance"`
	Implements  []string  `yaml:"implements"`
	Children    []string  `yaml:"children"`
	Syntax      rawSyntax `yaml:"syntax"`
}

type rawSyntax struct {
	Content    string     `yaml:"content"`
	Parameters []rawParam `yaml:"parameters"`
	Return     *rawReturn `yaml:"return"`
}

type rawParam struct {
	ID          string `yaml:"id"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

type rawReturn struct {
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

// LoadTypes reads all per-type metadata files from apiDir in sorted filename
// order and returns one TypeItem per renderable file. Namespace descriptor
// files and files without records are skipped. Examples are attached by uid.
func LoadTypes(apiDir string, examples map[string]string) ([]TypeItem, error) {
	paths, err := filepath.Glob(filepath.Join(apiDir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("glob metadata files: %w", err)
	}

	types := make([]TypeItem, 0, len(paths))
	for _, path := range paths {
		if filepath.Base(path) == "toc.yml" {
			continue
		}

		raw, err := loadMetadataFile(path)
		if err != nil {
			return nil, err
		}
		if len(raw.Items) == 0 {
			continue
		}

		first := raw.Items[0]
		if first.Type == kindNamespace {
			slog.Debug("Skipping namespace descriptor", logfields.Path(path))
			continue
		}

		ti := newTypeItem(first, examples)
		for _, item := range raw.Items[1:] {
			ti.Members = append(ti.Members, newMemberItem(item, examples))
		}
		types = append(types, ti)
	}
	return types, nil
}

// loadMetadataFile parses one metadata file, discarding the non-YAML
// "### YamlMime:ManagedReference" marker line if present.
func loadMetadataFile(path string) (rawFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return rawFile{}, fmt.Errorf("read metadata file %s: %w", path, err)
	}

	text := string(data)
	if strings.HasPrefix(text, "###") {
		if idx := strings.Index(text, "\n"); idx != -1 {
			text = text[idx+1:]
		} else {
			text = ""
		}
	}

	var raw rawFile
	if err := yaml.Unmarshal([]byte(text), &raw); err != nil {
		return rawFile{}, fmt.Errorf("unmarshal metadata file %s: %w", path, err)
	}
	return raw, nil
}

func newTypeItem(item rawItem, examples map[string]string) TypeItem {
	return TypeItem{
		UID:         item.UID,
		Name:        item.Name,
		FullName:    item.FullName,
		Kind:        item.Type,
		Summary:     CleanText(item.Summary),
		Remarks:     CleanText(item.Remarks),
		Syntax:      item.Syntax.Content,
		Namespace:   item.Namespace,
		Parent:      item.Parent,
		Inheritance: shortNames(item.Inheritance),
		Implements:  shortNames(item.Implements),
		ChildUIDs:   item.Children,
		Example:     examples[item.UID],
	}
}

func newMemberItem(item rawItem, examples map[string]string) MemberItem {
	mi := MemberItem{
		UID:     item.UID,
		Name:    item.Name,
		Kind:    item.Type,
		Summary: CleanText(item.Summary),
		Syntax:  item.Syntax.Content,
		Example: examples[item.UID],
	}
	for _, p := range item.Syntax.Parameters {
		mi.Parameters = append(mi.Parameters, Parameter{
			Name:        p.ID,
			Type:        ShortType(p.Type),
			Description: CleanText(p.Description),
		})
	}
	if ret := item.Syntax.Return; ret != nil {
		mi.ReturnType = ShortType(ret.Type)
		mi.ReturnDescription = CleanText(ret.Description)
	}
	return mi
}

// shortNames shortens inheritance/implements entries, dropping standard
// library types.
func shortNames(full []string) []string {
	var out []string
	for _, name := range full {
		if strings.HasPrefix(name, "System.") {
			continue
		}
		out = append(out, ShortType(name))
	}
	return out
}
