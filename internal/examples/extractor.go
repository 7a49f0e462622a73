// Package examples extracts region-tagged code excerpts from example source
// files and resolves DocFX overwrite files into a uid -> example mapping.
package examples

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	regionOpenPattern  = regexp.MustCompile(`^//\s*<(\w+)>\s*$`)
	regionClosePattern = regexp.MustCompile(`^//\s*</(\w+)>\s*$`)

	sectionDelimiter = regexp.MustCompile(`(?m)^---\s*$`)
	uidPattern       = regexp.MustCompile(`(?m)^uid:\s*(.+)$`)
	codeRefPattern   = regexp.MustCompile(`\[!code-csharp\[\]\(\.\./examples/(\S+)#(\w+)\)\]`)
)

// ParseRegions extracts region-tagged code blocks from example source text.
//
// Region tags use the pattern "// <Name>" ... "// </Name>". The content
// strictly between a matching pair becomes the region, with common leading
// indentation stripped. An opening tag that appears before the previous
// region closes silently discards the accumulated lines and starts over.
func ParseRegions(src string) map[string]string {
	regions := make(map[string]string)
	var currentTag string
	var lines []string

	for _, line := range strings.Split(src, "\n") {
		stripped := strings.TrimSpace(line)
		if m := regionOpenPattern.FindStringSubmatch(stripped); m != nil {
			currentTag = m[1]
			lines = nil
			continue
		}
		if m := regionClosePattern.FindStringSubmatch(stripped); m != nil && currentTag == m[1] {
			regions[currentTag] = dedent(lines)
			currentTag = ""
			lines = nil
			continue
		}
		if currentTag != "" {
			lines = append(lines, line)
		}
	}
	return regions
}

// LoadOverwrites parses DocFX overwrite files and resolves their code
// references against the regions of all example files.
//
// Overwrite files are split on "---" horizontal rules. A section declaring
// "uid: ..." becomes current; a later section containing a code reference
// binds the referenced region to that uid (one example per uid). Unresolvable
// references are skipped, never an error. Missing directories yield an empty
// mapping.
func LoadOverwrites(overwriteDir, examplesDir string) (map[string]string, error) {
	allRegions := make(map[string]string)
	exampleFiles, err := filepath.Glob(filepath.Join(examplesDir, "*.cs"))
	if err != nil {
		return nil, fmt.Errorf("glob example files: %w", err)
	}
	for _, path := range exampleFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read example file %s: %w", path, err)
		}
		for tag, code := range ParseRegions(string(data)) {
			allRegions[tag] = code
		}
	}

	uidToExample := make(map[string]string)
	overwriteFiles, err := filepath.Glob(filepath.Join(overwriteDir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("glob overwrite files: %w", err)
	}
	for _, path := range overwriteFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read overwrite file %s: %w", path, err)
		}

		var currentUID string
		for _, section := range sectionDelimiter.Split(string(data), -1) {
			section = strings.TrimSpace(section)
			if section == "" {
				continue
			}
			if m := uidPattern.FindStringSubmatch(section); m != nil {
				currentUID = strings.TrimSpace(m[1])
				continue
			}
			if m := codeRefPattern.FindStringSubmatch(section); m != nil && currentUID != "" {
				if code, ok := allRegions[m[2]]; ok {
					uidToExample[currentUID] = code
				}
				currentUID = ""
			}
		}
	}
	return uidToExample, nil
}

// dedent strips the longest common leading whitespace of all non-blank lines.
func dedent(lines []string) string {
	margin := ""
	first := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			margin = indent
			first = false
			continue
		}
		margin = commonPrefix(margin, indent)
	}

	if margin == "" {
		return strings.Join(lines, "\n")
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			out[i] = strings.TrimPrefix(line, margin)
		} else {
			out[i] = line[len(margin):]
		}
	}
	return strings.Join(out, "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
