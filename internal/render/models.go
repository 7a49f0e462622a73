package render

import (
	"fmt"
	"sort"
	"strings"

	"git.home.luguber.info/inful/apidocgen/internal/docfx"
)

// Models renders the models page: an alphabetical quick-reference list (first
// sentence of each summary) followed by a full section per type.
func Models(types []docfx.TypeItem) string {
	var out strings.Builder
	out.WriteString(frontMatter("Models", "Models"))
	out.WriteString("\n# Models\n\n")
	fmt.Fprintf(&out, "Request and response model classes (%d types).\n\n", len(types))

	ordered := sortedByName(types)

	out.WriteString("## Quick Reference\n\n")
	for _, t := range ordered {
		anchor := strings.ToLower(t.Name)
		summary := ""
		if t.Summary != "" {
			summary = strings.SplitN(t.Summary, ".", 2)[0]
		}
		fmt.Fprintf(&out, "- [%s](#%s)", t.Name, anchor)
		if summary != "" {
			fmt.Fprintf(&out, " — %s", summary)
		}
		out.WriteString("\n")
	}
	out.WriteString("\n---\n\n")

	for _, t := range ordered {
		fmt.Fprintf(&out, "\n## %s\n\n", t.Name)
		if t.Summary != "" {
			out.WriteString(t.Summary + "\n\n")
		}
		out.WriteString(signatureBlock(t.Syntax))
		if props := propertiesTable(t.Members); props != "" {
			out.WriteString("\n" + props + "\n")
		}
	}
	return out.String()
}

func sortedByName(types []docfx.TypeItem) []docfx.TypeItem {
	ordered := make([]docfx.TypeItem, len(types))
	copy(ordered, types)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })
	return ordered
}
