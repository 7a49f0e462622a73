package render

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/apidocgen/internal/docfx"
)

// Enums renders the enumerations page: alphabetical, one value table each.
func Enums(types []docfx.TypeItem) string {
	var out strings.Builder
	out.WriteString(frontMatter("Enums", "Enums"))
	out.WriteString("\n# Enums\n\n")
	fmt.Fprintf(&out, "Enumeration types (%d enums).\n\n", len(types))

	for _, t := range sortedByName(types) {
		fmt.Fprintf(&out, "\n## %s\n\n", t.Name)
		if t.Summary != "" {
			out.WriteString(t.Summary + "\n\n")
		}
		out.WriteString(enumValuesTable(t) + "\n")
	}
	return out.String()
}
