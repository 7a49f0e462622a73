package render

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/apidocgen/internal/docfx"
)

// Keys renders the key types page: an overview table, the static shared
// contract every key type implements, and per-type detail sections. The
// common methods table is fixed prose, not derived from metadata.
func Keys(types []docfx.TypeItem) string {
	var out strings.Builder
	out.WriteString(frontMatter("Keys", "Keys"))
	out.WriteString("\n# Key Types\n\n")
	out.WriteString("Strongly-typed domain key types provide compile-time safety for entity identifiers. ")
	out.WriteString("Each key wraps a string value and ensures type-safe API calls.\n\n")

	ordered := sortedByName(types)

	out.WriteString("## Overview\n\n")
	out.WriteString("| Key Type | Description |\n")
	out.WriteString("| --- | --- |\n")
	for _, t := range ordered {
		fmt.Fprintf(&out, "| `%s` | %s |\n", t.Name, t.Summary)
	}

	out.WriteString("\n## Common Methods\n\n")
	out.WriteString("All key types share these methods:\n\n")
	out.WriteString("| Method | Description |\n")
	out.WriteString("| --- | --- |\n")
	out.WriteString("| `AssumeExists(string)` | Creates a key from a known-valid string value. |\n")
	out.WriteString("| `IsValid(string)` | Validates whether a string is a valid key value. |\n")
	out.WriteString("| `Value` | Gets the underlying string value. |\n")
	out.WriteString("| `ToString()` | Returns the string representation. |\n")

	out.WriteString("\n## Details\n\n")
	for _, t := range ordered {
		fmt.Fprintf(&out, "\n### %s\n\n", t.Name)
		if t.Summary != "" {
			out.WriteString(t.Summary + "\n\n")
		}
		out.WriteString(signatureBlock(t.Syntax))
	}
	return out.String()
}
