// Package sidebar emits the static Docusaurus sidebar manifest for the API
// reference. The manifest shape is fixed: it lists the seven pages in a
// fixed order with fixed ids and labels, independent of how many types ended
// up on each page.
package sidebar

import (
	"fmt"
	"strings"
)

const idPrefix = "apis-tools/csharp-sdk/api-reference/"

var entries = []struct {
	id    string
	label string
}{
	{"index", "Overview"},
	{"camunda-client", "CamundaClient"},
	{"configuration", "Configuration"},
	{"runtime", "Runtime"},
	{"models", "Models"},
	{"enums", "Enums"},
	{"keys", "Keys"},
}

// Manifest renders the sidebar.js module export.
func Manifest() string {
	var out strings.Builder
	out.WriteString("// Auto-generated sidebar for C# SDK API Reference\n")
	out.WriteString("module.exports = [\n")
	for _, e := range entries {
		out.WriteString("  {\n")
		out.WriteString("    type: \"doc\",\n")
		fmt.Fprintf(&out, "    id: %q,\n", idPrefix+e.id)
		fmt.Fprintf(&out, "    label: %q,\n", e.label)
		out.WriteString("  },\n")
	}
	out.WriteString("];\n")
	return out.String()
}
