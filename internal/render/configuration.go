package render

import (
	"fmt"
	"sort"
	"strings"

	"git.home.luguber.info/inful/apidocgen/internal/docfx"
)

// configurationPriority is the explicit ordering of the most important
// configuration types; everything else follows alphabetically.
var configurationPriority = []string{
	"CamundaOptions", "CamundaConfig", "ConfigurationHydrator",
	"AuthConfig", "AuthStrategy", "BasicAuthConfig", "OAuthConfig",
	"OAuthRetryConfig", "HttpRetryConfig", "BackpressureConfig",
	"EventualConfig", "ValidationConfig", "ValidationMode",
	"JobWorkerConfig",
}

// Configuration renders the configuration page. Enums render a value table,
// everything else a property table.
func Configuration(types []docfx.TypeItem) string {
	var out strings.Builder
	out.WriteString(frontMatter("Configuration", "Configuration"))
	out.WriteString("\n# Configuration\n\n")
	out.WriteString("Configuration and authentication types for the Camunda C# SDK.\n\n")

	ordered := make([]docfx.TypeItem, len(types))
	copy(ordered, types)
	sort.SliceStable(ordered, func(i, j int) bool {
		pi, pj := priorityIndex(ordered[i].Name), priorityIndex(ordered[j].Name)
		if pi != pj {
			return pi < pj
		}
		return ordered[i].Name < ordered[j].Name
	})

	for _, t := range ordered {
		fmt.Fprintf(&out, "\n## %s\n\n", t.Name)
		if t.Summary != "" {
			out.WriteString(t.Summary + "\n\n")
		}
		out.WriteString(signatureBlock(t.Syntax))

		if t.Kind == "Enum" {
			out.WriteString(enumValuesTable(t) + "\n")
		} else if props := propertiesTable(t.Members); props != "" {
			out.WriteString("\n### Properties\n\n" + props + "\n")
		}
	}
	return out.String()
}

func priorityIndex(name string) int {
	for i, n := range configurationPriority {
		if n == name {
			return i
		}
	}
	return len(configurationPriority) + 1
}
