package render

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/apidocgen/internal/classify"
	"git.home.luguber.info/inful/apidocgen/internal/docfx"
)

// Index renders the API Reference landing page: a static section list with
// per-bucket type counts.
func Index(b classify.Buckets) string {
	var out strings.Builder
	out.WriteString(frontMatter("C# SDK API Reference", "Overview"))
	out.WriteString("\n# C# SDK API Reference\n\n")
	out.WriteString("Auto-generated from the Camunda C# SDK source code.\n\n")
	out.WriteString("## Sections\n\n")

	sections := []struct {
		title string
		link  string
		desc  string
		types []docfx.TypeItem
	}{
		{"CamundaClient", "camunda-client.md", "Main client class with all API methods", b.Client},
		{"Configuration", "configuration.md", "SDK configuration, authentication, and options", b.Configuration},
		{"Runtime", "runtime.md", "Runtime infrastructure: job workers, backpressure, polling, errors", b.Runtime},
		{"Models", "models.md", "Request and response model classes", b.Models},
		{"Enums", "enums.md", "Enumeration types", b.Enums},
		{"Keys", "keys.md", "Strongly-typed domain key types", b.Keys},
	}
	for _, s := range sections {
		fmt.Fprintf(&out, "- [%s](%s) — %s (%d types)\n", s.title, s.link, s.desc, len(s.types))
	}
	return out.String()
}
