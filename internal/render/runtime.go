package render

import (
	"fmt"
	"sort"
	"strings"

	"git.home.luguber.info/inful/apidocgen/internal/docfx"
)

var runtimeKindOrder = map[string]int{
	"Interface": 0,
	"Class":     1,
	"Struct":    2,
	"Enum":      3,
}

// Runtime renders the runtime infrastructure page. Types sort by kind
// (interfaces, classes, structs, enums), exceptions after their kind peers,
// then alphabetically.
func Runtime(types []docfx.TypeItem) string {
	var out strings.Builder
	out.WriteString(frontMatter("Runtime", "Runtime"))
	out.WriteString("\n# Runtime\n\n")
	out.WriteString("Runtime infrastructure types: job workers, backpressure management, ")
	out.WriteString("eventual consistency polling, error handling, and key serialization.\n\n")

	ordered := make([]docfx.TypeItem, len(types))
	copy(ordered, types)
	sort.SliceStable(ordered, func(i, j int) bool {
		ki, kj := runtimeSortKey(ordered[i]), runtimeSortKey(ordered[j])
		if ki.kind != kj.kind {
			return ki.kind < kj.kind
		}
		if ki.exception != kj.exception {
			return ki.exception < kj.exception
		}
		return ordered[i].Name < ordered[j].Name
	})

	for _, t := range ordered {
		fmt.Fprintf(&out, "\n## %s\n\n", t.Name)

		kindTag := strings.ToLower(t.Kind)
		if strings.Contains(t.Name, "Exception") {
			kindTag = "exception"
		}
		fmt.Fprintf(&out, "*%s*\n\n", kindTag)

		if t.Summary != "" {
			out.WriteString(t.Summary + "\n\n")
		}
		out.WriteString(signatureBlock(t.Syntax))

		if t.Kind == "Enum" {
			out.WriteString(enumValuesTable(t) + "\n")
			continue
		}

		if props := propertiesTable(t.Members); props != "" {
			out.WriteString("\n### Properties\n\n" + props + "\n")
		}

		typeMethods := methods(t.Members)
		if len(typeMethods) > 0 {
			out.WriteString("\n### Methods\n\n")
			for _, m := range typeMethods {
				fmt.Fprintf(&out, "#### %s\n\n", m.Name)
				out.WriteString(signatureBlock(m.Syntax))
				if m.Summary != "" {
					out.WriteString(m.Summary + "\n\n")
				}
				if len(m.Parameters) > 0 {
					out.WriteString(paramsTable(m.Parameters) + "\n")
				}
				out.WriteString(returnsLine(m))
			}
		}
	}
	return out.String()
}

type runtimeKey struct {
	kind      int
	exception int
}

func runtimeSortKey(t docfx.TypeItem) runtimeKey {
	kind, ok := runtimeKindOrder[t.Kind]
	if !ok {
		kind = 9
	}
	exception := 0
	if strings.Contains(t.Name, "Exception") {
		exception = 1
	}
	return runtimeKey{kind: kind, exception: exception}
}
