package docfx

import (
	"regexp"
	"strings"
)

var (
	// Unresolved cross-reference placeholders emitted by the metadata tool.
	xrefPattern = regexp.MustCompile(`<xref\s+href="[^"]*"\s*data-throw-if-not-resolved="false"\s*></xref>`)
	// Any remaining inline markup tags.
	inlineTagPattern = regexp.MustCompile(`</?[a-z][^>]*>`)

	genericPattern = regexp.MustCompile(`\{([^}]+)\}`)
)

// CleanText removes XML doc artifacts from summary/remarks text and trims
// whitespace. Empty input yields an empty string.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = xrefPattern.ReplaceAllString(s, "")
	s = inlineTagPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ShortType shortens a fully-qualified type name to its last dot-delimited
// segment. Generic parameter syntax {T} is rewritten to <T> with the enclosed
// name shortened recursively, e.g.
// "System.Threading.Tasks.Task{Camunda.Client.Topology}" -> "Task<Topology>".
func ShortType(full string) string {
	if full == "" {
		return full
	}
	full = genericPattern.ReplaceAllStringFunc(full, func(m string) string {
		inner := genericPattern.FindStringSubmatch(m)[1]
		return "<" + ShortType(inner) + ">"
	})
	if idx := strings.LastIndex(full, "."); idx != -1 {
		return full[idx+1:]
	}
	return full
}
