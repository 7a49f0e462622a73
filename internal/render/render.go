// Package render produces the Markdown page for each classified bucket.
// Each page function is pure with respect to its bucket: it reads the
// TypeItems it is given and returns a complete document including front
// matter. Missing optional fields (summary, example, parameters) omit the
// corresponding sub-section instead of failing.
package render

import (
	"fmt"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/apidocgen/internal/docfx"
)

// attributeLinePattern matches C# attribute lines such as
// [JsonPropertyName("...")] that precede declarations in raw signatures.
var attributeLinePattern = regexp.MustCompile(`(?m)^\[.*?\]\n?`)

// frontMatter renders the fixed Docusaurus front matter block.
func frontMatter(title, label string) string {
	if label == "" {
		label = title
	}
	return fmt.Sprintf("---\ntitle: \"%s\"\nsidebar_label: \"%s\"\nmdx:\n  format: md\n---\n",
		escapeYAML(title), escapeYAML(label))
}

func escapeYAML(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// signatureBlock renders a C# signature as a fenced code block, with
// attribute lines removed. Empty signatures render nothing.
func signatureBlock(syntax string) string {
	if syntax == "" {
		return ""
	}
	clean := strings.TrimSpace(attributeLinePattern.ReplaceAllString(syntax, ""))
	return fmt.Sprintf("```csharp\n%s\n```\n", clean)
}

func paramsTable(params []docfx.Parameter) string {
	if len(params) == 0 {
		return ""
	}
	lines := []string{
		"| Parameter | Type | Description |",
		"| --- | --- | --- |",
	}
	for _, p := range params {
		desc := strings.ReplaceAll(p.Description, "\n", " ")
		lines = append(lines, fmt.Sprintf("| `%s` | `%s` | %s |", p.Name, p.Type, desc))
	}
	return strings.Join(lines, "\n") + "\n"
}

func propertiesTable(members []docfx.MemberItem) string {
	var props []docfx.MemberItem
	for _, m := range members {
		if m.Kind == "Property" {
			props = append(props, m)
		}
	}
	if len(props) == 0 {
		return ""
	}
	lines := []string{
		"| Property | Type | Description |",
		"| --- | --- | --- |",
	}
	for _, p := range props {
		summary := strings.ReplaceAll(p.Summary, "\n", " ")
		lines = append(lines, fmt.Sprintf("| `%s` | `%s` | %s |", p.Name, p.ReturnType, summary))
	}
	return strings.Join(lines, "\n") + "\n"
}

func enumValuesTable(t docfx.TypeItem) string {
	var fields []docfx.MemberItem
	for _, m := range t.Members {
		if m.Kind == "Field" {
			fields = append(fields, m)
		}
	}
	if len(fields) == 0 {
		return ""
	}
	lines := []string{
		"| Value | Description |",
		"| --- | --- |",
	}
	for _, f := range fields {
		summary := strings.ReplaceAll(f.Summary, "\n", " ")
		lines = append(lines, fmt.Sprintf("| `%s` | %s |", f.Name, summary))
	}
	return strings.Join(lines, "\n") + "\n"
}

func exampleBlock(code string) string {
	if code == "" {
		return ""
	}
	return fmt.Sprintf("\n**Example**\n\n```csharp\n%s\n```\n", strings.TrimSpace(code))
}

// methods returns the members of kind Method in declaration order.
func methods(members []docfx.MemberItem) []docfx.MemberItem {
	var out []docfx.MemberItem
	for _, m := range members {
		if m.Kind == "Method" {
			out = append(out, m)
		}
	}
	return out
}

func returnsLine(m docfx.MemberItem) string {
	if m.ReturnType == "" {
		return ""
	}
	retDesc := ""
	if m.ReturnDescription != "" {
		retDesc = " — " + m.ReturnDescription
	}
	return fmt.Sprintf("**Returns:** `%s`%s\n\n", m.ReturnType, retDesc)
}
