// Package landing derives the SDK landing page from the repository README.
package landing

import (
	"regexp"
	"strings"

	"git.home.luguber.info/inful/apidocgen/internal/pipeline"
)

const landingTitle = "C# SDK (Technical Preview)"

const landingFrontMatter = "---\n" +
	"id: csharp-sdk\n" +
	"title: \"C# SDK (Technical Preview)\"\n" +
	"sidebar_label: \"C# SDK (Technical Preview)\"\n" +
	"mdx:\n" +
	"  format: md\n" +
	"---\n\n"

const apiReferenceSection = "\n## API Reference\n\n" +
	"See the [API Reference](api-reference/index.md) for full class " +
	"and method documentation.\n"

var (
	badgeLinePattern       = regexp.MustCompile(`(?m)^\[!\[.*?\]\(.*?\)\]\(.*?\)[ \t]*$`)
	cutSectionPattern      = regexp.MustCompile(`(?s)<!-- docs:cut:start -->.*?<!-- docs:cut:end -->\n?`)
	externalDocLinePattern = regexp.MustCompile(`(?m)^Full API Documentation available \[.*?\]\(.*?\)\.?[ \t]*$`)
	contributingPattern    = regexp.MustCompile(`(?s)\n## Contributing\b.*`)
	blankRunPattern        = regexp.MustCompile(`\n{4,}`)
	firstHeadingPattern    = regexp.MustCompile(`(?m)^#\s+.*$`)
)

// Derive transforms README content into the landing page: badge lines, cut
// regions, the external documentation pointer and the Contributing tail are
// stripped; the first heading is retitled; documentation links are rewritten
// at landing-page depth; the preview banner is injected; a static API
// Reference pointer is appended.
func Derive(readme string) string {
	content := badgeLinePattern.ReplaceAllString(readme, "")
	content = cutSectionPattern.ReplaceAllString(content, "")
	content = externalDocLinePattern.ReplaceAllString(content, "")
	content = contributingPattern.ReplaceAllString(content, "")
	content = blankRunPattern.ReplaceAllString(content, "\n\n\n")
	content = retitle(content, "# "+landingTitle)
	content = pipeline.RewriteLinks(content, pipeline.LandingPageDepth, pipeline.DefaultPathOverrides)
	content = pipeline.Inject(content, pipeline.TechPreviewBanner)
	content = strings.TrimSpace(content) + "\n"
	content += apiReferenceSection
	return landingFrontMatter + content
}

// retitle replaces only the first top-level heading line.
func retitle(content, title string) string {
	loc := firstHeadingPattern.FindStringIndex(content)
	if loc == nil {
		return content
	}
	return content[:loc[0]] + title + content[loc[1]:]
}
