package pipeline

import (
	"regexp"
	"strings"
)

// Nesting depth of the generated pages below the documentation root, used to
// compute relative link prefixes.
const (
	// ReferencePageDepth: apis-tools/csharp-sdk/api-reference
	ReferencePageDepth = 3
	// LandingPageDepth: apis-tools/csharp-sdk
	LandingPageDepth = 2
)

// DefaultPathOverrides maps renamed documentation path segments to their
// current names.
var DefaultPathOverrides = map[string]string{
	"camunda-api-rest": "orchestration-cluster-api-rest",
}

// docsLinkPattern matches Markdown links to the hosted documentation site,
// capturing the link text and the path below /docs/ (an optional "next/"
// version segment is dropped).
var docsLinkPattern = regexp.MustCompile(`\[([^\]]*)\]\(https?://docs\.camunda\.io/docs/(?:next/)?(.*?)\)`)

// RewriteLinks rewrites absolute documentation links into relative .md links
// at the given nesting depth, applying the path overrides. Links that do not
// match the documentation host pattern pass through unchanged, which makes
// the rewrite idempotent.
func RewriteLinks(content string, depth int, overrides map[string]string) string {
	prefix := strings.Repeat("../", depth)
	return docsLinkPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := docsLinkPattern.FindStringSubmatch(match)
		text := m[1]
		urlPath := strings.TrimRight(m[2], "/")
		for from, to := range overrides {
			urlPath = strings.ReplaceAll(urlPath, from, to)
		}
		return "[" + text + "](" + prefix + urlPath + ".md)"
	})
}

// RewriteDocsLinks returns a transform applying RewriteLinks to each page.
func RewriteDocsLinks(depth int, overrides map[string]string) Transform {
	return func(page *Page) error {
		page.Content = RewriteLinks(page.Content, depth, overrides)
		return nil
	}
}
