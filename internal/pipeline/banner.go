package pipeline

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TechPreviewBanner is the caution admonition injected after the first H1 of
// every generated page.
const TechPreviewBanner = "\n:::caution Technical Preview\n" +
	"The C# SDK is a **technical preview** available from Camunda 8.9. " +
	"It will become fully supported in Camunda 8.10. " +
	"Its API surface may change in future releases without following semver.\n" +
	":::\n"

// Inject inserts the banner immediately after the first top-level heading.
// The heading is located on the parsed Markdown AST rather than by line
// matching, so headings inside fenced code blocks are never mistaken for the
// page title. Content without an H1 is returned unchanged.
func Inject(content, banner string) string {
	src := []byte(content)
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	pos := -1
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 1 || heading.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}
		pos = heading.Lines().At(heading.Lines().Len() - 1).Stop
		return ast.WalkStop, nil
	})

	if pos < 0 {
		return content
	}
	return content[:pos] + "\n" + banner + content[pos:]
}

// InjectBanner returns a transform inserting the banner into each page.
func InjectBanner(banner string) Transform {
	return func(page *Page) error {
		page.Content = Inject(page.Content, banner)
		return nil
	}
}
