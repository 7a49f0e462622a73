// Package pipeline applies post-processing transforms uniformly to every
// rendered page before it is written out.
package pipeline

// Page is one generated Markdown document flowing through the transform
// chain. Transforms modify Content in place.
type Page struct {
	// Name is the output file name, e.g. "models.md".
	Name string
	// Content is the full Markdown document including front matter.
	Content string
}

// Transform modifies a page in the pipeline.
type Transform func(page *Page) error

// Apply runs every transform, in order, over every page.
func Apply(pages []*Page, transforms ...Transform) error {
	for _, page := range pages {
		for _, transform := range transforms {
			if err := transform(page); err != nil {
				return err
			}
		}
	}
	return nil
}
