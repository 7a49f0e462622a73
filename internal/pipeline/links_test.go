package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteLinks(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		depth     int
		overrides map[string]string
		want      string
	}{
		{
			name:    "reference page depth",
			content: "See [the guide](https://docs.camunda.io/docs/some/path/) for details.",
			depth:   ReferencePageDepth,
			want:    "See [the guide](../../../some/path.md) for details.",
		},
		{
			name:    "landing page depth",
			content: "[guide](https://docs.camunda.io/docs/some/path)",
			depth:   LandingPageDepth,
			want:    "[guide](../../some/path.md)",
		},
		{
			name:    "next version segment dropped",
			content: "[guide](https://docs.camunda.io/docs/next/some/path/)",
			depth:   LandingPageDepth,
			want:    "[guide](../../some/path.md)",
		},
		{
			name:      "path override applied",
			content:   "[API](https://docs.camunda.io/docs/apis-tools/camunda-api-rest/overview/)",
			depth:     ReferencePageDepth,
			overrides: DefaultPathOverrides,
			want:      "[API](../../../apis-tools/orchestration-cluster-api-rest/overview.md)",
		},
		{
			name:    "http scheme accepted",
			content: "[guide](http://docs.camunda.io/docs/some/path)",
			depth:   LandingPageDepth,
			want:    "[guide](../../some/path.md)",
		},
		{
			name:    "relative links untouched",
			content: "[models](models.md) and [up](../../some/path.md)",
			depth:   ReferencePageDepth,
			want:    "[models](models.md) and [up](../../some/path.md)",
		},
		{
			name:    "other hosts untouched",
			content: "[repo](https://github.com/camunda/camunda)",
			depth:   ReferencePageDepth,
			want:    "[repo](https://github.com/camunda/camunda)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RewriteLinks(tt.content, tt.depth, tt.overrides))
		})
	}
}

func TestRewriteLinksIdempotent(t *testing.T) {
	content := "See [the guide](https://docs.camunda.io/docs/some/path/)."
	once := RewriteLinks(content, ReferencePageDepth, DefaultPathOverrides)
	twice := RewriteLinks(once, ReferencePageDepth, DefaultPathOverrides)
	assert.Equal(t, once, twice)
}

func TestApplyRunsTransformsInOrder(t *testing.T) {
	pages := []*Page{
		{Name: "a.md", Content: "one"},
		{Name: "b.md", Content: "one"},
	}

	appendStep := func(s string) Transform {
		return func(p *Page) error {
			p.Content += s
			return nil
		}
	}

	require.NoError(t, Apply(pages, appendStep(" two"), appendStep(" three")))
	assert.Equal(t, "one two three", pages[0].Content)
	assert.Equal(t, "one two three", pages[1].Content)
}
