package sidebar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifest(t *testing.T) {
	got := Manifest()

	assert.True(t, strings.HasPrefix(got, "// Auto-generated sidebar"))
	assert.Contains(t, got, "module.exports = [")
	assert.True(t, strings.HasSuffix(got, "];\n"))

	assert.Equal(t, 7, strings.Count(got, `type: "doc"`))

	wantOrder := []string{
		`id: "apis-tools/csharp-sdk/api-reference/index"`,
		`label: "Overview"`,
		`id: "apis-tools/csharp-sdk/api-reference/camunda-client"`,
		`id: "apis-tools/csharp-sdk/api-reference/configuration"`,
		`id: "apis-tools/csharp-sdk/api-reference/runtime"`,
		`id: "apis-tools/csharp-sdk/api-reference/models"`,
		`id: "apis-tools/csharp-sdk/api-reference/enums"`,
		`id: "apis-tools/csharp-sdk/api-reference/keys"`,
	}
	last := -1
	for _, marker := range wantOrder {
		idx := strings.Index(got, marker)
		require.GreaterOrEqual(t, idx, 0, "missing %q", marker)
		assert.Greater(t, idx, last, "%q out of order", marker)
		last = idx
	}
}
