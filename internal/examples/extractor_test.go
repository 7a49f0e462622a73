package examples

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegions(t *testing.T) {
	src := `using Camunda.Client;

// <Sample>
var client = Camunda.NewClient();
await client.DeployAsync();
// </Sample>

class Demo
{
    static async Task Main()
    {
        // <Indented>
        var topology = await client.GetTopologyAsync();
        Console.WriteLine(topology);
        // </Indented>
    }
}
`
	regions := ParseRegions(src)

	assert.Equal(t, "var client = Camunda.NewClient();\nawait client.DeployAsync();", regions["Sample"])
	assert.Equal(t, "var topology = await client.GetTopologyAsync();\nConsole.WriteLine(topology);", regions["Indented"],
		"common indentation must be stripped")
}

func TestParseRegionsUnclosedRegionDiscarded(t *testing.T) {
	// An opening tag before the previous region closes abandons the
	// accumulated lines and starts over.
	src := `// <Broken>
var a = 1;
// <Fresh>
var b = 2;
// </Fresh>
// </Broken>
`
	regions := ParseRegions(src)

	assert.NotContains(t, regions, "Broken")
	assert.Equal(t, "var b = 2;", regions["Fresh"])
}

func TestParseRegionsMismatchedCloseIgnored(t *testing.T) {
	src := `// <One>
var a = 1;
// </Two>
var b = 2;
// </One>
`
	regions := ParseRegions(src)

	// The mismatched close tag line is just another content line.
	assert.Equal(t, "var a = 1;\n// </Two>\nvar b = 2;", regions["One"])
}

func TestLoadOverwrites(t *testing.T) {
	examplesDir := t.TempDir()
	overwriteDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(examplesDir, "Sample.cs"), []byte(`// <Sample>
var client = Camunda.NewClient();
// </Sample>
`), 0o600))

	require.NoError(t, os.WriteFile(filepath.Join(overwriteDir, "client.md"), []byte(`---
uid: M:Foo.Bar
example:
- '*content'
---
[!code-csharp[](../examples/Sample.cs#Sample)]
---
uid: M:Foo.Baz
---
[!code-csharp[](../examples/Sample.cs#Missing)]
`), 0o600))

	got, err := LoadOverwrites(overwriteDir, examplesDir)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"M:Foo.Bar": "var client = Camunda.NewClient();",
	}, got, "unresolvable regions are skipped, one example per uid")
}

func TestLoadOverwritesMissingDirectories(t *testing.T) {
	got, err := LoadOverwrites(filepath.Join(t.TempDir(), "nope"), filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, got)
}
