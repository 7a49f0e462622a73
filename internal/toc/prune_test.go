package toc

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrune(t *testing.T) {
	items := []any{
		map[string]any{
			"name": "Camunda.Client",
			"type": "Namespace",
			"items": []any{
				map[string]any{
					"name":     "CamundaClient",
					"topicUid": "Camunda.Client.CamundaClient",
					"items": []any{
						map[string]any{"name": "GetTopologyAsync"},
					},
				},
				map[string]any{
					"name":     "Topology",
					"topicUid": "Camunda.Client.Topology",
					"extra":    "preserved",
					"items": []any{
						map[string]any{"name": "ClusterSize"},
					},
				},
				map[string]any{
					"name":     "Broker",
					"topicUid": "Camunda.Client.Broker",
				},
			},
		},
	}

	Prune(items, DefaultKeepMembers)

	ns := items[0].(map[string]any)
	children := ns["items"].([]any)
	require.Len(t, children, 3, "namespace keeps its child list")

	client := children[0].(map[string]any)
	assert.Contains(t, client, "items", "allow-listed type keeps its members")
	assert.NotContains(t, client, "leaf")

	topology := children[1].(map[string]any)
	assert.NotContains(t, topology, "items")
	assert.Equal(t, true, topology["leaf"])
	assert.Equal(t, "preserved", topology["extra"], "unknown fields survive")

	broker := children[2].(map[string]any)
	assert.NotContains(t, broker, "leaf", "childless nodes are untouched")
}

func TestPruneNestedNamespaces(t *testing.T) {
	items := []any{
		map[string]any{
			"name": "Camunda",
			"type": "Namespace",
			"items": []any{
				map[string]any{
					"name": "Camunda.Client.Runtime",
					"type": "Namespace",
					"items": []any{
						map[string]any{
							"name":     "JobWorker",
							"topicUid": "Camunda.Client.Runtime.JobWorker",
							"items":    []any{map[string]any{"name": "Start"}},
						},
					},
				},
			},
		},
	}

	Prune(items, DefaultKeepMembers)

	inner := items[0].(map[string]any)["items"].([]any)
	worker := inner[0].(map[string]any)["items"].([]any)[0].(map[string]any)
	assert.NotContains(t, worker, "items")
	assert.Equal(t, true, worker["leaf"])
}

func TestPruneTolerantOfMalformedNodes(t *testing.T) {
	items := []any{
		"not an object",
		map[string]any{"name": "NoChildren"},
		map[string]any{"name": "EmptyChildren", "items": []any{}},
		map[string]any{"name": "WrongType", "items": "nope"},
	}

	assert.NotPanics(t, func() { Prune(items, DefaultKeepMembers) })
}

func TestPruneFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "items": [
    {
      "name": "Camunda.Client",
      "type": "Namespace",
      "items": [
        {"name": "Topology", "topicUid": "Camunda.Client.Topology", "items": [{"name": "ClusterSize"}]}
      ]
    }
  ],
  "memberLayout": "samePage"
}`), 0o600))

	require.NoError(t, PruneFile(path, DefaultKeepMembers))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\n", "output is compact JSON")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "samePage", doc["memberLayout"], "root fields outside items survive")

	topology := doc["items"].([]any)[0].(map[string]any)["items"].([]any)[0].(map[string]any)
	assert.NotContains(t, topology, "items")
	assert.Equal(t, true, topology["leaf"])
}

func TestPruneFileBareListRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toc.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`[{"name": "Topology", "topicUid": "Camunda.Client.Topology", "items": [{"name": "ClusterSize"}]}]`), 0o600))

	require.NoError(t, PruneFile(path, DefaultKeepMembers))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc []any
	require.NoError(t, json.Unmarshal(data, &doc))
	node := doc[0].(map[string]any)
	assert.Equal(t, true, node["leaf"])
}

func TestPruneFileMissing(t *testing.T) {
	err := PruneFile(filepath.Join(t.TempDir(), "absent.json"), DefaultKeepMembers)
	assert.Error(t, err)
}
