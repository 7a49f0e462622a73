// Package toc post-processes the DocFX-generated toc.json so that member
// sub-items appear in the sidebar only for an allow-listed set of types.
// Model and configuration classes stay flat (no property clutter).
package toc

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultKeepMembers lists the topic uids whose member sub-items survive
// pruning.
var DefaultKeepMembers = map[string]bool{
	"Camunda.Client.CamundaClient": true,
}

// Prune recursively strips the child list from every node except namespace
// nodes (which are recursed into) and allow-listed uids. Pruned nodes are
// marked as leaves. Missing or malformed fields mean "no children" and leave
// the node untouched.
func Prune(items []any, keep map[string]bool) {
	for _, raw := range items {
		node, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		children, ok := node["items"].([]any)
		if !ok || len(children) == 0 {
			continue
		}

		uid, _ := node["topicUid"].(string)
		switch {
		case node["type"] == "Namespace":
			Prune(children, keep)
		case keep[uid]:
			// Keep the expanded member list.
		default:
			delete(node, "items")
			node["leaf"] = true
		}
	}
}

// PruneFile reads a toc.json, prunes it in place and writes it back as
// compact JSON. The root may be either an object carrying an "items" list or
// a bare list.
func PruneFile(path string, keep map[string]bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read toc file: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal toc file: %w", err)
	}

	switch root := doc.(type) {
	case map[string]any:
		if items, ok := root["items"].([]any); ok {
			Prune(items, keep)
		}
	case []any:
		Prune(root, keep)
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal toc file: %w", err)
	}
	if err := os.WriteFile(path, out, 0o600); err != nil {
		return fmt.Errorf("write toc file: %w", err)
	}
	return nil
}
