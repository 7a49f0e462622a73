package render

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/apidocgen/internal/docfx"
)

// methodGroups maps method-name prefixes to logical group headings on the
// client page. Order matters: the first matching prefix wins, so the more
// specific entries (DecisionDefinition before Decision, DocumentLink before
// Document) must come first.
var methodGroups = []struct {
	prefix string
	group  string
}{
	{"ProcessInstance", "Process Instances"},
	{"ProcessDefinition", "Process Definitions"},
	{"Job", "Jobs"},
	{"UserTask", "User Tasks"},
	{"DecisionDefinition", "Decision Definitions"},
	{"DecisionRequirements", "Decision Requirements"},
	{"DecisionInstance", "Decision Instances"},
	{"Decision", "Decisions"},
	{"Incident", "Incidents"},
	{"Variable", "Variables"},
	{"FlowNode", "Flow Nodes"},
	{"Element", "Elements"},
	{"Message", "Messages"},
	{"Signal", "Signals"},
	{"Resource", "Resources"},
	{"Deploy", "Deployments"},
	{"Topology", "Cluster"},
	{"Authentication", "Cluster"},
	{"Clock", "Cluster"},
	{"Backpressure", "Cluster"},
	{"License", "Cluster"},
	{"Worker", "Job Workers"},
	{"RunWorkers", "Job Workers"},
	{"Tenant", "Tenants"},
	{"Role", "Roles"},
	{"Group", "Groups"},
	{"Mapping", "Mappings"},
	{"Authorization", "Authorizations"},
	{"AuditLog", "Audit Logs"},
	{"BatchOperation", "Batch Operations"},
	{"DocumentLink", "Documents"},
	{"Document", "Documents"},
	{"AdHocSubProcess", "Ad Hoc Sub-Processes"},
}

// methodGroup derives a logical group heading from a method name. The Async
// suffix is stripped before matching; unmatched names land in "Other".
func methodGroup(name string) string {
	base := strings.TrimSuffix(name, "Async")
	for _, g := range methodGroups {
		if strings.Contains(base, g.prefix) {
			return g.group
		}
	}
	return "Other"
}

// Client renders the client-surface page: factory methods and dependency
// injection extensions first (when present in the bucket), then the primary
// client type's constructor, properties, and methods grouped by domain.
func Client(types []docfx.TypeItem) string {
	var out strings.Builder
	out.WriteString(frontMatter("CamundaClient", "CamundaClient"))
	out.WriteString("\n# CamundaClient\n\n")

	clientType := findByName(types, "CamundaClient")
	factory := findByName(types, "Camunda")
	extensions := findByName(types, "CamundaServiceCollectionExtensions")

	if factory != nil {
		out.WriteString("## Creating a Client\n\n")
		summary := factory.Summary
		if summary == "" {
			summary = "Static factory for creating CamundaClient instances."
		}
		out.WriteString(summary + "\n\n")
		for _, m := range methods(factory.Members) {
			out.WriteString(signatureBlock(m.Syntax))
			if m.Summary != "" {
				out.WriteString(m.Summary + "\n\n")
			}
			if len(m.Parameters) > 0 {
				out.WriteString(paramsTable(m.Parameters) + "\n")
			}
			out.WriteString(exampleBlock(m.Example))
		}
	}

	if extensions != nil {
		out.WriteString("## Dependency Injection\n\n")
		summary := extensions.Summary
		if summary == "" {
			summary = "Extension methods for Microsoft.Extensions.DependencyInjection."
		}
		out.WriteString(summary + "\n\n")
		for _, m := range methods(extensions.Members) {
			fmt.Fprintf(&out, "### %s\n\n", m.Name)
			out.WriteString(signatureBlock(m.Syntax))
			if m.Summary != "" {
				out.WriteString(m.Summary + "\n\n")
			}
			if len(m.Parameters) > 0 {
				out.WriteString(paramsTable(m.Parameters) + "\n")
			}
		}
	}

	if clientType == nil {
		return out.String()
	}

	fmt.Fprintf(&out, "\n## Overview\n\n%s\n\n", clientType.Summary)
	out.WriteString(signatureBlock(clientType.Syntax))

	for _, m := range clientType.Members {
		if m.Kind != "Constructor" {
			continue
		}
		out.WriteString("\n## Constructor\n\n")
		out.WriteString(signatureBlock(m.Syntax))
		if m.Summary != "" {
			out.WriteString(m.Summary + "\n\n")
		}
		if len(m.Parameters) > 0 {
			out.WriteString(paramsTable(m.Parameters) + "\n")
		}
	}

	if props := propertiesTable(clientType.Members); props != "" {
		out.WriteString("\n## Properties\n\n")
		out.WriteString(props + "\n")
	}

	clientMethods := methods(clientType.Members)
	if len(clientMethods) > 0 {
		out.WriteString("\n## Methods\n\n")

		// Group methods by domain, preserving first-encounter group order.
		var groupOrder []string
		grouped := make(map[string][]docfx.MemberItem)
		for _, m := range clientMethods {
			group := methodGroup(m.Name)
			if _, seen := grouped[group]; !seen {
				groupOrder = append(groupOrder, group)
			}
			grouped[group] = append(grouped[group], m)
		}

		for _, group := range groupOrder {
			fmt.Fprintf(&out, "\n### %s\n\n", group)
			for _, m := range grouped[group] {
				fmt.Fprintf(&out, "#### %s\n\n", m.Name)
				out.WriteString(signatureBlock(m.Syntax))
				if m.Summary != "" {
					out.WriteString(m.Summary + "\n\n")
				}
				if len(m.Parameters) > 0 {
					out.WriteString(paramsTable(m.Parameters) + "\n")
				}
				out.WriteString(returnsLine(m))
				out.WriteString(exampleBlock(m.Example))
			}
		}
	}

	return out.String()
}

func findByName(types []docfx.TypeItem, name string) *docfx.TypeItem {
	for i := range types {
		if types[i].Name == name {
			return &types[i]
		}
	}
	return nil
}
