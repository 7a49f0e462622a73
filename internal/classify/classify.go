// Package classify partitions loaded types into the six output page buckets.
package classify

import (
	"strings"

	"git.home.luguber.info/inful/apidocgen/internal/docfx"
)

// Tables holds the static lookup data the classifier decides with. Keeping
// the tables explicit (instead of burying literals in the decision code)
// lets the precedence rules be unit tested in isolation.
type Tables struct {
	// ClientTypes are the top-level client surface type names.
	ClientTypes map[string]bool
	// ConfigurationTypes are the configuration/auth option type names.
	ConfigurationTypes map[string]bool
	// KeySuffix marks strongly-typed domain key structs.
	KeySuffix string
	// RuntimeMarker is the namespace substring identifying runtime types.
	RuntimeMarker string
}

// DefaultTables returns the classification tables for the Camunda C# SDK.
func DefaultTables() Tables {
	return Tables{
		ClientTypes: map[string]bool{
			"CamundaClient":                      true,
			"Camunda":                            true,
			"CamundaServiceCollectionExtensions": true,
		},
		ConfigurationTypes: map[string]bool{
			"CamundaOptions":        true,
			"CamundaConfig":         true,
			"ConfigurationHydrator": true,
			"AuthConfig":            true,
			"BasicAuthConfig":       true,
			"OAuthConfig":           true,
			"OAuthRetryConfig":      true,
			"HttpRetryConfig":       true,
			"BackpressureConfig":    true,
			"EventualConfig":        true,
			"ValidationConfig":      true,
			"ValidationMode":        true,
			"AuthStrategy":          true,
			"JobWorkerConfig":       true,
			"ConfigErrorCode":       true,
			"ConfigErrorDetail":     true,
		},
		KeySuffix:     "Key",
		RuntimeMarker: "Runtime",
	}
}

// Buckets holds the classified types, one slice per output page. Within a
// bucket, types keep the loader's sorted-filename order.
type Buckets struct {
	Client        []docfx.TypeItem
	Configuration []docfx.TypeItem
	Runtime       []docfx.TypeItem
	Models        []docfx.TypeItem
	Enums         []docfx.TypeItem
	Keys          []docfx.TypeItem
}

// Classify assigns every type to exactly one bucket. First matching rule
// wins; the rule order is load-bearing since a type can satisfy several
// rules (an Enum in the configuration set belongs to configuration, not
// enums).
func Classify(types []docfx.TypeItem, tables Tables) Buckets {
	var b Buckets
	for _, t := range types {
		ns := t.Namespace
		if ns == "" {
			ns = t.Parent
		}

		switch {
		case tables.ClientTypes[t.Name]:
			b.Client = append(b.Client, t)
		case tables.ConfigurationTypes[t.Name]:
			b.Configuration = append(b.Configuration, t)
		case t.Kind == "Enum":
			b.Enums = append(b.Enums, t)
		case t.Kind == "Struct" && strings.HasSuffix(t.Name, tables.KeySuffix):
			b.Keys = append(b.Keys, t)
		case strings.Contains(ns, tables.RuntimeMarker):
			b.Runtime = append(b.Runtime, t)
		default:
			b.Models = append(b.Models, t)
		}
	}
	return b
}
