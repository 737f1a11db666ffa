// Package schema generates a JSON Schema for guard PolicySet
// documents, suitable for editor validation and CI linting of policy
// YAML files.
package schema

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	guard "github.com/armatrix/agent-guard-go"
)

// Generate reflects the PolicySet document model into a JSON Schema.
// Struct json tags drive property names, so the schema matches the
// YAML field names the loader accepts.
func Generate() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		// Inline the document type instead of hiding it behind $ref,
		// so the schema root describes the file directly.
		ExpandedStruct: true,
		DoNotReference: true,
	}
	s := r.Reflect(&guard.PolicySet{})
	s.Title = "Guard PolicySet"
	s.Description = "Declarative guardrail policy set for agent tool invocations."
	return s
}

// MarshalJSON returns the schema as indented JSON, ready to write to a
// *.schema.json file.
func MarshalJSON() ([]byte, error) {
	return json.MarshalIndent(Generate(), "", "  ")
}
