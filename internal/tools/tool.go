// Package tools holds the tool catalog an agent advertises in its prompt.
package tools

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"cotprompt/internal/provider"
)

// Tool is a capability the model may choose to invoke. Only its declaration
// is needed to build a prompt.
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable description of what this tool does.
	Description() string

	// Parameters returns the JSON Schema for the tool's input, or nil.
	// It is rendered as given.
	Parameters() json.RawMessage
}

// Definition is a declarative tool loaded from configuration or a request.
// Parameters keep the author's key order and characters.
type Definition struct {
	ToolName        string          `json:"name"`
	ToolDescription string          `json:"description"`
	ToolParameters  json.RawMessage `json:"parameters,omitempty"`
}

func (d *Definition) Name() string { return d.ToolName }

func (d *Definition) Description() string { return d.ToolDescription }

func (d *Definition) Parameters() json.RawMessage { return d.ToolParameters }

// UnmarshalYAML decodes a YAML tool entry, converting its parameter schema
// to JSON.
func (d *Definition) UnmarshalYAML(value *yaml.Node) error {
	var spec provider.ToolSpec
	if err := value.Decode(&spec); err != nil {
		return err
	}
	d.ToolName = spec.Name
	d.ToolDescription = spec.Description
	d.ToolParameters = spec.Parameters
	return nil
}

// Spec converts a tool into its prompt-facing declaration.
func Spec(t Tool) (provider.ToolSpec, error) {
	params := t.Parameters()
	if len(params) > 0 && !json.Valid(params) {
		return provider.ToolSpec{}, NewInvalidToolError(t.Name(), "parameters are not valid JSON", nil)
	}
	return provider.ToolSpec{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters:  params,
	}, nil
}
