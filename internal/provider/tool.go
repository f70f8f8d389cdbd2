package provider

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToolSpec describes a tool offered to the model: a unique name, a
// description and a JSON Schema for its parameters.
type ToolSpec struct {
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Parameters  json.RawMessage `json:"parameters" yaml:"-"`
}

// MarshalJSON keeps the name, description, parameters field order, writes
// missing parameters as an empty object and leaves <, > and & unescaped.
func (t ToolSpec) MarshalJSON() ([]byte, error) {
	params := t.Parameters
	if len(params) == 0 {
		params = json.RawMessage("{}")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Parameters  json.RawMessage `json:"parameters"`
	}{t.Name, t.Description, params})
	if err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalYAML decodes a tool entry. The YAML parameter schema becomes
// JSON with the author's key order and without HTML escaping.
func (t *ToolSpec) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Name        string    `yaml:"name"`
		Description string    `yaml:"description"`
		Parameters  yaml.Node `yaml:"parameters"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	t.Name = raw.Name
	t.Description = raw.Description
	t.Parameters = nil
	if raw.Parameters.Kind == 0 || raw.Parameters.ShortTag() == "!!null" {
		return nil
	}
	params, err := YAMLToJSON(&raw.Parameters)
	if err != nil {
		return fmt.Errorf("tool %q parameters: %w", raw.Name, err)
	}
	t.Parameters = params
	return nil
}

// YAMLToJSON converts a YAML node to compact JSON, keeping mapping key order
// and leaving <, > and & unescaped.
func YAMLToJSON(n *yaml.Node) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := writeNodeJSON(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeNodeJSON(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeNodeJSON(buf, n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return fmt.Errorf("dangling alias at line %d", n.Line)
		}
		return writeNodeJSON(buf, n.Alias)
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return fmt.Errorf("non-scalar mapping key at line %d", key.Line)
			}
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, key.Value); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeNodeJSON(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeNodeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return err
		}
		return writeJSONValue(buf, v)
	default:
		return fmt.Errorf("unsupported yaml node at line %d", n.Line)
	}
}

func writeJSONValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

// ToolNames returns the tool names in catalog order.
func ToolNames(tools []ToolSpec) []string {
	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.Name)
	}
	return names
}
