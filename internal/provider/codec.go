package provider

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnknownPartType is returned when decoding a part whose type is not
// text or image.
var ErrUnknownPartType = errors.New("provider: unknown content part type")

// partWire is the serialized form of a Part.
type partWire struct {
	Type     PartType `json:"type" yaml:"type"`
	Data     string   `json:"data" yaml:"data"`
	MimeType string   `json:"mime_type,omitempty" yaml:"mime_type,omitempty"`
	Detail   string   `json:"detail,omitempty" yaml:"detail,omitempty"`
}

func toWire(p Part) (partWire, error) {
	switch v := p.(type) {
	case TextPart:
		return partWire{Type: PartTypeText, Data: v.Data}, nil
	case ImagePart:
		return partWire{Type: PartTypeImage, Data: v.URL, MimeType: v.MimeType, Detail: v.Detail}, nil
	default:
		return partWire{}, fmt.Errorf("%w: %T", ErrUnknownPartType, p)
	}
}

func (w partWire) toPart() (Part, error) {
	switch w.Type {
	case PartTypeText:
		return TextPart{Data: w.Data}, nil
	case PartTypeImage:
		return ImagePart{URL: w.Data, MimeType: w.MimeType, Detail: w.Detail}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPartType, w.Type)
	}
}

func partsFromWire(wire []partWire) ([]Part, error) {
	parts := make([]Part, 0, len(wire))
	for _, w := range wire {
		p, err := w.toPart()
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, nil
}

// MarshalJSON encodes content as null, a string, a list of part objects, or
// a single part object.
func (c Content) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case ContentAbsent:
		return []byte("null"), nil
	case ContentPlainText:
		return json.Marshal(c.text)
	case ContentParts:
		wire := make([]partWire, 0, len(c.parts))
		for _, p := range c.parts {
			w, err := toWire(p)
			if err != nil {
				return nil, err
			}
			wire = append(wire, w)
		}
		return json.Marshal(wire)
	case ContentSinglePart:
		w, err := toWire(c.part)
		if err != nil {
			return nil, err
		}
		return json.Marshal(w)
	default:
		return nil, fmt.Errorf("provider: invalid content kind %d", c.kind)
	}
}

// UnmarshalJSON accepts null, a string, a list of parts or a single part.
func (c *Content) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*c = Content{}
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = PlainText(s)
	case '[':
		var wire []partWire
		if err := json.Unmarshal(b, &wire); err != nil {
			return err
		}
		parts, err := partsFromWire(wire)
		if err != nil {
			return err
		}
		*c = Content{kind: ContentParts, parts: parts}
	case '{':
		var w partWire
		if err := json.Unmarshal(b, &w); err != nil {
			return err
		}
		p, err := w.toPart()
		if err != nil {
			return err
		}
		*c = SinglePart(p)
	default:
		return fmt.Errorf("provider: content must be null, string, list or object, got %s", string(b))
	}
	return nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML documents.
func (c *Content) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.AliasNode && value.Alias != nil {
		return c.UnmarshalYAML(value.Alias)
	}

	switch value.Kind {
	case yaml.ScalarNode:
		if value.ShortTag() == "!!null" {
			*c = Content{}
			return nil
		}
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*c = PlainText(s)
	case yaml.SequenceNode:
		var wire []partWire
		if err := value.Decode(&wire); err != nil {
			return err
		}
		parts, err := partsFromWire(wire)
		if err != nil {
			return err
		}
		*c = Content{kind: ContentParts, parts: parts}
	case yaml.MappingNode:
		var w partWire
		if err := value.Decode(&w); err != nil {
			return err
		}
		p, err := w.toPart()
		if err != nil {
			return err
		}
		*c = SinglePart(p)
	default:
		return fmt.Errorf("provider: unsupported yaml node for content at line %d", value.Line)
	}
	return nil
}
