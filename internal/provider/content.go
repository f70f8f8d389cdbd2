package provider

// ContentKind tags the variant held by a Content value.
type ContentKind int

const (
	// ContentAbsent means the message carries no content.
	ContentAbsent ContentKind = iota
	// ContentPlainText is a bare string.
	ContentPlainText
	// ContentParts is an ordered list of typed parts.
	ContentParts
	// ContentSinglePart is one typed part not wrapped in a list.
	ContentSinglePart
)

// String returns a string representation of ContentKind.
func (k ContentKind) String() string {
	switch k {
	case ContentAbsent:
		return "absent"
	case ContentPlainText:
		return "plain_text"
	case ContentParts:
		return "parts"
	case ContentSinglePart:
		return "single_part"
	default:
		return "unknown"
	}
}

// Content is the tagged union carried by a Message. The zero value is
// absent content.
type Content struct {
	kind  ContentKind
	text  string
	parts []Part
	part  Part
}

// PlainText creates string content.
func PlainText(s string) Content {
	return Content{kind: ContentPlainText, text: s}
}

// Parts creates list content. A nil list still counts as present.
func Parts(parts ...Part) Content {
	return Content{kind: ContentParts, parts: append([]Part{}, parts...)}
}

// SinglePart creates content holding one unwrapped part. A nil part yields
// absent content.
func SinglePart(p Part) Content {
	if p == nil {
		return Content{}
	}
	return Content{kind: ContentSinglePart, part: p}
}

// Kind reports which variant c holds.
func (c Content) Kind() ContentKind {
	return c.kind
}

// IsAbsent reports whether c carries no content.
func (c Content) IsAbsent() bool {
	return c.kind == ContentAbsent
}

// Text returns the string of a ContentPlainText value.
func (c Content) Text() string {
	return c.text
}

// PartList returns a copy of the parts of a ContentParts value.
func (c Content) PartList() []Part {
	return append([]Part(nil), c.parts...)
}

// Single returns the part of a ContentSinglePart value.
func (c Content) Single() Part {
	return c.part
}

// PartType identifies a content part variant.
type PartType string

// Part types.
const (
	PartTypeText  PartType = "text"
	PartTypeImage PartType = "image"
)

// Part is one typed piece of structured content.
type Part interface {
	PartType() PartType
	isPart()
}

// TextPart is a text content part.
type TextPart struct {
	Data string
}

// PartType implements Part.
func (TextPart) PartType() PartType { return PartTypeText }
func (TextPart) isPart()            {}

// ImagePart is an image content part referenced by URL or data URI.
type ImagePart struct {
	URL      string
	MimeType string
	Detail   string
}

// PartType implements Part.
func (ImagePart) PartType() PartType { return PartTypeImage }
func (ImagePart) isPart()            {}

// Text wraps s in a single-element part list, the shape of outbound prompts.
func Text(s string) Content {
	return Parts(TextPart{Data: s})
}
