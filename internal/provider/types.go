// Package provider defines the message model handed to a text-completion model.
package provider

// Role identifies the author class of a message.
type Role string

// Role constants.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message represents a single prompt message. The Role selects the variant;
// Content may be absent, plain text, a list of parts, or a single part.
type Message struct {
	Role       Role    `json:"role" yaml:"role"`
	Content    Content `json:"content" yaml:"content"`
	Name       string  `json:"name,omitempty" yaml:"name,omitempty"`
	ToolCallID string  `json:"tool_call_id,omitempty" yaml:"tool_call_id,omitempty"`
}

// NewUserMessage creates a user message.
func NewUserMessage(content Content) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates an assistant message.
func NewAssistantMessage(content Content) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// NewToolMessage creates a tool response message for the given call.
func NewToolMessage(content Content, toolCallID string) Message {
	return Message{Role: RoleTool, Content: content, ToolCallID: toolCallID}
}

// NewSystemMessage creates a system message.
func NewSystemMessage(content Content) Message {
	return Message{Role: RoleSystem, Content: content}
}

// CloneMessages returns copies of the messages with their part lists
// duplicated, so callers can hand them to another goroutine.
func CloneMessages(in []Message) []Message {
	if in == nil {
		return nil
	}
	out := make([]Message, len(in))
	for i, msg := range in {
		out[i] = msg
		if msg.Content.kind == ContentParts {
			out[i].Content.parts = append([]Part(nil), msg.Content.parts...)
		}
	}
	return out
}
