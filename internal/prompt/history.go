package prompt

import (
	"strings"

	"cotprompt/internal/provider"
)

// Transcript prefixes.
const (
	questionPrefix     = "Question: "
	toolResponsePrefix = "Tool Response: "
	blockSeparator     = "\n\n"
)

// RenderHistory flattens prior messages into a transcript. Each rendered
// message ends with a blank line. Absent content, unknown roles and content
// shapes a role does not accept contribute nothing.
func RenderHistory(messages []provider.Message) string {
	var b strings.Builder
	for _, msg := range messages {
		block, ok := renderMessage(msg)
		if !ok {
			continue
		}
		b.WriteString(block)
		b.WriteString(blockSeparator)
	}
	return b.String()
}

func renderMessage(msg provider.Message) (string, bool) {
	switch msg.Role {
	case provider.RoleUser:
		return renderUser(msg.Content)
	case provider.RoleAssistant:
		return renderAssistant(msg.Content)
	case provider.RoleTool:
		return renderTool(msg.Content)
	default:
		return "", false
	}
}

func renderUser(c provider.Content) (string, bool) {
	switch c.Kind() {
	case provider.ContentPlainText:
		return questionPrefix + c.Text(), true
	case provider.ContentParts:
		return questionPrefix + joinTextParts(c.PartList()), true
	case provider.ContentSinglePart, provider.ContentAbsent:
		return "", false
	default:
		return "", false
	}
}

func renderAssistant(c provider.Content) (string, bool) {
	switch c.Kind() {
	case provider.ContentPlainText:
		return c.Text(), true
	case provider.ContentParts:
		return joinTextParts(c.PartList()), true
	case provider.ContentSinglePart:
		return singleText(c.Single())
	case provider.ContentAbsent:
		return "", false
	default:
		return "", false
	}
}

// Tool messages with a part list are not rendered.
func renderTool(c provider.Content) (string, bool) {
	switch c.Kind() {
	case provider.ContentPlainText:
		return toolResponsePrefix + c.Text(), true
	case provider.ContentSinglePart:
		text, ok := singleText(c.Single())
		if !ok {
			return "", false
		}
		return toolResponsePrefix + text, true
	case provider.ContentParts, provider.ContentAbsent:
		return "", false
	default:
		return "", false
	}
}

// joinTextParts joins the text parts with a single space, skipping others.
func joinTextParts(parts []provider.Part) string {
	texts := make([]string, 0, len(parts))
	for _, p := range parts {
		if tp, ok := p.(provider.TextPart); ok {
			texts = append(texts, tp.Data)
		}
	}
	return strings.Join(texts, " ")
}

func singleText(p provider.Part) (string, bool) {
	tp, ok := p.(provider.TextPart)
	if !ok {
		return "", false
	}
	return tp.Data, true
}
