package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"cotprompt/internal/config"
	"cotprompt/internal/provider"
)

// RenderInstruction fills the agent's first_prompt template with the
// instruction text, the JSON tool catalog and the comma-separated tool names.
// Absent placeholders are left alone; inserted text is not re-scanned.
func RenderInstruction(agent *config.AgentConfig, instruction string, tools []provider.ToolSpec) (string, error) {
	if agent == nil {
		return "", ErrAgentNotConfigured
	}
	if agent.Prompt == nil {
		return "", ErrPromptNotConfigured
	}

	toolsJSON, err := encodeTools(tools)
	if err != nil {
		return "", err
	}

	r := strings.NewReplacer(
		PlaceholderInstruction, instruction,
		PlaceholderTools, toolsJSON,
		PlaceholderToolNames, strings.Join(provider.ToolNames(tools), ", "),
	)
	return r.Replace(agent.Prompt.FirstPrompt), nil
}

// encodeTools serializes the catalog as a JSON array in catalog order.
func encodeTools(tools []provider.ToolSpec) (string, error) {
	if tools == nil {
		tools = []provider.ToolSpec{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tools); err != nil {
		return "", fmt.Errorf("%w: %v", ErrToolEncode, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
