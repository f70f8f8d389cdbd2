package prompt

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotprompt/internal/config"
	"cotprompt/internal/provider"
)

func TestRenderInstruction(t *testing.T) {
	agent := testAgent()
	tools := testTools()

	result, err := RenderInstruction(agent, "Test instruction", tools)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(result, "Test instruction"))
	assert.Contains(t, result, "Tool names: calculator, weather")
	assert.NotContains(t, result, PlaceholderInstruction)
	assert.NotContains(t, result, PlaceholderTools)
	assert.NotContains(t, result, PlaceholderToolNames)

	// Later-stage placeholders are untouched.
	assert.Contains(t, result, PlaceholderHistoricMessages)
	assert.Contains(t, result, PlaceholderAgentScratchpad)
	assert.Contains(t, result, PlaceholderQuery)
}

func TestRenderInstruction_ToolsJSON(t *testing.T) {
	result, err := RenderInstruction(testAgent(), "x", testTools())
	require.NoError(t, err)

	start := strings.Index(result, "Available tools: ") + len("Available tools: ")
	end := strings.Index(result, "\n\nTool names:")
	require.Greater(t, end, start)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(result[start:end]), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "calculator", decoded[0]["name"])
	assert.Equal(t, "A calculator tool for basic math operations", decoded[0]["description"])
	assert.Equal(t, "weather", decoded[1]["name"])

	params, ok := decoded[1]["parameters"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"location"}, params["required"])
}

func TestRenderInstruction_NoTools(t *testing.T) {
	agent := &config.AgentConfig{Prompt: &config.AgentPromptConfig{
		FirstPrompt: "[{{tools}}] [{{tool_names}}]",
	}}

	result, err := RenderInstruction(agent, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "[[]] []", result)
}

func TestRenderInstruction_InstructionIsRaw(t *testing.T) {
	agent := &config.AgentConfig{Prompt: &config.AgentPromptConfig{FirstPrompt: "{{instruction}}|{{tool_names}}"}}

	result, err := RenderInstruction(agent, `say "hi" & <b>{{tools}}</b>`, []provider.ToolSpec{{Name: "a"}})
	require.NoError(t, err)
	assert.Equal(t, `say "hi" & <b>{{tools}}</b>|a`, result)
}

func TestRenderInstruction_NoHTMLEscaping(t *testing.T) {
	agent := &config.AgentConfig{Prompt: &config.AgentPromptConfig{FirstPrompt: "{{tools}}"}}

	result, err := RenderInstruction(agent, "", []provider.ToolSpec{{Name: "cmp", Description: "a < b && c > d"}})
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"cmp","description":"a < b && c > d","parameters":{}}]`, result)
}

func TestRenderInstruction_MissingPlaceholders(t *testing.T) {
	agent := &config.AgentConfig{Prompt: &config.AgentPromptConfig{FirstPrompt: "static text only"}}

	result, err := RenderInstruction(agent, "ignored", testTools())
	require.NoError(t, err)
	assert.Equal(t, "static text only", result)
}

func TestRenderInstruction_ConfigErrors(t *testing.T) {
	t.Run("agent not configured", func(t *testing.T) {
		_, err := RenderInstruction(nil, "x", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAgentNotConfigured)
		assert.NotErrorIs(t, err, ErrPromptNotConfigured)
	})

	t.Run("prompt entity not set", func(t *testing.T) {
		_, err := RenderInstruction(&config.AgentConfig{}, "x", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPromptNotConfigured)
		assert.NotErrorIs(t, err, ErrAgentNotConfigured)
	})
}

func TestRenderInstruction_InvalidParameters(t *testing.T) {
	tools := []provider.ToolSpec{{Name: "broken", Parameters: json.RawMessage(`{not json`)}}

	_, err := RenderInstruction(testAgent(), "x", tools)
	assert.ErrorIs(t, err, ErrToolEncode)
}
