package prompt

import (
	"encoding/json"

	"cotprompt/internal/config"
	"cotprompt/internal/provider"
)

const testTemplate = "System: You are a helpful AI assistant.\n\n" +
	"Instructions: {{instruction}}\n\n" +
	"Available tools: {{tools}}\n\n" +
	"Tool names: {{tool_names}}\n\n" +
	"Chat history:\n{{historic_messages}}\n\n" +
	"Current conversation:\n{{agent_scratchpad}}\n\n" +
	"{{query}}"

func testAgent() *config.AgentConfig {
	return &config.AgentConfig{
		Instruction: "Help the user with math and weather.",
		Prompt:      &config.AgentPromptConfig{FirstPrompt: testTemplate},
	}
}

func testTools() []provider.ToolSpec {
	return []provider.ToolSpec{
		{
			Name:        "calculator",
			Description: "A calculator tool for basic math operations",
			Parameters: json.RawMessage(`{"type":"object","properties":{"expression":` +
				`{"type":"string","description":"The math expression to evaluate"}},"required":["expression"]}`),
		},
		{
			Name:        "weather",
			Description: "A tool to get weather information",
			Parameters: json.RawMessage(`{"type":"object","properties":{"location":` +
				`{"type":"string","description":"The location to get weather for"}},"required":["location"]}`),
		},
	}
}
