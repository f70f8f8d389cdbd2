package runner

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"cotprompt/internal/config"
	"cotprompt/internal/prompt"
	"cotprompt/internal/tools"
)

const requestYAML = `
instruction: Answer math questions.
tools:
  - name: calculator
    description: Evaluates expressions
    parameters:
      type: object
      required: [expression]
history:
  - role: user
    content: What's 1+1?
  - role: assistant
    content:
      - type: text
        data: It is 2.
  - role: tool
    content:
      type: text
      data: "2"
scratchpad:
  - thought: I should use the calculator
    action_str: '{"action":"calculator","action_input":"2+2"}'
    observation: "4"
    action:
      action: calculator
      action_input: 2+2
query: What is 2+2?
`

func TestRender_FromYAML(t *testing.T) {
	var req Request
	require.NoError(t, yaml.Unmarshal([]byte(requestYAML), &req))

	res, err := Render(context.Background(), testAgent(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, "Instructions: Answer math questions.\n"+
		`Tools: [{"name":"calculator","description":"Evaluates expressions","parameters":{"type":"object","required":["expression"]}}]`+"\n"+
		"Names: calculator\n"+
		"History:\nQuestion: What's 1+1?\n\nIt is 2.\n\nTool Response: 2\n\n"+
		"Question: What is 2+2?\n"+
		"Thought: I should use the calculator\n\n"+
		`Action: {"action":"calculator","action_input":"2+2"}`+"\n\n"+
		"Observation: 4\n\n", res.Prompt)
}

func TestRender_FromJSON(t *testing.T) {
	body := `{
		"agent": {"prompt": {"first_prompt": "{{instruction}} / {{query}}"}},
		"instruction": "Be kind.",
		"query": "hello"
	}`
	var req Request
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	res, err := Render(context.Background(), nil, req)
	require.NoError(t, err)
	assert.Equal(t, "Be kind. / Question: hello", res.Prompt)
}

func TestRender_AgentFallback(t *testing.T) {
	fallback := &config.AgentConfig{
		Instruction: "From config.",
		Prompt:      &config.AgentPromptConfig{FirstPrompt: "{{instruction}}"},
	}

	res, err := Render(context.Background(), fallback, Request{Query: "q"})
	require.NoError(t, err)
	assert.Equal(t, "From config.", res.Prompt)
}

func TestRender_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("no agent anywhere", func(t *testing.T) {
		_, err := Render(ctx, nil, Request{Query: "q"})
		assert.ErrorIs(t, err, prompt.ErrAgentNotConfigured)
	})

	t.Run("duplicate tool", func(t *testing.T) {
		req := Request{Tools: []tools.Definition{{ToolName: "a"}, {ToolName: "a"}}}
		_, err := Render(ctx, testAgent(), req)
		assert.ErrorIs(t, err, tools.ErrToolAlreadyExists)
	})

	t.Run("unit after final answer", func(t *testing.T) {
		var req Request
		require.NoError(t, yaml.Unmarshal([]byte(`
scratchpad:
  - agent_response: done
  - thought: more
    action: {action: search}
query: q
`), &req))
		_, err := Render(ctx, testAgent(), req)
		assert.ErrorIs(t, err, ErrScratchpadFinalized)
	})
}

func TestRender_ToolSchemaVerbatim(t *testing.T) {
	var req Request
	require.NoError(t, yaml.Unmarshal([]byte(`
agent:
  prompt:
    first_prompt: "{{tools}}"
tools:
  - name: cmp
    description: a < b & c
    parameters:
      type: object
      properties:
        x:
          type: string
          description: x < y & z
      required: [x]
query: q
`), &req))

	res, err := Render(context.Background(), nil, req)
	require.NoError(t, err)
	assert.Equal(t,
		`[{"name":"cmp","description":"a < b & c","parameters":`+
			`{"type":"object","properties":{"x":{"type":"string","description":"x < y & z"}},"required":["x"]}}]`,
		res.Prompt)
}
