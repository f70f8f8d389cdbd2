package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotprompt/internal/runner/types"
)

func TestRenderScratchpad(t *testing.T) {
	calc := &types.AgentAction{Name: "calculator", Input: map[string]any{"expression": "2+2"}}

	tests := []struct {
		name  string
		units []types.ScratchpadUnit
		want  string
	}{
		{
			name:  "empty",
			units: nil,
			want:  "",
		},
		{
			name: "full step",
			units: []types.ScratchpadUnit{{
				Thought:     "I should use the calculator",
				Action:      calc,
				ActionStr:   `{"action":"calculator","action_input":{"expression":"2+2"}}`,
				Observation: "4",
			}},
			want: "Thought: I should use the calculator\n\n" +
				`Action: {"action":"calculator","action_input":{"expression":"2+2"}}` + "\n\n" +
				"Observation: 4\n\n",
		},
		{
			name: "no action string",
			units: []types.ScratchpadUnit{{
				Thought:     "thinking",
				Action:      calc,
				Observation: "obs",
			}},
			want: "Thought: thinking\n\nObservation: obs\n\n",
		},
		{
			name: "no observation yet",
			units: []types.ScratchpadUnit{{
				Thought:   "thinking",
				Action:    calc,
				ActionStr: "calc",
			}},
			want: "Thought: thinking\n\nAction: calc\n\n",
		},
		{
			name: "empty thought still rendered",
			units: []types.ScratchpadUnit{{
				Action: calc,
			}},
			want: "Thought: \n\n",
		},
		{
			name: "final answer",
			units: []types.ScratchpadUnit{
				{Thought: "use calc", Action: calc, ActionStr: "calc", Observation: "4"},
				types.NewFinalUnit("done", "The answer is 4"),
			},
			want: "Thought: use calc\n\nAction: calc\n\nObservation: 4\n\n" +
				"Final Answer: The answer is 4",
		},
		{
			name:  "unit without action is final",
			units: []types.ScratchpadUnit{{Thought: "ignored", AgentResponse: "direct reply"}},
			want:  "Final Answer: direct reply",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderScratchpad(tt.units))
		})
	}
}

func TestRenderScratchpad_NewActionUnit(t *testing.T) {
	unit, err := types.NewActionUnit("look it up", types.AgentAction{Name: "weather", Input: "Paris"})
	require.NoError(t, err)
	unit.Observation = "sunny"

	got := RenderScratchpad([]types.ScratchpadUnit{unit})
	assert.Equal(t, "Thought: look it up\n\n"+
		`Action: {"action":"weather","action_input":"Paris"}`+"\n\n"+
		"Observation: sunny\n\n", got)
}
