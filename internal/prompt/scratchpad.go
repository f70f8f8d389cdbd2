package prompt

import (
	"strings"

	"cotprompt/internal/runner/types"
)

// RenderScratchpad renders the reasoning trace in order. A final unit
// renders as "Final Answer: ..." with no trailing separator; other units
// render their thought, then the action and observation when present.
// The shape of the trace is not validated.
func RenderScratchpad(units []types.ScratchpadUnit) string {
	var b strings.Builder
	for _, unit := range units {
		if unit.IsFinal() {
			b.WriteString("Final Answer: ")
			b.WriteString(unit.AgentResponse)
			continue
		}

		b.WriteString("Thought: ")
		b.WriteString(unit.Thought)
		b.WriteString(blockSeparator)
		if unit.ActionStr != "" {
			b.WriteString("Action: ")
			b.WriteString(unit.ActionStr)
			b.WriteString(blockSeparator)
		}
		if unit.Observation != "" {
			b.WriteString("Observation: ")
			b.WriteString(unit.Observation)
			b.WriteString(blockSeparator)
		}
	}
	return b.String()
}
