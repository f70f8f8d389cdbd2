package prompt

import (
	"strings"

	"cotprompt/internal/config"
	"cotprompt/internal/provider"
	"cotprompt/internal/runner/types"
)

// Input carries everything one prompt assembly needs. The renderers read
// it without modifying any slice.
type Input struct {
	Agent       *config.AgentConfig
	Instruction string
	Tools       []provider.ToolSpec
	History     []provider.Message
	Scratchpad  []types.ScratchpadUnit
	Query       string
}

// AssembleText renders the full prompt text: the instruction prompt with its
// history, scratchpad and query placeholders substituted.
func AssembleText(in Input) (string, error) {
	systemPrompt, err := RenderInstruction(in.Agent, in.Instruction, in.Tools)
	if err != nil {
		return "", err
	}

	r := strings.NewReplacer(
		PlaceholderHistoricMessages, RenderHistory(in.History),
		PlaceholderAgentScratchpad, RenderScratchpad(in.Scratchpad),
		PlaceholderQuery, questionPrefix+in.Query,
	)
	return r.Replace(systemPrompt), nil
}

// Assemble returns the outbound messages for a completion model: exactly one
// user message whose content is a single text part holding the prompt.
func Assemble(in Input) ([]provider.Message, error) {
	text, err := AssembleText(in)
	if err != nil {
		return nil, err
	}
	return []provider.Message{provider.NewUserMessage(provider.Text(text))}, nil
}
