package runner

import (
	"context"
	"fmt"

	"cotprompt/internal/config"
	"cotprompt/internal/provider"
	"cotprompt/internal/runner/types"
	"cotprompt/internal/tools"
)

// Request describes one prompt render: everything a run would hold at the
// moment the prompt is built. It is the body of the render API and the
// format of `render -f` files.
type Request struct {
	// Agent overrides the configured agent when set.
	Agent       *config.AgentConfig    `json:"agent,omitempty" yaml:"agent,omitempty"`
	Instruction string                 `json:"instruction,omitempty" yaml:"instruction,omitempty"`
	Tools       []tools.Definition     `json:"tools,omitempty" yaml:"tools,omitempty"`
	History     []provider.Message     `json:"history,omitempty" yaml:"history,omitempty"`
	Scratchpad  []types.ScratchpadUnit `json:"scratchpad,omitempty" yaml:"scratchpad,omitempty"`
	Query       string                 `json:"query" yaml:"query"`
}

// Result is the outcome of Render.
type Result struct {
	RunID    string             `json:"run_id"`
	Prompt   string             `json:"prompt"`
	Messages []provider.Message `json:"messages"`
}

// Render builds a runner from the request and assembles its prompt.
// fallback is used when the request carries no agent.
func Render(ctx context.Context, fallback *config.AgentConfig, req Request) (*Result, error) {
	agent := fallback
	if req.Agent != nil {
		agent = req.Agent
	}

	registry := tools.NewRegistry()
	for i := range req.Tools {
		if err := registry.Register(&req.Tools[i]); err != nil {
			return nil, fmt.Errorf("register tool: %w", err)
		}
	}

	pad := NewScratchpad()
	for i, unit := range req.Scratchpad {
		if err := pad.Append(unit); err != nil {
			return nil, fmt.Errorf("scratchpad unit %d: %w", i, err)
		}
	}

	r := NewCompletionRunner(agent, Options{
		Instruction: req.Instruction,
		Tools:       registry,
		History:     NewStaticHistory(req.History...),
		Scratchpad:  pad,
	})
	msgs, err := r.OrganizePromptMessages(ctx, req.Query)
	if err != nil {
		return nil, err
	}
	return &Result{
		RunID:    pad.RunID(),
		Prompt:   PromptText(msgs),
		Messages: msgs,
	}, nil
}
