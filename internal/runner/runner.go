// Package runner drives prompt assembly for a completion-model agent run.
package runner

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"cotprompt/internal/config"
	"cotprompt/internal/prompt"
	"cotprompt/internal/provider"
	"cotprompt/internal/tools"
	"cotprompt/pkg/logger"
)

// Options configures a CompletionRunner. Zero fields fall back to empty
// collaborators.
type Options struct {
	// Instruction overrides the agent's configured instruction when non-empty.
	Instruction string
	Tools       *tools.Registry
	History     HistorySource
	Scratchpad  *Scratchpad
}

// CompletionRunner holds the state a completion agent needs between
// reasoning iterations and turns it into the outbound prompt.
type CompletionRunner struct {
	agent       *config.AgentConfig
	instruction string
	tools       *tools.Registry
	history     HistorySource
	scratchpad  *Scratchpad
	log         zerolog.Logger
}

// NewCompletionRunner creates a runner. A nil agent is accepted; rendering
// then fails with prompt.ErrAgentNotConfigured.
func NewCompletionRunner(agent *config.AgentConfig, opts Options) *CompletionRunner {
	r := &CompletionRunner{
		agent:       agent,
		instruction: opts.Instruction,
		tools:       opts.Tools,
		history:     opts.History,
		scratchpad:  opts.Scratchpad,
	}
	if r.instruction == "" && agent != nil {
		r.instruction = agent.Instruction
	}
	if r.tools == nil {
		r.tools = tools.NewRegistry()
	}
	if r.history == nil {
		r.history = NewStaticHistory()
	}
	if r.scratchpad == nil {
		r.scratchpad = NewScratchpad()
	}
	r.log = logger.With(map[string]string{"run_id": r.scratchpad.RunID()})
	return r
}

// Scratchpad returns the trace the runner renders from.
func (r *CompletionRunner) Scratchpad() *Scratchpad {
	return r.scratchpad
}

// Tools returns the runner's tool catalog.
func (r *CompletionRunner) Tools() *tools.Registry {
	return r.tools
}

// OrganizePromptMessages assembles the single user message sent to the
// completion model for the current state of the run.
func (r *CompletionRunner) OrganizePromptMessages(ctx context.Context, query string) ([]provider.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	history, err := r.history.History(ctx)
	if err != nil {
		return nil, err
	}
	specs, err := r.tools.Specs()
	if err != nil {
		return nil, err
	}
	units := r.scratchpad.Units()

	msgs, err := prompt.Assemble(prompt.Input{
		Agent:       r.agent,
		Instruction: r.instruction,
		Tools:       specs,
		History:     history,
		Scratchpad:  units,
		Query:       query,
	})
	if err != nil {
		r.log.Warn().Err(err).Msg("prompt assembly failed")
		return nil, err
	}

	r.log.Debug().
		Int("tools", len(specs)).
		Int("history_messages", len(history)).
		Int("units", len(units)).
		Int("prompt_length", len(PromptText(msgs))).
		Msg("prompt assembled")
	return msgs, nil
}

// PromptText returns the concatenated text of the given messages.
func PromptText(msgs []provider.Message) string {
	var b strings.Builder
	for _, msg := range msgs {
		switch msg.Content.Kind() {
		case provider.ContentPlainText:
			b.WriteString(msg.Content.Text())
		case provider.ContentParts:
			for _, p := range msg.Content.PartList() {
				if tp, ok := p.(provider.TextPart); ok {
					b.WriteString(tp.Data)
				}
			}
		case provider.ContentSinglePart:
			if tp, ok := msg.Content.Single().(provider.TextPart); ok {
				b.WriteString(tp.Data)
			}
		case provider.ContentAbsent:
		}
	}
	return b.String()
}
