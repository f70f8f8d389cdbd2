// Package prompt assembles the single-message prompt of a completion-style
// chain-of-thought agent from its template, history and scratchpad.
package prompt

import "errors"

// Prompt errors. Both configuration errors indicate a setup bug; callers
// should not retry.
var (
	// ErrAgentNotConfigured indicates that no agent configuration is present.
	ErrAgentNotConfigured = errors.New("prompt: agent configuration is not set")

	// ErrPromptNotConfigured indicates that the agent has no prompt template.
	ErrPromptNotConfigured = errors.New("prompt: prompt entity is not set")

	// ErrToolEncode indicates that the tool catalog could not be serialized.
	ErrToolEncode = errors.New("prompt: tool catalog encode failed")
)
