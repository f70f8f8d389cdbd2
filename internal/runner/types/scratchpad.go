// Package types defines the reasoning-trace types shared by runner and prompt.
package types

import (
	"bytes"
	"encoding/json"
	"strings"
)

// AgentAction is a tool invocation chosen by the model, or the final answer
// pseudo-action.
type AgentAction struct {
	Name  string `json:"action" yaml:"action"`
	Input any    `json:"action_input" yaml:"action_input"`
}

// IsFinalAnswer reports whether the action name denotes a final answer.
// The match is case-insensitive and only needs both words to appear.
func (a AgentAction) IsFinalAnswer() bool {
	name := strings.ToLower(a.Name)
	return strings.Contains(name, "final") && strings.Contains(name, "answer")
}

// JSON returns the action as the blob the model is asked to emit:
// {"action": ..., "action_input": ...}.
func (a AgentAction) JSON() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(a); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// ScratchpadUnit is one step of the reasoning trace.
type ScratchpadUnit struct {
	AgentResponse string       `json:"agent_response,omitempty" yaml:"agent_response,omitempty"`
	Thought       string       `json:"thought,omitempty" yaml:"thought,omitempty"`
	ActionStr     string       `json:"action_str,omitempty" yaml:"action_str,omitempty"`
	Observation   string       `json:"observation,omitempty" yaml:"observation,omitempty"`
	Action        *AgentAction `json:"action,omitempty" yaml:"action,omitempty"`
}

// IsFinal reports whether the unit is a final answer rather than a tool call.
// A unit without an action is final.
func (u ScratchpadUnit) IsFinal() bool {
	return u.Action == nil || u.Action.IsFinalAnswer()
}

// NewActionUnit builds an intermediate unit for a tool call, filling
// ActionStr with the serialized action.
func NewActionUnit(thought string, action AgentAction) (ScratchpadUnit, error) {
	actionStr, err := action.JSON()
	if err != nil {
		return ScratchpadUnit{}, err
	}
	return ScratchpadUnit{
		Thought:   thought,
		Action:    &action,
		ActionStr: actionStr,
	}, nil
}

// NewFinalUnit builds the terminal unit carrying the answer.
func NewFinalUnit(thought, response string) ScratchpadUnit {
	return ScratchpadUnit{
		Thought:       thought,
		AgentResponse: response,
		Action:        &AgentAction{Name: "Final Answer", Input: response},
	}
}
