package runner

import (
	"context"
	"sync"

	"cotprompt/internal/provider"
)

// HistorySource supplies the prior conversation for a prompt. Implementations
// return a slice the caller may read but must not modify.
type HistorySource interface {
	History(ctx context.Context) ([]provider.Message, error)
}

// StaticHistory is an in-memory HistorySource. Messages can be appended
// between renders; each History call returns a snapshot.
type StaticHistory struct {
	mu       sync.RWMutex
	messages []provider.Message
}

// NewStaticHistory creates a history holding copies of the given messages.
func NewStaticHistory(messages ...provider.Message) *StaticHistory {
	return &StaticHistory{messages: provider.CloneMessages(messages)}
}

// Append adds messages to the end of the history.
func (h *StaticHistory) Append(messages ...provider.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, provider.CloneMessages(messages)...)
}

// History returns a snapshot of the stored messages.
func (h *StaticHistory) History(_ context.Context) ([]provider.Message, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return provider.CloneMessages(h.messages), nil
}

// Len returns the number of stored messages.
func (h *StaticHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.messages)
}
