package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotprompt/internal/provider"
)

func TestStaticHistory(t *testing.T) {
	ctx := context.Background()
	h := NewStaticHistory(provider.NewUserMessage(provider.PlainText("hi")))
	assert.Equal(t, 1, h.Len())

	h.Append(provider.NewAssistantMessage(provider.PlainText("hello")))

	msgs, err := h.History(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, provider.RoleUser, msgs[0].Role)
	assert.Equal(t, "hello", msgs[1].Content.Text())
}

func TestStaticHistory_Snapshot(t *testing.T) {
	ctx := context.Background()
	h := NewStaticHistory(provider.NewUserMessage(provider.Parts(provider.TextPart{Data: "a"})))

	msgs, err := h.History(ctx)
	require.NoError(t, err)
	msgs[0].Role = provider.RoleAssistant

	again, err := h.History(ctx)
	require.NoError(t, err)
	assert.Equal(t, provider.RoleUser, again[0].Role)
}

func TestStaticHistory_Empty(t *testing.T) {
	msgs, err := NewStaticHistory().History(context.Background())
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
