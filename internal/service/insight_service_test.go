package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitalBullGO/indicatorems/internal/service"
)

func TestChatCannedReply(t *testing.T) {
	svc := service.NewInsightService(0)

	reply, err := svc.Chat(context.Background(), "Show spend by commodity for Q1")
	require.NoError(t, err)

	assert.Contains(t, reply.Content, "Q1 commodity spend")
	require.Len(t, reply.Chart, 5)
	assert.Equal(t, "ICs", reply.Chart[1].Name)
	assert.Equal(t, 520000.0, reply.Chart[1].Value)
	assert.NotEmpty(t, reply.Actions)
}

func TestChatGenericFallback(t *testing.T) {
	svc := service.NewInsightService(0)

	reply, err := svc.Chat(context.Background(), "What is the meaning of supply chains?")
	require.NoError(t, err)

	assert.Contains(t, reply.Content, "simulated response")
	assert.Empty(t, reply.Chart)
}

func TestChatTrimsBeforeLookup(t *testing.T) {
	svc := service.NewInsightService(0)

	reply, err := svc.Chat(context.Background(), "  Show spend by commodity for Q1  ")
	require.NoError(t, err)
	assert.Len(t, reply.Chart, 5)
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	svc := service.NewInsightService(0)

	_, err := svc.Chat(context.Background(), "   ")
	assert.Error(t, err)
}

func TestChatHonoursContextCancel(t *testing.T) {
	svc := service.NewInsightService(5 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := svc.Chat(ctx, "anything at all")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestSuggestions(t *testing.T) {
	svc := service.NewInsightService(0)

	suggestions := svc.Suggestions()
	assert.Len(t, suggestions, 4)
	assert.Contains(t, suggestions, "Show spend by commodity for Q1")
}
