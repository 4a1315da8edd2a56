package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/finovant/macaw/pkg/models"
	testdb "github.com/finovant/macaw/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageService_Append(t *testing.T) {
	client := testdb.NewTestClient(t)
	messageService := NewMessageService(client.Client)
	ctx := context.Background()

	p := createTestPlan(t, client, "Check invoice payment status")

	t.Run("assigns sequence numbers from 1", func(t *testing.T) {
		first, err := messageService.Append(ctx, models.CreateMessageRequest{
			PlanID:    p.ID,
			AgentName: "planner",
			Kind:      "plan",
			Content:   "Proposed sequence: planner, invoice, analysis",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, first.SequenceNumber)

		second, err := messageService.Append(ctx, models.CreateMessageRequest{
			PlanID:    p.ID,
			AgentName: "invoice",
			Content:   "Found 2 overdue invoices",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, second.SequenceNumber)
		assert.Equal(t, "progress", string(second.Kind), "kind defaults to progress")
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := messageService.Append(ctx, models.CreateMessageRequest{AgentName: "planner", Content: "x"})
		assert.True(t, IsValidationError(err))

		_, err = messageService.Append(ctx, models.CreateMessageRequest{PlanID: p.ID, Content: "x"})
		assert.True(t, IsValidationError(err))

		_, err = messageService.Append(ctx, models.CreateMessageRequest{PlanID: p.ID, AgentName: "planner"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown plan", func(t *testing.T) {
		_, err := messageService.Append(ctx, models.CreateMessageRequest{
			PlanID:    "plan-missing",
			AgentName: "planner",
			Content:   "orphan",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMessageService_SequenceSurvivesRestart(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	p := createTestPlan(t, client, "Check invoice payment status")

	first := NewMessageService(client.Client)
	for i := 0; i < 3; i++ {
		_, err := first.Append(ctx, models.CreateMessageRequest{
			PlanID:    p.ID,
			AgentName: "planner",
			Content:   fmt.Sprintf("message %d", i+1),
		})
		require.NoError(t, err)
	}

	// A fresh service instance stands in for a restarted process.
	second := NewMessageService(client.Client)
	msg, err := second.Append(ctx, models.CreateMessageRequest{
		PlanID:    p.ID,
		AgentName: "invoice",
		Content:   "resumed",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, msg.SequenceNumber)
}

func TestMessageService_ConcurrentAppendsGapFree(t *testing.T) {
	client := testdb.NewTestClient(t)
	messageService := NewMessageService(client.Client)
	ctx := context.Background()

	p := createTestPlan(t, client, "Check invoice payment status")

	const writers = 8
	const perWriter = 5

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_, err := messageService.Append(ctx, models.CreateMessageRequest{
					PlanID:    p.ID,
					AgentName: fmt.Sprintf("agent-%d", w),
					Content:   fmt.Sprintf("writer %d message %d", w, i),
				})
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	messages, err := messageService.ListByPlan(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, messages, writers*perWriter)
	for i, msg := range messages {
		assert.Equal(t, i+1, msg.SequenceNumber, "sequence numbers must be gap-free and strictly increasing")
	}
}

func TestMessageService_ListByPlan(t *testing.T) {
	client := testdb.NewTestClient(t)
	messageService := NewMessageService(client.Client)
	ctx := context.Background()

	p := createTestPlan(t, client, "Check invoice payment status")
	other := createTestPlan(t, client, "Review customer account")

	for i := 0; i < 3; i++ {
		_, err := messageService.Append(ctx, models.CreateMessageRequest{
			PlanID:    p.ID,
			AgentName: "planner",
			Content:   fmt.Sprintf("message %d", i+1),
		})
		require.NoError(t, err)
	}
	_, err := messageService.Append(ctx, models.CreateMessageRequest{
		PlanID:    other.ID,
		AgentName: "planner",
		Content:   "other plan",
	})
	require.NoError(t, err)

	t.Run("scoped to one plan in order", func(t *testing.T) {
		messages, err := messageService.ListByPlan(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, messages, 3)
		assert.Equal(t, "message 1", messages[0].Content)
		assert.Equal(t, "message 3", messages[2].Content)
	})

	t.Run("up to sequence", func(t *testing.T) {
		messages, err := messageService.ListUpToSequence(ctx, p.ID, 2)
		require.NoError(t, err)
		assert.Len(t, messages, 2)
	})

	t.Run("count", func(t *testing.T) {
		n, err := messageService.CountByPlan(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})
}

func TestMessageService_Forget(t *testing.T) {
	client := testdb.NewTestClient(t)
	messageService := NewMessageService(client.Client)
	ctx := context.Background()

	p := createTestPlan(t, client, "Check invoice payment status")

	_, err := messageService.Append(ctx, models.CreateMessageRequest{
		PlanID:    p.ID,
		AgentName: "planner",
		Content:   "before forget",
	})
	require.NoError(t, err)

	messageService.Forget(p.ID)

	// The counter re-initializes from the durable maximum, not from 1.
	msg, err := messageService.Append(ctx, models.CreateMessageRequest{
		PlanID:    p.ID,
		AgentName: "planner",
		Content:   "after forget",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, msg.SequenceNumber)
}
