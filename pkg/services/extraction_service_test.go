package services

import (
	"context"
	"testing"

	testdb "github.com/finovant/macaw/test/database"
	"github.com/finovant/macaw/ent/extraction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractionService_CreateExtraction(t *testing.T) {
	client := testdb.NewTestClient(t)
	extractionService := NewExtractionService(client.Client)
	ctx := context.Background()

	p := createTestPlan(t, client, "Extract invoice INV-2031 from the shared inbox")

	t.Run("creates pending extraction", func(t *testing.T) {
		ext, err := extractionService.CreateExtraction(ctx, p.ID, "invoice", map[string]any{
			"invoice_number": "INV-2031",
			"amount":         1249.50,
			"vendor":         "Acme Wholesale",
		})
		require.NoError(t, err)
		assert.Equal(t, extraction.StatusPending, ext.Status)
		assert.Equal(t, "invoice", ext.AgentName)
		assert.Equal(t, "INV-2031", ext.Fields["invoice_number"])
		assert.Nil(t, ext.ReviewedAt)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := extractionService.CreateExtraction(ctx, "", "invoice", map[string]any{"k": "v"})
		assert.True(t, IsValidationError(err))

		_, err = extractionService.CreateExtraction(ctx, p.ID, "", map[string]any{"k": "v"})
		assert.True(t, IsValidationError(err))

		_, err = extractionService.CreateExtraction(ctx, p.ID, "invoice", nil)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown plan returns ErrNotFound", func(t *testing.T) {
		_, err := extractionService.CreateExtraction(ctx, "no-such-plan", "invoice", map[string]any{"k": "v"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestExtractionService_Review(t *testing.T) {
	client := testdb.NewTestClient(t)
	extractionService := NewExtractionService(client.Client)
	ctx := context.Background()

	t.Run("approval records edits and review time", func(t *testing.T) {
		p := createTestPlan(t, client, "Extract invoice INV-2031")
		_, err := extractionService.CreateExtraction(ctx, p.ID, "invoice", map[string]any{
			"invoice_number": "INV-2031",
			"amount":         1249.50,
		})
		require.NoError(t, err)

		reviewed, err := extractionService.Review(ctx, p.ID, true, map[string]any{
			"amount": 1294.50,
		}, "transposed digits corrected")
		require.NoError(t, err)
		assert.Equal(t, extraction.StatusApproved, reviewed.Status)
		assert.NotNil(t, reviewed.ReviewedAt)
		assert.Equal(t, 1294.50, reviewed.EditedFields["amount"])
		require.NotNil(t, reviewed.Feedback)
		assert.Equal(t, "transposed digits corrected", *reviewed.Feedback)
	})

	t.Run("rejection discards edits", func(t *testing.T) {
		p := createTestPlan(t, client, "Extract invoice INV-9999")
		_, err := extractionService.CreateExtraction(ctx, p.ID, "invoice", map[string]any{
			"invoice_number": "INV-9999",
		})
		require.NoError(t, err)

		reviewed, err := extractionService.Review(ctx, p.ID, false, map[string]any{
			"invoice_number": "ignored",
		}, "wrong document entirely")
		require.NoError(t, err)
		assert.Equal(t, extraction.StatusRejected, reviewed.Status)
		assert.Nil(t, reviewed.EditedFields)
		require.NotNil(t, reviewed.Feedback)
		assert.Equal(t, "wrong document entirely", *reviewed.Feedback)
	})

	t.Run("no pending extraction returns ErrNotFound", func(t *testing.T) {
		p := createTestPlan(t, client, "Nothing extracted yet")
		_, err := extractionService.Review(ctx, p.ID, true, nil, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("review consumes the pending row", func(t *testing.T) {
		p := createTestPlan(t, client, "Extract once, review once")
		_, err := extractionService.CreateExtraction(ctx, p.ID, "invoice", map[string]any{"k": "v"})
		require.NoError(t, err)

		_, err = extractionService.Review(ctx, p.ID, true, nil, "")
		require.NoError(t, err)

		_, err = extractionService.Review(ctx, p.ID, true, nil, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestExtractionService_GetPending(t *testing.T) {
	client := testdb.NewTestClient(t)
	extractionService := NewExtractionService(client.Client)
	ctx := context.Background()

	p := createTestPlan(t, client, "Two extraction rounds")

	first, err := extractionService.CreateExtraction(ctx, p.ID, "invoice", map[string]any{"round": 1})
	require.NoError(t, err)
	_, err = extractionService.Review(ctx, p.ID, false, nil, "redo")
	require.NoError(t, err)

	second, err := extractionService.CreateExtraction(ctx, p.ID, "invoice", map[string]any{"round": 2})
	require.NoError(t, err)

	pending, err := extractionService.GetPending(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, pending.ID, "only the unreviewed extraction is pending")

	all, err := extractionService.ListByPlan(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID, "oldest first")
}
