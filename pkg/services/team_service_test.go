package services

import (
	"context"
	"errors"
	"testing"

	"github.com/finovant/macaw/pkg/models"
	testdb "github.com/finovant/macaw/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefinition(t *testing.T) {
	t.Run("parses valid YAML", func(t *testing.T) {
		raw := []byte(`
name: invoice-ops
description: Invoice reconciliation specialists
agents:
  - name: invoice
    capabilities:
      - "read ERP invoices"
  - name: gmail
metadata:
  owner: finance
`)
		def, err := ParseDefinition(raw)
		require.NoError(t, err)
		assert.Equal(t, "invoice-ops", def.Name)
		require.Len(t, def.Agents, 2)
		assert.Equal(t, []string{"read ERP invoices"}, def.Agents[0].Capabilities)
		assert.Equal(t, "finance", def.Metadata["owner"])
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		_, err := ParseDefinition([]byte("name: [unclosed"))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestTeamService_Upload(t *testing.T) {
	client := testdb.NewTestClient(t)
	teamService := NewTeamService(client.Client, financeAgents())
	ctx := context.Background()

	t.Run("stores valid team", func(t *testing.T) {
		created, err := teamService.Upload(ctx, &models.TeamDefinition{
			Name:        "invoice-ops",
			Description: "Invoice reconciliation specialists",
			Agents: []models.TeamAgent{
				{Name: "invoice", Capabilities: []string{"read ERP invoices"}},
				{Name: "gmail"},
			},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "invoice-ops", created.Name)
		require.Len(t, created.Agents, 2)
		assert.Equal(t, "invoice", created.Agents[0]["name"])
	})

	t.Run("replaces existing team by name", func(t *testing.T) {
		first, err := teamService.Upload(ctx, &models.TeamDefinition{
			Name:   "collections",
			Agents: []models.TeamAgent{{Name: "gmail"}},
		})
		require.NoError(t, err)

		second, err := teamService.Upload(ctx, &models.TeamDefinition{
			Name:        "collections",
			Description: "now with analysis",
			Agents:      []models.TeamAgent{{Name: "gmail"}, {Name: "analysis"}},
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID, "upsert keeps the original ID")
		assert.Len(t, second.Agents, 2)

		teams, err := teamService.ListTeams(ctx)
		require.NoError(t, err)
		names := make(map[string]int)
		for _, tm := range teams {
			names[tm.Name]++
		}
		assert.Equal(t, 1, names["collections"], "no duplicate rows after re-upload")
	})

	t.Run("rejects unregistered agent", func(t *testing.T) {
		_, err := teamService.Upload(ctx, &models.TeamDefinition{
			Name:   "bad-team",
			Agents: []models.TeamAgent{{Name: "quickbooks"}},
		})
		require.Error(t, err)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "agents", verr.Field)
		assert.Contains(t, verr.Message, "quickbooks")
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := teamService.Upload(ctx, &models.TeamDefinition{
			Agents: []models.TeamAgent{{Name: "invoice"}},
		})
		assert.True(t, IsValidationError(err))

		_, err = teamService.Upload(ctx, &models.TeamDefinition{Name: "empty-team"})
		assert.True(t, IsValidationError(err))

		_, err = teamService.Upload(ctx, &models.TeamDefinition{
			Name:   "anonymous-member",
			Agents: []models.TeamAgent{{Capabilities: []string{"x"}}},
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestTeamService_GetTeamByName(t *testing.T) {
	client := testdb.NewTestClient(t)
	teamService := NewTeamService(client.Client, financeAgents())
	ctx := context.Background()

	_, err := teamService.Upload(ctx, &models.TeamDefinition{
		Name:   "invoice-ops",
		Agents: []models.TeamAgent{{Name: "invoice"}},
	})
	require.NoError(t, err)

	t.Run("finds stored team", func(t *testing.T) {
		tm, err := teamService.GetTeamByName(ctx, "invoice-ops")
		require.NoError(t, err)
		assert.Equal(t, "invoice-ops", tm.Name)
	})

	t.Run("unknown name returns ErrNotFound", func(t *testing.T) {
		_, err := teamService.GetTeamByName(ctx, "never-uploaded")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTeamService_DeleteTeam(t *testing.T) {
	client := testdb.NewTestClient(t)
	teamService := NewTeamService(client.Client, financeAgents())
	ctx := context.Background()

	created, err := teamService.Upload(ctx, &models.TeamDefinition{
		Name:   "short-lived",
		Agents: []models.TeamAgent{{Name: "invoice"}},
	})
	require.NoError(t, err)

	require.NoError(t, teamService.DeleteTeam(ctx, created.ID))

	_, err = teamService.GetTeamByName(ctx, "short-lived")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, teamService.DeleteTeam(ctx, created.ID), ErrNotFound)
}
