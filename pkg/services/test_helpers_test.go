package services

import (
	"context"
	"testing"

	"github.com/finovant/macaw/ent"
	"github.com/finovant/macaw/pkg/database"
	"github.com/finovant/macaw/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// createTestPlan creates a plan row for tests that need a foreign-key parent.
func createTestPlan(t *testing.T, client *database.Client, task string) *ent.Plan {
	t.Helper()

	planService := NewPlanService(client.Client)
	p, err := planService.CreatePlan(context.Background(), models.CreatePlanRequest{
		SessionID:       uuid.New().String(),
		TaskDescription: task,
		RequireApproval: true,
	})
	require.NoError(t, err)
	return p
}

// stubDirectory is an AgentDirectory with a fixed allow list.
type stubDirectory map[string]bool

func (d stubDirectory) Has(name string) bool { return d[name] }

// financeAgents lists the agent names registered in a production deployment.
func financeAgents() stubDirectory {
	return stubDirectory{
		"planner":    true,
		"invoice":    true,
		"gmail":      true,
		"salesforce": true,
		"analysis":   true,
	}
}
