package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const billingTeamYAML = `
name: billing-crew
description: Invoice review and collections follow-up
agents:
  - name: invoice
    capabilities:
      - invoice_listing
  - name: gmail
  - name: analysis
`

const billingTeamRevisedYAML = `
name: billing-crew
description: Collections follow-up only
agents:
  - name: gmail
  - name: analysis
`

func uploadTeam(t *testing.T, app *TestApp, doc string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(app.BaseURL+"/api/teams/upload", "application/yaml",
		bytes.NewReader([]byte(doc)))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

// Team definitions round-trip through upload, listing, replacement by name,
// and deletion.
func TestTeamLifecycle(t *testing.T) {
	app := NewTestApp(t)

	status, body := uploadTeam(t, app, billingTeamYAML)
	require.Equal(t, http.StatusCreated, status, "upload response: %v", body)
	team, _ := body["team"].(map[string]any)
	require.NotNil(t, team)
	teamID, _ := team["id"].(string)
	require.NotEmpty(t, teamID)
	assert.Equal(t, "billing-crew", team["name"])

	status, body = app.getJSON(t, "/api/teams")
	require.Equal(t, http.StatusOK, status)
	teams, _ := body["teams"].([]any)
	require.Len(t, teams, 1)

	// Re-uploading the same name replaces the definition in place.
	status, body = uploadTeam(t, app, billingTeamRevisedYAML)
	require.Equal(t, http.StatusCreated, status, "re-upload response: %v", body)
	replaced, _ := body["team"].(map[string]any)
	assert.Equal(t, teamID, replaced["id"])
	assert.Equal(t, "Collections follow-up only", replaced["description"])
	agents, _ := replaced["agents"].([]any)
	assert.Len(t, agents, 2)

	status, body = app.getJSON(t, "/api/teams")
	require.Equal(t, http.StatusOK, status)
	teams, _ = body["teams"].([]any)
	require.Len(t, teams, 1)

	req, err := http.NewRequest(http.MethodDelete, app.BaseURL+"/api/teams/"+teamID, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	status, body = app.getJSON(t, "/api/teams")
	require.Equal(t, http.StatusOK, status)
	teams, _ = body["teams"].([]any)
	assert.Empty(t, teams)
}

// A team naming an unregistered agent is rejected with the offending field.
func TestTeamUploadRejectsUnknownAgent(t *testing.T) {
	app := NewTestApp(t)

	status, body := uploadTeam(t, app, `
name: ghost-crew
agents:
  - name: bookkeeper
`)
	assert.Equal(t, http.StatusBadRequest, status, "upload response: %v", body)
	assert.Equal(t, "agents", body["field"])
}
