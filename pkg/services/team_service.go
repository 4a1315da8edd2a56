package services

import (
	"context"
	"fmt"
	"time"

	"github.com/finovant/macaw/ent"
	"github.com/finovant/macaw/ent/team"
	"github.com/finovant/macaw/pkg/models"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// AgentDirectory answers whether an agent name is registered. Satisfied by
// workflow.Registry.
type AgentDirectory interface {
	Has(name string) bool
}

// TeamService manages uploaded team definitions
type TeamService struct {
	client *ent.Client
	agents AgentDirectory
}

// NewTeamService creates a new TeamService
func NewTeamService(client *ent.Client, agents AgentDirectory) *TeamService {
	return &TeamService{client: client, agents: agents}
}

// ParseDefinition decodes a YAML team definition document
func ParseDefinition(raw []byte) (*models.TeamDefinition, error) {
	var def models.TeamDefinition
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return &def, nil
}

// Upload validates a team definition against the agent registry and stores
// it. An existing team with the same name is replaced.
func (s *TeamService) Upload(httpCtx context.Context, def *models.TeamDefinition) (*ent.Team, error) {
	if def.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if len(def.Agents) == 0 {
		return nil, NewValidationError("agents", "at least one agent required")
	}
	for _, a := range def.Agents {
		if a.Name == "" {
			return nil, NewValidationError("agents", "agent name required")
		}
		if !s.agents.Has(a.Name) {
			return nil, NewValidationError("agents", fmt.Sprintf("unknown agent %q", a.Name))
		}
	}

	agents := make([]map[string]any, len(def.Agents))
	for i, a := range def.Agents {
		member := map[string]any{"name": a.Name}
		if len(a.Capabilities) > 0 {
			caps := make([]any, len(a.Capabilities))
			for j, c := range a.Capabilities {
				caps[j] = c
			}
			member["capabilities"] = caps
		}
		agents[i] = member
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.Team.Query().
		Where(team.NameEQ(def.Name)).
		Only(ctx)
	switch {
	case err == nil:
		update := existing.Update().
			SetDescription(def.Description).
			SetAgents(agents)
		if def.Metadata != nil {
			update.SetTeamMetadata(def.Metadata)
		}
		updated, err := update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update team: %w", err)
		}
		return updated, nil
	case ent.IsNotFound(err):
		id := def.ID
		if id == "" {
			id = uuid.New().String()
		}
		builder := s.client.Team.Create().
			SetID(id).
			SetName(def.Name).
			SetDescription(def.Description).
			SetAgents(agents)
		if def.Metadata != nil {
			builder.SetTeamMetadata(def.Metadata)
		}
		created, err := builder.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, ErrAlreadyExists
			}
			return nil, fmt.Errorf("failed to create team: %w", err)
		}
		return created, nil
	default:
		return nil, fmt.Errorf("failed to look up team: %w", err)
	}
}

// ListTeams returns all stored teams, newest first
func (s *TeamService) ListTeams(ctx context.Context) ([]*ent.Team, error) {
	teams, err := s.client.Team.Query().
		Order(ent.Desc(team.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// GetTeamByName retrieves one team by its unique name
func (s *TeamService) GetTeamByName(ctx context.Context, name string) (*ent.Team, error) {
	t, err := s.client.Team.Query().
		Where(team.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return t, nil
}

// DeleteTeam removes a team by ID
func (s *TeamService) DeleteTeam(ctx context.Context, teamID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Team.DeleteOneID(teamID).Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}
