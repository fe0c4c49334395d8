package liga_api_client

import (
	"context"
	"fmt"

	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

func (c *LigaApiClient) ListTeams(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	if err := c.get(ctx, TeamsEndpoint, &teams); err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	return teams, nil
}

func (c *LigaApiClient) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	var team models.Team
	if err := c.get(ctx, TeamsEndpoint+path(id), &team); err != nil {
		return nil, fmt.Errorf("failed to get team %s: %w", id, err)
	}
	return &team, nil
}

func (c *LigaApiClient) CreateTeam(ctx context.Context, in models.TeamInput) (*models.Team, error) {
	var team models.Team
	if err := c.post(ctx, TeamsEndpoint, in, &team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return &team, nil
}

func (c *LigaApiClient) UpdateTeam(ctx context.Context, id string, in models.TeamInput) (*models.Team, error) {
	var team models.Team
	if err := c.put(ctx, TeamsEndpoint+path(id), in, &team); err != nil {
		return nil, fmt.Errorf("failed to update team %s: %w", id, err)
	}
	return &team, nil
}

func (c *LigaApiClient) DeleteTeam(ctx context.Context, id string) error {
	if err := c.del(ctx, TeamsEndpoint+path(id), nil); err != nil {
		return fmt.Errorf("failed to delete team %s: %w", id, err)
	}
	return nil
}
