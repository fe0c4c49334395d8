package liga_api_client

import (
	"context"
	"fmt"

	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

func (c *LigaApiClient) ListPlayers(ctx context.Context) ([]models.Player, error) {
	var players []models.Player
	if err := c.get(ctx, PlayersEndpoint, &players); err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}
	return players, nil
}

func (c *LigaApiClient) ListPlayersByTeam(ctx context.Context, teamID string) ([]models.Player, error) {
	var players []models.Player
	if err := c.get(ctx, PlayersEndpoint+path("team", teamID), &players); err != nil {
		return nil, fmt.Errorf("failed to get players of team %s: %w", teamID, err)
	}
	return players, nil
}

func (c *LigaApiClient) CreatePlayer(ctx context.Context, in models.PlayerInput) (*models.Player, error) {
	var player models.Player
	if err := c.post(ctx, PlayersEndpoint, in, &player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return &player, nil
}

func (c *LigaApiClient) UpdatePlayer(ctx context.Context, id string, in models.PlayerInput) (*models.Player, error) {
	var player models.Player
	if err := c.put(ctx, PlayersEndpoint+path(id), in, &player); err != nil {
		return nil, fmt.Errorf("failed to update player %s: %w", id, err)
	}
	return &player, nil
}

func (c *LigaApiClient) DeletePlayer(ctx context.Context, id string) error {
	if err := c.del(ctx, PlayersEndpoint+path(id), nil); err != nil {
		return fmt.Errorf("failed to delete player %s: %w", id, err)
	}
	return nil
}
