package liga_api_client

import (
	"context"
	"fmt"

	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

func (c *LigaApiClient) ListSanctions(ctx context.Context) ([]models.Sanction, error) {
	var sanctions []models.Sanction
	if err := c.get(ctx, SanctionsEndpoint, &sanctions); err != nil {
		return nil, fmt.Errorf("failed to get sanctions: %w", err)
	}
	return sanctions, nil
}

func (c *LigaApiClient) UpdateSanction(ctx context.Context, playerID string, in models.SanctionUpdate) error {
	if err := c.put(ctx, SanctionsEndpoint+path(playerID), in, nil); err != nil {
		return fmt.Errorf("failed to update sanction of player %s: %w", playerID, err)
	}
	return nil
}
