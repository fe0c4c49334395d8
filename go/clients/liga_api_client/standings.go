package liga_api_client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

func (c *LigaApiClient) GetStandings(ctx context.Context, division int) ([]models.StandingsRow, error) {
	var rows []models.StandingsRow
	if err := c.get(ctx, StandingsEndpoint+path(strconv.Itoa(division)), &rows); err != nil {
		return nil, fmt.Errorf("failed to get standings of division %d: %w", division, err)
	}
	return rows, nil
}

func (c *LigaApiClient) GetTopScorers(ctx context.Context) ([]models.TopScorer, error) {
	var scorers []models.TopScorer
	if err := c.get(ctx, TopScorersEndpoint, &scorers); err != nil {
		return nil, fmt.Errorf("failed to get top scorers: %w", err)
	}
	return scorers, nil
}

func (c *LigaApiClient) GetCardsStatistics(ctx context.Context) ([]models.PlayerCards, error) {
	var cards []models.PlayerCards
	if err := c.get(ctx, CardsStatisticsEndpoint, &cards); err != nil {
		return nil, fmt.Errorf("failed to get cards statistics: %w", err)
	}
	return cards, nil
}
