package liga_api_client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

func (c *LigaApiClient) ListFixtures(ctx context.Context) ([]models.Fixture, error) {
	var fixtures []models.Fixture
	if err := c.get(ctx, FixturesEndpoint, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to get fixtures: %w", err)
	}
	return fixtures, nil
}

func (c *LigaApiClient) ListFixturesByDivision(ctx context.Context, division int) ([]models.Fixture, error) {
	var fixtures []models.Fixture
	if err := c.get(ctx, FixturesEndpoint+path("division", strconv.Itoa(division)), &fixtures); err != nil {
		return nil, fmt.Errorf("failed to get fixtures of division %d: %w", division, err)
	}
	return fixtures, nil
}

func (c *LigaApiClient) CreateFixture(ctx context.Context, in models.FixtureInput) (*models.Fixture, error) {
	var fixture models.Fixture
	if err := c.post(ctx, FixturesEndpoint, in, &fixture); err != nil {
		return nil, fmt.Errorf("failed to create fixture: %w", err)
	}
	return &fixture, nil
}

func (c *LigaApiClient) CreateFixturesBulk(ctx context.Context, in models.BulkFixtureInput) ([]models.Fixture, error) {
	var fixtures []models.Fixture
	if err := c.post(ctx, FixturesEndpoint+path("bulk"), in, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to create fixtures: %w", err)
	}
	return fixtures, nil
}

func (c *LigaApiClient) UpdateFixture(ctx context.Context, id string, in models.FixtureUpdate) (*models.Fixture, error) {
	var fixture models.Fixture
	if err := c.put(ctx, FixturesEndpoint+path(id), in, &fixture); err != nil {
		return nil, fmt.Errorf("failed to update fixture %s: %w", id, err)
	}
	return &fixture, nil
}

func (c *LigaApiClient) DeleteFixture(ctx context.Context, id string) error {
	if err := c.del(ctx, FixturesEndpoint+path(id), nil); err != nil {
		return fmt.Errorf("failed to delete fixture %s: %w", id, err)
	}
	return nil
}

func (c *LigaApiClient) AddGoal(ctx context.Context, fixtureID string, in models.AddGoal) error {
	if err := c.post(ctx, FixturesEndpoint+path(fixtureID, "goals"), in, nil); err != nil {
		return fmt.Errorf("failed to add goal to fixture %s: %w", fixtureID, err)
	}
	return nil
}

func (c *LigaApiClient) RemoveGoal(ctx context.Context, fixtureID string, in models.RemoveGoal) error {
	if err := c.del(ctx, FixturesEndpoint+path(fixtureID, "goals"), in); err != nil {
		return fmt.Errorf("failed to remove goal from fixture %s: %w", fixtureID, err)
	}
	return nil
}

func (c *LigaApiClient) AddCard(ctx context.Context, fixtureID string, in models.AddCard) error {
	if err := c.post(ctx, FixturesEndpoint+path(fixtureID, "cards"), in, nil); err != nil {
		return fmt.Errorf("failed to add card to fixture %s: %w", fixtureID, err)
	}
	return nil
}

func (c *LigaApiClient) RemoveCard(ctx context.Context, fixtureID string, in models.RemoveCard) error {
	if err := c.del(ctx, FixturesEndpoint+path(fixtureID, "cards"), in); err != nil {
		return fmt.Errorf("failed to remove card from fixture %s: %w", fixtureID, err)
	}
	return nil
}
