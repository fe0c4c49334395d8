package liga_api_client

import (
	"context"
	"fmt"

	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

func (c *LigaApiClient) ListCopaGroups(ctx context.Context) ([]models.CopaGroup, error) {
	var groups []models.CopaGroup
	if err := c.get(ctx, CopaGroupsEndpoint, &groups); err != nil {
		return nil, fmt.Errorf("failed to get copa groups: %w", err)
	}
	return groups, nil
}

func (c *LigaApiClient) CreateCopaGroup(ctx context.Context, in models.CopaGroupInput) (*models.CopaGroup, error) {
	var group models.CopaGroup
	if err := c.post(ctx, CopaGroupsEndpoint, in, &group); err != nil {
		return nil, fmt.Errorf("failed to create copa group: %w", err)
	}
	return &group, nil
}

func (c *LigaApiClient) UpdateCopaGroup(ctx context.Context, name string, in models.CopaGroupInput) error {
	if err := c.put(ctx, CopaGroupsEndpoint+path(name), in, nil); err != nil {
		return fmt.Errorf("failed to update copa group %s: %w", name, err)
	}
	return nil
}

func (c *LigaApiClient) DeleteCopaGroup(ctx context.Context, name string) error {
	if err := c.del(ctx, CopaGroupsEndpoint+path(name), nil); err != nil {
		return fmt.Errorf("failed to delete copa group %s: %w", name, err)
	}
	return nil
}

func (c *LigaApiClient) GetCopaStandings(ctx context.Context, group string) ([]models.StandingsRow, error) {
	var rows []models.StandingsRow
	if err := c.get(ctx, CopaStandingsEndpoint+path(group), &rows); err != nil {
		return nil, fmt.Errorf("failed to get copa standings of group %s: %w", group, err)
	}
	return rows, nil
}

func (c *LigaApiClient) ListCopaFixtures(ctx context.Context) ([]models.CopaFixture, error) {
	var fixtures []models.CopaFixture
	if err := c.get(ctx, CopaFixturesEndpoint, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to get copa fixtures: %w", err)
	}
	return fixtures, nil
}

func (c *LigaApiClient) CreateCopaFixture(ctx context.Context, in models.CopaFixtureInput) (*models.CopaFixture, error) {
	var fixture models.CopaFixture
	if err := c.post(ctx, CopaFixturesEndpoint, in, &fixture); err != nil {
		return nil, fmt.Errorf("failed to create copa fixture: %w", err)
	}
	return &fixture, nil
}

func (c *LigaApiClient) UpdateCopaFixture(ctx context.Context, id string, in models.CopaFixtureUpdate) error {
	if err := c.put(ctx, CopaFixturesEndpoint+path(id), in, nil); err != nil {
		return fmt.Errorf("failed to update copa fixture %s: %w", id, err)
	}
	return nil
}

func (c *LigaApiClient) DeleteCopaFixture(ctx context.Context, id string) error {
	if err := c.del(ctx, CopaFixturesEndpoint+path(id), nil); err != nil {
		return fmt.Errorf("failed to delete copa fixture %s: %w", id, err)
	}
	return nil
}

func (c *LigaApiClient) AddCopaFixtureGoal(ctx context.Context, id string, in models.AddGoal) error {
	if err := c.post(ctx, CopaFixturesEndpoint+path(id, "scorers"), in, nil); err != nil {
		return fmt.Errorf("failed to add scorer to copa fixture %s: %w", id, err)
	}
	return nil
}

func (c *LigaApiClient) AddCopaFixtureCard(ctx context.Context, id string, in models.AddCard) error {
	if err := c.post(ctx, CopaFixturesEndpoint+path(id, "cards"), in, nil); err != nil {
		return fmt.Errorf("failed to add card to copa fixture %s: %w", id, err)
	}
	return nil
}

func (c *LigaApiClient) ListCopaBrackets(ctx context.Context) ([]models.CopaBracket, error) {
	var brackets []models.CopaBracket
	if err := c.get(ctx, CopaBracketsEndpoint, &brackets); err != nil {
		return nil, fmt.Errorf("failed to get copa brackets: %w", err)
	}
	return brackets, nil
}

func (c *LigaApiClient) CreateCopaBracket(ctx context.Context, in models.CopaBracketInput) (*models.CopaBracket, error) {
	var bracket models.CopaBracket
	if err := c.post(ctx, CopaBracketsEndpoint, in, &bracket); err != nil {
		return nil, fmt.Errorf("failed to create copa bracket: %w", err)
	}
	return &bracket, nil
}

func (c *LigaApiClient) UpdateCopaBracket(ctx context.Context, id string, in models.CopaBracketUpdate) error {
	if err := c.put(ctx, CopaBracketsEndpoint+path(id), in, nil); err != nil {
		return fmt.Errorf("failed to update copa bracket %s: %w", id, err)
	}
	return nil
}

func (c *LigaApiClient) DeleteCopaBracket(ctx context.Context, id string) error {
	if err := c.del(ctx, CopaBracketsEndpoint+path(id), nil); err != nil {
		return fmt.Errorf("failed to delete copa bracket %s: %w", id, err)
	}
	return nil
}

func (c *LigaApiClient) AddCopaBracketGoal(ctx context.Context, id string, in models.AddGoal) error {
	if err := c.post(ctx, CopaBracketsEndpoint+path(id, "scorers"), in, nil); err != nil {
		return fmt.Errorf("failed to add scorer to copa bracket %s: %w", id, err)
	}
	return nil
}

func (c *LigaApiClient) AddCopaBracketCard(ctx context.Context, id string, in models.AddCard) error {
	if err := c.post(ctx, CopaBracketsEndpoint+path(id, "cards"), in, nil); err != nil {
		return fmt.Errorf("failed to add card to copa bracket %s: %w", id, err)
	}
	return nil
}
