// Package admin serves the administrator dashboard: the fixture editor and the
// management routes of every other area.
package admin

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/fixtures"
	"github.com/mcdev12/ligaveteranos/go/internal/matchclock"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
	"github.com/mcdev12/ligaveteranos/go/internal/player"
)

// FixturesAPI defines what fixture management needs from the league API
type FixturesAPI interface {
	ListFixtures(ctx context.Context) ([]models.Fixture, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	ListPlayers(ctx context.Context) ([]models.Player, error)
	CreateFixture(ctx context.Context, in models.FixtureInput) (*models.Fixture, error)
	CreateFixturesBulk(ctx context.Context, in models.BulkFixtureInput) ([]models.Fixture, error)
	UpdateFixture(ctx context.Context, id string, in models.FixtureUpdate) (*models.Fixture, error)
	DeleteFixture(ctx context.Context, id string) error
	AddGoal(ctx context.Context, fixtureID string, in models.AddGoal) error
	RemoveGoal(ctx context.Context, fixtureID string, in models.RemoveGoal) error
	AddCard(ctx context.Context, fixtureID string, in models.AddCard) error
	RemoveCard(ctx context.Context, fixtureID string, in models.RemoveCard) error
}

// FixturesTab is the fixtures tab with the teams offered by the create form.
type FixturesTab struct {
	Fixtures []fixtures.Row `json:"fixtures"`
	Teams    []models.Team  `json:"teams"`
}

// EditView is the single fixture editor.
type EditView struct {
	Fixture     models.Fixture     `json:"fixture"`
	Display     matchclock.Display `json:"display"`
	HomeTeam    string             `json:"home_team"`
	AwayTeam    string             `json:"away_team"`
	HomePlayers []models.Player    `json:"home_players"`
	AwayPlayers []models.Player    `json:"away_players"`
}

// App manages league fixtures and their match events
type App struct {
	api FixturesAPI
}

// NewApp creates a new admin App
func NewApp(api FixturesAPI) *App {
	return &App{api: api}
}

// FixturesTab lists every fixture by division, week and kickoff.
func (a *App) FixturesTab(ctx context.Context, now time.Time) (*FixturesTab, error) {
	var (
		all   []models.Fixture
		teams []models.Team
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { all, err = a.api.ListFixtures(gctx); return })
	g.Go(func() (err error) { teams, err = a.api.ListTeams(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load fixtures tab: %w", err)
	}

	idx := models.IndexTeams(teams)
	tab := &FixturesTab{Fixtures: make([]fixtures.Row, 0, len(all)), Teams: teams}
	for _, f := range all {
		tab.Fixtures = append(tab.Fixtures, fixtures.NewRow(f, idx, now))
	}
	sort.SliceStable(tab.Fixtures, func(i, j int) bool {
		x, y := tab.Fixtures[i], tab.Fixtures[j]
		if x.Division != y.Division {
			return x.Division < y.Division
		}
		if x.WeekNumber != y.WeekNumber {
			return x.WeekNumber < y.WeekNumber
		}
		return x.MatchDate.Before(y.MatchDate)
	})
	if tab.Teams == nil {
		tab.Teams = []models.Team{}
	}
	return tab, nil
}

// EditView joins a fixture with its teams and both squads.
func (a *App) EditView(ctx context.Context, id string, now time.Time) (*EditView, error) {
	var (
		all     []models.Fixture
		teams   []models.Team
		players []models.Player
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { all, err = a.api.ListFixtures(gctx); return })
	g.Go(func() (err error) { teams, err = a.api.ListTeams(gctx); return })
	g.Go(func() (err error) { players, err = a.api.ListPlayers(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load fixture editor: %w", err)
	}

	f, ok := findFixture(all, id)
	if !ok {
		return nil, apperr.NotFound("fixture %s", id)
	}

	idx := models.IndexTeams(teams)
	view := &EditView{
		Fixture:     f,
		Display:     matchclock.DescribeFixture(f, now),
		HomeTeam:    idx.Name(f.HomeTeamID),
		AwayTeam:    idx.Name(f.AwayTeamID),
		HomePlayers: models.FilterPlayersByTeam(players, f.HomeTeamID),
		AwayPlayers: models.FilterPlayersByTeam(players, f.AwayTeamID),
	}
	player.SortSquad(view.HomePlayers)
	player.SortSquad(view.AwayPlayers)
	return view, nil
}

func findFixture(all []models.Fixture, id string) (models.Fixture, bool) {
	for _, f := range all {
		if f.ID == id {
			return f, true
		}
	}
	return models.Fixture{}, false
}

func (a *App) CreateFixture(ctx context.Context, in models.FixtureInput) (*models.Fixture, error) {
	if err := fixtures.ValidateFixtureInput(in); err != nil {
		return nil, err
	}
	f, err := a.api.CreateFixture(ctx, in)
	if err != nil {
		return nil, err
	}
	log.Info().Str("fixture_id", f.ID).Int("division", f.Division).Int("week", f.WeekNumber).Msg("created fixture")
	return f, nil
}

// CreateBulk schedules a whole matchday in one call.
func (a *App) CreateBulk(ctx context.Context, in models.BulkFixtureInput) ([]models.Fixture, error) {
	if err := fixtures.ValidateBulkInput(in); err != nil {
		return nil, err
	}
	created, err := a.api.CreateFixturesBulk(ctx, in)
	if err != nil {
		return nil, err
	}
	log.Info().Int("division", in.Division).Int("week", in.WeekNumber).Int("count", len(created)).Msg("created fixtures in bulk")
	return created, nil
}

func (a *App) UpdateFixture(ctx context.Context, id string, in models.FixtureUpdate) (*models.Fixture, error) {
	if err := fixtures.ValidateFixtureUpdate(in); err != nil {
		return nil, err
	}
	f, err := a.api.UpdateFixture(ctx, id, in)
	if err != nil {
		return nil, err
	}
	log.Info().Str("fixture_id", id).Str("status", string(f.Status)).Msg("updated fixture")
	return f, nil
}

func (a *App) DeleteFixture(ctx context.Context, id string) error {
	if err := a.api.DeleteFixture(ctx, id); err != nil {
		return err
	}
	log.Info().Str("fixture_id", id).Msg("deleted fixture")
	return nil
}

func (a *App) AddGoal(ctx context.Context, fixtureID string, in models.AddGoal) error {
	if err := fixtures.ValidateAddGoal(in); err != nil {
		return err
	}
	if err := a.api.AddGoal(ctx, fixtureID, in); err != nil {
		return err
	}
	log.Info().Str("fixture_id", fixtureID).Str("player_id", in.PlayerID).Str("side", string(in.TeamSide)).Msg("added goal")
	return nil
}

func (a *App) RemoveGoal(ctx context.Context, fixtureID string, in models.RemoveGoal) error {
	if err := fixtures.ValidateRemoval(in.GoalID, in.TeamSide); err != nil {
		return err
	}
	if err := a.api.RemoveGoal(ctx, fixtureID, in); err != nil {
		return err
	}
	log.Info().Str("fixture_id", fixtureID).Str("goal_id", in.GoalID).Msg("removed goal")
	return nil
}

func (a *App) AddCard(ctx context.Context, fixtureID string, in models.AddCard) error {
	if err := fixtures.ValidateAddCard(in); err != nil {
		return err
	}
	if err := a.api.AddCard(ctx, fixtureID, in); err != nil {
		return err
	}
	log.Info().Str("fixture_id", fixtureID).Str("player_id", in.PlayerID).Str("card", string(in.CardType)).Msg("added card")
	return nil
}

func (a *App) RemoveCard(ctx context.Context, fixtureID string, in models.RemoveCard) error {
	if err := fixtures.ValidateRemoval(in.CardID, in.TeamSide); err != nil {
		return err
	}
	if err := a.api.RemoveCard(ctx, fixtureID, in); err != nil {
		return err
	}
	log.Info().Str("fixture_id", fixtureID).Str("card_id", in.CardID).Msg("removed card")
	return nil
}
