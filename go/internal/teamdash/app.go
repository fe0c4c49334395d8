// Package teamdash serves the dashboard of a team representative: their
// fixtures, their squad, score reports and goal scorers.
package teamdash

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/fixtures"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
	"github.com/mcdev12/ligaveteranos/go/internal/player"
)

// TeamAPI defines what the team dashboard needs from the league API
type TeamAPI interface {
	ListFixtures(ctx context.Context) ([]models.Fixture, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	ListPlayersByTeam(ctx context.Context, teamID string) ([]models.Player, error)
	UpdateFixture(ctx context.Context, id string, in models.FixtureUpdate) (*models.Fixture, error)
	AddGoal(ctx context.Context, fixtureID string, in models.AddGoal) error
}

// Dashboard is the team representative's home view.
type Dashboard struct {
	TeamID   string          `json:"team_id"`
	TeamName string          `json:"team_name"`
	Fixtures []fixtures.Row  `json:"fixtures"`
	Squad    []models.Player `json:"squad"`
}

// ScoreReport is the final score entered by a representative.
type ScoreReport struct {
	HomeScore *int `json:"home_score"`
	AwayScore *int `json:"away_score"`
}

// ScorerReport names one of the team's goal scorers. TeamSide is optional;
// the side is taken from the fixture.
type ScorerReport struct {
	PlayerID string          `json:"player_id"`
	TeamSide models.TeamSide `json:"team_side,omitempty"`
	Minute   *int            `json:"minute,omitempty"`
}

// App acts for one team
type App struct {
	api    TeamAPI
	teamID string
}

// NewApp creates a team dashboard App for teamID
func NewApp(api TeamAPI, teamID string) *App {
	return &App{api: api, teamID: teamID}
}

// Dashboard loads the team's fixtures, earliest first, and its squad.
func (a *App) Dashboard(ctx context.Context, now time.Time) (*Dashboard, error) {
	var (
		all   []models.Fixture
		teams []models.Team
		squad []models.Player
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { all, err = a.api.ListFixtures(gctx); return })
	g.Go(func() (err error) { teams, err = a.api.ListTeams(gctx); return })
	g.Go(func() (err error) { squad, err = a.api.ListPlayersByTeam(gctx, a.teamID); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load team dashboard: %w", err)
	}

	idx := models.IndexTeams(teams)
	d := &Dashboard{
		TeamID:   a.teamID,
		TeamName: idx.Name(a.teamID),
		Fixtures: []fixtures.Row{},
		Squad:    squad,
	}
	for _, f := range all {
		if f.Involves(a.teamID) {
			d.Fixtures = append(d.Fixtures, fixtures.NewRow(f, idx, now))
		}
	}
	sort.SliceStable(d.Fixtures, func(i, j int) bool {
		return d.Fixtures[i].MatchDate.Before(d.Fixtures[j].MatchDate)
	})
	if d.Squad == nil {
		d.Squad = []models.Player{}
	}
	player.SortSquad(d.Squad)
	return d, nil
}

// ownFixture loads a fixture and the side the team plays on. Fixtures of
// other teams are forbidden.
func (a *App) ownFixture(ctx context.Context, fixtureID string) (models.Fixture, models.TeamSide, error) {
	all, err := a.api.ListFixtures(ctx)
	if err != nil {
		return models.Fixture{}, "", fmt.Errorf("failed to load fixtures: %w", err)
	}
	for _, f := range all {
		if f.ID != fixtureID {
			continue
		}
		side, ok := f.SideOf(a.teamID)
		if !ok {
			return models.Fixture{}, "", apperr.Forbidden("team %s does not play fixture %s", a.teamID, fixtureID)
		}
		return f, side, nil
	}
	return models.Fixture{}, "", apperr.NotFound("fixture %s", fixtureID)
}

// ReportScore records the final score of one of the team's fixtures and
// marks it completed.
func (a *App) ReportScore(ctx context.Context, fixtureID string, in ScoreReport) (*models.Fixture, error) {
	if err := fixtures.ValidateScoreReport(in.HomeScore, in.AwayScore); err != nil {
		return nil, err
	}
	if _, _, err := a.ownFixture(ctx, fixtureID); err != nil {
		return nil, err
	}

	completed := models.FixtureStatusCompleted
	f, err := a.api.UpdateFixture(ctx, fixtureID, models.FixtureUpdate{
		HomeScore: in.HomeScore,
		AwayScore: in.AwayScore,
		Status:    &completed,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("team_id", a.teamID).
		Str("fixture_id", fixtureID).
		Int("home_score", *in.HomeScore).
		Int("away_score", *in.AwayScore).
		Msg("score reported")
	return f, nil
}

// AddScorer records a goal for one of the team's own players.
func (a *App) AddScorer(ctx context.Context, fixtureID string, in ScorerReport) error {
	_, side, err := a.ownFixture(ctx, fixtureID)
	if err != nil {
		return err
	}
	if in.TeamSide != "" && in.TeamSide != side {
		return apperr.Forbidden("team %s plays the %s side of fixture %s", a.teamID, side, fixtureID)
	}

	goal := models.AddGoal{PlayerID: in.PlayerID, TeamSide: side, Minute: in.Minute}
	if err := fixtures.ValidateAddGoal(goal); err != nil {
		return err
	}

	squad, err := a.api.ListPlayersByTeam(ctx, a.teamID)
	if err != nil {
		return fmt.Errorf("failed to load squad: %w", err)
	}
	if !inSquad(squad, in.PlayerID) {
		return apperr.Forbidden("player %s is not registered with team %s", in.PlayerID, a.teamID)
	}

	if err := a.api.AddGoal(ctx, fixtureID, goal); err != nil {
		return err
	}
	log.Info().Str("team_id", a.teamID).Str("fixture_id", fixtureID).Str("player_id", in.PlayerID).Msg("goal scorer reported")
	return nil
}

func inSquad(squad []models.Player, playerID string) bool {
	for _, p := range squad {
		if p.ID == playerID {
			return true
		}
	}
	return false
}
