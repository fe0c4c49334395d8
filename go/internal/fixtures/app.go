package fixtures

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/matchclock"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// LeagueAPI defines what the fixtures board needs from the league API
type LeagueAPI interface {
	ListFixtures(ctx context.Context) ([]models.Fixture, error)
	ListFixturesByDivision(ctx context.Context, division int) ([]models.Fixture, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
}

// App builds the fixtures views
type App struct {
	api LeagueAPI
}

// NewApp creates a new fixtures App
func NewApp(api LeagueAPI) *App {
	return &App{api: api}
}

// FixturesPage loads the fixtures of a division together with the teams and
// renders the board as of now. week is a week number or AllWeeks.
func (a *App) FixturesPage(ctx context.Context, division int, week string, now time.Time) (*Page, error) {
	if division != 1 && division != 2 {
		return nil, apperr.Invalid("division must be 1 or 2, got %d", division)
	}
	if week == "" {
		week = AllWeeks
	}
	if week != AllWeeks {
		if _, err := strconv.Atoi(week); err != nil {
			return nil, apperr.Invalid("week must be a number or %q, got %q", AllWeeks, week)
		}
	}

	var (
		fixtures []models.Fixture
		teams    []models.Team
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fixtures, err = a.api.ListFixturesByDivision(gctx, division)
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = a.api.ListTeams(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load fixtures page: %w", err)
	}

	return BuildPage(division, week, fixtures, models.IndexTeams(teams), now), nil
}

// BuildPage groups fixtures by week, ascending, and keeps only the selected
// week unless week is AllWeeks. A selected week without fixtures yields an
// empty week rather than no weeks.
func BuildPage(division int, week string, fixtures []models.Fixture, teams models.TeamIndex, now time.Time) *Page {
	grouped := make(map[int][]Row)
	for _, f := range fixtures {
		grouped[f.WeekNumber] = append(grouped[f.WeekNumber], NewRow(f, teams, now))
	}

	available := make([]int, 0, len(grouped))
	for n := range grouped {
		available = append(available, n)
	}
	sort.Ints(available)

	page := &Page{
		Division:       division,
		SelectedWeek:   week,
		AvailableWeeks: available,
		Weeks:          []Week{},
		GeneratedAt:    now,
	}

	if week != AllWeeks {
		n, _ := strconv.Atoi(week)
		rows := grouped[n]
		if rows == nil {
			rows = []Row{}
		}
		page.Weeks = append(page.Weeks, Week{Number: n, Fixtures: rows})
		return page
	}

	for _, n := range available {
		page.Weeks = append(page.Weeks, Week{Number: n, Fixtures: grouped[n]})
	}
	return page
}

// NewRow resolves team names and attaches the match display.
func NewRow(f models.Fixture, teams models.TeamIndex, now time.Time) Row {
	return Row{
		ID:          f.ID,
		Division:    f.Division,
		WeekNumber:  f.WeekNumber,
		HomeTeamID:  f.HomeTeamID,
		AwayTeamID:  f.AwayTeamID,
		HomeTeam:    teams.Name(f.HomeTeamID),
		AwayTeam:    teams.Name(f.AwayTeamID),
		HomeLogo:    teams.Logo(f.HomeTeamID),
		AwayLogo:    teams.Logo(f.AwayTeamID),
		MatchDate:   f.MatchDate.Time,
		Display:     matchclock.DescribeFixture(f, now),
		MatchEvents: f.MatchEvents,
	}
}

// LiveBoard returns the fixtures of both divisions that are in play or at
// the break, earliest kickoff first.
func (a *App) LiveBoard(ctx context.Context, now time.Time) (*LiveBoard, error) {
	var (
		fixtures []models.Fixture
		teams    []models.Team
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fixtures, err = a.api.ListFixtures(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = a.api.ListTeams(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load live board: %w", err)
	}

	return BuildLiveBoard(fixtures, models.IndexTeams(teams), now), nil
}

// BuildLiveBoard keeps the fixtures whose display is live.
func BuildLiveBoard(fixtures []models.Fixture, teams models.TeamIndex, now time.Time) *LiveBoard {
	board := &LiveBoard{Fixtures: []Row{}, GeneratedAt: now}
	for _, f := range fixtures {
		row := NewRow(f, teams, now)
		if row.Display.Live {
			board.Fixtures = append(board.Fixtures, row)
		}
	}
	sort.SliceStable(board.Fixtures, func(i, j int) bool {
		return board.Fixtures[i].MatchDate.Before(board.Fixtures[j].MatchDate)
	})
	return board
}
