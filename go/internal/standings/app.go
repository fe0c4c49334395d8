package standings

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// LeagueAPI defines what the tables need from the league API
type LeagueAPI interface {
	GetStandings(ctx context.Context, division int) ([]models.StandingsRow, error)
	GetTopScorers(ctx context.Context) ([]models.TopScorer, error)
	GetCardsStatistics(ctx context.Context) ([]models.PlayerCards, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
}

// Table is the league table of a division.
type Table struct {
	Division int                   `json:"division"`
	Rows     []models.StandingsRow `json:"rows"`
	Notice   string                `json:"notice,omitempty"`
}

// Scorers is the top scorers board split by division.
type Scorers struct {
	Division1 []models.TopScorer `json:"division_1"`
	Division2 []models.TopScorer `json:"division_2"`
	Notice    string             `json:"notice,omitempty"`
}

// Cards is the disciplinary board split by division.
type Cards struct {
	Division1 []models.PlayerCards `json:"division_1"`
	Division2 []models.PlayerCards `json:"division_2"`
	Notice    string               `json:"notice,omitempty"`
}

// App builds the standings and top scorers views
type App struct {
	api LeagueAPI
}

// NewApp creates a new standings App
func NewApp(api LeagueAPI) *App {
	return &App{api: api}
}

// Standings returns the table of a division. Positions are computed by the
// league API; rows are re-sorted by position in case the API reorders them.
func (a *App) Standings(ctx context.Context, division int) (*Table, error) {
	if division != 1 && division != 2 {
		return nil, apperr.Invalid("division must be 1 or 2, got %d", division)
	}

	rows, err := a.api.GetStandings(ctx, division)
	if err != nil {
		return nil, fmt.Errorf("failed to load standings: %w", err)
	}
	if rows == nil {
		rows = []models.StandingsRow{}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })

	return &Table{Division: division, Rows: rows}, nil
}

// TopScorers returns the scorers of both divisions, most goals first. The
// division comes from the API when present and from the team otherwise.
func (a *App) TopScorers(ctx context.Context) (*Scorers, error) {
	var (
		scorers []models.TopScorer
		teams   []models.Team
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		scorers, err = a.api.GetTopScorers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = a.api.ListTeams(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load top scorers: %w", err)
	}

	return SplitScorers(scorers, models.IndexTeams(teams)), nil
}

// SplitScorers assigns each scorer to a division and orders each list by
// goals, then name.
func SplitScorers(scorers []models.TopScorer, teams models.TeamIndex) *Scorers {
	out := &Scorers{
		Division1: []models.TopScorer{},
		Division2: []models.TopScorer{},
	}
	for _, s := range scorers {
		if s.Goals <= 0 {
			continue
		}
		if s.Division == 0 {
			s.Division = teams[s.TeamID].Division
		}
		switch s.Division {
		case 1:
			out.Division1 = append(out.Division1, s)
		case 2:
			out.Division2 = append(out.Division2, s)
		}
	}
	byGoals := func(list []models.TopScorer) {
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].Goals != list[j].Goals {
				return list[i].Goals > list[j].Goals
			}
			return list[i].PlayerName < list[j].PlayerName
		})
	}
	byGoals(out.Division1)
	byGoals(out.Division2)
	return out
}

// CardsBoard returns the booked players of both divisions, most red cards
// first. The division comes from the player's team.
func (a *App) CardsBoard(ctx context.Context) (*Cards, error) {
	var (
		cards []models.PlayerCards
		teams []models.Team
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cards, err = a.api.GetCardsStatistics(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = a.api.ListTeams(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load cards: %w", err)
	}

	return SplitCards(cards, models.IndexTeams(teams)), nil
}

// SplitCards drops players with no cards and orders each division by red
// cards, then yellow cards, then name.
func SplitCards(cards []models.PlayerCards, teams models.TeamIndex) *Cards {
	out := &Cards{
		Division1: []models.PlayerCards{},
		Division2: []models.PlayerCards{},
	}
	for _, c := range cards {
		if c.RedCards <= 0 && c.YellowCards <= 0 {
			continue
		}
		switch teams[c.TeamID].Division {
		case 1:
			out.Division1 = append(out.Division1, c)
		case 2:
			out.Division2 = append(out.Division2, c)
		}
	}
	byCards := func(list []models.PlayerCards) {
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].RedCards != list[j].RedCards {
				return list[i].RedCards > list[j].RedCards
			}
			if list[i].YellowCards != list[j].YellowCards {
				return list[i].YellowCards > list[j].YellowCards
			}
			return list[i].PlayerName < list[j].PlayerName
		})
	}
	byCards(out.Division1)
	byCards(out.Division2)
	return out
}
