package copa

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/matchclock"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// CopaAPI defines what the Copa views need from the league API
type CopaAPI interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	ListCopaGroups(ctx context.Context) ([]models.CopaGroup, error)
	ListCopaFixtures(ctx context.Context) ([]models.CopaFixture, error)
	ListCopaBrackets(ctx context.Context) ([]models.CopaBracket, error)
	GetCopaStandings(ctx context.Context, group string) ([]models.StandingsRow, error)
}

// App builds the Copa views
type App struct {
	api CopaAPI
}

// NewApp creates a new copa App
func NewApp(api CopaAPI) *App {
	return &App{api: api}
}

// Page loads groups, teams, fixtures and brackets, then the table of every
// group. A failed table only empties that group.
func (a *App) Page(ctx context.Context, group, jornada string, now time.Time) (*Page, error) {
	group, jornada, err := normalizeFilters(group, jornada)
	if err != nil {
		return nil, err
	}

	var (
		groups   []models.CopaGroup
		teams    []models.Team
		fixtures []models.CopaFixture
		brackets []models.CopaBracket
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { groups, err = a.api.ListCopaGroups(gctx); return })
	g.Go(func() (err error) { teams, err = a.api.ListTeams(gctx); return })
	g.Go(func() (err error) { fixtures, err = a.api.ListCopaFixtures(gctx); return })
	g.Go(func() (err error) { brackets, err = a.api.ListCopaBrackets(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load copa page: %w", err)
	}

	tables := a.groupTables(ctx, groups)
	idx := models.IndexTeams(teams)

	page := &Page{
		Groups:          BuildGroups(groups, tables, idx),
		SelectedGroup:   group,
		SelectedJornada: jornada,
		Fixtures:        BuildFixtures(fixtures, group, jornada, idx, now),
		Rounds:          BuildRounds(brackets, idx, now),
	}
	page.Champion = champion(brackets, idx)
	return page, nil
}

func (a *App) groupTables(ctx context.Context, groups []models.CopaGroup) map[string][]models.StandingsRow {
	var (
		mu     sync.Mutex
		g      errgroup.Group
		tables = make(map[string][]models.StandingsRow, len(groups))
	)
	for _, grp := range groups {
		name := grp.GroupName
		g.Go(func() error {
			rows, err := a.api.GetCopaStandings(ctx, name)
			if err != nil {
				log.Warn().Err(err).Str("group", name).Msg("failed to load copa group standings")
				rows = nil
			}
			if rows == nil {
				rows = []models.StandingsRow{}
			}
			mu.Lock()
			tables[name] = rows
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return tables
}

func normalizeFilters(group, jornada string) (string, string, error) {
	if group == "" {
		group = AllFilter
	}
	if jornada == "" {
		jornada = AllFilter
	}
	if group != AllFilter {
		if err := ValidateGroupName(group); err != nil {
			return "", "", err
		}
	}
	if jornada != AllFilter {
		n, err := strconv.Atoi(jornada)
		if err != nil {
			return "", "", apperr.Invalid("jornada must be a number or %q, got %q", AllFilter, jornada)
		}
		if err := ValidateJornada(n); err != nil {
			return "", "", err
		}
	}
	return group, jornada, nil
}

// BuildGroups orders the groups A to D and flags the qualifying positions.
func BuildGroups(groups []models.CopaGroup, tables map[string][]models.StandingsRow, teams models.TeamIndex) []Group {
	out := make([]Group, 0, len(groups))
	for _, grp := range groups {
		rows := tables[grp.GroupName]
		standings := make([]StandingRow, 0, len(rows))
		for _, row := range rows {
			standings = append(standings, StandingRow{
				StandingsRow: row,
				Logo:         teams.Logo(row.TeamID),
				Qualified:    row.Position >= 1 && row.Position <= QualifyingPositions,
			})
		}
		teamIDs := grp.TeamIDs
		if teamIDs == nil {
			teamIDs = []string{}
		}
		out = append(out, Group{Name: grp.GroupName, TeamIDs: teamIDs, Standings: standings})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// BuildFixtures filters the group-stage matches and orders them by jornada,
// then kickoff.
func BuildFixtures(fixtures []models.CopaFixture, group, jornada string, teams models.TeamIndex, now time.Time) []FixtureRow {
	out := []FixtureRow{}
	for _, f := range fixtures {
		if group != AllFilter && f.GroupName != group {
			continue
		}
		if jornada != AllFilter && strconv.Itoa(f.Jornada) != jornada {
			continue
		}
		out = append(out, FixtureRow{
			ID:          f.ID,
			GroupName:   f.GroupName,
			Jornada:     f.Jornada,
			HomeTeam:    teams.Name(f.HomeTeamID),
			AwayTeam:    teams.Name(f.AwayTeamID),
			HomeLogo:    teams.Logo(f.HomeTeamID),
			AwayLogo:    teams.Logo(f.AwayTeamID),
			MatchDate:   f.MatchDate.Time,
			Display:     matchclock.Describe(f.Status, f.MatchDate.Time, f.HomeScore, f.AwayScore, now),
			MatchEvents: f.MatchEvents,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Jornada != out[j].Jornada {
			return out[i].Jornada < out[j].Jornada
		}
		return out[i].MatchDate.Before(out[j].MatchDate)
	})
	return out
}

// BuildRounds groups bracket matches by round in bracket order and sorts each
// round by match position. Rounds without matches are kept so the bracket
// renders its full shape.
func BuildRounds(brackets []models.CopaBracket, teams models.TeamIndex, now time.Time) []Round {
	byRound := make(map[models.RoundType][]BracketMatch)
	for _, b := range brackets {
		m := BracketMatch{
			ID:            b.ID,
			MatchPosition: b.MatchPosition,
		}
		if b.HomeTeamID != nil {
			m.HomeTeam = teams.Name(*b.HomeTeamID)
		}
		if b.AwayTeamID != nil {
			m.AwayTeam = teams.Name(*b.AwayTeamID)
		}
		if b.Status == models.FixtureStatusCompleted && b.WinnerTeamID != nil {
			m.Winner = teams.Name(*b.WinnerTeamID)
		}
		if b.MatchDate != nil && !b.MatchDate.IsZero() {
			t := b.MatchDate.Time
			m.MatchDate = &t
			m.Display = matchclock.Describe(b.Status, t, b.HomeScore, b.AwayScore, now)
		} else if b.Status == models.FixtureStatusCompleted {
			m.Display = matchclock.Describe(b.Status, time.Time{}, b.HomeScore, b.AwayScore, now)
		} else {
			m.Display = matchclock.Unscheduled()
		}
		byRound[b.RoundType] = append(byRound[b.RoundType], m)
	}

	rounds := make([]Round, 0, len(models.KnockoutRounds))
	for _, rt := range models.KnockoutRounds {
		matches := byRound[rt]
		if matches == nil {
			matches = []BracketMatch{}
		}
		sort.SliceStable(matches, func(i, j int) bool { return matches[i].MatchPosition < matches[j].MatchPosition })
		rounds = append(rounds, Round{RoundType: rt, Matches: matches})
	}
	return rounds
}

func champion(brackets []models.CopaBracket, teams models.TeamIndex) string {
	for _, b := range brackets {
		if b.RoundType == models.Final && b.Status == models.FixtureStatusCompleted && b.WinnerTeamID != nil {
			return teams.Name(*b.WinnerTeamID)
		}
	}
	return ""
}
