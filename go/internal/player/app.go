package player

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// MaxJerseyNumber is the highest shirt number the league registers.
const MaxJerseyNumber = 99

// PlayersAPI defines what the app layer needs from the league API
type PlayersAPI interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	ListPlayers(ctx context.Context) ([]models.Player, error)
	ListPlayersByTeam(ctx context.Context, teamID string) ([]models.Player, error)
	CreatePlayer(ctx context.Context, in models.PlayerInput) (*models.Player, error)
	UpdatePlayer(ctx context.Context, id string, in models.PlayerInput) (*models.Player, error)
	DeletePlayer(ctx context.Context, id string) error
}

// Row is a player with the name of their team.
type Row struct {
	models.Player
	TeamName string `json:"team_name"`
}

// App handles player registration
type App struct {
	api PlayersAPI
}

// NewApp creates a new player App
func NewApp(api PlayersAPI) *App {
	return &App{api: api}
}

// ListPlayers joins every player with their team, ordered by team then shirt.
func (a *App) ListPlayers(ctx context.Context) ([]Row, error) {
	var (
		players []models.Player
		teams   []models.Team
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { players, err = a.api.ListPlayers(gctx); return })
	g.Go(func() (err error) { teams, err = a.api.ListTeams(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	return BuildRows(players, models.IndexTeams(teams)), nil
}

// Squad returns the players of one team.
func (a *App) Squad(ctx context.Context, teamID string) ([]models.Player, error) {
	players, err := a.api.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load squad of team %s: %w", teamID, err)
	}
	SortSquad(players)
	if players == nil {
		players = []models.Player{}
	}
	return players, nil
}

// BuildRows resolves team names and sorts the roster.
func BuildRows(players []models.Player, idx models.TeamIndex) []Row {
	rows := make([]Row, 0, len(players))
	for _, p := range players {
		rows = append(rows, Row{Player: p, TeamName: idx.Name(p.TeamID)})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TeamName != rows[j].TeamName {
			return rows[i].TeamName < rows[j].TeamName
		}
		return lessPlayer(rows[i].Player, rows[j].Player)
	})
	return rows
}

// SortSquad orders players by shirt number, unnumbered players last.
func SortSquad(players []models.Player) {
	sort.SliceStable(players, func(i, j int) bool { return lessPlayer(players[i], players[j]) })
}

func lessPlayer(a, b models.Player) bool {
	switch {
	case a.JerseyNumber != nil && b.JerseyNumber != nil && *a.JerseyNumber != *b.JerseyNumber:
		return *a.JerseyNumber < *b.JerseyNumber
	case a.JerseyNumber != nil && b.JerseyNumber == nil:
		return true
	case a.JerseyNumber == nil && b.JerseyNumber != nil:
		return false
	}
	return a.Name < b.Name
}

// CreatePlayer registers a player with a team
func (a *App) CreatePlayer(ctx context.Context, in models.PlayerInput) (*models.Player, error) {
	in, err := normalizePlayerInput(in)
	if err != nil {
		return nil, err
	}

	p, err := a.api.CreatePlayer(ctx, in)
	if err != nil {
		return nil, err
	}

	log.Info().Str("player_id", p.ID).Str("name", p.Name).Str("team_id", p.TeamID).Msg("created player")
	return p, nil
}

// UpdatePlayer changes a player's name, team or shirt
func (a *App) UpdatePlayer(ctx context.Context, id string, in models.PlayerInput) (*models.Player, error) {
	in, err := normalizePlayerInput(in)
	if err != nil {
		return nil, err
	}

	p, err := a.api.UpdatePlayer(ctx, id, in)
	if err != nil {
		return nil, err
	}

	log.Info().Str("player_id", p.ID).Msg("updated player")
	return p, nil
}

// DeletePlayer removes a player
func (a *App) DeletePlayer(ctx context.Context, id string) error {
	if err := a.api.DeletePlayer(ctx, id); err != nil {
		return err
	}
	log.Info().Str("player_id", id).Msg("deleted player")
	return nil
}

func normalizePlayerInput(in models.PlayerInput) (models.PlayerInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return in, apperr.Invalid("player name is required")
	}
	if _, err := uuid.Parse(in.TeamID); err != nil {
		return in, apperr.Invalid("invalid team_id %q", in.TeamID)
	}
	if in.JerseyNumber != nil && (*in.JerseyNumber < 1 || *in.JerseyNumber > MaxJerseyNumber) {
		return in, apperr.Invalid("jersey_number must be between 1 and %d", MaxJerseyNumber)
	}
	return in, nil
}
