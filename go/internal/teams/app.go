package teams

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// TeamsAPI defines what the app layer needs from the league API
type TeamsAPI interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	CreateTeam(ctx context.Context, in models.TeamInput) (*models.Team, error)
	UpdateTeam(ctx context.Context, id string, in models.TeamInput) (*models.Team, error)
	DeleteTeam(ctx context.Context, id string) error
}

// App handles teams business logic
type App struct {
	api TeamsAPI
}

// NewApp creates a new teams App
func NewApp(api TeamsAPI) *App {
	return &App{
		api: api,
	}
}

// ListTeams returns every team ordered by division and name
func (a *App) ListTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := a.api.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	SortTeams(teams)
	if teams == nil {
		teams = []models.Team{}
	}
	return teams, nil
}

// SortTeams orders teams by division, then name.
func SortTeams(teams []models.Team) {
	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].Division != teams[j].Division {
			return teams[i].Division < teams[j].Division
		}
		return teams[i].Name < teams[j].Name
	})
}

// CreateTeam creates a new team with validation
func (a *App) CreateTeam(ctx context.Context, in models.TeamInput) (*models.Team, error) {
	in, err := normalizeTeamInput(in)
	if err != nil {
		return nil, err
	}

	team, err := a.api.CreateTeam(ctx, in)
	if err != nil {
		return nil, err
	}

	log.Info().Str("team_id", team.ID).Str("name", team.Name).Int("division", team.Division).Msg("created team")
	return team, nil
}

// UpdateTeam replaces the name, division and logo of a team
func (a *App) UpdateTeam(ctx context.Context, id string, in models.TeamInput) (*models.Team, error) {
	in, err := normalizeTeamInput(in)
	if err != nil {
		return nil, err
	}

	team, err := a.api.UpdateTeam(ctx, id, in)
	if err != nil {
		return nil, err
	}

	log.Info().Str("team_id", team.ID).Str("name", team.Name).Msg("updated team")
	return team, nil
}

// DeleteTeam deletes a team by ID. The API refuses teams that still have
// players or fixtures.
func (a *App) DeleteTeam(ctx context.Context, id string) error {
	if err := a.api.DeleteTeam(ctx, id); err != nil {
		return err
	}
	log.Info().Str("team_id", id).Msg("deleted team")
	return nil
}

func normalizeTeamInput(in models.TeamInput) (models.TeamInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return in, apperr.Invalid("team name is required")
	}
	if in.Division != 1 && in.Division != 2 {
		return in, apperr.Invalid("division must be 1 or 2, got %d", in.Division)
	}
	if in.LogoURL != nil {
		logo := strings.TrimSpace(*in.LogoURL)
		if logo == "" {
			in.LogoURL = nil
		} else {
			in.LogoURL = &logo
		}
	}
	return in, nil
}
