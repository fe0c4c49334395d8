package users

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

// UsersAPI defines what the app layer needs from the league API
type UsersAPI interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	Register(ctx context.Context, in models.UserInput) (*models.User, error)
}

// Row is a dashboard account with the name of the team it represents.
type Row struct {
	models.User
	TeamName string `json:"team_name,omitempty"`
}

// App handles dashboard accounts
type App struct {
	api UsersAPI
}

// NewApp creates a new users App
func NewApp(api UsersAPI) *App {
	return &App{
		api: api,
	}
}

// ListUsers joins every account with its team
func (a *App) ListUsers(ctx context.Context) ([]Row, error) {
	var (
		users []models.User
		teams []models.Team
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { users, err = a.api.ListUsers(gctx); return })
	g.Go(func() (err error) { teams, err = a.api.ListTeams(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	idx := models.IndexTeams(teams)
	rows := make([]Row, 0, len(users))
	for _, u := range users {
		row := Row{User: u}
		if u.TeamID != nil {
			row.TeamName = idx.Name(*u.TeamID)
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Role != rows[j].Role {
			return rows[i].Role == models.RoleAdmin
		}
		return rows[i].Username < rows[j].Username
	})
	return rows, nil
}

// CreateUser registers a new account with validation
func (a *App) CreateUser(ctx context.Context, in models.UserInput) (*models.User, error) {
	in, err := normalizeUserInput(in)
	if err != nil {
		return nil, err
	}

	user, err := a.api.Register(ctx, in)
	if err != nil {
		return nil, err
	}

	log.Info().Str("user_id", user.ID).Str("username", user.Username).Str("role", string(user.Role)).Msg("created user")
	return user, nil
}

func normalizeUserInput(in models.UserInput) (models.UserInput, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" {
		return in, apperr.Invalid("username is required")
	}
	if in.Password == "" {
		return in, apperr.Invalid("password is required")
	}
	if !in.Role.Valid() {
		return in, apperr.Invalid("role must be admin or team, got %q", in.Role)
	}

	if in.TeamID != nil && strings.TrimSpace(*in.TeamID) == "" {
		in.TeamID = nil
	}
	switch in.Role {
	case models.RoleTeam:
		if in.TeamID == nil {
			return in, apperr.Invalid("team users need a team_id")
		}
		if _, err := uuid.Parse(*in.TeamID); err != nil {
			return in, apperr.Invalid("invalid team_id %q", *in.TeamID)
		}
	case models.RoleAdmin:
		in.TeamID = nil
	}
	return in, nil
}
