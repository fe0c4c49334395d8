package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

const teamA = "6f1c2f7e-8a43-4c55-9a0e-3d2b8f6b1a01"

type fakeUsersAPI struct {
	users      []models.User
	teams      []models.Team
	registered []models.UserInput
}

func (f *fakeUsersAPI) ListUsers(ctx context.Context) ([]models.User, error) { return f.users, nil }
func (f *fakeUsersAPI) ListTeams(ctx context.Context) ([]models.Team, error) { return f.teams, nil }

func (f *fakeUsersAPI) Register(ctx context.Context, in models.UserInput) (*models.User, error) {
	f.registered = append(f.registered, in)
	return &models.User{ID: "u-new", Username: in.Username, Role: in.Role, TeamID: in.TeamID}, nil
}

func strPtr(s string) *string { return &s }

func TestListUsers(t *testing.T) {
	api := &fakeUsersAPI{
		users: []models.User{
			{ID: "2", Username: "zeta", Role: models.RoleTeam, TeamID: strPtr(teamA)},
			{ID: "1", Username: "root", Role: models.RoleAdmin},
		},
		teams: []models.Team{{ID: teamA, Name: "Alberite"}},
	}
	rows, err := NewApp(api).ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "root", rows[0].Username)
	assert.Empty(t, rows[0].TeamName)
	assert.Equal(t, "Alberite", rows[1].TeamName)
}

func TestCreateUser(t *testing.T) {
	api := &fakeUsersAPI{}
	app := NewApp(api)

	_, err := app.CreateUser(context.Background(), models.UserInput{Username: "alb", Password: "pw", Role: models.RoleTeam, TeamID: strPtr(teamA)})
	require.NoError(t, err)

	_, err = app.CreateUser(context.Background(), models.UserInput{Username: "boss", Password: "pw", Role: models.RoleAdmin, TeamID: strPtr(teamA)})
	require.NoError(t, err)
	require.Len(t, api.registered, 2)
	assert.Nil(t, api.registered[1].TeamID)

	tests := []struct {
		name string
		in   models.UserInput
	}{
		{"no username", models.UserInput{Password: "pw", Role: models.RoleAdmin}},
		{"no password", models.UserInput{Username: "x", Role: models.RoleAdmin}},
		{"bad role", models.UserInput{Username: "x", Password: "pw", Role: "coach"}},
		{"team without team_id", models.UserInput{Username: "x", Password: "pw", Role: models.RoleTeam, TeamID: strPtr(" ")}},
		{"team with bad team_id", models.UserInput{Username: "x", Password: "pw", Role: models.RoleTeam, TeamID: strPtr("abc")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.CreateUser(context.Background(), tt.in)
			assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
		})
	}
	assert.Len(t, api.registered, 2)
}
