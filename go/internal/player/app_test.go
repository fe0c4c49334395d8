package player

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

const teamA = "6f1c2f7e-8a43-4c55-9a0e-3d2b8f6b1a01"

type fakePlayersAPI struct {
	teams   []models.Team
	players []models.Player
	created []models.PlayerInput
}

func (f *fakePlayersAPI) ListTeams(ctx context.Context) ([]models.Team, error) { return f.teams, nil }

func (f *fakePlayersAPI) ListPlayers(ctx context.Context) ([]models.Player, error) {
	return f.players, nil
}

func (f *fakePlayersAPI) ListPlayersByTeam(ctx context.Context, teamID string) ([]models.Player, error) {
	return models.FilterPlayersByTeam(f.players, teamID), nil
}

func (f *fakePlayersAPI) CreatePlayer(ctx context.Context, in models.PlayerInput) (*models.Player, error) {
	f.created = append(f.created, in)
	return &models.Player{ID: "p-new", Name: in.Name, TeamID: in.TeamID, JerseyNumber: in.JerseyNumber}, nil
}

func (f *fakePlayersAPI) UpdatePlayer(ctx context.Context, id string, in models.PlayerInput) (*models.Player, error) {
	return &models.Player{ID: id, Name: in.Name, TeamID: in.TeamID}, nil
}

func (f *fakePlayersAPI) DeletePlayer(ctx context.Context, id string) error { return nil }

func intPtr(v int) *int { return &v }

func TestListPlayersJoinsTeams(t *testing.T) {
	api := &fakePlayersAPI{
		teams: []models.Team{{ID: "a", Name: "Alberite"}, {ID: "b", Name: "Berceo"}},
		players: []models.Player{
			{ID: "1", Name: "Zubiri", TeamID: "b", JerseyNumber: intPtr(9)},
			{ID: "2", Name: "Ochoa", TeamID: "a"},
			{ID: "3", Name: "Ibáñez", TeamID: "a", JerseyNumber: intPtr(4)},
			{ID: "4", Name: "Ghost", TeamID: "gone"},
		},
	}
	rows, err := NewApp(api).ListPlayers(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"3", "2", "1", "4"}, []string{rows[0].ID, rows[1].ID, rows[2].ID, rows[3].ID})
	assert.Equal(t, "Alberite", rows[0].TeamName)
	assert.Equal(t, "Unknown", rows[3].TeamName)
}

func TestSquad(t *testing.T) {
	api := &fakePlayersAPI{players: []models.Player{
		{ID: "1", Name: "B", TeamID: "a"},
		{ID: "2", Name: "A", TeamID: "a", JerseyNumber: intPtr(10)},
		{ID: "3", Name: "C", TeamID: "b"},
	}}
	squad, err := NewApp(api).Squad(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, squad, 2)
	assert.Equal(t, "2", squad[0].ID)

	squad, err = NewApp(api).Squad(context.Background(), "none")
	require.NoError(t, err)
	assert.NotNil(t, squad)
	assert.Empty(t, squad)
}

func TestCreatePlayerValidation(t *testing.T) {
	api := &fakePlayersAPI{}
	app := NewApp(api)

	p, err := app.CreatePlayer(context.Background(), models.PlayerInput{Name: " Mendi ", TeamID: teamA, JerseyNumber: intPtr(7)})
	require.NoError(t, err)
	assert.Equal(t, "Mendi", p.Name)

	bad := []models.PlayerInput{
		{TeamID: teamA},
		{Name: "X", TeamID: "team-a"},
		{Name: "X", TeamID: teamA, JerseyNumber: intPtr(0)},
		{Name: "X", TeamID: teamA, JerseyNumber: intPtr(100)},
	}
	for _, in := range bad {
		_, err := app.CreatePlayer(context.Background(), in)
		assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
	}
	assert.Len(t, api.created, 1)
}
