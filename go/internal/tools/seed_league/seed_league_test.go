package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

type fakeLeague struct {
	teams   []models.Team
	players []models.Player
	failOn  string
}

func (f *fakeLeague) ListTeams(ctx context.Context) ([]models.Team, error) {
	return f.teams, nil
}

func (f *fakeLeague) CreateTeam(ctx context.Context, in models.TeamInput) (*models.Team, error) {
	if in.Name == f.failOn {
		return nil, errors.New("boom")
	}
	t := models.Team{ID: fmt.Sprintf("t%d", len(f.teams)+1), Name: in.Name, Division: in.Division, LogoURL: in.LogoURL}
	f.teams = append(f.teams, t)
	return &t, nil
}

func (f *fakeLeague) Squad(ctx context.Context, teamID string) ([]models.Player, error) {
	return models.FilterPlayersByTeam(f.players, teamID), nil
}

func (f *fakeLeague) CreatePlayer(ctx context.Context, in models.PlayerInput) (*models.Player, error) {
	p := models.Player{ID: fmt.Sprintf("p%d", len(f.players)+1), Name: in.Name, TeamID: in.TeamID, JerseyNumber: in.JerseyNumber}
	f.players = append(f.players, p)
	return &p, nil
}

func TestSeed(t *testing.T) {
	league := &fakeLeague{
		teams:   []models.Team{{ID: "t1", Name: "Club Deportivo Yagüe", Division: 1}},
		players: []models.Player{{ID: "p1", Name: "Javi Pérez", TeamID: "t1"}},
	}
	file := SeedFile{Teams: []SeedTeam{
		{Name: " club deportivo yagüe ", Division: 1, Players: []SeedPlayer{
			{Name: "javi pérez", Jersey: 9},
			{Name: "Luis Martínez", Jersey: 4},
		}},
		{Name: "Varea Veteranos", Division: 2, LogoURL: "https://example.com/varea.png", Players: []SeedPlayer{
			{Name: "Carlos Ruiz"},
		}},
	}}

	s := seed(context.Background(), league, league, file)
	assert.Equal(t, summary{teamsCreated: 1, teamsSkipped: 1, playersCreated: 2, playersSkipped: 1}, s)

	require.Len(t, league.teams, 2)
	require.NotNil(t, league.teams[1].LogoURL)
	assert.Equal(t, "https://example.com/varea.png", *league.teams[1].LogoURL)

	require.Len(t, league.players, 3)
	assert.Equal(t, "t1", league.players[1].TeamID)
	require.NotNil(t, league.players[1].JerseyNumber)
	assert.Equal(t, 4, *league.players[1].JerseyNumber)
	assert.Equal(t, "t2", league.players[2].TeamID)
	assert.Nil(t, league.players[2].JerseyNumber)

	// a second run changes nothing
	again := seed(context.Background(), league, league, file)
	assert.Equal(t, summary{teamsSkipped: 2, playersSkipped: 3}, again)
}

func TestSeedCountsFailures(t *testing.T) {
	league := &fakeLeague{failOn: "Alberite"}
	file := SeedFile{Teams: []SeedTeam{
		{Name: "Alberite", Division: 2, Players: []SeedPlayer{{Name: "Nadie"}}},
		{Name: "Nalda", Division: 2},
	}}

	s := seed(context.Background(), league, league, file)
	assert.Equal(t, summary{teamsCreated: 1, errs: 1}, s)
	assert.Empty(t, league.players)
}

func TestLoadSeedFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "seed/league.yaml", []byte(`
teams:
  - name: Varea Veteranos
    division: 2
    players:
      - name: Carlos Ruiz
        jersey: 9
`), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "seed/empty.yaml", []byte("teams: []\n"), 0o644))

	file, err := loadSeedFile(fsys, "seed/league.yaml")
	require.NoError(t, err)
	require.Len(t, file.Teams, 1)
	assert.Equal(t, 2, file.Teams[0].Division)
	assert.Equal(t, []SeedPlayer{{Name: "Carlos Ruiz", Jersey: 9}}, file.Teams[0].Players)

	_, err = loadSeedFile(fsys, "seed/empty.yaml")
	assert.Error(t, err)

	_, err = loadSeedFile(fsys, "seed/missing.yaml")
	assert.Error(t, err)
}

func TestRootCmdReadsEnvAtRunTime(t *testing.T) {
	var got options
	var gotPath string
	capture := func(ctx context.Context, fsys afero.Fs, path string, opts options) error {
		gotPath, got = path, opts
		return nil
	}

	// built before the environment is set, as happens when .env loads in main
	cmd := newRootCmd(capture)
	t.Setenv("BACKEND_URL", "https://api.ligaveteranos.es")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "secret")

	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, defaultSeedFile, gotPath)
	assert.Equal(t, options{backend: "https://api.ligaveteranos.es", username: "admin", password: "secret"}, got)

	cmd = newRootCmd(capture)
	cmd.SetArgs([]string{"--backend", "http://localhost:9000", "-u", "otro", "temporada.yaml"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, "temporada.yaml", gotPath)
	assert.Equal(t, options{backend: "http://localhost:9000", username: "otro", password: "secret"}, got)
}

func TestOptionsDefaultBackend(t *testing.T) {
	t.Setenv("BACKEND_URL", "")
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")

	assert.Equal(t, options{backend: defaultBackend}, options{}.resolve())
}
