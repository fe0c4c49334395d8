package teamdash

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/auth"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

const (
	ownTeam   = "11111111-1111-4111-8111-111111111111"
	rivalTeam = "22222222-2222-4222-8222-222222222222"
	thirdTeam = "55555555-5555-4555-8555-555555555555"
	homeGame  = "33333333-3333-4333-8333-333333333333"
	awayGame  = "66666666-6666-4666-8666-666666666666"
	otherGame = "77777777-7777-4777-8777-777777777777"
	ownPlayer = "44444444-4444-4444-8444-444444444444"
	rivalPlay = "88888888-8888-4888-8888-888888888888"
)

var kickoff = time.Date(2024, 10, 5, 10, 0, 0, 0, time.UTC)

type fakeTeamAPI struct {
	fixtures []models.Fixture
	teams    []models.Team
	players  []models.Player
	updates  map[string]models.FixtureUpdate
	goals    []models.AddGoal
}

func (f *fakeTeamAPI) ListFixtures(ctx context.Context) ([]models.Fixture, error) {
	return f.fixtures, nil
}
func (f *fakeTeamAPI) ListTeams(ctx context.Context) ([]models.Team, error) { return f.teams, nil }

func (f *fakeTeamAPI) ListPlayersByTeam(ctx context.Context, teamID string) ([]models.Player, error) {
	return models.FilterPlayersByTeam(f.players, teamID), nil
}

func (f *fakeTeamAPI) UpdateFixture(ctx context.Context, id string, in models.FixtureUpdate) (*models.Fixture, error) {
	if f.updates == nil {
		f.updates = map[string]models.FixtureUpdate{}
	}
	f.updates[id] = in
	return &models.Fixture{ID: id, HomeScore: in.HomeScore, AwayScore: in.AwayScore, Status: *in.Status}, nil
}

func (f *fakeTeamAPI) AddGoal(ctx context.Context, fixtureID string, in models.AddGoal) error {
	f.goals = append(f.goals, in)
	return nil
}

func intPtr(v int) *int { return &v }

func seeded() *fakeTeamAPI {
	return &fakeTeamAPI{
		fixtures: []models.Fixture{
			{ID: awayGame, HomeTeamID: rivalTeam, AwayTeamID: ownTeam, MatchDate: models.Timestamp{Time: kickoff.Add(7 * 24 * time.Hour)}},
			{ID: homeGame, HomeTeamID: ownTeam, AwayTeamID: rivalTeam, MatchDate: models.Timestamp{Time: kickoff}},
			{ID: otherGame, HomeTeamID: rivalTeam, AwayTeamID: thirdTeam, MatchDate: models.Timestamp{Time: kickoff}},
		},
		teams: []models.Team{{ID: ownTeam, Name: "Alberite"}, {ID: rivalTeam, Name: "Berceo"}},
		players: []models.Player{
			{ID: ownPlayer, Name: "Zubiri", TeamID: ownTeam},
			{ID: rivalPlay, Name: "Ochoa", TeamID: rivalTeam},
		},
	}
}

func TestDashboard(t *testing.T) {
	d, err := NewApp(seeded(), ownTeam).Dashboard(context.Background(), kickoff.Add(70*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "Alberite", d.TeamName)
	require.Len(t, d.Fixtures, 2)
	assert.Equal(t, homeGame, d.Fixtures[0].ID)
	assert.Equal(t, "55'", d.Fixtures[0].Display.Label)
	assert.Equal(t, awayGame, d.Fixtures[1].ID)
	require.Len(t, d.Squad, 1)
	assert.Equal(t, ownPlayer, d.Squad[0].ID)
}

func TestReportScore(t *testing.T) {
	api := seeded()
	app := NewApp(api, ownTeam)
	ctx := context.Background()

	f, err := app.ReportScore(ctx, homeGame, ScoreReport{HomeScore: intPtr(3), AwayScore: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, models.FixtureStatusCompleted, f.Status)
	require.Contains(t, api.updates, homeGame)
	assert.Equal(t, models.FixtureStatusCompleted, *api.updates[homeGame].Status)

	_, err = app.ReportScore(ctx, otherGame, ScoreReport{HomeScore: intPtr(0), AwayScore: intPtr(0)})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = app.ReportScore(ctx, homeGame, ScoreReport{HomeScore: intPtr(1)})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = app.ReportScore(ctx, "88888888-0000-4000-8000-000000000000", ScoreReport{HomeScore: intPtr(1), AwayScore: intPtr(1)})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Len(t, api.updates, 1)
}

func TestAddScorerOwnSideOnly(t *testing.T) {
	api := seeded()
	app := NewApp(api, ownTeam)
	ctx := context.Background()

	require.NoError(t, app.AddScorer(ctx, awayGame, ScorerReport{PlayerID: ownPlayer, Minute: intPtr(12)}))
	require.Len(t, api.goals, 1)
	assert.Equal(t, models.SideAway, api.goals[0].TeamSide)

	err := app.AddScorer(ctx, awayGame, ScorerReport{PlayerID: ownPlayer, TeamSide: models.SideHome})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	err = app.AddScorer(ctx, homeGame, ScorerReport{PlayerID: rivalPlay})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	err = app.AddScorer(ctx, otherGame, ScorerReport{PlayerID: ownPlayer})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	assert.Len(t, api.goals, 1)
}

func TestServiceRequiresTeam(t *testing.T) {
	api := seeded()
	r := chi.NewRouter()
	var sess auth.Session
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), sess)))
		})
	})
	NewService(func(string) TeamAPI { return api }, clockwork.NewFakeClockAt(kickoff)).RegisterRoutes(r)

	sess = auth.Session{Token: "t", User: models.User{Username: "ghost", Role: models.RoleTeam}}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	team := ownTeam
	sess.User.TeamID = &team
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	body, _ := json.Marshal(ScorerReport{PlayerID: rivalPlay})
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/fixtures/"+homeGame+"/goals", bytes.NewReader(body)))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
