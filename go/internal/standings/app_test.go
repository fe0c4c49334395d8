package standings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

type fakeLeagueAPI struct {
	rows    []models.StandingsRow
	scorers []models.TopScorer
	cards   []models.PlayerCards
	teams   []models.Team
	err     error
}

func (f *fakeLeagueAPI) GetStandings(ctx context.Context, division int) ([]models.StandingsRow, error) {
	return f.rows, f.err
}

func (f *fakeLeagueAPI) GetTopScorers(ctx context.Context) ([]models.TopScorer, error) {
	return f.scorers, f.err
}

func (f *fakeLeagueAPI) GetCardsStatistics(ctx context.Context) ([]models.PlayerCards, error) {
	return f.cards, f.err
}

func (f *fakeLeagueAPI) ListTeams(ctx context.Context) ([]models.Team, error) {
	return f.teams, f.err
}

func TestStandingsSortsByPosition(t *testing.T) {
	api := &fakeLeagueAPI{rows: []models.StandingsRow{
		{Position: 2, TeamName: "B", Points: 4},
		{Position: 1, TeamName: "A", Points: 7},
	}}

	table, err := NewApp(api).Standings(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "A", table.Rows[0].TeamName)
	assert.Equal(t, "B", table.Rows[1].TeamName)

	_, err = NewApp(api).Standings(context.Background(), 0)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestSplitScorersUsesTeamDivisionWhenMissing(t *testing.T) {
	teams := models.IndexTeams([]models.Team{
		{ID: "t1", Division: 1},
		{ID: "t2", Division: 2},
	})
	scorers := []models.TopScorer{
		{PlayerName: "Zubiri", TeamID: "t1", Goals: 4},
		{PlayerName: "Alesanco", TeamID: "t1", Goals: 4},
		{PlayerName: "Marín", TeamID: "t1", Goals: 9},
		{PlayerName: "Ortega", TeamID: "t2", Goals: 1},
		{PlayerName: "Sáenz", TeamID: "t2", Division: 1, Goals: 2},
		{PlayerName: "Nadie", TeamID: "t2", Goals: 0},
		{PlayerName: "Huérfano", TeamID: "gone", Goals: 3},
	}

	out := SplitScorers(scorers, teams)

	names := func(list []models.TopScorer) []string {
		var n []string
		for _, s := range list {
			n = append(n, s.PlayerName)
		}
		return n
	}
	assert.Equal(t, []string{"Marín", "Alesanco", "Zubiri", "Sáenz"}, names(out.Division1))
	assert.Equal(t, []string{"Ortega"}, names(out.Division2))
}

func TestGetStandingsFallsBackOnUpstreamError(t *testing.T) {
	r := chi.NewRouter()
	NewService(NewApp(&fakeLeagueAPI{err: errors.New("timeout")})).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/standings?division=2", nil))
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var table Table
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &table))
	assert.Equal(t, "Failed to load standings", table.Notice)
	assert.Empty(t, table.Rows)
}

func TestGetTopScorers(t *testing.T) {
	r := chi.NewRouter()
	NewService(NewApp(&fakeLeagueAPI{
		teams:   []models.Team{{ID: "t1", Division: 2}},
		scorers: []models.TopScorer{{PlayerName: "Pablo", TeamID: "t1", Goals: 3}},
	})).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/top-scorers", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var scorers Scorers
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scorers))
	assert.Empty(t, scorers.Division1)
	require.Len(t, scorers.Division2, 1)
	assert.Equal(t, 2, scorers.Division2[0].Division)
}

func TestSplitCardsOrdersByRedThenYellow(t *testing.T) {
	teams := models.IndexTeams([]models.Team{
		{ID: "t1", Division: 1},
		{ID: "t2", Division: 2},
	})
	cards := []models.PlayerCards{
		{PlayerName: "Zubiri", TeamID: "t1", YellowCards: 3},
		{PlayerName: "Alesanco", TeamID: "t1", YellowCards: 3},
		{PlayerName: "Marín", TeamID: "t1", YellowCards: 1, RedCards: 1},
		{PlayerName: "Limpio", TeamID: "t1"},
		{PlayerName: "Ortega", TeamID: "t2", YellowCards: 5},
		{PlayerName: "Huérfano", TeamID: "gone", RedCards: 2},
	}

	out := SplitCards(cards, teams)

	names := func(list []models.PlayerCards) []string {
		var n []string
		for _, c := range list {
			n = append(n, c.PlayerName)
		}
		return n
	}
	assert.Equal(t, []string{"Marín", "Alesanco", "Zubiri"}, names(out.Division1))
	assert.Equal(t, []string{"Ortega"}, names(out.Division2))
}

func TestGetCards(t *testing.T) {
	r := chi.NewRouter()
	NewService(NewApp(&fakeLeagueAPI{
		teams: []models.Team{{ID: "t1", Division: 2}},
		cards: []models.PlayerCards{{PlayerName: "Pablo", TeamID: "t1", RedCards: 1}},
	})).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cards", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var cards Cards
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
	assert.Empty(t, cards.Division1)
	require.Len(t, cards.Division2, 1)
	assert.Equal(t, "Pablo", cards.Division2[0].PlayerName)
}

func TestGetCardsFallsBackOnUpstreamError(t *testing.T) {
	r := chi.NewRouter()
	NewService(NewApp(&fakeLeagueAPI{err: errors.New("timeout")})).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cards", nil))
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var cards Cards
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
	assert.Equal(t, "Failed to load cards", cards.Notice)
	assert.Empty(t, cards.Division1)
}
