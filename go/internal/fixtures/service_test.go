package fixtures

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(api *fakeLeagueAPI, now time.Time) http.Handler {
	r := chi.NewRouter()
	NewService(NewApp(api), clockwork.NewFakeClockAt(now)).RegisterRoutes(r)
	return r
}

func TestGetFixturesPage(t *testing.T) {
	router := newTestRouter(testAPI(), kickoff.Add(70*time.Minute))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fixtures?division=1&week=10", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var page Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Weeks, 1)
	assert.Equal(t, "55'", page.Weeks[0].Fixtures[0].Display.Label)
}

func TestGetFixturesPageFallsBackToEmptyBoard(t *testing.T) {
	api := testAPI()
	api.fixturesErr = errors.New("backend down")
	router := newTestRouter(api, kickoff)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fixtures?division=2", nil))
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var page Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, LoadFailedNotice, page.Notice)
	assert.Equal(t, 2, page.Division)
	assert.Empty(t, page.Weeks)
}

func TestGetFixturesPageRejectsDivision(t *testing.T) {
	router := newTestRouter(testAPI(), kickoff)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fixtures?division=5", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
