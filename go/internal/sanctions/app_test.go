package sanctions

import (
	"context"
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
	sanctions []models.Sanction
	err       error
	updated   map[string]models.SanctionUpdate
}

func (f *fakeLeagueAPI) ListSanctions(ctx context.Context) ([]models.Sanction, error) {
	return f.sanctions, f.err
}

func (f *fakeLeagueAPI) UpdateSanction(ctx context.Context, playerID string, in models.SanctionUpdate) error {
	if f.updated == nil {
		f.updated = map[string]models.SanctionUpdate{}
	}
	f.updated[playerID] = in
	return f.err
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestBuildPageSplitsRedAndYellow(t *testing.T) {
	page := BuildPage([]models.Sanction{
		{PlayerName: "A", Division: 1, TotalYellowCards: 2},
		{PlayerName: "B", Division: 1, TotalYellowCards: 1, TotalRedCards: 1,
			SuspensionGames: intPtr(2), SuspensionFromWeek: intPtr(4), SuspensionToWeek: intPtr(5)},
		{PlayerName: "C", Division: 1, TotalRedCards: 2},
		{PlayerName: "D", Division: 2, TotalYellowCards: 4},
		{PlayerName: "E", Division: 2},
		{PlayerName: "F", Division: 2, TotalRedCards: 1, SuspensionGames: intPtr(1), SuspensionFromWeek: intPtr(3)},
	})

	require.Len(t, page.Divisions, 2)
	d1 := page.Divisions[0]
	require.Len(t, d1.RedCards, 2)
	assert.Equal(t, "C", d1.RedCards[0].PlayerName)
	assert.True(t, d1.RedCards[0].Suspension.Pending)
	assert.Equal(t, "B", d1.RedCards[1].PlayerName)
	assert.False(t, d1.RedCards[1].Suspension.Pending)
	assert.Equal(t, 4, *d1.RedCards[1].Suspension.FromWeek)
	require.Len(t, d1.YellowCards, 1)
	assert.Equal(t, "A", d1.YellowCards[0].PlayerName)

	d2 := page.Divisions[1]
	require.Len(t, d2.YellowCards, 1)
	require.Len(t, d2.RedCards, 1)
	assert.Nil(t, d2.RedCards[0].Suspension.FromWeek, "half a week range is not shown")
	assert.Equal(t, 1, *d2.RedCards[0].Suspension.Games)
}

func TestUpdateValidates(t *testing.T) {
	api := &fakeLeagueAPI{}
	app := NewApp(api)

	err := app.Update(context.Background(), "p1", models.SanctionUpdate{SuspensionGames: intPtr(-1)})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	err = app.Update(context.Background(), "p1", models.SanctionUpdate{
		SuspensionFromWeek: intPtr(6), SuspensionToWeek: intPtr(5),
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
	assert.Empty(t, api.updated)

	err = app.Update(context.Background(), "p1", models.SanctionUpdate{
		SuspensionGames: intPtr(2), Notes: strPtr("   "),
	})
	require.NoError(t, err)
	assert.Nil(t, api.updated["p1"].Notes)
}

func TestGetSanctionsFallback(t *testing.T) {
	r := chi.NewRouter()
	NewService(NewApp(&fakeLeagueAPI{err: errors.New("down")})).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sanctions", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load sanctions")
}
