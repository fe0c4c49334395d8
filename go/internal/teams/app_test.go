package teams

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/auth"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

const teamID = "6f1c2f7e-8a43-4c55-9a0e-3d2b8f6b1a01"

type fakeTeamsAPI struct {
	teams   []models.Team
	created []models.TeamInput
	updated map[string]models.TeamInput
	deleted []string
	token   string
}

func (f *fakeTeamsAPI) ListTeams(ctx context.Context) ([]models.Team, error) {
	return f.teams, nil
}

func (f *fakeTeamsAPI) CreateTeam(ctx context.Context, in models.TeamInput) (*models.Team, error) {
	f.created = append(f.created, in)
	return &models.Team{ID: teamID, Name: in.Name, Division: in.Division, LogoURL: in.LogoURL}, nil
}

func (f *fakeTeamsAPI) UpdateTeam(ctx context.Context, id string, in models.TeamInput) (*models.Team, error) {
	if f.updated == nil {
		f.updated = map[string]models.TeamInput{}
	}
	f.updated[id] = in
	return &models.Team{ID: id, Name: in.Name, Division: in.Division}, nil
}

func (f *fakeTeamsAPI) DeleteTeam(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestListTeamsSorted(t *testing.T) {
	api := &fakeTeamsAPI{teams: []models.Team{
		{ID: "3", Name: "Varea", Division: 2},
		{ID: "1", Name: "Yagüe", Division: 1},
		{ID: "2", Name: "Cascajos", Division: 1},
	}}
	teams, err := NewApp(api).ListTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 3)
	assert.Equal(t, []string{"2", "1", "3"}, []string{teams[0].ID, teams[1].ID, teams[2].ID})
}

func TestCreateTeamValidation(t *testing.T) {
	api := &fakeTeamsAPI{}
	app := NewApp(api)

	empty := " "
	team, err := app.CreateTeam(context.Background(), models.TeamInput{Name: " Varea ", Division: 2, LogoURL: &empty})
	require.NoError(t, err)
	assert.Equal(t, "Varea", team.Name)
	require.Len(t, api.created, 1)
	assert.Nil(t, api.created[0].LogoURL)

	tests := []struct {
		name string
		in   models.TeamInput
	}{
		{"missing name", models.TeamInput{Division: 1}},
		{"division zero", models.TeamInput{Name: "A", Division: 0}},
		{"division three", models.TeamInput{Name: "A", Division: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.CreateTeam(context.Background(), tt.in)
			assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
		})
	}
	assert.Len(t, api.created, 1)
}

func newRouter(api *fakeTeamsAPI) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := auth.WithSession(r.Context(), auth.Session{Token: "admin-token"})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	NewService(func(token string) TeamsAPI {
		api.token = token
		return api
	}).RegisterRoutes(r)
	return r
}

func TestServiceRoutes(t *testing.T) {
	api := &fakeTeamsAPI{}
	h := newRouter(api)

	body, _ := json.Marshal(models.TeamInput{Name: "Varea", Division: 1})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/teams/"+teamID, bytes.NewReader(body)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin-token", api.token)
	assert.Contains(t, api.updated, teamID)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/teams/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, api.deleted)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/teams/"+teamID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{teamID}, api.deleted)
}

func TestServiceWithoutSession(t *testing.T) {
	r := chi.NewRouter()
	NewService(func(string) TeamsAPI { return &fakeTeamsAPI{} }).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
