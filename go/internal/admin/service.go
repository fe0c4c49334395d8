package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/ligaveteranos/go/internal/auth"
	"github.com/mcdev12/ligaveteranos/go/internal/content"
	"github.com/mcdev12/ligaveteranos/go/internal/copa"
	"github.com/mcdev12/ligaveteranos/go/internal/httpapi"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
	"github.com/mcdev12/ligaveteranos/go/internal/player"
	"github.com/mcdev12/ligaveteranos/go/internal/sanctions"
	"github.com/mcdev12/ligaveteranos/go/internal/teams"
	"github.com/mcdev12/ligaveteranos/go/internal/users"
)

// LeagueAPI is everything the admin dashboard calls on the league API.
type LeagueAPI interface {
	FixturesAPI
	teams.TeamsAPI
	player.PlayersAPI
	users.UsersAPI
	content.ContentAPI
	sanctions.LeagueAPI
	copa.AdminAPI
}

// Service serves the admin dashboard. Every route expects an admin session.
type Service struct {
	forToken func(token string) LeagueAPI
	branding content.BrandingStore
	clock    clockwork.Clock
}

// NewService creates a new admin HTTP service
func NewService(forToken func(token string) LeagueAPI, branding content.BrandingStore, clock clockwork.Clock) *Service {
	return &Service{forToken: forToken, branding: branding, clock: clock}
}

// RegisterRoutes mounts the admin routes. The caller applies the auth guard.
func (s *Service) RegisterRoutes(r chi.Router) {
	teams.NewService(func(t string) teams.TeamsAPI { return s.forToken(t) }).RegisterRoutes(r)
	player.NewService(func(t string) player.PlayersAPI { return s.forToken(t) }).RegisterRoutes(r)
	users.NewService(func(t string) users.UsersAPI { return s.forToken(t) }).RegisterRoutes(r)

	r.Route("/fixtures", func(r chi.Router) {
		r.Get("/", s.GetFixturesTab)
		r.Post("/", s.CreateFixture)
		r.Post("/bulk", s.CreateBulk)
		r.Route("/{fixtureID}", func(r chi.Router) {
			r.Get("/", s.GetEditView)
			r.Put("/", s.UpdateFixture)
			r.Delete("/", s.DeleteFixture)
			r.Post("/goals", s.AddGoal)
			r.Delete("/goals", s.RemoveGoal)
			r.Post("/cards", s.AddCard)
			r.Delete("/cards", s.RemoveCard)
		})
	})

	r.Get("/instagram-posts", s.ListPosts)
	r.Post("/instagram-posts", s.CreatePost)
	r.Delete("/instagram-posts/{postID}", s.DeletePost)
	r.Put("/branding", s.UpdateBranding)

	r.Get("/sanctions", s.ListSanctions)
	r.Put("/sanctions/{playerID}", s.UpdateSanction)

	r.Route("/copa", s.copaRoutes)
}

func (s *Service) api(w http.ResponseWriter, r *http.Request) (LeagueAPI, bool) {
	api, err := auth.Scoped(r, s.forToken)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return nil, false
	}
	return api, true
}

// decode reads the body into v and writes the error response on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpapi.DecodeJSON(w, r, v); err != nil {
		httpapi.WriteError(w, r, err)
		return false
	}
	return true
}

// pathID reads a UUID path parameter and writes the error response on failure.
func pathID(w http.ResponseWriter, r *http.Request, param, name string) (string, bool) {
	id, err := httpapi.ParseID(name, chi.URLParam(r, param))
	if err != nil {
		httpapi.WriteError(w, r, err)
		return "", false
	}
	return id, true
}

// reply writes v, or the error when err is set.
func reply(w http.ResponseWriter, r *http.Request, status int, v any, err error) {
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, status, v)
}

// ack writes a Message, or the error when err is set.
func ack(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.Ack(w, "%s", msg)
}

func (s *Service) GetFixturesTab(w http.ResponseWriter, r *http.Request) {
	api, ok := s.api(w, r)
	if !ok {
		return
	}
	tab, err := NewApp(api).FixturesTab(r.Context(), s.clock.Now())
	reply(w, r, http.StatusOK, tab, err)
}

func (s *Service) CreateFixture(w http.ResponseWriter, r *http.Request) {
	var in models.FixtureInput
	if !decode(w, r, &in) {
		return
	}
	api, ok := s.api(w, r)
	if !ok {
		return
	}
	f, err := NewApp(api).CreateFixture(r.Context(), in)
	reply(w, r, http.StatusCreated, f, err)
}

func (s *Service) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var in models.BulkFixtureInput
	if !decode(w, r, &in) {
		return
	}
	api, ok := s.api(w, r)
	if !ok {
		return
	}
	created, err := NewApp(api).CreateBulk(r.Context(), in)
	reply(w, r, http.StatusCreated, created, err)
}

func (s *Service) GetEditView(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "fixtureID", "fixture id")
	if !ok {
		return
	}
	api, ok := s.api(w, r)
	if !ok {
		return
	}
	view, err := NewApp(api).EditView(r.Context(), id, s.clock.Now())
	reply(w, r, http.StatusOK, view, err)
}

func (s *Service) UpdateFixture(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "fixtureID", "fixture id")
	if !ok {
		return
	}
	var in models.FixtureUpdate
	if !decode(w, r, &in) {
		return
	}
	api, ok := s.api(w, r)
	if !ok {
		return
	}
	f, err := NewApp(api).UpdateFixture(r.Context(), id, in)
	reply(w, r, http.StatusOK, f, err)
}

func (s *Service) DeleteFixture(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "fixtureID", "fixture id")
	if !ok {
		return
	}
	api, ok := s.api(w, r)
	if !ok {
		return
	}
	ack(w, r, "Fixture deleted", NewApp(api).DeleteFixture(r.Context(), id))
}

func (s *Service) AddGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "fixtureID", "fixture id")
	if !ok {
		return
	}
	var in models.AddGoal
	if !decode(w, r, &in) {
		return
	}
	api, ok := s.api(w, r)
	if !ok {
		return
	}
	ack(w, r, "Goal added", NewApp(api).AddGoal(r.Context(), id, in))
}

func (s *Service) RemoveGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "fixtureID", "fixture id")
	if !ok {
		return
	}
	var in models.RemoveGoal
	if !decode(w, r, &in) {
		return
	}
	api, ok := s.api(w, r)
	if !ok {
		return
	}
	ack(w, r, "Goal removed", NewApp(api).RemoveGoal(r.Context(), id, in))
}

func (s *Service) AddCard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "fixtureID", "fixture id")
	if !ok {
		return
	}
	var in models.AddCard
	if !decode(w, r, &in) {
		return
	}
	api, ok := s.api(w, r)
	if !ok {
		return
	}
	ack(w, r, "Card added", NewApp(api).AddCard(r.Context(), id, in))
}

func (s *Service) RemoveCard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "fixtureID", "fixture id")
	if !ok {
		return
	}
	var in models.RemoveCard
	if !decode(w, r, &in) {
		return
	}
	api, ok := s.api(w, r)
	if !ok {
		return
	}
	ack(w, r, "Card removed", NewApp(api).RemoveCard(r.Context(), id, in))
}

func (s *Service) ListPosts(w http.ResponseWriter, r *http.Request) {
	api, ok := s.api(w, r)
	if !ok {
		return
	}
	posts, err := content.NewApp(api, s.branding).Posts(r.Context())
	reply(w, r, http.StatusOK, posts, err)
}

func (s *Service) CreatePost(w http.ResponseWriter, r *http.Request) {
	var in models.InstagramPostInput
	if !decode(w, r, &in) {
		return
	}
	api, ok := s.api(w, r)
	if !ok {
		return
	}
	post, err := content.NewApp(api, s.branding).CreatePost(r.Context(), in)
	reply(w, r, http.StatusCreated, post, err)
}

func (s *Service) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "postID", "post id")
	if !ok {
		return
	}
	api, ok := s.api(w, r)
	if !ok {
		return
	}
	ack(w, r, "Instagram post deleted", content.NewApp(api, s.branding).DeletePost(r.Context(), id))
}

func (s *Service) UpdateBranding(w http.ResponseWriter, r *http.Request) {
	var in models.LeagueBranding
	if !decode(w, r, &in) {
		return
	}
	api, ok := s.api(w, r)
	if !ok {
		return
	}
	b, err := content.NewApp(api, s.branding).UpdateBranding(r.Context(), in)
	reply(w, r, http.StatusOK, b, err)
}

func (s *Service) ListSanctions(w http.ResponseWriter, r *http.Request) {
	api, ok := s.api(w, r)
	if !ok {
		return
	}
	list, err := sanctions.NewApp(api).List(r.Context())
	reply(w, r, http.StatusOK, list, err)
}

func (s *Service) UpdateSanction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "playerID", "player id")
	if !ok {
		return
	}
	var in models.SanctionUpdate
	if !decode(w, r, &in) {
		return
	}
	api, ok := s.api(w, r)
	if !ok {
		return
	}
	ack(w, r, "Sanction updated", sanctions.NewApp(api).Update(r.Context(), id, in))
}
