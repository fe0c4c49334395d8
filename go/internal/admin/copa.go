package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mcdev12/ligaveteranos/go/internal/copa"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

func (s *Service) copaRoutes(r chi.Router) {
	r.Get("/", s.GetCopaTab)

	r.Post("/groups", s.CreateCopaGroup)
	r.Put("/groups/{group}", s.UpdateCopaGroup)
	r.Delete("/groups/{group}", s.DeleteCopaGroup)

	r.Post("/fixtures", s.CreateCopaFixture)
	r.Put("/fixtures/{fixtureID}", s.UpdateCopaFixture)
	r.Delete("/fixtures/{fixtureID}", s.DeleteCopaFixture)
	r.Post("/fixtures/{fixtureID}/goals", s.AddCopaFixtureGoal)
	r.Post("/fixtures/{fixtureID}/cards", s.AddCopaFixtureCard)

	r.Post("/brackets", s.CreateCopaBracket)
	r.Put("/brackets/{bracketID}", s.UpdateCopaBracket)
	r.Delete("/brackets/{bracketID}", s.DeleteCopaBracket)
	r.Post("/brackets/{bracketID}/goals", s.AddCopaBracketGoal)
	r.Post("/brackets/{bracketID}/cards", s.AddCopaBracketCard)
}

func (s *Service) copaAdmin(w http.ResponseWriter, r *http.Request) (*copa.Admin, bool) {
	api, ok := s.api(w, r)
	if !ok {
		return nil, false
	}
	return copa.NewAdmin(api), true
}

func (s *Service) GetCopaTab(w http.ResponseWriter, r *http.Request) {
	a, ok := s.copaAdmin(w, r)
	if !ok {
		return
	}
	tab, err := a.Tab(r.Context())
	reply(w, r, http.StatusOK, tab, err)
}

func (s *Service) CreateCopaGroup(w http.ResponseWriter, r *http.Request) {
	var in models.CopaGroupInput
	if !decode(w, r, &in) {
		return
	}
	a, ok := s.copaAdmin(w, r)
	if !ok {
		return
	}
	g, err := a.CreateGroup(r.Context(), in)
	reply(w, r, http.StatusCreated, g, err)
}

func (s *Service) UpdateCopaGroup(w http.ResponseWriter, r *http.Request) {
	var in models.CopaGroupInput
	if !decode(w, r, &in) {
		return
	}
	a, ok := s.copaAdmin(w, r)
	if !ok {
		return
	}
	ack(w, r, "Copa group updated", a.UpdateGroup(r.Context(), chi.URLParam(r, "group"), in))
}

func (s *Service) DeleteCopaGroup(w http.ResponseWriter, r *http.Request) {
	a, ok := s.copaAdmin(w, r)
	if !ok {
		return
	}
	ack(w, r, "Copa group deleted", a.DeleteGroup(r.Context(), chi.URLParam(r, "group")))
}

func (s *Service) CreateCopaFixture(w http.ResponseWriter, r *http.Request) {
	var in models.CopaFixtureInput
	if !decode(w, r, &in) {
		return
	}
	a, ok := s.copaAdmin(w, r)
	if !ok {
		return
	}
	f, err := a.CreateFixture(r.Context(), in)
	reply(w, r, http.StatusCreated, f, err)
}

func (s *Service) UpdateCopaFixture(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "fixtureID", "copa fixture id")
	if !ok {
		return
	}
	var in models.CopaFixtureUpdate
	if !decode(w, r, &in) {
		return
	}
	a, ok := s.copaAdmin(w, r)
	if !ok {
		return
	}
	ack(w, r, "Copa fixture updated", a.UpdateFixture(r.Context(), id, in))
}

func (s *Service) DeleteCopaFixture(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "fixtureID", "copa fixture id")
	if !ok {
		return
	}
	a, ok := s.copaAdmin(w, r)
	if !ok {
		return
	}
	ack(w, r, "Copa fixture deleted", a.DeleteFixture(r.Context(), id))
}

func (s *Service) AddCopaFixtureGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "fixtureID", "copa fixture id")
	if !ok {
		return
	}
	var in models.AddGoal
	if !decode(w, r, &in) {
		return
	}
	a, ok := s.copaAdmin(w, r)
	if !ok {
		return
	}
	ack(w, r, "Goal added", a.AddFixtureGoal(r.Context(), id, in))
}

func (s *Service) AddCopaFixtureCard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "fixtureID", "copa fixture id")
	if !ok {
		return
	}
	var in models.AddCard
	if !decode(w, r, &in) {
		return
	}
	a, ok := s.copaAdmin(w, r)
	if !ok {
		return
	}
	ack(w, r, "Card added", a.AddFixtureCard(r.Context(), id, in))
}

func (s *Service) CreateCopaBracket(w http.ResponseWriter, r *http.Request) {
	var in models.CopaBracketInput
	if !decode(w, r, &in) {
		return
	}
	a, ok := s.copaAdmin(w, r)
	if !ok {
		return
	}
	b, err := a.CreateBracket(r.Context(), in)
	reply(w, r, http.StatusCreated, b, err)
}

func (s *Service) UpdateCopaBracket(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "bracketID", "bracket id")
	if !ok {
		return
	}
	var in models.CopaBracketUpdate
	if !decode(w, r, &in) {
		return
	}
	a, ok := s.copaAdmin(w, r)
	if !ok {
		return
	}
	ack(w, r, "Copa bracket updated", a.UpdateBracket(r.Context(), id, in))
}

func (s *Service) DeleteCopaBracket(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "bracketID", "bracket id")
	if !ok {
		return
	}
	a, ok := s.copaAdmin(w, r)
	if !ok {
		return
	}
	ack(w, r, "Copa bracket deleted", a.DeleteBracket(r.Context(), id))
}

func (s *Service) AddCopaBracketGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "bracketID", "bracket id")
	if !ok {
		return
	}
	var in models.AddGoal
	if !decode(w, r, &in) {
		return
	}
	a, ok := s.copaAdmin(w, r)
	if !ok {
		return
	}
	ack(w, r, "Goal added", a.AddBracketGoal(r.Context(), id, in))
}

func (s *Service) AddCopaBracketCard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "bracketID", "bracket id")
	if !ok {
		return
	}
	var in models.AddCard
	if !decode(w, r, &in) {
		return
	}
	a, ok := s.copaAdmin(w, r)
	if !ok {
		return
	}
	ack(w, r, "Card added", a.AddBracketCard(r.Context(), id, in))
}
