package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mcdev12/ligaveteranos/go/internal/auth"
	"github.com/mcdev12/ligaveteranos/go/internal/httpapi"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// Service serves the users tab of the admin dashboard
type Service struct {
	forToken func(token string) UsersAPI
}

// NewService creates a new users HTTP service
func NewService(forToken func(token string) UsersAPI) *Service {
	return &Service{
		forToken: forToken,
	}
}

// RegisterRoutes mounts the account management routes
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Get("/users", s.ListUsers)
	r.Post("/users", s.CreateUser)
}

// ListUsers lists every dashboard account
func (s *Service) ListUsers(w http.ResponseWriter, r *http.Request) {
	api, err := auth.Scoped(r, s.forToken)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	rows, err := NewApp(api).ListUsers(r.Context())
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, rows)
}

// CreateUser registers a new admin or team account
func (s *Service) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in models.UserInput
	if err := httpapi.DecodeJSON(w, r, &in); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	api, err := auth.Scoped(r, s.forToken)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	user, err := NewApp(api).CreateUser(r.Context(), in)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, user)
}
