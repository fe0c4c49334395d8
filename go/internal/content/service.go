package content

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mcdev12/ligaveteranos/go/internal/httpapi"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// ContentApp defines what the public service needs from the content application
type ContentApp interface {
	HomePage(ctx context.Context) *HomePage
	Branding(ctx context.Context) (models.LeagueBranding, error)
	Subscribe(ctx context.Context, email string) (*models.Subscription, error)
}

// Service serves the public home page routes
type Service struct {
	app ContentApp
}

// NewService creates a new content HTTP service
func NewService(app ContentApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts the public content routes
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Get("/home", s.GetHomePage)
	r.Get("/branding", s.GetBranding)
	r.Post("/subscriptions", s.Subscribe)
}

func (s *Service) GetHomePage(w http.ResponseWriter, r *http.Request) {
	httpapi.WriteJSON(w, http.StatusOK, s.app.HomePage(r.Context()))
}

func (s *Service) GetBranding(w http.ResponseWriter, r *http.Request) {
	b, err := s.app.Branding(r.Context())
	if err != nil {
		httpapi.WriteJSON(w, http.StatusOK, DefaultBranding())
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, b)
}

type subscribeRequest struct {
	Email string `json:"email"`
}

func (s *Service) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := httpapi.DecodeJSON(w, r, &req); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	sub, err := s.app.Subscribe(r.Context(), req.Email)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, sub)
}
