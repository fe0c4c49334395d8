package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mcdev12/ligaveteranos/go/internal/auth"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

func setupServer(config *Config, services *Services) *http.Server {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	// Register services
	registerServices(r, services)

	// Add health check and metrics endpoints
	setupHealthCheck(r)
	r.Handle("/metrics", promhttp.Handler())

	// Wrap with CORS
	handler := withCORS(config.Server.AllowedOrigins, r)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", config.Server.Port),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// withCORS allows credentialed requests from the listed origins only. Without
// origins the gateway is same-origin and no CORS headers are sent; rs/cors
// would otherwise treat an empty list as "*".
func withCORS(origins []string, next http.Handler) http.Handler {
	if len(origins) == 0 {
		return next
	}
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins:   origins,
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(next)
}

func registerServices(r chi.Router, services *Services) {
	r.Route("/api/v1", func(r chi.Router) {
		// Public views
		services.Fixtures.RegisterRoutes(r)
		services.Standings.RegisterRoutes(r)
		services.Sanctions.RegisterRoutes(r)
		services.Copa.RegisterRoutes(r)
		services.Content.RegisterRoutes(r)
		services.Auth.RegisterRoutes(r)

		// Admin dashboard
		r.Route("/admin", func(r chi.Router) {
			r.Use(services.Guard.RequireAuth, auth.RequireRole(models.RoleAdmin))
			services.Admin.RegisterRoutes(r)
		})

		// Team representative dashboard
		r.Route("/team", func(r chi.Router) {
			r.Use(services.Guard.RequireAuth, auth.RequireRole(models.RoleTeam))
			services.Team.RegisterRoutes(r)
		})
	})

	// Live clock push
	services.Broadcaster.RegisterRoutes(r)
}

func setupHealthCheck(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}

// requestLogger writes one zerolog line per request and records its latency.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)

		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		observeRequest(r.Method, route, ww.Status(), elapsed.Seconds())

		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Str("route", route).
			Dur("duration", elapsed).
			Msg("request")
	})
}
