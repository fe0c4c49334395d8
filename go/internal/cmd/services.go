package main

import (
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"github.com/mcdev12/ligaveteranos/go/clients/liga_api_client"
	"github.com/mcdev12/ligaveteranos/go/internal/admin"
	"github.com/mcdev12/ligaveteranos/go/internal/auth"
	"github.com/mcdev12/ligaveteranos/go/internal/content"
	"github.com/mcdev12/ligaveteranos/go/internal/copa"
	"github.com/mcdev12/ligaveteranos/go/internal/fixtures"
	"github.com/mcdev12/ligaveteranos/go/internal/livefeed"
	"github.com/mcdev12/ligaveteranos/go/internal/matchclock"
	"github.com/mcdev12/ligaveteranos/go/internal/sanctions"
	"github.com/mcdev12/ligaveteranos/go/internal/standings"
	"github.com/mcdev12/ligaveteranos/go/internal/teamdash"
)

type Services struct {
	Fixtures  *fixtures.Service
	Standings *standings.Service
	Sanctions *sanctions.Service
	Copa      *copa.Service
	Content   *content.Service
	Auth      *auth.Service
	Guard     *auth.Guard
	Admin     *admin.Service
	Team      *teamdash.Service

	Connections *livefeed.ConnectionManager
	Broadcaster *livefeed.Broadcaster
}

func setupServices(config *Config, branding content.BrandingStore, clock clockwork.Clock) *Services {
	// API client → App layer → Service layer. Public views share one
	// anonymous client; dashboards get a client scoped to the session token.
	client := liga_api_client.NewLigaApiClient(config.API.BaseURL)

	// Public views
	fixturesApp := fixtures.NewApp(client)
	fixturesService := fixtures.NewService(fixturesApp, clock)
	standingsService := standings.NewService(standings.NewApp(client))
	sanctionsService := sanctions.NewService(sanctions.NewApp(client))
	copaService := copa.NewService(copa.NewApp(client), clock)
	contentService := content.NewService(content.NewApp(client, branding))

	// Sessions
	store := auth.NewCookieStore([]byte(config.Session.Secret), auth.CookieOptions{
		Secure: config.Session.Secure,
		MaxAge: time.Duration(config.Session.MaxAge) * time.Second,
	})
	authApp := auth.NewApp(client, func(token string) auth.UserAPI {
		return client.WithToken(token)
	})
	guard := auth.NewGuard(authApp, store, clock)
	// Five quick attempts, then one every six seconds per client address.
	limiter := auth.NewLoginLimiter(rate.Every(6*time.Second), 5)
	authService := auth.NewService(authApp, guard, limiter)

	// Dashboards
	adminService := admin.NewService(func(token string) admin.LeagueAPI {
		return client.WithToken(token)
	}, branding, clock)
	teamService := teamdash.NewService(func(token string) teamdash.TeamAPI {
		return client.WithToken(token)
	}, clock)

	// Live feed
	connections := livefeed.NewConnectionManager(livefeed.DefaultConnectionConfig())
	broadcaster := livefeed.NewBroadcaster(fixturesApp, connections, matchclock.NewRefresher(clock))

	return &Services{
		Fixtures:    fixturesService,
		Standings:   standingsService,
		Sanctions:   sanctionsService,
		Copa:        copaService,
		Content:     contentService,
		Auth:        authService,
		Guard:       guard,
		Admin:       adminService,
		Team:        teamService,
		Connections: connections,
		Broadcaster: broadcaster,
	}
}
