// Package auth signs dashboard users in against the league API and guards the
// dashboard routes.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// RecheckInterval is how long a session is trusted before /auth/me is asked
// again.
const RecheckInterval = 5 * time.Minute

// ErrSessionExpired is returned when the stored token is past its expiry.
var ErrSessionExpired = fmt.Errorf("%w: session expired", apperr.ErrUnauthenticated)

// LoginAPI defines what sign-in needs from the league API
type LoginAPI interface {
	Login(ctx context.Context, creds models.Credentials) (*models.Token, error)
}

// UserAPI is the league API seen with a user's token.
type UserAPI interface {
	Me(ctx context.Context) (*models.User, error)
}

// App handles sign-in and session validation
type App struct {
	api      LoginAPI
	forToken func(token string) UserAPI
}

// NewApp creates a new auth App. forToken returns an API client that sends
// the given bearer token.
func NewApp(api LoginAPI, forToken func(token string) UserAPI) *App {
	return &App{api: api, forToken: forToken}
}

// Login exchanges credentials for a session.
func (a *App) Login(ctx context.Context, creds models.Credentials, now time.Time) (Session, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		return Session{}, apperr.Invalid("username and password are required")
	}

	token, err := a.api.Login(ctx, creds)
	if err != nil {
		return Session{}, err
	}
	if !token.User.Role.Valid() {
		return Session{}, apperr.Forbidden("unknown role %q", token.User.Role)
	}

	log.Info().Str("username", token.User.Username).Str("role", string(token.User.Role)).Msg("user signed in")
	return Session{Token: token.AccessToken, User: token.User, CheckedAt: now}, nil
}

// Restore validates a stored session. The token expiry is read locally; the
// user is re-fetched from the API once RecheckInterval has passed. refreshed
// reports whether s changed and should be written back.
func (a *App) Restore(ctx context.Context, s Session, now time.Time) (out Session, refreshed bool, err error) {
	if TokenExpired(s.Token, now) {
		return Session{}, false, ErrSessionExpired
	}
	if now.Sub(s.CheckedAt) < RecheckInterval {
		return s, false, nil
	}

	user, err := a.forToken(s.Token).Me(ctx)
	if err != nil {
		return Session{}, false, fmt.Errorf("%w: %v", apperr.ErrUnauthenticated, err)
	}
	s.User = *user
	s.CheckedAt = now
	return s, true, nil
}

// TokenExpired reports whether token is unusable at now. Claims are read
// without verifying the signature; the league API does that on every call.
func TokenExpired(token string, now time.Time) bool {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}
