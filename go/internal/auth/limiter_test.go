package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

func TestLoginLimiter(t *testing.T) {
	l := NewLoginLimiter(0, 2)

	first := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	first.RemoteAddr = "10.0.0.1:5000"
	other := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	other.RemoteAddr = "10.0.0.2:5000"

	assert.True(t, l.Allow(first))
	assert.True(t, l.Allow(first))
	assert.False(t, l.Allow(first))
	assert.True(t, l.Allow(other))

	var unlimited *LoginLimiter
	assert.True(t, unlimited.Allow(first))
}

func TestLoginIsThrottled(t *testing.T) {
	token := &models.Token{AccessToken: signedToken(t, epoch.Add(2*time.Hour)), User: teamUser()}
	app := NewApp(&fakeLoginAPI{token: token}, nil)
	guard := NewGuard(app, NewCookieStore([]byte("0123456789abcdef0123456789abcdef"), CookieOptions{MaxAge: time.Hour}), clockwork.NewFakeClockAt(epoch))

	r := chi.NewRouter()
	NewService(app, guard, NewLoginLimiter(rate.Limit(0), 1)).RegisterRoutes(r)

	body, _ := json.Marshal(models.Credentials{Username: "rioja", Password: "pw"})
	rec := do(r, http.MethodPost, "/auth/login", body, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(r, http.MethodPost, "/auth/login", body, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
