package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// CookieName is the name of the signed session cookie.
const CookieName = "ligaveteranos_session"

const (
	keyToken     = "token"
	keyUserID    = "user_id"
	keyUsername  = "username"
	keyRole      = "role"
	keyTeamID    = "team_id"
	keyCheckedAt = "checked_at"
)

// Session is the signed-in dashboard user and their API token.
type Session struct {
	Token     string
	User      models.User
	CheckedAt time.Time
}

// CookieOptions configures the session cookie.
type CookieOptions struct {
	Secure bool
	MaxAge time.Duration
}

// NewCookieStore creates the signed cookie store holding sessions.
func NewCookieStore(secret []byte, opts CookieOptions) *sessions.CookieStore {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(opts.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// load reads the session cookie. ok is false when no usable session exists.
func load(store sessions.Store, r *http.Request) (Session, bool) {
	sess, err := store.Get(r, CookieName)
	if err != nil {
		return Session{}, false
	}
	token, _ := sess.Values[keyToken].(string)
	userID, _ := sess.Values[keyUserID].(string)
	if token == "" || userID == "" {
		return Session{}, false
	}

	out := Session{Token: token, User: models.User{ID: userID}}
	out.User.Username, _ = sess.Values[keyUsername].(string)
	role, _ := sess.Values[keyRole].(string)
	out.User.Role = models.Role(role)
	if teamID, _ := sess.Values[keyTeamID].(string); teamID != "" {
		out.User.TeamID = &teamID
	}
	if checked, ok := sess.Values[keyCheckedAt].(int64); ok {
		out.CheckedAt = time.Unix(checked, 0).UTC()
	}
	return out, true
}

// save writes s into the session cookie.
func save(store sessions.Store, w http.ResponseWriter, r *http.Request, s Session) error {
	sess, _ := store.Get(r, CookieName)
	sess.Values = map[any]any{
		keyToken:     s.Token,
		keyUserID:    s.User.ID,
		keyUsername:  s.User.Username,
		keyRole:      string(s.User.Role),
		keyCheckedAt: s.CheckedAt.Unix(),
	}
	if s.User.TeamID != nil {
		sess.Values[keyTeamID] = *s.User.TeamID
	}
	return sess.Save(r, w)
}

// drop expires the session cookie.
func drop(store sessions.Store, w http.ResponseWriter, r *http.Request) error {
	sess, _ := store.Get(r, CookieName)
	sess.Values = map[any]any{}
	if sess.Options != nil {
		sess.Options.MaxAge = -1
	}
	return sess.Save(r, w)
}

type ctxKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session attached by the middleware.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
