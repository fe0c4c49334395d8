package liga_api_client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/mcdev12/ligaveteranos/go/clients"
)

// LigaApiClient talks to the league REST API. A client without a token can
// only reach the public endpoints; use WithToken for dashboard calls.
type LigaApiClient struct {
	*clients.BaseClient
	token string
}

// NewLigaApiClient creates a client for the backend at backendURL. The /api
// prefix is added when missing.
func NewLigaApiClient(backendURL string) *LigaApiClient {
	base := strings.TrimRight(backendURL, "/")
	if !strings.HasSuffix(base, APIPrefix) {
		base += APIPrefix
	}
	return &LigaApiClient{
		BaseClient: clients.NewBaseClient(base),
	}
}

// WithToken returns a client that sends token as a bearer credential on every
// request. The underlying HTTP client is shared.
func (c *LigaApiClient) WithToken(token string) *LigaApiClient {
	return &LigaApiClient{
		BaseClient: c.BaseClient,
		token:      token,
	}
}

// Token returns the bearer token the client sends, if any.
func (c *LigaApiClient) Token() string {
	return c.token
}

func (c *LigaApiClient) authHeaders() map[string]string {
	if c.token == "" {
		return nil
	}
	return map[string]string{AuthorizationHeader: BearerPrefix + c.token}
}

func (c *LigaApiClient) get(ctx context.Context, endpoint string, out any) error {
	return c.DoJSON(ctx, http.MethodGet, endpoint, nil, out, c.authHeaders())
}

func (c *LigaApiClient) post(ctx context.Context, endpoint string, in, out any) error {
	return c.DoJSON(ctx, http.MethodPost, endpoint, in, out, c.authHeaders())
}

func (c *LigaApiClient) put(ctx context.Context, endpoint string, in, out any) error {
	return c.DoJSON(ctx, http.MethodPut, endpoint, in, out, c.authHeaders())
}

// del sends a DELETE; some endpoints take a JSON body to pick the event to
// remove.
func (c *LigaApiClient) del(ctx context.Context, endpoint string, in any) error {
	return c.DoJSON(ctx, http.MethodDelete, endpoint, in, nil, c.authHeaders())
}

func path(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString("/")
		b.WriteString(url.PathEscape(strings.Trim(p, "/")))
	}
	return b.String()
}
