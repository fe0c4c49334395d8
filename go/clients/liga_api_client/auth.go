package liga_api_client

import (
	"context"
	"fmt"

	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// Login exchanges credentials for a bearer token.
func (c *LigaApiClient) Login(ctx context.Context, creds models.Credentials) (*models.Token, error) {
	var token models.Token
	if err := c.post(ctx, LoginEndpoint, creds, &token); err != nil {
		return nil, fmt.Errorf("failed to login: %w", err)
	}
	return &token, nil
}

// Me returns the user owning the client's token.
func (c *LigaApiClient) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, MeEndpoint, &user); err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return &user, nil
}

// Register creates a dashboard account. Admin only.
func (c *LigaApiClient) Register(ctx context.Context, in models.UserInput) (*models.User, error) {
	var user models.User
	if err := c.post(ctx, RegisterEndpoint, in, &user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return &user, nil
}

// ListUsers returns every dashboard account. Admin only.
func (c *LigaApiClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.get(ctx, UsersEndpoint, &users); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
