package liga_api_client

import (
	"context"
	"fmt"

	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

func (c *LigaApiClient) ListInstagramPosts(ctx context.Context) ([]models.InstagramPost, error) {
	var posts []models.InstagramPost
	if err := c.get(ctx, InstagramPostsEndpoint, &posts); err != nil {
		return nil, fmt.Errorf("failed to get instagram posts: %w", err)
	}
	return posts, nil
}

func (c *LigaApiClient) CreateInstagramPost(ctx context.Context, in models.InstagramPostInput) (*models.InstagramPost, error) {
	var post models.InstagramPost
	if err := c.post(ctx, InstagramPostsEndpoint, in, &post); err != nil {
		return nil, fmt.Errorf("failed to create instagram post: %w", err)
	}
	return &post, nil
}

func (c *LigaApiClient) DeleteInstagramPost(ctx context.Context, id string) error {
	if err := c.del(ctx, InstagramPostsEndpoint+path(id), nil); err != nil {
		return fmt.Errorf("failed to delete instagram post %s: %w", id, err)
	}
	return nil
}

func (c *LigaApiClient) CreateSubscription(ctx context.Context, in models.SubscriptionInput) (*models.Subscription, error) {
	var sub models.Subscription
	if err := c.post(ctx, SubscriptionsEndpoint, in, &sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	return &sub, nil
}
