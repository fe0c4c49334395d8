// Package content serves the home page: featured Instagram posts, supporter
// subscriptions and the league logo.
package content

import (
	"context"
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/ligaveteranos/go/internal/apperr"
	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

// CurrentSeason is the season new subscriptions are taken for.
const CurrentSeason = "2024-2025"

// ContentAPI defines what the home page needs from the league API
type ContentAPI interface {
	ListInstagramPosts(ctx context.Context) ([]models.InstagramPost, error)
	CreateInstagramPost(ctx context.Context, in models.InstagramPostInput) (*models.InstagramPost, error)
	DeleteInstagramPost(ctx context.Context, id string) error
	CreateSubscription(ctx context.Context, in models.SubscriptionInput) (*models.Subscription, error)
}

// Post is a featured post with the URL the page embeds.
type Post struct {
	models.InstagramPost
	EmbedURL string `json:"embed_url"`
}

// HomePage is the public landing view.
type HomePage struct {
	Posts    []Post                `json:"posts"`
	Branding models.LeagueBranding `json:"branding"`
	Season   string                `json:"season"`
}

// App builds the home page and manages promotional content
type App struct {
	api   ContentAPI
	store BrandingStore
}

// NewApp creates a new content App
func NewApp(api ContentAPI, store BrandingStore) *App {
	return &App{api: api, store: store}
}

// EmbedURL turns a post or reel link into its embeddable form. Other links are
// returned as they are.
func EmbedURL(raw string) string {
	if !strings.Contains(raw, "/p/") && !strings.Contains(raw, "/reel/") {
		return raw
	}
	if strings.HasSuffix(raw, "/") {
		return raw + "embed"
	}
	return raw + "/embed"
}

// HomePage loads the featured posts and branding. Posts that fail to load are
// left out of the page; the logo falls back to the default.
func (a *App) HomePage(ctx context.Context) *HomePage {
	page := &HomePage{Posts: []Post{}, Season: CurrentSeason}

	posts, err := a.api.ListInstagramPosts(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load instagram posts")
	}
	page.Posts = toPosts(posts)

	page.Branding, err = a.store.GetBranding(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load branding")
		page.Branding = DefaultBranding()
	}
	return page
}

func toPosts(posts []models.InstagramPost) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, Post{InstagramPost: p, EmbedURL: EmbedURL(p.InstagramURL)})
	}
	return out
}

// Posts lists the featured posts for the admin tab.
func (a *App) Posts(ctx context.Context) ([]Post, error) {
	posts, err := a.api.ListInstagramPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load instagram posts: %w", err)
	}
	return toPosts(posts), nil
}

// CreatePost features a new post.
func (a *App) CreatePost(ctx context.Context, in models.InstagramPostInput) (*Post, error) {
	in.InstagramURL = strings.TrimSpace(in.InstagramURL)
	if err := validateInstagramURL(in.InstagramURL); err != nil {
		return nil, err
	}
	if in.Description != nil {
		d := strings.TrimSpace(*in.Description)
		if d == "" {
			in.Description = nil
		} else {
			in.Description = &d
		}
	}

	post, err := a.api.CreateInstagramPost(ctx, in)
	if err != nil {
		return nil, err
	}

	log.Info().Str("post_id", post.ID).Str("url", post.InstagramURL).Msg("created instagram post")
	return &Post{InstagramPost: *post, EmbedURL: EmbedURL(post.InstagramURL)}, nil
}

// DeletePost removes a featured post.
func (a *App) DeletePost(ctx context.Context, id string) error {
	if err := a.api.DeleteInstagramPost(ctx, id); err != nil {
		return err
	}
	log.Info().Str("post_id", id).Msg("deleted instagram post")
	return nil
}

func validateInstagramURL(raw string) error {
	if raw == "" {
		return apperr.Invalid("instagram_url is required")
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperr.Invalid("instagram_url must be an absolute http(s) URL")
	}
	return nil
}

// Subscribe registers a supporter for the current season.
func (a *App) Subscribe(ctx context.Context, email string) (*models.Subscription, error) {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return nil, apperr.Invalid("invalid email address")
	}

	sub, err := a.api.CreateSubscription(ctx, models.SubscriptionInput{Email: email, Season: CurrentSeason})
	if err != nil {
		return nil, err
	}

	log.Info().Str("subscription_id", sub.ID).Str("season", sub.Season).Msg("created subscription")
	return sub, nil
}

// Branding returns the current league logo.
func (a *App) Branding(ctx context.Context) (models.LeagueBranding, error) {
	return a.store.GetBranding(ctx)
}

// UpdateBranding replaces the league logo.
func (a *App) UpdateBranding(ctx context.Context, in models.LeagueBranding) (models.LeagueBranding, error) {
	in.LogoURL = strings.TrimSpace(in.LogoURL)
	if in.LogoURL == "" {
		in.LogoURL = DefaultLogoURL
	}
	if u, err := url.Parse(in.LogoURL); err != nil || u.Host == "" {
		// Data URLs from the upload form carry no host.
		if !strings.HasPrefix(in.LogoURL, "data:image/") {
			return models.LeagueBranding{}, apperr.Invalid("logo_url must be an absolute URL or an image data URL")
		}
	}
	for name, v := range map[string]int{"width": in.Width, "height": in.Height} {
		if v < MinLogoSize || v > MaxLogoSize {
			return models.LeagueBranding{}, apperr.Invalid("%s must be between %d and %d", name, MinLogoSize, MaxLogoSize)
		}
	}
	in.UpdatedAt = models.Timestamp{}

	if err := a.store.SaveBranding(ctx, in); err != nil {
		return models.LeagueBranding{}, err
	}
	log.Info().Int("width", in.Width).Int("height", in.Height).Msg("updated league branding")
	return a.store.GetBranding(ctx)
}
