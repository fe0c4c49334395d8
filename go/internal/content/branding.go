package content

import (
	"context"
	"sync"
	"time"

	"github.com/mcdev12/ligaveteranos/go/internal/models"
)

const (
	// DefaultLogoURL is shown until an admin uploads a league logo.
	DefaultLogoURL  = "https://em-content.zobj.net/source/apple/391/soccer-ball_26bd.png"
	DefaultLogoSize = 40

	MinLogoSize = 16
	MaxLogoSize = 512
)

// DefaultBranding is the branding of a fresh install.
func DefaultBranding() models.LeagueBranding {
	return models.LeagueBranding{
		LogoURL: DefaultLogoURL,
		Width:   DefaultLogoSize,
		Height:  DefaultLogoSize,
	}
}

// BrandingStore persists the league branding.
type BrandingStore interface {
	GetBranding(ctx context.Context) (models.LeagueBranding, error)
	SaveBranding(ctx context.Context, b models.LeagueBranding) error
}

// MemoryBrandingStore keeps the branding in process. Used when no database is
// configured; the logo resets on restart.
type MemoryBrandingStore struct {
	mu       sync.RWMutex
	branding models.LeagueBranding
}

// NewMemoryBrandingStore creates a store holding the default branding.
func NewMemoryBrandingStore() *MemoryBrandingStore {
	return &MemoryBrandingStore{branding: DefaultBranding()}
}

func (s *MemoryBrandingStore) GetBranding(ctx context.Context) (models.LeagueBranding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.branding, nil
}

func (s *MemoryBrandingStore) SaveBranding(ctx context.Context, b models.LeagueBranding) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = models.Timestamp{Time: time.Now().UTC()}
	}
	s.branding = b
	return nil
}
