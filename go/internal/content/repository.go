package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mcdev12/ligaveteranos/go/internal/models"
	"github.com/mcdev12/ligaveteranos/go/internal/sqlutil"
)

const brandingRowID = 1

// PostgresBrandingStore keeps the branding in a single-row table.
type PostgresBrandingStore struct {
	db *sql.DB
}

// NewPostgresBrandingStore creates a store on db. Call EnsureSchema once at
// startup.
func NewPostgresBrandingStore(db *sql.DB) *PostgresBrandingStore {
	return &PostgresBrandingStore{db: db}
}

// EnsureSchema creates the branding table and seeds the default row.
func (s *PostgresBrandingStore) EnsureSchema(ctx context.Context) error {
	def := DefaultBranding()
	return sqlutil.Run(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS league_branding (
				id         SMALLINT PRIMARY KEY,
				logo_url   TEXT NOT NULL,
				width      INTEGER NOT NULL,
				height     INTEGER NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`); err != nil {
			return fmt.Errorf("failed to create league_branding: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO league_branding (id, logo_url, width, height)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			brandingRowID, def.LogoURL, def.Width, def.Height); err != nil {
			return fmt.Errorf("failed to seed league_branding: %w", err)
		}
		return nil
	})
}

func (s *PostgresBrandingStore) GetBranding(ctx context.Context) (models.LeagueBranding, error) {
	var (
		b         models.LeagueBranding
		updatedAt time.Time
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT logo_url, width, height, updated_at FROM league_branding WHERE id = $1`,
		brandingRowID,
	).Scan(&b.LogoURL, &b.Width, &b.Height, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultBranding(), nil
	}
	if err != nil {
		return models.LeagueBranding{}, fmt.Errorf("failed to get branding: %w", err)
	}
	b.UpdatedAt = models.Timestamp{Time: updatedAt.UTC()}
	return b, nil
}

func (s *PostgresBrandingStore) SaveBranding(ctx context.Context, b models.LeagueBranding) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO league_branding (id, logo_url, width, height, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE
		SET logo_url = EXCLUDED.logo_url,
		    width = EXCLUDED.width,
		    height = EXCLUDED.height,
		    updated_at = EXCLUDED.updated_at`,
		brandingRowID, b.LogoURL, b.Width, b.Height)
	if err != nil {
		return fmt.Errorf("failed to save branding: %w", err)
	}
	return nil
}
