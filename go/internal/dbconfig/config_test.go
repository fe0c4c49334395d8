package dbconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigFromEnv(t *testing.T) {
	t.Run("no database configured", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("DB_HOST", "")

		cfg := NewConfigFromEnv()
		assert.False(t, cfg.Enabled())
	})

	t.Run("host and defaults", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("DB_HOST", "db")
		t.Setenv("DB_PORT", "not-a-port")
		t.Setenv("DB_USER", "")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "")
		t.Setenv("DB_SSLMODE", "")

		cfg := NewConfigFromEnv()
		assert.True(t, cfg.Enabled())
		assert.Equal(t, "postgres://postgres:secret@db:5432/ligaveteranos?sslmode=disable", cfg.DSN())
		assert.Equal(t, "postgres@db:5432/ligaveteranos", cfg.Redacted())
	})

	t.Run("url wins", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://u:p@remote/liga")
		t.Setenv("DB_HOST", "db")

		cfg := NewConfigFromEnv()
		assert.True(t, cfg.Enabled())
		assert.Equal(t, "postgres://u:p@remote/liga", cfg.DSN())
		assert.NotContains(t, cfg.Redacted(), "p@remote")
	})
}
