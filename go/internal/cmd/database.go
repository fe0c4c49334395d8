package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/ligaveteranos/go/internal/content"
	"github.com/mcdev12/ligaveteranos/go/internal/dbconfig"
)

func setupDatabase(ctx context.Context, dbConfig dbconfig.Config) (*sql.DB, error) {
	database, err := sql.Open("postgres", dbConfig.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().Str("target", dbConfig.Redacted()).Msg("connected to database")
	return database, nil
}

// setupBrandingStore returns the Postgres branding store when a database is
// configured and the in-memory store otherwise. The returned close func is
// always safe to call.
func setupBrandingStore(ctx context.Context) (content.BrandingStore, func(), error) {
	dbConfig := dbconfig.NewConfigFromEnv()
	if !dbConfig.Enabled() {
		log.Info().Msg("no database configured, keeping league branding in memory")
		return content.NewMemoryBrandingStore(), func() {}, nil
	}

	database, err := setupDatabase(ctx, dbConfig)
	if err != nil {
		return nil, nil, err
	}

	store := content.NewPostgresBrandingStore(database)
	if err := store.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to prepare branding table: %w", err)
	}

	return store, func() {
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}, nil
}
