package dbrepo

import (
	"context"
	"fmt"
)

// schemaStatements is the DDL applied at startup. Every statement is
// idempotent. Uniqueness that the application logic only pre-checks
// (email, api key, one like/rating/collection entry per user and target)
// is enforced here so concurrent requests cannot create duplicates.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS user_regular (
		id_user_regular SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		api_key VARCHAR(64) NOT NULL UNIQUE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS tv_series (
		id_tv_series SERIAL PRIMARY KEY,
		tv_series_name VARCHAR(255) NOT NULL,
		imdb_link VARCHAR(512) NOT NULL DEFAULT '',
		count_like INTEGER NOT NULL DEFAULT 0,
		count_rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		count_rating_giver INTEGER NOT NULL DEFAULT 0,
		default_image VARCHAR(512) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS collection (
		id_collection SERIAL PRIMARY KEY,
		id_user_regular INTEGER NOT NULL REFERENCES user_regular (id_user_regular),
		id_tv_series INTEGER NOT NULL REFERENCES tv_series (id_tv_series),
		status INTEGER NOT NULL DEFAULT 1,
		UNIQUE (id_user_regular, id_tv_series)
	)`,
	`CREATE TABLE IF NOT EXISTS photo (
		id_photo SERIAL PRIMARY KEY,
		id_tv_series INTEGER NOT NULL REFERENCES tv_series (id_tv_series),
		image VARCHAR(512) NOT NULL DEFAULT '',
		count_like INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS like_photo (
		id_like SERIAL PRIMARY KEY,
		id_photo INTEGER NOT NULL REFERENCES photo (id_photo),
		id_user_regular INTEGER NOT NULL REFERENCES user_regular (id_user_regular),
		UNIQUE (id_photo, id_user_regular)
	)`,
	`CREATE TABLE IF NOT EXISTS rating (
		id_rating SERIAL PRIMARY KEY,
		id_tv_series INTEGER NOT NULL REFERENCES tv_series (id_tv_series),
		id_user_regular INTEGER NOT NULL REFERENCES user_regular (id_user_regular),
		value_rating INTEGER NOT NULL,
		UNIQUE (id_tv_series, id_user_regular)
	)`,
}

// EnsureSchema creates the tables and constraints the gateway relies on.
func (m *PostgresDBRepo) EnsureSchema(ctx context.Context) error {
	for i, stmt := range schemaStatements {
		if _, err := m.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d failed: %w", i+1, err)
		}
	}
	return nil
}
