package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SchemaManager owns the dashboard schema lifecycle. Reset is destructive and
// must only run when the service is explicitly started in reset mode.
type SchemaManager struct {
	db *pgxpool.Pool
}

func NewSchemaManager(db *pgxpool.Pool) *SchemaManager {
	return &SchemaManager{db: db}
}

// Reset drops and recreates all three tables. The child tables reference
// users by value only; no FOREIGN KEY is declared so orphan user_id values
// keep being accepted.
func (m *SchemaManager) Reset(ctx context.Context) error {
	statements := []string{
		`DROP TABLE IF EXISTS job_matching_profiles`,
		`DROP TABLE IF EXISTS training_wishlist`,
		`DROP TABLE IF EXISTS users`,
		`CREATE TABLE users (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			profile_completeness INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE training_wishlist (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			user_id BIGINT NOT NULL,
			training_name TEXT NOT NULL
		)`,
		`CREATE TABLE job_matching_profiles (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			user_id BIGINT NOT NULL,
			job_title TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := m.db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
