package postgres

import (
	"context"

	"candidate-dashboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type jobMatchRepo struct {
	db *pgxpool.Pool
}

func NewJobMatchRepository(db *pgxpool.Pool) domain.JobMatchRepository {
	return &jobMatchRepo{db: db}
}

func (r *jobMatchRepo) Create(ctx context.Context, entry *domain.JobMatchingProfileEntry) error {
	query := `INSERT INTO job_matching_profiles (user_id, job_title) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRow(ctx, query, entry.UserID, entry.JobTitle).Scan(&entry.ID)
}

func (r *jobMatchRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.JobMatchingProfileEntry, error) {
	query := `SELECT id, user_id, job_title FROM job_matching_profiles WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.JobMatchingProfileEntry{}
	for rows.Next() {
		var e domain.JobMatchingProfileEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.JobTitle); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
