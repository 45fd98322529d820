package postgres

import (
	"context"

	"candidate-dashboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type wishlistRepo struct {
	db *pgxpool.Pool
}

func NewWishlistRepository(db *pgxpool.Pool) domain.WishlistRepository {
	return &wishlistRepo{db: db}
}

func (r *wishlistRepo) Create(ctx context.Context, entry *domain.TrainingWishlistEntry) error {
	// user_id is intentionally not checked against users: orphan entries are
	// accepted, matching the permissive reference model.
	query := `INSERT INTO training_wishlist (user_id, training_name) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRow(ctx, query, entry.UserID, entry.TrainingName).Scan(&entry.ID)
}

func (r *wishlistRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.TrainingWishlistEntry, error) {
	query := `SELECT id, user_id, training_name FROM training_wishlist WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.TrainingWishlistEntry{}
	for rows.Next() {
		var e domain.TrainingWishlistEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.TrainingName); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
