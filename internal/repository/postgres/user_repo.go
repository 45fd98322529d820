package postgres

import (
	"context"
	"errors"

	"candidate-dashboard-backend/internal/domain"
	"candidate-dashboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT id, username, profile_completeness FROM users ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.ProfileCompleteness); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, username, profile_completeness FROM users WHERE id = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Username, &user.ProfileCompleteness)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT id, username, profile_completeness FROM users WHERE username = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, username).Scan(&user.ID, &user.Username, &user.ProfileCompleteness)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (username, profile_completeness) VALUES ($1, $2) RETURNING id`
	err := r.db.QueryRow(ctx, query, user.Username, user.ProfileCompleteness).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		// The UNIQUE constraint is the authoritative duplicate check; the
		// usecase pre-check can still lose a race against a concurrent insert.
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Username already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) UpdateCompleteness(ctx context.Context, id int64, completeness int) error {
	query := `UPDATE users SET profile_completeness = $2 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id, completeness)
	return err
}
