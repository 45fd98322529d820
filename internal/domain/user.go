package domain

import "context"

type User struct {
	ID                  int64  `json:"id"`
	Username            string `json:"username"`
	ProfileCompleteness int    `json:"profile_completeness"`
}

// CreateUserInput is the POST /user payload. ProfileCompleteness is a pointer
// so an absent field (defaults to 0) can be told apart from an explicit 0.
type CreateUserInput struct {
	Username            string `json:"username" validate:"required"`
	ProfileCompleteness *int   `json:"profile_completeness"`
}

type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdateCompleteness(ctx context.Context, id int64, completeness int) error
}

type UserUsecase interface {
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, input CreateUserInput) (int64, error)
	// UpdateCompleteness leaves the stored value unchanged when completeness is nil.
	UpdateCompleteness(ctx context.Context, id int64, completeness *int) error
}
