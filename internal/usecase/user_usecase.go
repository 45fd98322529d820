package usecase

import (
	"context"

	"candidate-dashboard-backend/internal/domain"
	"candidate-dashboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type userUsecase struct {
	repo     domain.UserRepository
	validate *validator.Validate
}

func NewUserUsecase(repo domain.UserRepository, validate *validator.Validate) domain.UserUsecase {
	return &userUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *userUsecase) List(ctx context.Context) ([]domain.User, error) {
	users, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (u *userUsecase) Create(ctx context.Context, input domain.CreateUserInput) (int64, error) {
	if err := u.validate.Var(input.Username, "required"); err != nil {
		return 0, apperror.BadRequest("Username is required")
	}

	// Pre-check gives the friendly error on the common path; the UNIQUE
	// constraint in the repository closes the race against concurrent inserts.
	existing, err := u.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, apperror.Conflict("Username already exists")
	}

	completeness := 0
	if input.ProfileCompleteness != nil {
		completeness = *input.ProfileCompleteness
	}

	user := &domain.User{
		Username:            input.Username,
		ProfileCompleteness: completeness,
	}
	if err := u.repo.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (u *userUsecase) UpdateCompleteness(ctx context.Context, id int64, completeness *int) error {
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}

	// Absent field keeps the stored value
	value := user.ProfileCompleteness
	if completeness != nil {
		value = *completeness
	}
	return u.repo.UpdateCompleteness(ctx, id, value)
}
