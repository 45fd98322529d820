package usecase

import (
	"context"

	"candidate-dashboard-backend/internal/domain"
	"candidate-dashboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type wishlistUsecase struct {
	repo     domain.WishlistRepository
	validate *validator.Validate
}

func NewWishlistUsecase(repo domain.WishlistRepository, validate *validator.Validate) domain.WishlistUsecase {
	return &wishlistUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *wishlistUsecase) Add(ctx context.Context, input domain.AddTrainingInput) error {
	// Both fields required; a zero user_id counts as missing. The user itself
	// is deliberately not looked up (orphan entries are accepted).
	if err := u.validate.Struct(input); err != nil {
		return apperror.BadRequest("user_id and training_name are required")
	}
	return u.repo.Create(ctx, &domain.TrainingWishlistEntry{
		UserID:       input.UserID,
		TrainingName: input.TrainingName,
	})
}
