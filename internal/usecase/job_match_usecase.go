package usecase

import (
	"context"

	"candidate-dashboard-backend/internal/domain"
	"candidate-dashboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type jobMatchUsecase struct {
	repo     domain.JobMatchRepository
	validate *validator.Validate
}

func NewJobMatchUsecase(repo domain.JobMatchRepository, validate *validator.Validate) domain.JobMatchUsecase {
	return &jobMatchUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *jobMatchUsecase) Add(ctx context.Context, input domain.AddJobMatchInput) error {
	if err := u.validate.Struct(input); err != nil {
		return apperror.BadRequest("user_id and job_title are required")
	}
	return u.repo.Create(ctx, &domain.JobMatchingProfileEntry{
		UserID:   input.UserID,
		JobTitle: input.JobTitle,
	})
}
