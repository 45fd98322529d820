package usecase

import (
	"context"

	"candidate-dashboard-backend/internal/domain"
	"candidate-dashboard-backend/pkg/apperror"
)

type dashboardUsecase struct {
	userRepo     domain.UserRepository
	wishlistRepo domain.WishlistRepository
	jobMatchRepo domain.JobMatchRepository
}

func NewDashboardUsecase(userRepo domain.UserRepository, wishlistRepo domain.WishlistRepository, jobMatchRepo domain.JobMatchRepository) domain.DashboardUsecase {
	return &dashboardUsecase{
		userRepo:     userRepo,
		wishlistRepo: wishlistRepo,
		jobMatchRepo: jobMatchRepo,
	}
}

// resolveUser implements the shared user_id lookup of all dashboard reads.
// A non-positive id means the query parameter was missing or unparseable.
func (u *dashboardUsecase) resolveUser(ctx context.Context, userID int64) (*domain.User, error) {
	if userID <= 0 {
		return nil, apperror.NotFound("User not found or no user_id provided")
	}
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found or no user_id provided")
	}
	return user, nil
}

func (u *dashboardUsecase) ProfileCompleteness(ctx context.Context, userID int64) (*domain.ProfileCompletenessView, error) {
	user, err := u.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.ProfileCompletenessView{
		Username:            user.Username,
		ProfileCompleteness: domain.FormatCompleteness(user.ProfileCompleteness),
	}, nil
}

func (u *dashboardUsecase) TrainingWishlist(ctx context.Context, userID int64) (*domain.TrainingWishlistView, error) {
	user, err := u.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries, err := u.wishlistRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	trainings := make([]string, 0, len(entries))
	for _, e := range entries {
		trainings = append(trainings, e.TrainingName)
	}
	return &domain.TrainingWishlistView{
		Username:      user.Username,
		WishlistCount: len(trainings),
		Trainings:     trainings,
	}, nil
}

func (u *dashboardUsecase) MatchingJobs(ctx context.Context, userID int64) (*domain.MatchingJobsView, error) {
	user, err := u.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	// Strict less-than: exactly 50 already unlocks the list
	if user.ProfileCompleteness < domain.MinCompletenessForJobs {
		return nil, &domain.ProfileIncompleteError{Completeness: user.ProfileCompleteness}
	}

	entries, err := u.jobMatchRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	jobs := make([]string, 0, len(entries))
	for _, e := range entries {
		jobs = append(jobs, e.JobTitle)
	}
	return &domain.MatchingJobsView{
		Username:          user.Username,
		MatchingJobsCount: len(jobs),
		MatchingJobs:      jobs,
	}, nil
}
