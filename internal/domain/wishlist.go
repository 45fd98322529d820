package domain

import "context"

type TrainingWishlistEntry struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	TrainingName string `json:"training_name"`
}

type AddTrainingInput struct {
	UserID       int64  `json:"user_id" validate:"required"`
	TrainingName string `json:"training_name" validate:"required"`
}

type WishlistRepository interface {
	Create(ctx context.Context, entry *TrainingWishlistEntry) error
	// ListByUserID returns entries in insertion order.
	ListByUserID(ctx context.Context, userID int64) ([]TrainingWishlistEntry, error)
}

type WishlistUsecase interface {
	Add(ctx context.Context, input AddTrainingInput) error
}
