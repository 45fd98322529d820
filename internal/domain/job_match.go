package domain

import "context"

// JobMatchingProfileEntry links a user to a job title considered a match for
// them. user_id is a value reference only; no FK is enforced, so entries may
// point at users that no longer exist.
type JobMatchingProfileEntry struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	JobTitle string `json:"job_title"`
}

type AddJobMatchInput struct {
	UserID   int64  `json:"user_id" validate:"required"`
	JobTitle string `json:"job_title" validate:"required"`
}

type JobMatchRepository interface {
	Create(ctx context.Context, entry *JobMatchingProfileEntry) error
	// ListByUserID returns entries in insertion order.
	ListByUserID(ctx context.Context, userID int64) ([]JobMatchingProfileEntry, error)
}

type JobMatchUsecase interface {
	Add(ctx context.Context, input AddJobMatchInput) error
}
