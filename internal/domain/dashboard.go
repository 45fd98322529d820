package domain

import (
	"context"
	"fmt"
)

// MinCompletenessForJobs gates job-match visibility: users at or above the
// threshold see their matches, strictly below they get a 403.
const MinCompletenessForJobs = 50

type ProfileCompletenessView struct {
	Username string `json:"username"`
	// Rendered as "<n>%", e.g. "70%"
	ProfileCompleteness string `json:"profile_completeness"`
}

type TrainingWishlistView struct {
	Username      string   `json:"username"`
	WishlistCount int      `json:"wishlist_count"`
	Trainings     []string `json:"trainings"`
}

type MatchingJobsView struct {
	Username          string   `json:"username"`
	MatchingJobsCount int      `json:"matching_jobs_count"`
	MatchingJobs      []string `json:"matching_jobs"`
}

// ProfileIncompleteError is returned by MatchingJobs when the user's profile
// completeness is below the threshold. It carries the stored value so the
// handler can render it in the 403 body.
type ProfileIncompleteError struct {
	Completeness int
}

func (e *ProfileIncompleteError) Error() string {
	return "Complete your profile to see matching jobs."
}

// FormatCompleteness renders a completeness percentage the way the dashboard
// endpoints expose it.
func FormatCompleteness(completeness int) string {
	return fmt.Sprintf("%d%%", completeness)
}

type DashboardUsecase interface {
	ProfileCompleteness(ctx context.Context, userID int64) (*ProfileCompletenessView, error)
	TrainingWishlist(ctx context.Context, userID int64) (*TrainingWishlistView, error)
	MatchingJobs(ctx context.Context, userID int64) (*MatchingJobsView, error)
}
