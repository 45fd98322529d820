package postgres

import (
	"context"

	"candidate-dashboard-backend/internal/domain"
)

// Fixed development dataset. Insertion order matters: a fresh schema assigns
// ids 1-5 to the users in this order, and the child fixtures reference those
// ids.
var seedUsers = []domain.User{
	{Username: "alice", ProfileCompleteness: 20},
	{Username: "bob", ProfileCompleteness: 55},
	{Username: "carol", ProfileCompleteness: 70},
	{Username: "dave", ProfileCompleteness: 90},
	{Username: "eve", ProfileCompleteness: 40},
}

var seedTrainings = []domain.TrainingWishlistEntry{
	{UserID: 1, TrainingName: "Python Basics"},
	{UserID: 2, TrainingName: "Flask Advanced"},
	{UserID: 3, TrainingName: "Data Science 101"},
	{UserID: 4, TrainingName: "Machine Learning"},
	{UserID: 5, TrainingName: "Cybersecurity Essentials"},
}

var seedJobMatches = []domain.JobMatchingProfileEntry{
	{UserID: 2, JobTitle: "Backend Developer"},
	{UserID: 3, JobTitle: "Data Analyst"},
	{UserID: 4, JobTitle: "ML Engineer"},
	{UserID: 4, JobTitle: "DevOps Engineer"},
	{UserID: 3, JobTitle: "BI Developer"},
}

// Seed inserts the development dataset. It assumes a freshly reset schema so
// the generated ids line up with the fixture references.
func (m *SchemaManager) Seed(ctx context.Context) error {
	for _, u := range seedUsers {
		if _, err := m.db.Exec(ctx,
			`INSERT INTO users (username, profile_completeness) VALUES ($1, $2)`,
			u.Username, u.ProfileCompleteness); err != nil {
			return err
		}
	}
	for _, t := range seedTrainings {
		if _, err := m.db.Exec(ctx,
			`INSERT INTO training_wishlist (user_id, training_name) VALUES ($1, $2)`,
			t.UserID, t.TrainingName); err != nil {
			return err
		}
	}
	for _, j := range seedJobMatches {
		if _, err := m.db.Exec(ctx,
			`INSERT INTO job_matching_profiles (user_id, job_title) VALUES ($1, $2)`,
			j.UserID, j.JobTitle); err != nil {
			return err
		}
	}
	return nil
}
