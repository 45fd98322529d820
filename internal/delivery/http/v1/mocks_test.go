package v1_test

import (
	"context"
	"errors"

	v1 "candidate-dashboard-backend/internal/delivery/http/v1"
	"candidate-dashboard-backend/internal/domain"
	"candidate-dashboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// =============================================================================
// Mock Implementations
// =============================================================================

type mockUserUC struct {
	listFunc   func(ctx context.Context) ([]domain.User, error)
	createFunc func(ctx context.Context, input domain.CreateUserInput) (int64, error)
	updateFunc func(ctx context.Context, id int64, completeness *int) error
}

func (m *mockUserUC) List(ctx context.Context) ([]domain.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserUC) Create(ctx context.Context, input domain.CreateUserInput) (int64, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, input)
	}
	return 0, errors.New("not implemented")
}

func (m *mockUserUC) UpdateCompleteness(ctx context.Context, id int64, completeness *int) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, completeness)
	}
	return errors.New("not implemented")
}

type mockDashboardUC struct {
	profileFunc  func(ctx context.Context, userID int64) (*domain.ProfileCompletenessView, error)
	wishlistFunc func(ctx context.Context, userID int64) (*domain.TrainingWishlistView, error)
	jobsFunc     func(ctx context.Context, userID int64) (*domain.MatchingJobsView, error)
}

func (m *mockDashboardUC) ProfileCompleteness(ctx context.Context, userID int64) (*domain.ProfileCompletenessView, error) {
	if m.profileFunc != nil {
		return m.profileFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockDashboardUC) TrainingWishlist(ctx context.Context, userID int64) (*domain.TrainingWishlistView, error) {
	if m.wishlistFunc != nil {
		return m.wishlistFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockDashboardUC) MatchingJobs(ctx context.Context, userID int64) (*domain.MatchingJobsView, error) {
	if m.jobsFunc != nil {
		return m.jobsFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

type mockWishlistUC struct {
	addFunc func(ctx context.Context, input domain.AddTrainingInput) error
}

func (m *mockWishlistUC) Add(ctx context.Context, input domain.AddTrainingInput) error {
	if m.addFunc != nil {
		return m.addFunc(ctx, input)
	}
	return errors.New("not implemented")
}

type mockJobMatchUC struct {
	addFunc func(ctx context.Context, input domain.AddJobMatchInput) error
}

func (m *mockJobMatchUC) Add(ctx context.Context, input domain.AddJobMatchInput) error {
	if m.addFunc != nil {
		return m.addFunc(ctx, input)
	}
	return errors.New("not implemented")
}

// newTestRouter wires a full router around the given mocks. Nil mocks are
// replaced with empty ones so unrelated routes still register.
func newTestRouter(userUC *mockUserUC, dashboardUC *mockDashboardUC, wishlistUC *mockWishlistUC, jobMatchUC *mockJobMatchUC) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()
	if userUC == nil {
		userUC = &mockUserUC{}
	}
	if dashboardUC == nil {
		dashboardUC = &mockDashboardUC{}
	}
	if wishlistUC == nil {
		wishlistUC = &mockWishlistUC{}
	}
	if jobMatchUC == nil {
		jobMatchUC = &mockJobMatchUC{}
	}
	return v1.NewRouter(v1.RouterDeps{
		UserUC:      userUC,
		DashboardUC: dashboardUC,
		WishlistUC:  wishlistUC,
		JobMatchUC:  jobMatchUC,
	})
}
