package v1

import (
	"errors"
	"net/http"
	"strconv"

	"candidate-dashboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(r *gin.Engine, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}

	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/profile_completeness", handler.ProfileCompleteness)
		dashboard.GET("/training_wishlist", handler.TrainingWishlist)
		dashboard.GET("/jobs_matching_profile", handler.MatchingJobs)
	}
}

// userIDParam parses the user_id query parameter. Missing or non-integer
// values come back as 0, which the usecase resolves to the not-found error.
func userIDParam(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// ProfileCompleteness godoc
// @Summary      Profile completeness for a user
// @Tags         dashboard
// @Produce      json
// @Param        user_id  query     int  true  "User ID"
// @Success      200  {object}  domain.ProfileCompletenessView
// @Failure      404  {object}  map[string]string
// @Router       /dashboard/profile_completeness [get]
func (h *DashboardHandler) ProfileCompleteness(c *gin.Context) {
	view, err := h.dashboardUC.ProfileCompleteness(c, userIDParam(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// TrainingWishlist godoc
// @Summary      Training wishlist for a user
// @Tags         dashboard
// @Produce      json
// @Param        user_id  query     int  true  "User ID"
// @Success      200  {object}  domain.TrainingWishlistView
// @Failure      404  {object}  map[string]string
// @Router       /dashboard/training_wishlist [get]
func (h *DashboardHandler) TrainingWishlist(c *gin.Context) {
	view, err := h.dashboardUC.TrainingWishlist(c, userIDParam(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// MatchingJobs godoc
// @Summary      Matching jobs for a user
// @Description  Requires profile completeness of at least 50
// @Tags         dashboard
// @Produce      json
// @Param        user_id  query     int  true  "User ID"
// @Success      200  {object}  domain.MatchingJobsView
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /dashboard/jobs_matching_profile [get]
func (h *DashboardHandler) MatchingJobs(c *gin.Context) {
	view, err := h.dashboardUC.MatchingJobs(c, userIDParam(c))
	if err != nil {
		var incomplete *domain.ProfileIncompleteError
		if errors.As(err, &incomplete) {
			// Dedicated 403 body carrying the stored completeness
			c.JSON(http.StatusForbidden, gin.H{
				"message":              incomplete.Error(),
				"profile_completeness": domain.FormatCompleteness(incomplete.Completeness),
			})
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, view)
}
