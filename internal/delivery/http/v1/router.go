package v1

import (
	"net/http"

	"candidate-dashboard-backend/internal/delivery/http/middleware"
	"candidate-dashboard-backend/internal/delivery/http/response"
	"candidate-dashboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	UserUC      domain.UserUsecase
	DashboardUC domain.DashboardUsecase
	WishlistUC  domain.WishlistUsecase
	JobMatchUC  domain.JobMatchUsecase
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	// Index: self-describing endpoint listing
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Candidate Dashboard",
			"endpoints": []string{
				"GET /dashboard/profile_completeness?user_id=1",
				"GET /dashboard/training_wishlist?user_id=1",
				"GET /dashboard/jobs_matching_profile?user_id=1",
				"GET /users",
				"POST /user",
				"PUT /user/<id>",
				"POST /training_wishlist",
				"POST /job_matching_profile",
			},
		})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewUserHandler(r, deps.UserUC)
	NewDashboardHandler(r, deps.DashboardUC)
	NewWishlistHandler(r, deps.WishlistUC)
	NewJobMatchHandler(r, deps.JobMatchUC)

	// Everything else, including method mismatches, falls through here
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "This route does not exist")
	})

	return r
}
