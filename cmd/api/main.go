package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"candidate-dashboard-backend/config"
	v1 "candidate-dashboard-backend/internal/delivery/http/v1"
	"candidate-dashboard-backend/internal/repository/postgres"
	"candidate-dashboard-backend/internal/usecase"
	"candidate-dashboard-backend/pkg/database"
	"candidate-dashboard-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// @title           Candidate Dashboard API
// @version         1.0
// @description     Candidate dashboard backend: users, training wishlists and job-matching profiles.
// @host            localhost:5050
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting candidate dashboard backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Optional destructive reset + seed (development mode only)
	if cfg.DBResetOnStart {
		schema := postgres.NewSchemaManager(dbPool)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := schema.Reset(ctx); err != nil {
			cancel()
			logger.Log.Error("Failed to reset schema", "error", err)
			os.Exit(1)
		}
		if err := schema.Seed(ctx); err != nil {
			cancel()
			logger.Log.Error("Failed to seed sample data", "error", err)
			os.Exit(1)
		}
		cancel()
		logger.Log.Info("Database recreated with sample data")
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	wishlistRepo := postgres.NewWishlistRepository(dbPool)
	jobMatchRepo := postgres.NewJobMatchRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	userUC := usecase.NewUserUsecase(userRepo, validate)
	dashboardUC := usecase.NewDashboardUsecase(userRepo, wishlistRepo, jobMatchRepo)
	wishlistUC := usecase.NewWishlistUsecase(wishlistRepo, validate)
	jobMatchUC := usecase.NewJobMatchUsecase(jobMatchRepo, validate)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		UserUC:      userUC,
		DashboardUC: dashboardUC,
		WishlistUC:  wishlistUC,
		JobMatchUC:  jobMatchUC,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
