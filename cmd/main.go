package main

import (
	"context"
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"homeport/internal/caching"
	"homeport/internal/common"
	"homeport/internal/config"
	"homeport/internal/handlers"
	"homeport/internal/jobs/background"
	"homeport/internal/middleware"
	"homeport/internal/repositories"
	"homeport/internal/services"
	"homeport/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Object storage for listing photos
	imageStore, err := services.NewMinioImageStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL, cfg.MinioBucket)
	if err != nil {
		log.Fatalf("Failed to initialize image store: %v", err)
	}
	if err := imageStore.EnsureBucket(context.Background()); err != nil {
		log.Printf("WARNING: Failed to ensure image bucket %s: %v", cfg.MinioBucket, err)
	}

	cacheSvc := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	preferenceRepo := repositories.NewPreferenceRepo(pool)
	houseRepo := repositories.NewHouseRepo(pool)
	brokerRepo := repositories.NewBrokerRepo(pool)

	// Services
	tokenSvc := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := services.NewAuthService(userRepo, tokenSvc)
	preferenceSvc := services.NewPreferenceService(userRepo, preferenceRepo)
	listingSvc := services.NewListingService(houseRepo, cacheSvc, imageStore)

	// Background jobs
	scheduler, err := background.NewJobScheduler(listingSvc, brokerRepo)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Printf("Failed to stop job scheduler: %v", err)
		}
	}()

	// Handlers
	authHandlers := handlers.NewAuthHandlers(authSvc)
	userHandlers := handlers.NewUserHandlers(preferenceSvc)
	houseHandlers := handlers.NewHouseHandlers(listingSvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc, imageStore)

	e := echo.New()
	e.Validator = common.NewRequestValidator()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// The bearer filter runs on every request but never rejects; handlers
	// that need an identity enforce its presence themselves.
	e.Use(middleware.BearerAuth(tokenSvc, userRepo))

	// Health endpoints
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// API routes
	api := e.Group("/api/v1")

	realtors := api.Group("/realtors")
	realtors.GET("/houses", houseHandlers.ListHouses)

	users := api.Group("/users")
	users.GET("/greet", userHandlers.Greet)
	users.POST("/auth/signup", authHandlers.Signup)
	users.POST("/auth/login", authHandlers.Login)
	users.POST("/add/preference", userHandlers.AddPreference)

	log.Printf("homeport server starting on port %d", cfg.Port)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}
