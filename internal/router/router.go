package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mblog-app/backend/internal/handlers"
	"github.com/mblog-app/backend/internal/middleware"
	"github.com/mblog-app/backend/internal/models"
	"github.com/mblog-app/backend/internal/repositories"
	"github.com/mblog-app/backend/internal/services"
	"github.com/mblog-app/backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(middleware.Metrics())
	e.Use(eMiddleware.RequestLoggerWithConfig(eMiddleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v eMiddleware.RequestLoggerValues) error {
			logrus.WithFields(logrus.Fields{
				"method": v.Method,
				"uri":    v.URI,
				"status": v.Status,
			}).Info("request")
			return nil
		},
	}))
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Tweet{},
		&models.Like{},
		&models.Follow{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	e.GET("/health", handlers.HealthCheck)

	// --- Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	tweetRepo := repositories.NewPostgresTweetRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)

	// --- Services ---
	userService := services.NewUserService(userRepo, cfg.JWTSecret)
	tweetService := services.NewTweetService(tweetRepo, userRepo, followRepo)
	likeService := services.NewLikeService(likeRepo, tweetRepo, userRepo)
	followService := services.NewFollowService(followRepo, userRepo)

	auth := middleware.JWTAuthMiddleware(cfg.JWTSecret)
	validUUID := middleware.ValidateUUIDParams()

	handlers.NewUserHandler(userService).RegisterUserRoutes(e, auth, validUUID)
	log.Println("User routes configured.")

	handlers.NewTweetHandler(tweetService).RegisterTweetRoutes(e, auth, validUUID)
	log.Println("Tweet routes configured.")

	handlers.NewFollowHandler(followService).RegisterFollowRoutes(e, auth, validUUID)
	log.Println("Follow routes configured.")

	handlers.NewLikeHandler(likeService).RegisterLikeRoutes(e, auth, validUUID)
	log.Println("Like routes configured.")

	log.Println("All routes configured.")
}
