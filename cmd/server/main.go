package main

import (
	"log"
	"net/http"
	"time"

	_ "dinedir/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"dinedir/internal/auth"
	"dinedir/internal/cache"
	"dinedir/internal/config"
	"dinedir/internal/db"
	"dinedir/internal/handler"
	"dinedir/internal/model"
	"dinedir/internal/repository"
	"dinedir/internal/router"
	"dinedir/internal/service"
)

// @title Dinedir API
// @version 1.0
// @description Restaurant directory API with listings, reviews, and role-based JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Restaurant{},
		&model.Review{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	restaurantRepo := repository.NewRestaurantRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	txManager := repository.NewTxManager(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, time.Duration(cfg.TokenExpiryMinutes)*time.Minute)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, cacheClient)
	restaurantService := service.NewRestaurantService(restaurantRepo, txManager, cacheClient)
	reviewService := service.NewReviewService(reviewRepo, txManager, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	restaurantHandler := handler.NewRestaurantHandler(restaurantService, reviewService)
	ownerHandler := handler.NewOwnerHandler(restaurantService)
	placesHandler := handler.NewPlacesHandler(cfg.MapsAPIKey)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		restaurantHandler,
		ownerHandler,
		placesHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
