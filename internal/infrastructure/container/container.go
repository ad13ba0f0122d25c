package container

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/roomease/roomease-backend/internal/config"
	"github.com/roomease/roomease-backend/internal/delivery/http"
	"github.com/roomease/roomease-backend/internal/delivery/http/handler"
	"github.com/roomease/roomease-backend/internal/delivery/http/middleware"
	"github.com/roomease/roomease-backend/internal/infrastructure/cache"
	"github.com/roomease/roomease-backend/internal/infrastructure/database"
	"github.com/roomease/roomease-backend/internal/infrastructure/server"
	"github.com/roomease/roomease-backend/internal/repository/postgres"
	"github.com/roomease/roomease-backend/internal/usecase/auth"
	"github.com/roomease/roomease-backend/internal/usecase/favorite"
	"github.com/roomease/roomease-backend/internal/usecase/listing"
	"github.com/roomease/roomease-backend/internal/usecase/profile"
	"github.com/roomease/roomease-backend/internal/usecase/rating"
	"github.com/roomease/roomease-backend/internal/usecase/review"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := postgres.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis; the rating cache degrades to pass-through without it
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			slog.Warn("redis unavailable, rating cache disabled", "error", err)
			redisClient = nil
		}
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	detailsRepo := postgres.NewProfileDetailsRepository(db)
	listingRepo := postgres.NewListingRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	favoriteRepo := postgres.NewFavoriteRepository(db)

	// Initialize shared services
	ratingCache := cache.NewRatingCache(redisClient, cfg.Redis.RatingTTL)
	ratingService := rating.NewService(reviewRepo, ratingCache)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiryHours)*time.Hour,
	)

	profileUseCase := profile.NewProfileUseCase(
		userRepo,
		detailsRepo,
	)

	listingUseCase := listing.NewListingUseCase(
		listingRepo,
		reviewRepo,
		userRepo,
		ratingService,
	)

	reviewUseCase := review.NewReviewUseCase(
		reviewRepo,
		listingRepo,
		userRepo,
		ratingService,
	)

	favoriteUseCase := favorite.NewFavoriteUseCase(
		favoriteRepo,
		listingRepo,
		userRepo,
		ratingService,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	listingHandler := handler.NewListingHandler(listingUseCase)
	reviewHandler := handler.NewReviewHandler(reviewUseCase)
	favoriteHandler := handler.NewFavoriteHandler(favoriteUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		profileHandler,
		listingHandler,
		reviewHandler,
		favoriteHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			slog.Error("error closing redis", "error", err)
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
