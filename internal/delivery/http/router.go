package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/roomease/roomease-backend/internal/delivery/http/handler"
	"github.com/roomease/roomease-backend/internal/delivery/http/middleware"
	"github.com/roomease/roomease-backend/internal/domain"
)

type Router struct {
	authHandler     *handler.AuthHandler
	profileHandler  *handler.ProfileHandler
	listingHandler  *handler.ListingHandler
	reviewHandler   *handler.ReviewHandler
	favoriteHandler *handler.FavoriteHandler
	authMiddleware  *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	listingHandler *handler.ListingHandler,
	reviewHandler *handler.ReviewHandler,
	favoriteHandler *handler.FavoriteHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:     authHandler,
		profileHandler:  profileHandler,
		listingHandler:  listingHandler,
		reviewHandler:   reviewHandler,
		favoriteHandler: favoriteHandler,
		authMiddleware:  authMiddleware,
	}
}

// registerEnumValidations teaches the binding validator the closed enums so
// out-of-set values fail at the boundary instead of being coerced.
func registerEnumValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		return domain.Gender(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("lookingfor", func(fl validator.FieldLevel) bool {
		return domain.LookingFor(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("occupation", func(fl validator.FieldLevel) bool {
		return domain.Occupation(fl.Field().String()).Valid()
	})
}

func (r *Router) Setup() *gin.Engine {
	registerEnumValidations()

	router := gin.Default()

	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		profiles := api.Group("/profiles")
		{
			profiles.GET("", r.profileHandler.ListProfiles)
			profiles.GET("/:id", r.profileHandler.GetProfile)

			protected := profiles.Group("")
			protected.Use(r.authMiddleware.RequireAuth())
			{
				protected.PUT("/:id", r.profileHandler.UpdateProfile)
				protected.POST("/:id/complete", r.profileHandler.CompleteProfile)
				protected.DELETE("/:id", r.profileHandler.DeleteProfile)
			}
		}

		listings := api.Group("/listings")
		{
			listings.GET("", r.listingHandler.ListListings)
			listings.GET("/:id", r.listingHandler.GetListing)
			listings.POST("", r.authMiddleware.RequireAuth(), r.listingHandler.CreateListing)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("/listing/:listingId", r.reviewHandler.ListByListing)

			protected := reviews.Group("")
			protected.Use(r.authMiddleware.RequireAuth())
			{
				protected.POST("", r.reviewHandler.CreateReview)
				protected.GET("/my-reviews", r.reviewHandler.MyReviews)
				protected.PUT("/:reviewId", r.reviewHandler.UpdateReview)
				protected.DELETE("/:reviewId", r.reviewHandler.DeleteReview)
			}
		}

		favorites := api.Group("/favorites")
		favorites.Use(r.authMiddleware.RequireAuth())
		{
			favorites.POST("", r.favoriteHandler.AddFavorite)
			favorites.GET("", r.favoriteHandler.ListFavorites)
			favorites.GET("/count", r.favoriteHandler.CountFavorites)
			favorites.GET("/check/:listingId", r.favoriteHandler.CheckFavorite)
			favorites.DELETE("/:listingId", r.favoriteHandler.RemoveFavorite)
		}
	}

	return router
}
