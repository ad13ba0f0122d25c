package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomease/roomease-backend/internal/usecase/favorite"
)

type FavoriteHandler struct {
	favoriteUseCase *favorite.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *favorite.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{favoriteUseCase: favoriteUseCase}
}

// AddFavorite handles POST /api/favorites
// @Summary Save a listing to favorites
// @Tags favorites
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body favorite.AddFavoriteRequest true "Listing reference"
// @Success 201 {object} favorite.FavoriteResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /favorites [post]
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req favorite.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.favoriteUseCase.AddFavorite(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, envelope(gin.H{
		"message": "Added to favorites successfully",
		"data":    result,
	}))
}

// ListFavorites handles GET /api/favorites
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.favoriteUseCase.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope(gin.H{
		"data":  result,
		"total": len(result),
	}))
}

// RemoveFavorite handles DELETE /api/favorites/:listingId
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.favoriteUseCase.RemoveFavorite(c.Request.Context(), userID, c.Param("listingId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope(gin.H{"message": "Removed from favorites successfully"}))
}

// CheckFavorite handles GET /api/favorites/check/:listingId
func (h *FavoriteHandler) CheckFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	favorited, err := h.favoriteUseCase.IsFavorited(c.Request.Context(), userID, c.Param("listingId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope(gin.H{"isFavorited": favorited}))
}

// CountFavorites handles GET /api/favorites/count
func (h *FavoriteHandler) CountFavorites(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	count, err := h.favoriteUseCase.CountFavorites(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope(gin.H{"count": count}))
}
