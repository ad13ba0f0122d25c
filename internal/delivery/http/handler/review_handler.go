package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomease/roomease-backend/internal/usecase/review"
)

type ReviewHandler struct {
	reviewUseCase *review.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *review.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{reviewUseCase: reviewUseCase}
}

// CreateReview handles POST /api/reviews
// @Summary Review a listing
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body review.CreateReviewRequest true "Review data"
// @Success 201 {object} review.ReviewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req review.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.reviewUseCase.CreateReview(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, envelope(gin.H{
		"message": "Review created successfully",
		"data":    result,
	}))
}

// ListByListing handles GET /api/reviews/listing/:listingId
func (h *ReviewHandler) ListByListing(c *gin.Context) {
	result, err := h.reviewUseCase.ListByListing(c.Request.Context(), c.Param("listingId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope(gin.H{"data": result}))
}

// UpdateReview handles PUT /api/reviews/:reviewId
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req review.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.reviewUseCase.UpdateReview(c.Request.Context(), userID, c.Param("reviewId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope(gin.H{
		"message": "Review updated successfully",
		"data":    result,
	}))
}

// DeleteReview handles DELETE /api/reviews/:reviewId
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.reviewUseCase.DeleteReview(c.Request.Context(), userID, c.Param("reviewId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope(gin.H{"message": "Review deleted successfully"}))
}

// MyReviews handles GET /api/reviews/my-reviews
func (h *ReviewHandler) MyReviews(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.reviewUseCase.MyReviews(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope(gin.H{"data": result}))
}
