package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomease/roomease-backend/internal/domain"
)

// ErrorResponse is the failure envelope: success=false, a human-readable
// message and the underlying diagnostic text.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Server error"

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		status, message = http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrListingNotFound):
		status, message = http.StatusNotFound, "Listing not found"
	case errors.Is(err, domain.ErrReviewNotFound):
		status, message = http.StatusNotFound, "Review not found"
	case errors.Is(err, domain.ErrFavoriteNotFound):
		status, message = http.StatusNotFound, "Favorite not found"
	case errors.Is(err, domain.ErrEmailTaken):
		status, message = http.StatusConflict, "User with this email already exists"
	case errors.Is(err, domain.ErrDuplicateReview):
		status, message = http.StatusConflict, "You have already reviewed this listing"
	case errors.Is(err, domain.ErrDuplicateFavorite):
		status, message = http.StatusConflict, "Listing already in favorites"
	case errors.Is(err, domain.ErrReviewForbidden):
		status, message = http.StatusForbidden, "You can only modify your own reviews"
	case errors.Is(err, domain.ErrInvalidRating):
		status, message = http.StatusBadRequest, "Rating must be between 1 and 5"
	case errors.Is(err, domain.ErrInvalidInput):
		status, message = http.StatusBadRequest, "Invalid input"
	case errors.Is(err, domain.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "Invalid email or password"
	}

	resp := ErrorResponse{Success: false, Message: message}
	if status == http.StatusInternalServerError || status == http.StatusBadRequest {
		resp.Error = err.Error()
	}
	c.JSON(status, resp)
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Message: "Invalid request body",
		Error:   err.Error(),
	})
}

// envelope builds the success payload. Extra top-level fields (count, total,
// pagination, isFavorited) are merged in by the callers.
func envelope(fields gin.H) gin.H {
	out := gin.H{"success": true}
	for k, v := range fields {
		out[k] = v
	}
	return out
}

// currentUserID reads the verified user id set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	id, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Success: false, Message: "Unauthorized"})
		return "", false
	}
	return id.(string), true
}
