package domain

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("user with this email already exists")
	ErrListingNotFound  = errors.New("listing not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrFavoriteNotFound = errors.New("favorite not found")

	ErrDuplicateReview   = errors.New("listing already reviewed by this user")
	ErrDuplicateFavorite = errors.New("listing already in favorites")

	ErrReviewForbidden = errors.New("review belongs to another user")

	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")
)
