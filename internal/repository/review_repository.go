package repository

import (
	"context"

	"github.com/roomease/roomease-backend/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	GetByUserAndListing(ctx context.Context, userID, listingID string) (*domain.Review, error)
	ListByListing(ctx context.Context, listingID string) ([]*domain.Review, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Review, error)
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id string) error
	RatingsByListing(ctx context.Context, listingID string) ([]int, error)
	RatingsByListings(ctx context.Context, listingIDs []string) (map[string][]int, error)
}
