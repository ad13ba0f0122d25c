package repository

import (
	"context"

	"github.com/roomease/roomease-backend/internal/domain"
)

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *domain.Favorite) error
	GetByUserAndListing(ctx context.Context, userID, listingID string) (*domain.Favorite, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error)
	Delete(ctx context.Context, id string) error
	CountByUser(ctx context.Context, userID string) (int, error)
}
