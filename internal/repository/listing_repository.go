package repository

import (
	"context"

	"github.com/roomease/roomease-backend/internal/domain"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Listing, error)
	List(ctx context.Context) ([]*domain.Listing, error)
}
