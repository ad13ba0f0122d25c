package repository

import (
	"context"

	"github.com/roomease/roomease-backend/internal/domain"
)

// ProfileFilter carries the optional search criteria for profile listing.
// A nil field means no constraint. Budget matching uses range overlap:
// a profile matches when its budget window intersects the requested one.
type ProfileFilter struct {
	Gender     *domain.Gender
	Profession *string
	Location   *string
	LookingFor *domain.LookingFor
	MinBudget  *int
	MaxBudget  *int
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	SetProfileComplete(ctx context.Context, id string, complete bool) error
	Search(ctx context.Context, filter ProfileFilter, limit, offset int) ([]*domain.User, error)
	Count(ctx context.Context, filter ProfileFilter) (int, error)
	GetOwners(ctx context.Context, ids []string) (map[string]domain.ListingOwner, error)
}
