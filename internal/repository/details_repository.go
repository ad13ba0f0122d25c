package repository

import (
	"context"

	"github.com/roomease/roomease-backend/internal/domain"
)

type ProfileDetailsRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.ProfileDetails, error)
	GetByUserIDs(ctx context.Context, userIDs []string) (map[string]*domain.ProfileDetails, error)
	// Upsert creates the detail sub-record if absent and merges it otherwise.
	Upsert(ctx context.Context, details *domain.ProfileDetails) error
	Delete(ctx context.Context, userID string) error
}
