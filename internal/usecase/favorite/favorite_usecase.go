package favorite

import (
	"context"
	"errors"
	"fmt"

	"github.com/roomease/roomease-backend/internal/domain"
	"github.com/roomease/roomease-backend/internal/repository"
	"github.com/roomease/roomease-backend/internal/usecase/rating"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	listingRepo  repository.ListingRepository
	userRepo     repository.UserRepository
	ratings      *rating.Service
}

func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	ratings *rating.Service,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		listingRepo:  listingRepo,
		userRepo:     userRepo,
		ratings:      ratings,
	}
}

type AddFavoriteRequest struct {
	ListingID string `json:"listingId" binding:"required"`
}

// FavoriteListing is the saved listing with owner and rating aggregate,
// the same aggregate-only shape as every other listing surface.
type FavoriteListing struct {
	*domain.Listing
	Owner *domain.ListingOwner `json:"user,omitempty"`
	domain.RatingSummary
}

type FavoriteResponse struct {
	*domain.Favorite
	Listing *FavoriteListing `json:"listing,omitempty"`
}

// AddFavorite saves a listing for the user. At most one favorite may exist
// per (user, listing) pair; the store-level unique constraint backs the
// check against concurrent duplicates.
func (uc *FavoriteUseCase) AddFavorite(ctx context.Context, userID string, req *AddFavoriteRequest) (*FavoriteResponse, error) {
	listing, err := uc.listingRepo.GetByID(ctx, req.ListingID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.favoriteRepo.GetByUserAndListing(ctx, userID, req.ListingID); err == nil {
		return nil, domain.ErrDuplicateFavorite
	} else if !errors.Is(err, domain.ErrFavoriteNotFound) {
		return nil, fmt.Errorf("failed to check existing favorite: %w", err)
	}

	favorite := &domain.Favorite{
		UserID:    userID,
		ListingID: req.ListingID,
	}
	if err := uc.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, err
	}

	return uc.compose(ctx, favorite, listing)
}

// ListFavorites returns the user's saved listings, newest first.
func (uc *FavoriteUseCase) ListFavorites(ctx context.Context, userID string) ([]*FavoriteResponse, error) {
	favorites, err := uc.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	listingIDs := make([]string, len(favorites))
	for i, favorite := range favorites {
		listingIDs[i] = favorite.ListingID
	}
	listings, err := uc.listingRepo.GetByIDs(ctx, listingIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load listings: %w", err)
	}
	summaries, err := uc.ratings.Summaries(ctx, listingIDs)
	if err != nil {
		return nil, err
	}

	ownerIDs := make([]string, 0, len(listings))
	for _, listing := range listings {
		ownerIDs = append(ownerIDs, listing.UserID)
	}
	owners, err := uc.userRepo.GetOwners(ctx, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load listing owners: %w", err)
	}

	responses := make([]*FavoriteResponse, len(favorites))
	for i, favorite := range favorites {
		responses[i] = &FavoriteResponse{Favorite: favorite}
		if listing, ok := listings[favorite.ListingID]; ok {
			fl := &FavoriteListing{
				Listing:       listing,
				RatingSummary: summaries[listing.ID],
			}
			if owner, ok := owners[listing.UserID]; ok {
				fl.Owner = &owner
			}
			responses[i].Listing = fl
		}
	}
	return responses, nil
}

// RemoveFavorite deletes the user's favorite of a listing.
func (uc *FavoriteUseCase) RemoveFavorite(ctx context.Context, userID, listingID string) error {
	favorite, err := uc.favoriteRepo.GetByUserAndListing(ctx, userID, listingID)
	if err != nil {
		return err
	}
	return uc.favoriteRepo.Delete(ctx, favorite.ID)
}

// IsFavorited reports whether the user has saved the listing.
func (uc *FavoriteUseCase) IsFavorited(ctx context.Context, userID, listingID string) (bool, error) {
	_, err := uc.favoriteRepo.GetByUserAndListing(ctx, userID, listingID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrFavoriteNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check favorite: %w", err)
}

// CountFavorites returns how many listings the user has saved.
func (uc *FavoriteUseCase) CountFavorites(ctx context.Context, userID string) (int, error) {
	return uc.favoriteRepo.CountByUser(ctx, userID)
}

func (uc *FavoriteUseCase) compose(ctx context.Context, favorite *domain.Favorite, listing *domain.Listing) (*FavoriteResponse, error) {
	summary, err := uc.ratings.Summary(ctx, listing.ID)
	if err != nil {
		return nil, err
	}
	owners, err := uc.userRepo.GetOwners(ctx, []string{listing.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to load listing owner: %w", err)
	}
	fl := &FavoriteListing{Listing: listing, RatingSummary: summary}
	if owner, ok := owners[listing.UserID]; ok {
		fl.Owner = &owner
	}
	return &FavoriteResponse{Favorite: favorite, Listing: fl}, nil
}
