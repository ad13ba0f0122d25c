package listing

import (
	"context"
	"fmt"

	"github.com/roomease/roomease-backend/internal/domain"
	"github.com/roomease/roomease-backend/internal/repository"
	"github.com/roomease/roomease-backend/internal/usecase/rating"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	reviewRepo  repository.ReviewRepository
	userRepo    repository.UserRepository
	ratings     *rating.Service
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	ratings *rating.Service,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		ratings:     ratings,
	}
}

type CreateListingRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required"`
	Location    string   `json:"location" binding:"required,max=200"`
	Rent        float64  `json:"rent" binding:"required,gt=0"`
	Type        string   `json:"type" binding:"required,max=50"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
}

// ListingResponse is a listing with its owner projection and the rating
// aggregate. Raw per-review ratings are never exposed here.
type ListingResponse struct {
	*domain.Listing
	Owner *domain.ListingOwner `json:"user,omitempty"`
	domain.RatingSummary
}

// ReviewWithAuthor is a review with its author's public projection.
type ReviewWithAuthor struct {
	*domain.Review
	User *domain.ListingOwner `json:"user,omitempty"`
}

// ListingDetailResponse adds the full review list, which only the
// single-listing fetch returns.
type ListingDetailResponse struct {
	ListingResponse
	Reviews []*ReviewWithAuthor `json:"reviews"`
}

func (uc *ListingUseCase) CreateListing(ctx context.Context, userID string, req *CreateListingRequest) (*domain.Listing, error) {
	listing := &domain.Listing{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Rent:        req.Rent,
		Type:        req.Type,
		Images:      req.Images,
		Amenities:   req.Amenities,
	}
	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	return listing, nil
}

// ListListings returns all listings, newest first, each with owner and
// rating aggregate.
func (uc *ListingUseCase) ListListings(ctx context.Context) ([]*ListingResponse, error) {
	listings, err := uc.listingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}

	ids := make([]string, len(listings))
	ownerIDs := make([]string, len(listings))
	for i, l := range listings {
		ids[i] = l.ID
		ownerIDs[i] = l.UserID
	}

	summaries, err := uc.ratings.Summaries(ctx, ids)
	if err != nil {
		return nil, err
	}
	owners, err := uc.userRepo.GetOwners(ctx, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load listing owners: %w", err)
	}

	responses := make([]*ListingResponse, len(listings))
	for i, l := range listings {
		responses[i] = &ListingResponse{
			Listing:       l,
			Owner:         ownerRef(owners, l.UserID),
			RatingSummary: summaries[l.ID],
		}
	}
	return responses, nil
}

// GetListing returns one listing with its owner, rating aggregate and the
// full review list with author projections.
func (uc *ListingUseCase) GetListing(ctx context.Context, id string) (*ListingDetailResponse, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := uc.reviewRepo.ListByListing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}

	authorIDs := make([]string, 0, len(reviews)+1)
	authorIDs = append(authorIDs, listing.UserID)
	for _, review := range reviews {
		authorIDs = append(authorIDs, review.UserID)
	}
	owners, err := uc.userRepo.GetOwners(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load review authors: %w", err)
	}

	withAuthors := make([]*ReviewWithAuthor, len(reviews))
	ratings := make([]int, len(reviews))
	for i, review := range reviews {
		withAuthors[i] = &ReviewWithAuthor{Review: review, User: ownerRef(owners, review.UserID)}
		ratings[i] = review.Rating
	}

	return &ListingDetailResponse{
		ListingResponse: ListingResponse{
			Listing:       listing,
			Owner:         ownerRef(owners, listing.UserID),
			RatingSummary: domain.SummarizeRatings(ratings),
		},
		Reviews: withAuthors,
	}, nil
}

// ownerRef tolerates dangling user references left by profile deletion.
func ownerRef(owners map[string]domain.ListingOwner, id string) *domain.ListingOwner {
	if owner, ok := owners[id]; ok {
		return &owner
	}
	return nil
}
