package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/roomease/roomease-backend/internal/domain"
	"github.com/roomease/roomease-backend/internal/repository"
	"github.com/roomease/roomease-backend/internal/usecase/rating"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
	ratings     *rating.Service
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	ratings *rating.Service,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		listingRepo: listingRepo,
		userRepo:    userRepo,
		ratings:     ratings,
	}
}

type CreateReviewRequest struct {
	ListingID string `json:"listingId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment" binding:"omitempty,min=1"`
}

// ReviewResponse is a review with its author's public projection.
type ReviewResponse struct {
	*domain.Review
	User *domain.ListingOwner `json:"user,omitempty"`
}

// ListingReviewsResponse is the one surface that exposes raw review records
// for a listing, together with the shared rating aggregate.
type ListingReviewsResponse struct {
	Reviews []*ReviewResponse `json:"reviews"`
	domain.RatingSummary
}

// ListingRef is the trimmed listing projection attached to a user's own
// review history.
type ListingRef struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Location string   `json:"location"`
	Images   []string `json:"images"`
}

type MyReviewResponse struct {
	*domain.Review
	Listing *ListingRef `json:"listing,omitempty"`
}

// CreateReview persists a review after the uniqueness and range guards.
// Validation happens before any write.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, userID string, req *CreateReviewRequest) (*ReviewResponse, error) {
	if !domain.ValidRating(req.Rating) {
		return nil, domain.ErrInvalidRating
	}

	if _, err := uc.listingRepo.GetByID(ctx, req.ListingID); err != nil {
		return nil, err
	}

	if _, err := uc.reviewRepo.GetByUserAndListing(ctx, userID, req.ListingID); err == nil {
		return nil, domain.ErrDuplicateReview
	} else if !errors.Is(err, domain.ErrReviewNotFound) {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}

	review := &domain.Review{
		ListingID: req.ListingID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	// The unique (user_id, listing_id) constraint backs this check, so a
	// concurrent duplicate still surfaces as ErrDuplicateReview.
	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	uc.ratings.Invalidate(ctx, req.ListingID)

	return uc.withAuthor(ctx, review)
}

// ListByListing returns all reviews of a listing, newest first, plus the
// rating aggregate.
func (uc *ReviewUseCase) ListByListing(ctx context.Context, listingID string) (*ListingReviewsResponse, error) {
	reviews, err := uc.reviewRepo.ListByListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	authorIDs := make([]string, len(reviews))
	ratings := make([]int, len(reviews))
	for i, review := range reviews {
		authorIDs[i] = review.UserID
		ratings[i] = review.Rating
	}
	authors, err := uc.userRepo.GetOwners(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load review authors: %w", err)
	}

	responses := make([]*ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = &ReviewResponse{Review: review}
		if author, ok := authors[review.UserID]; ok {
			responses[i].User = &author
		}
	}

	return &ListingReviewsResponse{
		Reviews:       responses,
		RatingSummary: domain.SummarizeRatings(ratings),
	}, nil
}

// UpdateReview applies the supplied fields to the caller's own review.
func (uc *ReviewUseCase) UpdateReview(ctx context.Context, userID, reviewID string, req *UpdateReviewRequest) (*ReviewResponse, error) {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		return nil, domain.ErrReviewForbidden
	}

	if req.Rating != nil {
		if !domain.ValidRating(*req.Rating) {
			return nil, domain.ErrInvalidRating
		}
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	uc.ratings.Invalidate(ctx, review.ListingID)

	return uc.withAuthor(ctx, review)
}

// DeleteReview removes the caller's own review.
func (uc *ReviewUseCase) DeleteReview(ctx context.Context, userID, reviewID string) error {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID {
		return domain.ErrReviewForbidden
	}

	if err := uc.reviewRepo.Delete(ctx, reviewID); err != nil {
		return err
	}
	uc.ratings.Invalidate(ctx, review.ListingID)
	return nil
}

// MyReviews returns the caller's reviews with trimmed listing projections.
func (uc *ReviewUseCase) MyReviews(ctx context.Context, userID string) ([]*MyReviewResponse, error) {
	reviews, err := uc.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	listingIDs := make([]string, len(reviews))
	for i, review := range reviews {
		listingIDs[i] = review.ListingID
	}
	listings, err := uc.listingRepo.GetByIDs(ctx, listingIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load listings: %w", err)
	}

	responses := make([]*MyReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = &MyReviewResponse{Review: review}
		if listing, ok := listings[review.ListingID]; ok {
			responses[i].Listing = &ListingRef{
				ID:       listing.ID,
				Title:    listing.Title,
				Location: listing.Location,
				Images:   listing.Images,
			}
		}
	}
	return responses, nil
}

func (uc *ReviewUseCase) withAuthor(ctx context.Context, review *domain.Review) (*ReviewResponse, error) {
	authors, err := uc.userRepo.GetOwners(ctx, []string{review.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to load review author: %w", err)
	}
	response := &ReviewResponse{Review: review}
	if author, ok := authors[review.UserID]; ok {
		response.User = &author
	}
	return response, nil
}
