package rating

import (
	"context"
	"fmt"

	"github.com/roomease/roomease-backend/internal/domain"
	"github.com/roomease/roomease-backend/internal/infrastructure/cache"
	"github.com/roomease/roomease-backend/internal/repository"
)

// Service is the single place listing-level rating aggregates come from.
// Every surface that shows a listing (single fetch, collection fetch,
// favorites) goes through it, so rounding and zero-handling cannot diverge.
type Service struct {
	reviewRepo repository.ReviewRepository
	cache      *cache.RatingCache
}

func NewService(reviewRepo repository.ReviewRepository, ratingCache *cache.RatingCache) *Service {
	return &Service{reviewRepo: reviewRepo, cache: ratingCache}
}

func (s *Service) Summary(ctx context.Context, listingID string) (domain.RatingSummary, error) {
	if summary, ok := s.cache.Get(ctx, listingID); ok {
		return summary, nil
	}
	ratings, err := s.reviewRepo.RatingsByListing(ctx, listingID)
	if err != nil {
		return domain.RatingSummary{}, fmt.Errorf("failed to load ratings: %w", err)
	}
	summary := domain.SummarizeRatings(ratings)
	s.cache.Set(ctx, listingID, summary)
	return summary, nil
}

// Summaries resolves aggregates for a batch of listings. Cache hits are
// served directly; the misses go to the store in one query. Listings with
// no reviews get the zero summary.
func (s *Service) Summaries(ctx context.Context, listingIDs []string) (map[string]domain.RatingSummary, error) {
	summaries := make(map[string]domain.RatingSummary, len(listingIDs))
	misses := make([]string, 0, len(listingIDs))
	for _, id := range listingIDs {
		if summary, ok := s.cache.Get(ctx, id); ok {
			summaries[id] = summary
		} else {
			misses = append(misses, id)
		}
	}
	if len(misses) == 0 {
		return summaries, nil
	}

	ratings, err := s.reviewRepo.RatingsByListings(ctx, misses)
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}
	for _, id := range misses {
		summary := domain.SummarizeRatings(ratings[id])
		summaries[id] = summary
		s.cache.Set(ctx, id, summary)
	}
	return summaries, nil
}

// Invalidate drops the cached aggregate after a review mutation.
func (s *Service) Invalidate(ctx context.Context, listingID string) {
	s.cache.Invalidate(ctx, listingID)
}
