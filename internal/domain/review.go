package domain

import (
	"math"
	"time"
)

type Review struct {
	ID        string    `json:"id" db:"id"`
	ListingID string    `json:"listingId" db:"listing_id"`
	UserID    string    `json:"userId" db:"user_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

func ValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

// RatingSummary is the aggregate exposed on listing-level responses.
// The raw rating list never leaves the review endpoints.
type RatingSummary struct {
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}

// SummarizeRatings computes the arithmetic mean rounded to one decimal place.
// An empty rating list yields 0.0, never NaN.
func SummarizeRatings(ratings []int) RatingSummary {
	if len(ratings) == 0 {
		return RatingSummary{AverageRating: 0, TotalReviews: 0}
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return RatingSummary{
		AverageRating: math.Round(avg*10) / 10,
		TotalReviews:  len(ratings),
	}
}
