package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeRatings(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    RatingSummary
	}{
		{"empty", nil, RatingSummary{AverageRating: 0, TotalReviews: 0}},
		{"single", []int{4}, RatingSummary{AverageRating: 4, TotalReviews: 1}},
		{"exact mean", []int{5, 3, 4}, RatingSummary{AverageRating: 4, TotalReviews: 3}},
		{"rounded up", []int{5, 4, 4}, RatingSummary{AverageRating: 4.3, TotalReviews: 3}},
		{"rounded half", []int{4, 3}, RatingSummary{AverageRating: 3.5, TotalReviews: 2}},
		{"repeating third", []int{5, 5, 4}, RatingSummary{AverageRating: 4.7, TotalReviews: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SummarizeRatings(tt.ratings))
		})
	}
}

func TestValidRating(t *testing.T) {
	assert.False(t, ValidRating(0))
	assert.True(t, ValidRating(1))
	assert.True(t, ValidRating(5))
	assert.False(t, ValidRating(6))
	assert.False(t, ValidRating(-3))
}
