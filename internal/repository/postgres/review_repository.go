package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/roomease/roomease-backend/internal/domain"
	"github.com/roomease/roomease-backend/internal/repository"
)

type reviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	query := `
		INSERT INTO reviews (id, listing_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		review.ID, review.ListingID, review.UserID, review.Rating, review.Comment,
	).Scan(&review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReview
		}
		return err
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	var review domain.Review
	query := `SELECT * FROM reviews WHERE id = $1`
	if err := r.db.GetContext(ctx, &review, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetByUserAndListing(ctx context.Context, userID, listingID string) (*domain.Review, error) {
	var review domain.Review
	query := `SELECT * FROM reviews WHERE user_id = $1 AND listing_id = $2`
	if err := r.db.GetContext(ctx, &review, query, userID, listingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListByListing(ctx context.Context, listingID string) ([]*domain.Review, error) {
	reviews := []*domain.Review{}
	query := `SELECT * FROM reviews WHERE listing_id = $1 ORDER BY created_at DESC, id`
	if err := r.db.SelectContext(ctx, &reviews, query, listingID); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Review, error) {
	reviews := []*domain.Review{}
	query := `SELECT * FROM reviews WHERE user_id = $1 ORDER BY created_at DESC, id`
	if err := r.db.SelectContext(ctx, &reviews, query, userID); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *domain.Review) error {
	query := `
		UPDATE reviews
		SET rating = $1, comment = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query, review.Rating, review.Comment, review.ID).
		Scan(&review.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrReviewNotFound
	}
	return err
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

func (r *reviewRepository) RatingsByListing(ctx context.Context, listingID string) ([]int, error) {
	ratings := []int{}
	query := `SELECT rating FROM reviews WHERE listing_id = $1`
	if err := r.db.SelectContext(ctx, &ratings, query, listingID); err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *reviewRepository) RatingsByListings(ctx context.Context, listingIDs []string) (map[string][]int, error) {
	ratings := make(map[string][]int, len(listingIDs))
	if len(listingIDs) == 0 {
		return ratings, nil
	}
	query := `SELECT listing_id, rating FROM reviews WHERE listing_id = ANY($1)`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(listingIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var listingID string
		var rating int
		if err := rows.Scan(&listingID, &rating); err != nil {
			return nil, err
		}
		ratings[listingID] = append(ratings[listingID], rating)
	}
	return ratings, rows.Err()
}
