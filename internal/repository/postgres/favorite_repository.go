package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/roomease/roomease-backend/internal/domain"
	"github.com/roomease/roomease-backend/internal/repository"
)

type favoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	if favorite.ID == "" {
		favorite.ID = uuid.NewString()
	}
	query := `
		INSERT INTO favorites (id, user_id, listing_id)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query, favorite.ID, favorite.UserID, favorite.ListingID).
		Scan(&favorite.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateFavorite
		}
		return err
	}
	return nil
}

func (r *favoriteRepository) GetByUserAndListing(ctx context.Context, userID, listingID string) (*domain.Favorite, error) {
	var favorite domain.Favorite
	query := `SELECT * FROM favorites WHERE user_id = $1 AND listing_id = $2`
	if err := r.db.GetContext(ctx, &favorite, query, userID, listingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFavoriteNotFound
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	favorites := []*domain.Favorite{}
	query := `SELECT * FROM favorites WHERE user_id = $1 ORDER BY created_at DESC, id`
	if err := r.db.SelectContext(ctx, &favorites, query, userID); err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

func (r *favoriteRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM favorites WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, err
	}
	return count, nil
}
