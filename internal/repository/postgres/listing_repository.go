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

type listingRepository struct {
	db *sqlx.DB
}

func NewListingRepository(db *sqlx.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	if listing.ID == "" {
		listing.ID = uuid.NewString()
	}
	images := listing.Images
	if images == nil {
		images = []string{}
	}
	amenities := listing.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	query := `
		INSERT INTO listings (id, user_id, title, description, location, rent, type, images, amenities)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		listing.ID, listing.UserID, listing.Title, listing.Description,
		listing.Location, listing.Rent, listing.Type,
		pq.Array(images), pq.Array(amenities),
	).Scan(&listing.CreatedAt)
}

func scanListing(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Listing, error) {
	var l domain.Listing
	err := row.Scan(
		&l.ID, &l.UserID, &l.Title, &l.Description, &l.Location, &l.Rent,
		&l.Type, pq.Array(&l.Images), pq.Array(&l.Amenities), &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

const listingColumns = `id, user_id, title, description, location, rent, type, images, amenities, created_at`

func (r *listingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	listing, err := scanListing(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return listing, nil
}

func (r *listingRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Listing, error) {
	listings := make(map[string]*domain.Listing, len(ids))
	if len(ids) == 0 {
		return listings, nil
	}
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = ANY($1)`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings[listing.ID] = listing
	}
	return listings, rows.Err()
}

func (r *listingRepository) List(ctx context.Context) ([]*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings ORDER BY created_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	listings := []*domain.Listing{}
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}
