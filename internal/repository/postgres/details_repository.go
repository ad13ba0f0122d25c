package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/roomease/roomease-backend/internal/domain"
	"github.com/roomease/roomease-backend/internal/repository"
)

type detailsRepository struct {
	db *sqlx.DB
}

func NewProfileDetailsRepository(db *sqlx.DB) repository.ProfileDetailsRepository {
	return &detailsRepository{db: db}
}

func (r *detailsRepository) GetByUserID(ctx context.Context, userID string) (*domain.ProfileDetails, error) {
	var details domain.ProfileDetails
	query := `
		SELECT user_id, habits, preferred_locations, languages, interests,
		       move_in_date, created_at, updated_at
		FROM profile_details WHERE user_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&details.UserID, &details.Habits, &details.PreferredLocations,
		pq.Array(&details.Languages), pq.Array(&details.Interests),
		&details.MoveInDate, &details.CreatedAt, &details.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &details, nil
}

func (r *detailsRepository) GetByUserIDs(ctx context.Context, userIDs []string) (map[string]*domain.ProfileDetails, error) {
	result := make(map[string]*domain.ProfileDetails, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}
	query := `
		SELECT user_id, habits, preferred_locations, languages, interests,
		       move_in_date, created_at, updated_at
		FROM profile_details WHERE user_id = ANY($1)
	`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(userIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var details domain.ProfileDetails
		err := rows.Scan(
			&details.UserID, &details.Habits, &details.PreferredLocations,
			pq.Array(&details.Languages), pq.Array(&details.Interests),
			&details.MoveInDate, &details.CreatedAt, &details.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		result[details.UserID] = &details
	}
	return result, rows.Err()
}

// Upsert writes the merged sub-record. Merging request fields into the
// existing record happens in the usecase; this write is last-wins per row.
func (r *detailsRepository) Upsert(ctx context.Context, details *domain.ProfileDetails) error {
	query := `
		INSERT INTO profile_details (user_id, habits, preferred_locations, languages, interests, move_in_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET habits = EXCLUDED.habits,
		    preferred_locations = EXCLUDED.preferred_locations,
		    languages = EXCLUDED.languages,
		    interests = EXCLUDED.interests,
		    move_in_date = EXCLUDED.move_in_date,
		    updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at
	`
	languages := details.Languages
	if languages == nil {
		languages = []string{}
	}
	interests := details.Interests
	if interests == nil {
		interests = []string{}
	}
	return r.db.QueryRowContext(
		ctx, query,
		details.UserID, details.Habits, details.PreferredLocations,
		pq.Array(languages), pq.Array(interests), details.MoveInDate,
	).Scan(&details.CreatedAt, &details.UpdatedAt)
}

func (r *detailsRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM profile_details WHERE user_id = $1`, userID)
	return err
}
