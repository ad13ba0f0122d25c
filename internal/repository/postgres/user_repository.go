package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/roomease/roomease-backend/internal/domain"
	"github.com/roomease/roomease-backend/internal/repository"
)

const pqUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Currency == "" {
		user.Currency = "BDT"
	}
	if user.LookingFor == "" {
		user.LookingFor = domain.LookingForBoth
	}
	query := `
		INSERT INTO users (
			id, name, email, password_hash, phone, profile_picture,
			gender, age, profession, bio, budget_min, budget_max, currency,
			looking_for, occupation, is_profile_complete, is_verified, is_active
		)
		VALUES ($1, $2, $3, $4, $5, COALESCE(NULLIF($6, ''), '/uploads/default-avatar.png'),
		        $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING profile_picture, created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Phone, user.ProfilePicture,
		user.Gender, user.Age, user.Profession, user.Bio, user.BudgetMin, user.BudgetMax,
		user.Currency, user.LookingFor, user.Occupation,
		user.IsProfileComplete, user.IsVerified, true,
	).Scan(&user.ProfilePicture, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return err
	}
	user.IsActive = true
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE id = $1`
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE email = LOWER($1)`
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET name = $1, phone = $2, profile_picture = $3, gender = $4, age = $5,
		    profession = $6, bio = $7, budget_min = $8, budget_max = $9,
		    currency = $10, looking_for = $11, occupation = $12,
		    is_profile_complete = $13, is_verified = $14, is_active = $15,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $16
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		user.Name, user.Phone, user.ProfilePicture, user.Gender, user.Age,
		user.Profession, user.Bio, user.BudgetMin, user.BudgetMax,
		user.Currency, user.LookingFor, user.Occupation,
		user.IsProfileComplete, user.IsVerified, user.IsActive,
		user.ID,
	).Scan(&user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrUserNotFound
	}
	return err
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) SetProfileComplete(ctx context.Context, id string, complete bool) error {
	query := `
		UPDATE users
		SET is_profile_complete = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, complete, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// buildFilter renders the sparse criteria into a WHERE clause. Deactivated
// accounts are always excluded. Budget matching is range overlap, not
// containment: the profile window must intersect the requested window.
func buildFilter(filter repository.ProfileFilter) (string, []interface{}) {
	where := `WHERE is_active = TRUE`
	args := []interface{}{}
	argCount := 1

	if filter.Gender != nil {
		where += fmt.Sprintf(" AND gender = $%d", argCount)
		args = append(args, *filter.Gender)
		argCount++
	}
	if filter.Profession != nil {
		where += fmt.Sprintf(" AND profession ILIKE $%d", argCount)
		args = append(args, "%"+*filter.Profession+"%")
		argCount++
	}
	if filter.LookingFor != nil {
		where += fmt.Sprintf(" AND looking_for = $%d", argCount)
		args = append(args, *filter.LookingFor)
		argCount++
	}
	if filter.MinBudget != nil {
		where += fmt.Sprintf(" AND budget_max >= $%d", argCount)
		args = append(args, *filter.MinBudget)
		argCount++
	}
	if filter.MaxBudget != nil {
		where += fmt.Sprintf(" AND budget_min <= $%d", argCount)
		args = append(args, *filter.MaxBudget)
		argCount++
	}
	if filter.Location != nil {
		where += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM profile_details d,
			            jsonb_array_elements(d.preferred_locations) loc
			WHERE d.user_id = users.id AND loc->>'area' ILIKE $%d
		)`, argCount)
		args = append(args, "%"+*filter.Location+"%")
		argCount++
	}

	return where, args
}

func (r *userRepository) Search(ctx context.Context, filter repository.ProfileFilter, limit, offset int) ([]*domain.User, error) {
	where, args := buildFilter(filter)
	query := fmt.Sprintf(
		`SELECT * FROM users %s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	users := []*domain.User{}
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Count(ctx context.Context, filter repository.ProfileFilter) (int, error) {
	where, args := buildFilter(filter)
	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM users %s`, where)
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userRepository) GetOwners(ctx context.Context, ids []string) (map[string]domain.ListingOwner, error) {
	owners := make(map[string]domain.ListingOwner, len(ids))
	if len(ids) == 0 {
		return owners, nil
	}
	rows := []domain.ListingOwner{}
	query := `SELECT id, name, email FROM users WHERE id = ANY($1)`
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		return nil, err
	}
	for _, o := range rows {
		owners[o.ID] = o
	}
	return owners, nil
}
