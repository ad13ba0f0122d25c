package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roomease/roomease-backend/internal/domain"
	"github.com/roomease/roomease-backend/internal/repository"
)

type ProfileUseCase struct {
	userRepo    repository.UserRepository
	detailsRepo repository.ProfileDetailsRepository
}

func NewProfileUseCase(
	userRepo repository.UserRepository,
	detailsRepo repository.ProfileDetailsRepository,
) *ProfileUseCase {
	return &ProfileUseCase{
		userRepo:    userRepo,
		detailsRepo: detailsRepo,
	}
}

// HabitsRequest merges field-wise into the stored habits sub-record.
// Absent fields keep their stored (or default) values.
type HabitsRequest struct {
	Smoking        *domain.SmokingHabit     `json:"smoking"`
	Drinking       *domain.DrinkingHabit    `json:"drinking"`
	Pets           *domain.PetPolicy        `json:"pets"`
	Cleanliness    *domain.CleanlinessLevel `json:"cleanliness"`
	FoodPreference *domain.FoodPreference   `json:"foodPreference"`
	NightOwl       *bool                    `json:"nightOwl"`
	Guests         *domain.GuestFrequency   `json:"guests"`
}

func (r *HabitsRequest) apply(h *domain.Habits) {
	if r == nil {
		return
	}
	if r.Smoking != nil {
		h.Smoking = *r.Smoking
	}
	if r.Drinking != nil {
		h.Drinking = *r.Drinking
	}
	if r.Pets != nil {
		h.Pets = *r.Pets
	}
	if r.Cleanliness != nil {
		h.Cleanliness = *r.Cleanliness
	}
	if r.FoodPreference != nil {
		h.FoodPreference = *r.FoodPreference
	}
	if r.NightOwl != nil {
		h.NightOwl = *r.NightOwl
	}
	if r.Guests != nil {
		h.Guests = *r.Guests
	}
}

// UpdateProfileRequest applies only the fields present in the payload.
// Absent fields are never overwritten with zero values.
type UpdateProfileRequest struct {
	Name               *string            `json:"name" binding:"omitempty,min=2,max=100"`
	Phone              *string            `json:"phone" binding:"omitempty,max=30"`
	ProfilePicture     *string            `json:"profilePicture" binding:"omitempty,max=255"`
	Gender             *domain.Gender     `json:"gender" binding:"omitempty,gender"`
	Age                *int               `json:"age" binding:"omitempty,min=18"`
	Profession         *string            `json:"profession" binding:"omitempty,max=100"`
	Bio                *string            `json:"bio" binding:"omitempty,max=500"`
	BudgetMin          *int               `json:"budgetMin" binding:"omitempty,min=0"`
	BudgetMax          *int               `json:"budgetMax" binding:"omitempty,min=0"`
	LookingFor         *domain.LookingFor `json:"lookingFor" binding:"omitempty,lookingfor"`
	Occupation         *domain.Occupation `json:"occupation" binding:"omitempty,occupation"`
	Habits             *HabitsRequest     `json:"habits"`
	PreferredLocations *[]domain.Location `json:"preferredLocations"`
	Languages          *[]string          `json:"languages"`
	Interests          *[]string          `json:"interests"`
	MoveInDate         *time.Time         `json:"moveInDate"`
}

// CompleteProfileRequest is the one-shot payload of the profile wizard.
// Re-submitting the same payload is idempotent.
type CompleteProfileRequest struct {
	Gender             domain.Gender      `json:"gender" binding:"required,gender"`
	Age                int                `json:"age" binding:"required,min=18"`
	Profession         string             `json:"profession" binding:"required,max=100"`
	Occupation         *domain.Occupation `json:"occupation" binding:"omitempty,occupation"`
	BudgetMin          int                `json:"budgetMin" binding:"required,min=1"`
	BudgetMax          int                `json:"budgetMax" binding:"required,min=1"`
	Bio                *string            `json:"bio" binding:"omitempty,max=500"`
	LookingFor         *domain.LookingFor `json:"lookingFor" binding:"omitempty,lookingfor"`
	Habits             *HabitsRequest     `json:"habits"`
	PreferredLocations []domain.Location  `json:"preferredLocations" binding:"required,min=1"`
	Languages          []string           `json:"languages"`
	Interests          []string           `json:"interests"`
	MoveInDate         *time.Time         `json:"moveInDate"`
}

// ListProfilesRequest carries the sparse search criteria; a nil field puts
// no constraint on that column.
type ListProfilesRequest struct {
	Gender     *domain.Gender     `form:"gender" binding:"omitempty,gender"`
	MinBudget  *int               `form:"minBudget" binding:"omitempty,min=0"`
	MaxBudget  *int               `form:"maxBudget" binding:"omitempty,min=0"`
	Location   *string            `form:"location"`
	Profession *string            `form:"profession"`
	LookingFor *domain.LookingFor `form:"lookingFor" binding:"omitempty,lookingfor"`
	Page       int                `form:"page" binding:"omitempty,min=1"`
	Limit      int                `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ProfileResponse is a user with its detail sub-record attached. The
// credential hash never serializes.
type ProfileResponse struct {
	*domain.User
	Details *domain.ProfileDetails `json:"profileDetails,omitempty"`
}

type ListProfilesResult struct {
	Total      int                `json:"total"`
	Pagination domain.Pagination  `json:"pagination"`
	Profiles   []*ProfileResponse `json:"profiles"`
}

const defaultPageSize = 12

// GetProfile returns a profile with its detail sub-record, if any.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, userID string) (*ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	details, err := uc.detailsRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to get profile details: %w", err)
	}
	return &ProfileResponse{User: user, Details: details}, nil
}

// ListProfiles runs the sparse-filter search. Results are ordered by
// descending creation time and paginated 1-indexed, a pure function of
// store state and criteria.
func (uc *ProfileUseCase) ListProfiles(ctx context.Context, req *ListProfilesRequest) (*ListProfilesResult, error) {
	filter := repository.ProfileFilter{
		Gender:     req.Gender,
		Profession: req.Profession,
		Location:   req.Location,
		LookingFor: req.LookingFor,
		MinBudget:  req.MinBudget,
		MaxBudget:  req.MaxBudget,
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultPageSize
	}

	total, err := uc.userRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count profiles: %w", err)
	}

	pagination := domain.NewPagination(total, page, limit)
	users, err := uc.userRepo.Search(ctx, filter, pagination.Limit, pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}

	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	details, err := uc.detailsRepo.GetByUserIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile details: %w", err)
	}

	profiles := make([]*ProfileResponse, len(users))
	for i, u := range users {
		profiles[i] = &ProfileResponse{User: u, Details: details[u.ID]}
	}

	return &ListProfilesResult{
		Total:      total,
		Pagination: pagination,
		Profiles:   profiles,
	}, nil
}

// UpdateProfile merges the supplied fields into the base record and the
// detail sub-record, then recomputes the completion flag.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = *req.ProfilePicture
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.Age != nil {
		user.Age = req.Age
	}
	if req.Profession != nil {
		user.Profession = req.Profession
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.BudgetMin != nil {
		user.BudgetMin = req.BudgetMin
	}
	if req.BudgetMax != nil {
		user.BudgetMax = req.BudgetMax
	}
	if req.LookingFor != nil {
		user.LookingFor = *req.LookingFor
	}
	if req.Occupation != nil {
		user.Occupation = req.Occupation
	}

	details, err := uc.mergeDetails(ctx, userID, req.Habits, req.PreferredLocations, req.Languages, req.Interests, req.MoveInDate)
	if err != nil {
		return nil, err
	}

	user.IsProfileComplete = domain.ProfileComplete(user, details)
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &ProfileResponse{User: user, Details: details}, nil
}

// CompleteProfile fills in the mandatory profile fields in one call.
// The base-record write and the detail upsert are two separate store calls;
// a failure in between leaves a recoverable partial state, and re-invoking
// the operation heals it.
func (uc *ProfileUseCase) CompleteProfile(ctx context.Context, userID string, req *CompleteProfileRequest) (*ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	gender := req.Gender
	profession := req.Profession
	age := req.Age
	budgetMin := req.BudgetMin
	budgetMax := req.BudgetMax
	user.Gender = &gender
	user.Age = &age
	user.Profession = &profession
	user.BudgetMin = &budgetMin
	user.BudgetMax = &budgetMax
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.LookingFor != nil {
		user.LookingFor = *req.LookingFor
	}
	if req.Occupation != nil {
		user.Occupation = req.Occupation
	}

	locations := req.PreferredLocations
	details, err := uc.mergeDetails(ctx, userID, req.Habits, &locations, sliceOrNil(req.Languages), sliceOrNil(req.Interests), req.MoveInDate)
	if err != nil {
		return nil, err
	}

	user.IsProfileComplete = domain.ProfileComplete(user, details)
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to complete profile: %w", err)
	}

	return &ProfileResponse{User: user, Details: details}, nil
}

// DeleteProfile removes the base record and its detail sub-record. Listings,
// reviews and favorites are left in place; dangling references are tolerated
// and resolved lazily on read.
func (uc *ProfileUseCase) DeleteProfile(ctx context.Context, userID string) error {
	if err := uc.detailsRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete profile details: %w", err)
	}
	return uc.userRepo.Delete(ctx, userID)
}

// mergeDetails loads the sub-record (starting one with habit defaults when
// absent), applies the supplied fields and upserts the result. When nothing
// detail-related was supplied and no record exists, nothing is written.
func (uc *ProfileUseCase) mergeDetails(
	ctx context.Context,
	userID string,
	habits *HabitsRequest,
	locations *[]domain.Location,
	languages *[]string,
	interests *[]string,
	moveInDate *time.Time,
) (*domain.ProfileDetails, error) {
	existed := true
	details, err := uc.detailsRepo.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		existed = false
		details = &domain.ProfileDetails{
			UserID: userID,
			Habits: domain.DefaultHabits(),
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to get profile details: %w", err)
	}

	touched := habits != nil || locations != nil || languages != nil || interests != nil || moveInDate != nil
	if !touched {
		if !existed {
			return nil, nil
		}
		return details, nil
	}

	habits.apply(&details.Habits)
	if err := details.Habits.Validate(); err != nil {
		return nil, err
	}
	if locations != nil {
		details.PreferredLocations = *locations
	}
	if languages != nil {
		details.Languages = *languages
	}
	if interests != nil {
		details.Interests = *interests
	}
	if moveInDate != nil {
		details.MoveInDate = moveInDate
	}

	if err := uc.detailsRepo.Upsert(ctx, details); err != nil {
		return nil, fmt.Errorf("failed to upsert profile details: %w", err)
	}
	return details, nil
}

func sliceOrNil(s []string) *[]string {
	if s == nil {
		return nil
	}
	return &s
}
