package profile

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomease/roomease-backend/internal/domain"
	"github.com/roomease/roomease-backend/internal/repository"
)

type fakeUserRepo struct {
	users map[string]*domain.User
	seq   []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.users[user.ID] = user
	f.seq = append(f.seq, user.ID)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) SetProfileComplete(_ context.Context, id string, complete bool) error {
	u, ok := f.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsProfileComplete = complete
	return nil
}

func (f *fakeUserRepo) matches(u *domain.User, filter repository.ProfileFilter) bool {
	if filter.Gender != nil && (u.Gender == nil || *u.Gender != *filter.Gender) {
		return false
	}
	if filter.Profession != nil && (u.Profession == nil || *u.Profession != *filter.Profession) {
		return false
	}
	if filter.LookingFor != nil && u.LookingFor != *filter.LookingFor {
		return false
	}
	if filter.MinBudget != nil && (u.BudgetMax == nil || *u.BudgetMax < *filter.MinBudget) {
		return false
	}
	if filter.MaxBudget != nil && (u.BudgetMin == nil || *u.BudgetMin > *filter.MaxBudget) {
		return false
	}
	return true
}

// Search returns matches in reverse insertion order, mirroring the
// created_at DESC ordering of the real store.
func (f *fakeUserRepo) Search(_ context.Context, filter repository.ProfileFilter, limit, offset int) ([]*domain.User, error) {
	ids := append([]string(nil), f.seq...)
	sort.Sort(sort.Reverse(sort.StringSlice(ids)))

	var matched []*domain.User
	for _, id := range ids {
		if u, ok := f.users[id]; ok && f.matches(u, filter) {
			matched = append(matched, u)
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakeUserRepo) Count(_ context.Context, filter repository.ProfileFilter) (int, error) {
	n := 0
	for _, u := range f.users {
		if f.matches(u, filter) {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) GetOwners(_ context.Context, ids []string) (map[string]domain.ListingOwner, error) {
	owners := map[string]domain.ListingOwner{}
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			owners[id] = domain.ListingOwner{ID: u.ID, Name: u.Name, Email: u.Email}
		}
	}
	return owners, nil
}

type fakeDetailsRepo struct {
	details map[string]*domain.ProfileDetails
	upserts int
}

func newFakeDetailsRepo() *fakeDetailsRepo {
	return &fakeDetailsRepo{details: map[string]*domain.ProfileDetails{}}
}

func (f *fakeDetailsRepo) GetByUserID(_ context.Context, userID string) (*domain.ProfileDetails, error) {
	d, ok := f.details[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDetailsRepo) GetByUserIDs(_ context.Context, userIDs []string) (map[string]*domain.ProfileDetails, error) {
	out := map[string]*domain.ProfileDetails{}
	for _, id := range userIDs {
		if d, ok := f.details[id]; ok {
			cp := *d
			out[id] = &cp
		}
	}
	return out, nil
}

func (f *fakeDetailsRepo) Upsert(_ context.Context, details *domain.ProfileDetails) error {
	cp := *details
	f.details[details.UserID] = &cp
	f.upserts++
	return nil
}

func (f *fakeDetailsRepo) Delete(_ context.Context, userID string) error {
	delete(f.details, userID)
	return nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, id, name string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:         id,
		Name:       name,
		Email:      name + "@example.com",
		LookingFor: domain.LookingForBoth,
		Currency:   "INR",
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestUpdateProfile_PartialMerge(t *testing.T) {
	userRepo := newFakeUserRepo()
	detailsRepo := newFakeDetailsRepo()
	uc := NewProfileUseCase(userRepo, detailsRepo)
	ctx := context.Background()

	seedUser(t, userRepo, "u1", "Dana")

	resp, err := uc.UpdateProfile(ctx, "u1", &UpdateProfileRequest{
		Profession: strPtr("Engineer"),
		BudgetMin:  intPtr(15000),
	})
	require.NoError(t, err)
	assert.Equal(t, "Engineer", *resp.Profession)
	assert.Equal(t, 15000, *resp.BudgetMin)
	assert.Equal(t, "Dana", resp.Name, "absent fields keep stored values")
	assert.Nil(t, resp.BudgetMax)
	assert.False(t, resp.IsProfileComplete)

	// Second partial update must not clobber the first.
	resp, err = uc.UpdateProfile(ctx, "u1", &UpdateProfileRequest{
		BudgetMax: intPtr(25000),
	})
	require.NoError(t, err)
	assert.Equal(t, "Engineer", *resp.Profession)
	assert.Equal(t, 15000, *resp.BudgetMin)
	assert.Equal(t, 25000, *resp.BudgetMax)
}

func TestUpdateProfile_NoDetailsWriteWhenUntouched(t *testing.T) {
	userRepo := newFakeUserRepo()
	detailsRepo := newFakeDetailsRepo()
	uc := NewProfileUseCase(userRepo, detailsRepo)

	seedUser(t, userRepo, "u1", "Dana")

	resp, err := uc.UpdateProfile(context.Background(), "u1", &UpdateProfileRequest{
		Bio: strPtr("looking for a quiet place"),
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Details)
	assert.Zero(t, detailsRepo.upserts, "base-only update must not create a detail record")
}

func TestUpdateProfile_InvalidHabitRejected(t *testing.T) {
	userRepo := newFakeUserRepo()
	detailsRepo := newFakeDetailsRepo()
	uc := NewProfileUseCase(userRepo, detailsRepo)

	seedUser(t, userRepo, "u1", "Dana")

	bad := domain.SmokingHabit("Sometimes")
	_, err := uc.UpdateProfile(context.Background(), "u1", &UpdateProfileRequest{
		Habits: &HabitsRequest{Smoking: &bad},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, detailsRepo.upserts)
}

func TestUpdateProfile_NotFound(t *testing.T) {
	uc := NewProfileUseCase(newFakeUserRepo(), newFakeDetailsRepo())
	_, err := uc.UpdateProfile(context.Background(), "ghost", &UpdateProfileRequest{})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCompleteProfile_SetsDerivedFlag(t *testing.T) {
	userRepo := newFakeUserRepo()
	detailsRepo := newFakeDetailsRepo()
	uc := NewProfileUseCase(userRepo, detailsRepo)
	ctx := context.Background()

	seedUser(t, userRepo, "u1", "Dana")

	req := &CompleteProfileRequest{
		Gender:     domain.GenderFemale,
		Age:        27,
		Profession: "Architect",
		BudgetMin:  12000,
		BudgetMax:  22000,
		PreferredLocations: []domain.Location{
			{Area: "Indiranagar", City: "Bengaluru"},
		},
	}

	resp, err := uc.CompleteProfile(ctx, "u1", req)
	require.NoError(t, err)
	assert.True(t, resp.IsProfileComplete)
	require.NotNil(t, resp.Details)
	assert.Equal(t, domain.DefaultHabits(), resp.Details.Habits, "habit defaults fill unset fields")
	assert.Len(t, resp.Details.PreferredLocations, 1)

	stored, err := userRepo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, stored.IsProfileComplete)

	// Re-submitting the same payload is idempotent.
	resp2, err := uc.CompleteProfile(ctx, "u1", req)
	require.NoError(t, err)
	assert.True(t, resp2.IsProfileComplete)
	assert.Equal(t, resp.Details.PreferredLocations, resp2.Details.PreferredLocations)
}

func TestCompleteProfile_FlagNeverCallerSet(t *testing.T) {
	userRepo := newFakeUserRepo()
	detailsRepo := newFakeDetailsRepo()
	uc := NewProfileUseCase(userRepo, detailsRepo)
	ctx := context.Background()

	u := seedUser(t, userRepo, "u1", "Dana")
	u.IsProfileComplete = true // tampered store state
	require.NoError(t, userRepo.Update(ctx, u))

	// A partial update that leaves mandatory fields unmet forces the
	// flag back to false.
	resp, err := uc.UpdateProfile(ctx, "u1", &UpdateProfileRequest{Name: strPtr("Dana K")})
	require.NoError(t, err)
	assert.False(t, resp.IsProfileComplete)
}

func TestListProfiles_PaginationDefaults(t *testing.T) {
	userRepo := newFakeUserRepo()
	detailsRepo := newFakeDetailsRepo()
	uc := NewProfileUseCase(userRepo, detailsRepo)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		seedUser(t, userRepo, string(rune('a'+i)), "user"+string(rune('a'+i)))
	}

	res, err := uc.ListProfiles(ctx, &ListProfilesRequest{})
	require.NoError(t, err)
	assert.Equal(t, 25, res.Total)
	assert.Equal(t, domain.Pagination{Page: 1, Limit: 12, Pages: 3}, res.Pagination)
	assert.Len(t, res.Profiles, 12)

	res, err = uc.ListProfiles(ctx, &ListProfilesRequest{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, domain.Pagination{Page: 3, Limit: 10, Pages: 3}, res.Pagination)
	assert.Len(t, res.Profiles, 5)

	// A page past the end yields an empty list, not an error.
	res, err = uc.ListProfiles(ctx, &ListProfilesRequest{Page: 9})
	require.NoError(t, err)
	assert.Empty(t, res.Profiles)
	assert.Equal(t, 25, res.Total)
}

func TestListProfiles_BudgetOverlap(t *testing.T) {
	userRepo := newFakeUserRepo()
	detailsRepo := newFakeDetailsRepo()
	uc := NewProfileUseCase(userRepo, detailsRepo)
	ctx := context.Background()

	inWindow := seedUser(t, userRepo, "u1", "Asel")
	inWindow.BudgetMin = intPtr(10000)
	inWindow.BudgetMax = intPtr(20000)
	require.NoError(t, userRepo.Update(ctx, inWindow))

	outOfWindow := seedUser(t, userRepo, "u2", "Marat")
	outOfWindow.BudgetMin = intPtr(25000)
	outOfWindow.BudgetMax = intPtr(30000)
	require.NoError(t, userRepo.Update(ctx, outOfWindow))

	// [15000,24000] intersects [10000,20000] but not [25000,30000].
	res, err := uc.ListProfiles(ctx, &ListProfilesRequest{
		MinBudget: intPtr(15000),
		MaxBudget: intPtr(24000),
	})
	require.NoError(t, err)
	require.Len(t, res.Profiles, 1)
	assert.Equal(t, "u1", res.Profiles[0].ID)
}

func TestDeleteProfile_RemovesDetails(t *testing.T) {
	userRepo := newFakeUserRepo()
	detailsRepo := newFakeDetailsRepo()
	uc := NewProfileUseCase(userRepo, detailsRepo)
	ctx := context.Background()

	seedUser(t, userRepo, "u1", "Dana")
	require.NoError(t, detailsRepo.Upsert(ctx, &domain.ProfileDetails{UserID: "u1", Habits: domain.DefaultHabits()}))

	require.NoError(t, uc.DeleteProfile(ctx, "u1"))

	_, err := userRepo.GetByID(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	_, err = detailsRepo.GetByUserID(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
