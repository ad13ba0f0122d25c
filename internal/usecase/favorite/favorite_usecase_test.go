package favorite

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomease/roomease-backend/internal/domain"
	"github.com/roomease/roomease-backend/internal/repository"
	"github.com/roomease/roomease-backend/internal/usecase/rating"
)

type fakeFavoriteRepo struct {
	favorites map[string]*domain.Favorite
	nextID    int
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: map[string]*domain.Favorite{}}
}

func (f *fakeFavoriteRepo) Create(_ context.Context, favorite *domain.Favorite) error {
	for _, fav := range f.favorites {
		if fav.UserID == favorite.UserID && fav.ListingID == favorite.ListingID {
			return domain.ErrDuplicateFavorite
		}
	}
	f.nextID++
	favorite.ID = fmt.Sprintf("f%d", f.nextID)
	cp := *favorite
	f.favorites[favorite.ID] = &cp
	return nil
}

func (f *fakeFavoriteRepo) GetByUserAndListing(_ context.Context, userID, listingID string) (*domain.Favorite, error) {
	for _, fav := range f.favorites {
		if fav.UserID == userID && fav.ListingID == listingID {
			cp := *fav
			return &cp, nil
		}
	}
	return nil, domain.ErrFavoriteNotFound
}

func (f *fakeFavoriteRepo) ListByUser(_ context.Context, userID string) ([]*domain.Favorite, error) {
	var out []*domain.Favorite
	for _, fav := range f.favorites {
		if fav.UserID == userID {
			cp := *fav
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeFavoriteRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.favorites[id]; !ok {
		return domain.ErrFavoriteNotFound
	}
	delete(f.favorites, id)
	return nil
}

func (f *fakeFavoriteRepo) CountByUser(_ context.Context, userID string) (int, error) {
	n := 0
	for _, fav := range f.favorites {
		if fav.UserID == userID {
			n++
		}
	}
	return n, nil
}

type fakeListingRepo struct {
	listings map[string]*domain.Listing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: map[string]*domain.Listing{}}
}

func (f *fakeListingRepo) Create(_ context.Context, listing *domain.Listing) error {
	f.listings[listing.ID] = listing
	return nil
}

func (f *fakeListingRepo) GetByID(_ context.Context, id string) (*domain.Listing, error) {
	l, ok := f.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	return l, nil
}

func (f *fakeListingRepo) GetByIDs(_ context.Context, ids []string) (map[string]*domain.Listing, error) {
	out := map[string]*domain.Listing{}
	for _, id := range ids {
		if l, ok := f.listings[id]; ok {
			out[id] = l
		}
	}
	return out, nil
}

func (f *fakeListingRepo) List(_ context.Context) ([]*domain.Listing, error) {
	var out []*domain.Listing
	for _, l := range f.listings {
		out = append(out, l)
	}
	return out, nil
}

type fakeReviewRepo struct {
	ratings map[string][]int
}

func (f *fakeReviewRepo) Create(_ context.Context, _ *domain.Review) error { return nil }
func (f *fakeReviewRepo) GetByID(_ context.Context, _ string) (*domain.Review, error) {
	return nil, domain.ErrReviewNotFound
}
func (f *fakeReviewRepo) GetByUserAndListing(_ context.Context, _, _ string) (*domain.Review, error) {
	return nil, domain.ErrReviewNotFound
}
func (f *fakeReviewRepo) ListByListing(_ context.Context, _ string) ([]*domain.Review, error) {
	return nil, nil
}
func (f *fakeReviewRepo) ListByUser(_ context.Context, _ string) ([]*domain.Review, error) {
	return nil, nil
}
func (f *fakeReviewRepo) Update(_ context.Context, _ *domain.Review) error { return nil }
func (f *fakeReviewRepo) Delete(_ context.Context, _ string) error         { return nil }
func (f *fakeReviewRepo) RatingsByListing(_ context.Context, listingID string) ([]int, error) {
	return f.ratings[listingID], nil
}
func (f *fakeReviewRepo) RatingsByListings(_ context.Context, listingIDs []string) (map[string][]int, error) {
	out := map[string][]int{}
	for _, id := range listingIDs {
		if r, ok := f.ratings[id]; ok {
			out[id] = r
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.users[user.ID] = user
	return nil
}
func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}
func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	f.users[user.ID] = user
	return nil
}
func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}
func (f *fakeUserRepo) SetProfileComplete(_ context.Context, _ string, _ bool) error { return nil }
func (f *fakeUserRepo) Search(_ context.Context, _ repository.ProfileFilter, _, _ int) ([]*domain.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Count(_ context.Context, _ repository.ProfileFilter) (int, error) {
	return 0, nil
}
func (f *fakeUserRepo) GetOwners(_ context.Context, ids []string) (map[string]domain.ListingOwner, error) {
	out := map[string]domain.ListingOwner{}
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = domain.ListingOwner{ID: u.ID, Name: u.Name, Email: u.Email}
		}
	}
	return out, nil
}

type fixture struct {
	uc           *FavoriteUseCase
	favoriteRepo *fakeFavoriteRepo
	listingRepo  *fakeListingRepo
	reviewRepo   *fakeReviewRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	favoriteRepo := newFakeFavoriteRepo()
	listingRepo := newFakeListingRepo()
	reviewRepo := &fakeReviewRepo{ratings: map[string][]int{}}
	userRepo := &fakeUserRepo{users: map[string]*domain.User{}}
	ratings := rating.NewService(reviewRepo, nil)

	ctx := context.Background()
	require.NoError(t, userRepo.Create(ctx, &domain.User{ID: "owner", Name: "Olzhas", Email: "olzhas@example.com"}))
	require.NoError(t, listingRepo.Create(ctx, &domain.Listing{ID: "l1", UserID: "owner", Title: "Studio downtown", Rent: 85000}))
	require.NoError(t, listingRepo.Create(ctx, &domain.Listing{ID: "l2", UserID: "owner", Title: "Shared 3BHK", Rent: 45000}))

	return &fixture{
		uc:           NewFavoriteUseCase(favoriteRepo, listingRepo, userRepo, ratings),
		favoriteRepo: favoriteRepo,
		listingRepo:  listingRepo,
		reviewRepo:   reviewRepo,
	}
}

func TestAddFavorite(t *testing.T) {
	f := newFixture(t)
	f.reviewRepo.ratings["l1"] = []int{5, 4}

	resp, err := f.uc.AddFavorite(context.Background(), "u1", &AddFavoriteRequest{ListingID: "l1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	require.NotNil(t, resp.Listing)
	assert.Equal(t, "Studio downtown", resp.Listing.Title)
	assert.Equal(t, 4.5, resp.Listing.AverageRating)
	require.NotNil(t, resp.Listing.Owner)
	assert.Equal(t, "Olzhas", resp.Listing.Owner.Name)
}

func TestAddFavorite_Duplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.AddFavorite(ctx, "u1", &AddFavoriteRequest{ListingID: "l1"})
	require.NoError(t, err)

	_, err = f.uc.AddFavorite(ctx, "u1", &AddFavoriteRequest{ListingID: "l1"})
	assert.ErrorIs(t, err, domain.ErrDuplicateFavorite)

	// Same listing by another user is fine.
	_, err = f.uc.AddFavorite(ctx, "u2", &AddFavoriteRequest{ListingID: "l1"})
	assert.NoError(t, err)
}

func TestAddFavorite_ListingMustExist(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.AddFavorite(context.Background(), "u1", &AddFavoriteRequest{ListingID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestListFavorites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.AddFavorite(ctx, "u1", &AddFavoriteRequest{ListingID: "l1"})
	require.NoError(t, err)
	_, err = f.uc.AddFavorite(ctx, "u1", &AddFavoriteRequest{ListingID: "l2"})
	require.NoError(t, err)

	favorites, err := f.uc.ListFavorites(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "l2", favorites[0].ListingID, "newest first")
	require.NotNil(t, favorites[0].Listing)
	assert.Equal(t, 0.0, favorites[0].Listing.AverageRating, "unreviewed listing gets zero aggregate")

	// Favorites of vanished listings survive with a nil projection.
	delete(f.listingRepo.listings, "l1")
	favorites, err = f.uc.ListFavorites(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Nil(t, favorites[1].Listing)
}

func TestRemoveFavorite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.AddFavorite(ctx, "u1", &AddFavoriteRequest{ListingID: "l1"})
	require.NoError(t, err)

	require.NoError(t, f.uc.RemoveFavorite(ctx, "u1", "l1"))
	assert.ErrorIs(t, f.uc.RemoveFavorite(ctx, "u1", "l1"), domain.ErrFavoriteNotFound)

	// Removing re-opens the slot.
	_, err = f.uc.AddFavorite(ctx, "u1", &AddFavoriteRequest{ListingID: "l1"})
	assert.NoError(t, err)
}

func TestIsFavoritedAndCount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ok, err := f.uc.IsFavorited(ctx, "u1", "l1")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = f.uc.AddFavorite(ctx, "u1", &AddFavoriteRequest{ListingID: "l1"})
	require.NoError(t, err)

	ok, err = f.uc.IsFavorited(ctx, "u1", "l1")
	require.NoError(t, err)
	assert.True(t, ok)

	n, err := f.uc.CountFavorites(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = f.uc.CountFavorites(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
