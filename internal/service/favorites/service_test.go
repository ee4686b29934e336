package favorites

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	centerRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/center"
	favoriteRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/favorite"
)

type favKey struct {
	userID   string
	centerID int64
}

type fakeFavoriteRepo struct {
	favorites map[favKey]bool
	order     []favKey
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[favKey]bool)}
}

func (f *fakeFavoriteRepo) Add(_ context.Context, fav *domain.Favorite) error {
	k := favKey{fav.UserID, fav.CenterID}
	if !f.favorites[k] {
		f.favorites[k] = true
		f.order = append(f.order, k)
	}
	return nil
}

func (f *fakeFavoriteRepo) Remove(_ context.Context, userID string, centerID int64) error {
	k := favKey{userID, centerID}
	if !f.favorites[k] {
		return favoriteRepo.ErrFavoriteNotFound
	}
	delete(f.favorites, k)
	return nil
}

func (f *fakeFavoriteRepo) Exists(_ context.Context, userID string, centerID int64) (bool, error) {
	return f.favorites[favKey{userID, centerID}], nil
}

func (f *fakeFavoriteRepo) GetCenterIDsByUser(_ context.Context, userID string) ([]int64, error) {
	result := make([]int64, 0)
	for _, k := range f.order {
		if k.userID == userID && f.favorites[k] {
			result = append(result, k.centerID)
		}
	}
	return result, nil
}

type fakeCenterRepo struct {
	centers map[int64]*domain.Center
}

func (f *fakeCenterRepo) GetByID(_ context.Context, id int64) (*domain.Center, error) {
	c, ok := f.centers[id]
	if !ok {
		return nil, centerRepo.ErrCenterNotFound
	}
	return c, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture() (*Service, *fakeFavoriteRepo) {
	favs := newFakeFavoriteRepo()
	svc := NewService(favs, &fakeCenterRepo{centers: map[int64]*domain.Center{
		1: {ID: 1, Name: "Fitness World"},
		2: {ID: 2, Name: "Tennis Club Elite"},
	}}, nopLogger{})
	return svc, favs
}

func TestAdd_And_List(t *testing.T) {
	svc, _ := newFixture()
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "u1", 1))
	require.NoError(t, svc.Add(ctx, "u1", 2))

	resp, err := svc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, resp.CenterIDs)
}

func TestAdd_Idempotent(t *testing.T) {
	svc, _ := newFixture()
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "u1", 1))
	require.NoError(t, svc.Add(ctx, "u1", 1))

	resp, err := svc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, resp.CenterIDs)
}

func TestAdd_CenterNotFound(t *testing.T) {
	svc, _ := newFixture()

	err := svc.Add(context.Background(), "u1", 99)
	assert.ErrorIs(t, err, ErrCenterNotFound)
}

func TestRemove(t *testing.T) {
	svc, _ := newFixture()
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "u1", 1))
	require.NoError(t, svc.Remove(ctx, "u1", 1))

	ok, err := svc.IsFavorite(ctx, "u1", 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemove_NotFound(t *testing.T) {
	svc, _ := newFixture()

	err := svc.Remove(context.Background(), "u1", 1)
	assert.ErrorIs(t, err, ErrFavoriteNotFound)
}

func TestIsFavorite(t *testing.T) {
	svc, _ := newFixture()
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "u1", 1))

	ok, err := svc.IsFavorite(ctx, "u1", 1)
	require.NoError(t, err)
	assert.True(t, ok)

	// Избранное другого пользователя не видно
	ok, err = svc.IsFavorite(ctx, "u2", 1)
	require.NoError(t, err)
	assert.False(t, ok)
}
