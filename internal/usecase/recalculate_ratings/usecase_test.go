package recalculate_ratings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type fakeReviewRepo struct {
	reviews []*domain.Review
	err     error
}

func (f *fakeReviewRepo) GetAll(_ context.Context) ([]*domain.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.reviews, nil
}

type fakeCenterRepo struct {
	centers map[int64]*domain.Center
	order   []int64
}

func (f *fakeCenterRepo) List(_ context.Context) ([]*domain.Center, error) {
	result := make([]*domain.Center, 0, len(f.order))
	for _, id := range f.order {
		result = append(result, f.centers[id])
	}
	return result, nil
}

func (f *fakeCenterRepo) UpdateRating(_ context.Context, id int64, rating float64, reviewCount int) error {
	c, ok := f.centers[id]
	if !ok {
		return errors.New("center not found")
	}
	c.Rating = rating
	c.ReviewCount = reviewCount
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture(reviews []*domain.Review) (*UseCase, *fakeCenterRepo) {
	centers := &fakeCenterRepo{
		centers: map[int64]*domain.Center{
			1: {ID: 1, Name: "Fitness World"},
			2: {ID: 2, Name: "Tennis Club Elite"},
			3: {ID: 3, Name: "Yoga Studio Zen", Rating: 4.8, ReviewCount: 12}, // протухший агрегат
		},
		order: []int64{1, 2, 3},
	}
	uc := NewUseCase(&fakeReviewRepo{reviews: reviews}, centers, fakeTxManager{}, nopLogger{})
	return uc, centers
}

func TestExecute_GroupsByCenter(t *testing.T) {
	uc, centers := newFixture([]*domain.Review{
		{ID: 1, CenterID: 1, Rating: 5},
		{ID: 2, CenterID: 1, Rating: 3},
		{ID: 3, CenterID: 1, Rating: 4},
		{ID: 4, CenterID: 2, Rating: 2},
	})

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, resp.CentersUpdated)
	assert.InDelta(t, 4.0, centers.centers[1].Rating, 1e-9)
	assert.Equal(t, 3, centers.centers[1].ReviewCount)
	assert.InDelta(t, 2.0, centers.centers[2].Rating, 1e-9)
	assert.Equal(t, 1, centers.centers[2].ReviewCount)
}

func TestExecute_ResetsStaleAggregates(t *testing.T) {
	// Центр 3 хранит рейтинг, но отзывов у него нет - агрегат сбрасывается
	uc, centers := newFixture(nil)

	_, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Zero(t, centers.centers[3].Rating)
	assert.Zero(t, centers.centers[3].ReviewCount)
}

func TestExecute_Idempotent(t *testing.T) {
	uc, centers := newFixture([]*domain.Review{
		{ID: 1, CenterID: 1, Rating: 5},
		{ID: 2, CenterID: 2, Rating: 1},
	})

	_, err := uc.Execute(context.Background())
	require.NoError(t, err)

	first := map[int64][2]float64{}
	for id, c := range centers.centers {
		first[id] = [2]float64{c.Rating, float64(c.ReviewCount)}
	}

	_, err = uc.Execute(context.Background())
	require.NoError(t, err)

	for id, c := range centers.centers {
		assert.Equal(t, first[id], [2]float64{c.Rating, float64(c.ReviewCount)}, "center %d", id)
	}
}

func TestExecute_StorageFailure(t *testing.T) {
	reviews := &fakeReviewRepo{err: errors.New("connection refused")}
	centers := &fakeCenterRepo{
		centers: map[int64]*domain.Center{1: {ID: 1}},
		order:   []int64{1},
	}
	uc := NewUseCase(reviews, centers, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
