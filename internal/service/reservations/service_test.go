package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (f *fakeReservationRepo) GetByUserID(_ context.Context, userID string) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0)
	for _, r := range f.reservations {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeReservationRepo) Find(_ context.Context, filter domain.SlotReservationsFilter) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0)
	for _, r := range f.reservations {
		if filter.CenterID != nil && r.CenterID != *filter.CenterID {
			continue
		}
		if filter.Date != nil && !r.Date.Equal(*filter.Date) {
			continue
		}
		if filter.Hour != nil && r.Hour != *filter.Hour {
			continue
		}
		if filter.ActiveOnly && !r.IsActive() {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	r, ok := f.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	r.Status = status
	return nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, id int64) error {
	r, ok := f.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	now := time.Now()
	r.Status = domain.StatusCancelled
	r.CancelledAt = &now
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, time.June, 10, 12, 0, 0, 0, time.Local)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func newFixture() (*Service, *fakeReservationRepo) {
	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: {ID: 1, CenterID: 1, UserID: "u1", Date: date(2030, 1, 1), Hour: types.TimeString("10:00"), Status: domain.StatusPending},
		2: {ID: 2, CenterID: 1, UserID: "u1", Date: date(2025, 6, 1), Hour: types.TimeString("10:00"), Status: domain.StatusConfirmed},
		3: {ID: 3, CenterID: 2, UserID: "u2", Date: date(2030, 1, 1), Hour: types.TimeString("15:00"), Status: domain.StatusCancelled},
	}}
	svc := NewService(repo, fakeTxManager{}, nopLogger{})
	svc.timeProvider = fixedTimeProvider{now: testNow}
	return svc, repo
}

func TestGetUserReservations(t *testing.T) {
	svc, _ := newFixture()

	resp, err := svc.GetUserReservations(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 2)

	byID := make(map[int64]models.ReservationResponse)
	for _, r := range resp.Reservations {
		byID[r.ID] = r
	}

	// Будущая pending бронь отменяема
	assert.Equal(t, "pending", byID[1].Status)
	assert.True(t, byID[1].CanCancel)

	// Активная бронь с прошедшим началом показывается как completed
	assert.Equal(t, "completed", byID[2].Status)
	assert.False(t, byID[2].CanCancel)
}

func TestGetUserReservations_EmptyUserID(t *testing.T) {
	svc, _ := newFixture()

	_, err := svc.GetUserReservations(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetBySlot_ActiveOnly(t *testing.T) {
	svc, repo := newFixture()
	repo.reservations[4] = &domain.Reservation{
		ID: 4, CenterID: 2, UserID: "u3", Date: date(2030, 1, 1),
		Hour: types.TimeString("15:00"), Status: domain.StatusPending,
	}

	resp, err := svc.GetBySlot(context.Background(), &models.GetSlotReservationsRequest{
		CenterID: 2,
		Date:     date(2030, 1, 1),
	})
	require.NoError(t, err)

	// Отмененная бронь id=3 в том же слоте не возвращается
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, int64(4), resp.Reservations[0].ID)
}

func TestCancel_Success(t *testing.T) {
	svc, repo := newFixture()

	err := svc.Cancel(context.Background(), 1, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.reservations[1].Status)
	assert.NotNil(t, repo.reservations[1].CancelledAt)
}

func TestCancel_NotFound(t *testing.T) {
	svc, _ := newFixture()

	err := svc.Cancel(context.Background(), 99, "u1")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_AccessDenied(t *testing.T) {
	svc, repo := newFixture()

	err := svc.Cancel(context.Background(), 1, "u2")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusPending, repo.reservations[1].Status)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	svc, _ := newFixture()

	err := svc.Cancel(context.Background(), 3, "u2")
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancel_Twice(t *testing.T) {
	svc, _ := newFixture()

	require.NoError(t, svc.Cancel(context.Background(), 1, "u1"))
	err := svc.Cancel(context.Background(), 1, "u1")
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancel_StartHasPassed(t *testing.T) {
	svc, _ := newFixture()

	// Бронь id=2 на 2025-06-01 10:00, now = 2025-06-10 12:00
	err := svc.Cancel(context.Background(), 2, "u1")
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestConfirm_Success(t *testing.T) {
	svc, repo := newFixture()

	err := svc.Confirm(context.Background(), 1, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, repo.reservations[1].Status)
}

func TestConfirm_InvalidStatus(t *testing.T) {
	svc, _ := newFixture()

	// Отмененную бронь подтвердить нельзя
	err := svc.Confirm(context.Background(), 3, "u2")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestConfirm_AccessDenied(t *testing.T) {
	svc, _ := newFixture()

	err := svc.Confirm(context.Background(), 1, "u2")
	assert.ErrorIs(t, err, ErrAccessDenied)
}
