package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	centerRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/center"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
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
		if filter.ActiveOnly && !r.IsActive() {
			continue
		}
		result = append(result, r)
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

var testNow = time.Date(2025, time.June, 10, 12, 30, 0, 0, time.Local)

func newTestUseCase(reservations []*domain.Reservation, capacity int) *UseCase {
	uc := NewUseCase(
		&fakeReservationRepo{reservations: reservations},
		&fakeCenterRepo{centers: map[int64]*domain.Center{
			1: {ID: 1, Name: "Fitness World", Capacity: capacity},
		}},
		nopLogger{},
	)
	uc.timeProvider = fixedTimeProvider{now: testNow}
	return uc
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestExecute_FullGridWhenEmpty(t *testing.T) {
	uc := newTestUseCase(nil, 2)

	resp, err := uc.Execute(context.Background(), &Request{
		CenterID: 1,
		Date:     date(2030, time.January, 1),
	})

	require.NoError(t, err)
	// Сетка 09:00-21:00 - 13 часов
	require.Len(t, resp.Slots, 13)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].Hour)
	assert.Equal(t, types.TimeString("21:00"), resp.Slots[12].Hour)
	for _, s := range resp.Slots {
		assert.Equal(t, 2, s.TotalSpots)
		assert.Equal(t, 2, s.AvailableSpots)
	}
}

func TestExecute_SubtractsActiveReservations(t *testing.T) {
	d := date(2030, time.January, 1)
	uc := newTestUseCase([]*domain.Reservation{
		{ID: 1, CenterID: 1, UserID: "u1", Date: d, Hour: "10:00", Status: domain.StatusPending},
		{ID: 2, CenterID: 1, UserID: "u2", Date: d, Hour: "10:00", Status: domain.StatusConfirmed},
		{ID: 3, CenterID: 1, UserID: "u3", Date: d, Hour: "11:00", Status: domain.StatusPending},
		{ID: 4, CenterID: 1, UserID: "u4", Date: d, Hour: "12:00", Status: domain.StatusCancelled},
	}, 2)

	resp, err := uc.Execute(context.Background(), &Request{CenterID: 1, Date: d})
	require.NoError(t, err)

	byHour := make(map[types.TimeString]Slot)
	for _, s := range resp.Slots {
		byHour[s.Hour] = s
	}

	// 10:00 занят полностью и в списке отсутствует
	_, ok := byHour["10:00"]
	assert.False(t, ok)

	// 11:00 занят наполовину
	assert.Equal(t, 1, byHour["11:00"].AvailableSpots)

	// Отмененная бронь не занимает место
	assert.Equal(t, 2, byHour["12:00"].AvailableSpots)
}

func TestExecute_FiltersPastHoursToday(t *testing.T) {
	// now = 2025-06-10 12:30: часы 09:00-12:00 уже прошли
	today := date(2025, time.June, 10)
	uc := newTestUseCase(nil, 1)

	resp, err := uc.Execute(context.Background(), &Request{CenterID: 1, Date: today})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("13:00"), resp.Slots[0].Hour)
	assert.Len(t, resp.Slots, 9) // 13:00-21:00
}

func TestExecute_CenterNotFound(t *testing.T) {
	uc := newTestUseCase(nil, 1)

	_, err := uc.Execute(context.Background(), &Request{
		CenterID: 99,
		Date:     date(2030, time.January, 1),
	})
	assert.ErrorIs(t, err, ErrCenterNotFound)
}

func TestExecute_MissingFields(t *testing.T) {
	uc := newTestUseCase(nil, 1)

	_, err := uc.Execute(context.Background(), &Request{Date: date(2030, time.January, 1)})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = uc.Execute(context.Background(), &Request{CenterID: 1})
	assert.ErrorIs(t, err, ErrMissingFields)
}
