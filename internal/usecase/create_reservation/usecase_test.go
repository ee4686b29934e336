package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	centerRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/center"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// --- фейки для тестов ---

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	nextID       int64
	createErr    error
	findErr      error
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	res.ID = f.nextID
	res.CreatedAt = time.Now()
	f.reservations = append(f.reservations, res)
	return res, nil
}

func (f *fakeReservationRepo) Find(_ context.Context, filter domain.SlotReservationsFilter) ([]*domain.Reservation, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	result := make([]*domain.Reservation, 0)
	for _, r := range f.reservations {
		if filter.UserID != nil && r.UserID != *filter.UserID {
			continue
		}
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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
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

// --- хелперы ---

func newTestUseCase(resRepo *fakeReservationRepo, centers map[int64]*domain.Center, now time.Time) *UseCase {
	uc := NewUseCase(resRepo, &fakeCenterRepo{centers: centers}, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: now}
	return uc
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

var testNow = time.Date(2025, time.June, 10, 12, 0, 0, 0, time.Local)

func defaultCenters() map[int64]*domain.Center {
	return map[int64]*domain.Center{
		1: {ID: 1, Name: "Fitness World", Capacity: 1},
		2: {ID: 2, Name: "Tennis Club Elite", Capacity: 3},
		3: {ID: 3, Name: "Yoga Studio Zen"}, // capacity не задана - действует дефолт
	}
}

// --- тесты ---

func TestExecute_Success(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, defaultCenters(), testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		CenterID: 1,
		UserID:   "u1",
		Date:     date(2030, time.January, 1),
		Hour:     types.TimeString("10:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 0, resp.RemainingSpots)
	require.Len(t, repo.reservations, 1)
	assert.Equal(t, domain.StatusPending, repo.reservations[0].Status)
}

func TestExecute_MissingFields(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, defaultCenters(), testNow)

	cases := []struct {
		name string
		req  Request
	}{
		{"no center", Request{UserID: "u1", Date: date(2030, 1, 1), Hour: "10:00"}},
		{"no user", Request{CenterID: 1, Date: date(2030, 1, 1), Hour: "10:00"}},
		{"no date", Request{CenterID: 1, UserID: "u1", Hour: "10:00"}},
		{"no hour", Request{CenterID: 1, UserID: "u1", Date: date(2030, 1, 1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tc.req)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestExecute_HourOutsideGrid(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, defaultCenters(), testNow)

	for _, hour := range []string{"08:00", "22:00", "23:00"} {
		_, err := uc.Execute(context.Background(), &Request{
			CenterID: 1,
			UserID:   "u1",
			Date:     date(2030, time.January, 1),
			Hour:     types.TimeString(hour),
		})
		assert.ErrorIs(t, err, ErrInvalidInput, "hour %s", hour)
	}
}

func TestExecute_InThePast(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, defaultCenters(), testNow)

	// Вчера
	_, err := uc.Execute(context.Background(), &Request{
		CenterID: 1,
		UserID:   "u1",
		Date:     date(2025, time.June, 9),
		Hour:     types.TimeString("10:00"),
	})
	assert.ErrorIs(t, err, ErrInThePast)

	// Сегодня, но час уже прошел (now = 12:00)
	_, err = uc.Execute(context.Background(), &Request{
		CenterID: 1,
		UserID:   "u1",
		Date:     date(2025, time.June, 10),
		Hour:     types.TimeString("11:00"),
	})
	assert.ErrorIs(t, err, ErrInThePast)

	// Сегодня, ровно текущий момент не отклоняется (строгое "раньше")
	_, err = uc.Execute(context.Background(), &Request{
		CenterID: 1,
		UserID:   "u1",
		Date:     date(2025, time.June, 10),
		Hour:     types.TimeString("12:00"),
	})
	assert.NoError(t, err)
}

func TestExecute_UserOverlap(t *testing.T) {
	d := date(2030, time.January, 1)

	existing := &domain.Reservation{
		ID:       1,
		CenterID: 2,
		UserID:   "u1",
		Date:     d,
		Hour:     types.TimeString("10:00"),
		Status:   domain.StatusPending,
	}

	cases := []struct {
		hour    string
		overlap bool
	}{
		{"10:00", true},  // тот же час
		{"11:00", true},  // соседний час
		{"09:00", true},  // соседний час
		{"12:00", false}, // через час - допустимо
		{"13:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.hour, func(t *testing.T) {
			repo := &fakeReservationRepo{reservations: []*domain.Reservation{existing}, nextID: 1}
			uc := newTestUseCase(repo, defaultCenters(), testNow)

			// Другой центр - правило действует на всю систему
			_, err := uc.Execute(context.Background(), &Request{
				CenterID: 1,
				UserID:   "u1",
				Date:     d,
				Hour:     types.TimeString(tc.hour),
			})

			if tc.overlap {
				require.ErrorIs(t, err, ErrUserOverlap)
				// Сообщение несет конфликтующий час
				assert.Contains(t, err.Error(), "10:00")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExecute_UserOverlap_IgnoresCancelled(t *testing.T) {
	d := date(2030, time.January, 1)
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{{
			ID:       1,
			CenterID: 1,
			UserID:   "u1",
			Date:     d,
			Hour:     types.TimeString("10:00"),
			Status:   domain.StatusCancelled,
		}},
		nextID: 1,
	}
	uc := newTestUseCase(repo, defaultCenters(), testNow)

	_, err := uc.Execute(context.Background(), &Request{
		CenterID: 2,
		UserID:   "u1",
		Date:     d,
		Hour:     types.TimeString("10:00"),
	})
	assert.NoError(t, err)
}

func TestExecute_SlotFull_DefaultCapacity(t *testing.T) {
	d := date(2030, time.January, 1)
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{{
			ID:       1,
			CenterID: 3,
			UserID:   "u1",
			Date:     d,
			Hour:     types.TimeString("10:00"),
			Status:   domain.StatusPending,
		}},
		nextID: 1,
	}
	uc := newTestUseCase(repo, defaultCenters(), testNow)

	// Вместимость центра 3 не задана - действует дефолт 1
	_, err := uc.Execute(context.Background(), &Request{
		CenterID: 3,
		UserID:   "u2",
		Date:     d,
		Hour:     types.TimeString("10:00"),
	})
	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestExecute_SlotCapacity(t *testing.T) {
	d := date(2030, time.January, 1)
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, defaultCenters(), testNow)

	// Центр 2 имеет вместимость 3: три брони проходят, четвертая - нет
	for i, user := range []string{"u1", "u2", "u3"} {
		resp, err := uc.Execute(context.Background(), &Request{
			CenterID: 2,
			UserID:   user,
			Date:     d,
			Hour:     types.TimeString("15:00"),
		})
		require.NoError(t, err, "reservation %d", i+1)
		assert.Equal(t, 2-i, resp.RemainingSpots)
	}

	_, err := uc.Execute(context.Background(), &Request{
		CenterID: 2,
		UserID:   "u4",
		Date:     d,
		Hour:     types.TimeString("15:00"),
	})
	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestExecute_CancelledDoesNotOccupySlot(t *testing.T) {
	d := date(2030, time.January, 1)
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{{
			ID:       1,
			CenterID: 1,
			UserID:   "u1",
			Date:     d,
			Hour:     types.TimeString("10:00"),
			Status:   domain.StatusCancelled,
		}},
		nextID: 1,
	}
	uc := newTestUseCase(repo, defaultCenters(), testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		CenterID: 1,
		UserID:   "u2",
		Date:     d,
		Hour:     types.TimeString("10:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_CenterNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, defaultCenters(), testNow)

	_, err := uc.Execute(context.Background(), &Request{
		CenterID: 99,
		UserID:   "u1",
		Date:     date(2030, time.January, 1),
		Hour:     types.TimeString("10:00"),
	})
	assert.ErrorIs(t, err, ErrCenterNotFound)
}

func TestExecute_StorageUnavailable_NoWrites(t *testing.T) {
	repo := &fakeReservationRepo{findErr: errors.New("connection refused")}
	uc := newTestUseCase(repo, defaultCenters(), testNow)

	_, err := uc.Execute(context.Background(), &Request{
		CenterID: 1,
		UserID:   "u1",
		Date:     date(2030, time.January, 1),
		Hour:     types.TimeString("10:00"),
	})

	require.ErrorIs(t, err, ErrInternal)
	// Ни одной записи при отказе чтения
	assert.Empty(t, repo.reservations)
}

func TestExecute_EndToEndScenario(t *testing.T) {
	// Сквозной сценарий из одного центра с вместимостью 1
	d := date(2030, time.January, 1)
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, defaultCenters(), testNow)

	// Первая бронь u1 на 10:00 - успех, статус pending
	resp, err := uc.Execute(context.Background(), &Request{
		CenterID: 1, UserID: "u1", Date: d, Hour: "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	// Та же бронь от u2 - слот занят
	_, err = uc.Execute(context.Background(), &Request{
		CenterID: 1, UserID: "u2", Date: d, Hour: "10:00",
	})
	assert.ErrorIs(t, err, ErrSlotFull)

	// u1 на 11:00 в тот же день - пересечение с собственной бронью на 10:00
	_, err = uc.Execute(context.Background(), &Request{
		CenterID: 1, UserID: "u1", Date: d, Hour: "11:00",
	})
	assert.ErrorIs(t, err, ErrUserOverlap)
}
