package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestHoursOverlap(t *testing.T) {
	cases := []struct {
		h1, h2  string
		overlap bool
	}{
		{"10:00", "10:00", true},
		{"10:00", "11:00", true},
		{"11:00", "10:00", true},
		{"10:00", "09:00", true},
		{"10:00", "12:00", false},
		{"09:00", "21:00", false},
	}

	for _, tc := range cases {
		got := HoursOverlap(types.TimeString(tc.h1), types.TimeString(tc.h2))
		assert.Equal(t, tc.overlap, got, "%s vs %s", tc.h1, tc.h2)
	}
}

func TestCombineDateHour(t *testing.T) {
	// Момент собирается в локальном гражданском времени без
	// таймзонной конвертации
	got := CombineDateHour(day(2025, time.June, 10), types.TimeString("14:00"))
	assert.Equal(t, time.Date(2025, time.June, 10, 14, 0, 0, 0, time.Local), got)
}

func TestDisplayStatus(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.Local)

	cases := []struct {
		name string
		r    Reservation
		want ReservationStatus
	}{
		{
			"future pending stays pending",
			Reservation{Date: day(2030, 1, 1), Hour: "10:00", Status: StatusPending},
			StatusPending,
		},
		{
			"past confirmed shows completed",
			Reservation{Date: day(2025, 6, 1), Hour: "10:00", Status: StatusConfirmed},
			StatusCompleted,
		},
		{
			"past pending shows completed",
			Reservation{Date: day(2025, 6, 1), Hour: "10:00", Status: StatusPending},
			StatusCompleted,
		},
		{
			"cancelled never becomes completed",
			Reservation{Date: day(2025, 6, 1), Hour: "10:00", Status: StatusCancelled},
			StatusCancelled,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.r.DisplayStatus(now))
		})
	}
}

func TestCanBeCancelled(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.Local)

	future := Reservation{Date: day(2030, 1, 1), Hour: "10:00", Status: StatusPending}
	assert.True(t, future.CanBeCancelled(now))

	past := Reservation{Date: day(2025, 6, 1), Hour: "10:00", Status: StatusConfirmed}
	assert.False(t, past.CanBeCancelled(now))

	cancelled := Reservation{Date: day(2030, 1, 1), Hour: "10:00", Status: StatusCancelled}
	assert.False(t, cancelled.CanBeCancelled(now))
}

func TestEffectiveCapacity(t *testing.T) {
	assert.Equal(t, 3, (&Center{Capacity: 3}).EffectiveCapacity())
	assert.Equal(t, DefaultCapacity, (&Center{}).EffectiveCapacity())
	assert.Equal(t, DefaultCapacity, (&Center{Capacity: -1}).EffectiveCapacity())
}

func TestIsValidRating(t *testing.T) {
	for rating := MinRating; rating <= MaxRating; rating++ {
		assert.True(t, IsValidRating(rating))
	}
	assert.False(t, IsValidRating(0))
	assert.False(t, IsValidRating(6))
}
