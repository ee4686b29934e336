package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// buildSlots строит часовую сетку 09:00-21:00 на дату и вычитает
// активные брони из вместимости центра. Часы без свободных мест и
// уже прошедшие часы сегодняшнего дня в результат не попадают
func buildSlots(date time.Time, capacity int, reservations []*domain.Reservation, now time.Time) []Slot {
	taken := make(map[int]int)
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		if h := r.Hour.Hour(); h >= 0 {
			taken[h]++
		}
	}

	slots := make([]Slot, 0, domain.LastBookableHour-domain.FirstBookableHour+1)
	for h := domain.FirstBookableHour; h <= domain.LastBookableHour; h++ {
		hour := types.TimeString(fmt.Sprintf("%02d:00", h))

		if domain.CombineDateHour(date, hour).Before(now) {
			continue
		}

		available := capacity - taken[h]
		if available <= 0 {
			continue
		}

		slots = append(slots, Slot{
			Hour:           hour,
			TotalSpots:     capacity,
			AvailableSpots: available,
		})
	}

	return slots
}
