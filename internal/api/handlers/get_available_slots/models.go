package get_available_slots

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	Hour           string `json:"hour"`
	TotalSpots     int    `json:"totalSpots"`
	AvailableSpots int    `json:"availableSpots"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	CenterID int64          `json:"centerId"`
	Date     string         `json:"date"`
	Slots    []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	result := &AvailableSlotsResponse{
		CenterID: resp.CenterID,
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, s := range resp.Slots {
		result.Slots = append(result.Slots, SlotResponse{
			Hour:           s.Hour.String(),
			TotalSpots:     s.TotalSpots,
			AvailableSpots: s.AvailableSpots,
		})
	}

	return result
}
