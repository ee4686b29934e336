package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CenterID int64  `json:"centerId"`
	Date     string `json:"date"` // "2025-10-15"
	Hour     string `json:"hour"` // "14:00"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID             int64  `json:"id"`
	CenterID       int64  `json:"centerId"`
	UserID         string `json:"userId"`
	Date           string `json:"date"`
	Hour           string `json:"hour"`
	Status         string `json:"status"`
	RemainingSpots int    `json:"remainingSpots"`
	CreatedAt      string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID string) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	hour, err := types.NewTimeStringFromString(r.Hour)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		CenterID: r.CenterID,
		UserID:   userID,
		Date:     date,
		Hour:     hour,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:             resp.ID,
		CenterID:       resp.CenterID,
		UserID:         resp.UserID,
		Date:           resp.Date.Format(domain.DateFormat),
		Hour:           resp.Hour.String(),
		Status:         resp.Status,
		RemainingSpots: resp.RemainingSpots,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
