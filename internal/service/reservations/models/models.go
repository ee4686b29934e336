package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модели

// GetSlotReservationsRequest запрос на получение броней слота
type GetSlotReservationsRequest struct {
	CenterID int64             `json:"centerId"`
	Date     time.Time         `json:"date"`
	Hour     *types.TimeString `json:"hour,omitempty"` // Фильтр по часу (опционально)
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID       int64  `json:"id"`
	CenterID int64  `json:"centerId"`
	UserID   string `json:"userId"`
	Date     string `json:"date"` // "2025-10-15"
	Hour     string `json:"hour"` // "14:00"

	// Status отображаемый статус: активная бронь с прошедшим началом
	// показывается как completed
	Status string `json:"status"`

	// CanCancel признак, что бронь еще можно отменить
	CanCancel bool `json:"canCancel"`

	CancelledAt *string   `json:"cancelledAt,omitempty"` // ISO 8601
	CreatedAt   time.Time `json:"createdAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
// Отображаемый статус и признак отменяемости выводятся относительно now
func FromDomainReservation(r *domain.Reservation, now time.Time) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:        r.ID,
		CenterID:  r.CenterID,
		UserID:    r.UserID,
		Date:      r.Date.Format(domain.DateFormat),
		Hour:      r.Hour.String(),
		Status:    string(r.DisplayStatus(now)),
		CanCancel: r.CanBeCancelled(now),
		CreatedAt: r.CreatedAt,
	}

	if r.CancelledAt != nil {
		cancelledAt := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation, now time.Time) *ReservationListResponse {
	result := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		result.Reservations = append(result.Reservations, *FromDomainReservation(r, now))
	}

	return result
}
