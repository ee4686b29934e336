package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID            int64     `json:"id"`
	CenterID      int64     `json:"centerId"`
	ReservationID int64     `json:"reservationId"`
	UserID        string    `json:"userId"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ReviewListResponse ответ со списком отзывов центра
type ReviewListResponse struct {
	CenterID int64            `json:"centerId"`
	Rating   float64          `json:"rating"`
	Reviews  []ReviewResponse `json:"reviews"`
}

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}

	return &ReviewResponse{
		ID:            r.ID,
		CenterID:      r.CenterID,
		ReservationID: r.ReservationID,
		UserID:        r.UserID,
		Rating:        r.Rating,
		Comment:       r.Comment,
		CreatedAt:     r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует список domain моделей в DTO
func FromDomainReviewList(centerID int64, rating float64, reviews []*domain.Review) *ReviewListResponse {
	result := &ReviewListResponse{
		CenterID: centerID,
		Rating:   rating,
		Reviews:  make([]ReviewResponse, 0, len(reviews)),
	}

	for _, r := range reviews {
		result.Reviews = append(result.Reviews, *FromDomainReview(r))
	}

	return result
}
