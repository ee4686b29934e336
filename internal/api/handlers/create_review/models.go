package create_review

import (
	"time"

	createReview "github.com/m04kA/SMC-ReservationService/internal/usecase/create_review"
)

// CreateReviewRequest HTTP request model
type CreateReviewRequest struct {
	ReservationID int64  `json:"reservationId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment,omitempty"`
}

// ReviewResponse HTTP response model
type ReviewResponse struct {
	ID            int64  `json:"id"`
	CenterID      int64  `json:"centerId"`
	ReservationID int64  `json:"reservationId"`
	UserID        string `json:"userId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment,omitempty"`
	CreatedAt     string `json:"createdAt"`

	CenterRating      float64 `json:"centerRating"`
	CenterReviewCount int     `json:"centerReviewCount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReviewRequest) ToUseCaseRequest(userID string) *createReview.Request {
	return &createReview.Request{
		ReservationID: r.ReservationID,
		UserID:        userID,
		Rating:        r.Rating,
		Comment:       r.Comment,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReview.Response) *ReviewResponse {
	return &ReviewResponse{
		ID:                resp.ID,
		CenterID:          resp.CenterID,
		ReservationID:     resp.ReservationID,
		UserID:            resp.UserID,
		Rating:            resp.Rating,
		Comment:           resp.Comment,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
		CenterRating:      resp.CenterRating,
		CenterReviewCount: resp.CenterReviewCount,
	}
}
