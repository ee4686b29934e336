package create_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	createReview "github.com/m04kA/SMC-ReservationService/internal/usecase/create_review"
)

const (
	msgUnauthorized        = "требуется аутентификация"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingFields       = "не заполнены обязательные поля"
	msgInvalidRating       = "оценка должна быть от 1 до 5"
	msgInvalidInput        = "некорректные данные отзыва"
	msgReservationNotFound = "бронирование не найдено"
	msgAccessDenied        = "нельзя оставить отзыв по чужому бронированию"
	msgDuplicateReview     = "отзыв по этому бронированию уже существует"
)

type Handler struct {
	useCase CreateReviewUseCase
	logger  Logger
}

func NewHandler(useCase CreateReviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createReview.ErrMissingFields):
			h.logger.Warn("POST /reviews - Missing fields: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createReview.ErrInvalidRating):
			h.logger.Warn("POST /reviews - Invalid rating: user_id=%s, rating=%d", userID, req.Rating)
			handlers.RespondBadRequest(w, msgInvalidRating)

		case errors.Is(err, createReview.ErrInvalidInput):
			h.logger.Warn("POST /reviews - Invalid input: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReview.ErrReservationNotFound):
			h.logger.Warn("POST /reviews - Reservation not found: reservation_id=%d", req.ReservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, createReview.ErrForbidden):
			h.logger.Warn("POST /reviews - Access denied: reservation_id=%d, user_id=%s",
				req.ReservationID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, createReview.ErrDuplicateReview):
			h.logger.Warn("POST /reviews - Duplicate review: reservation_id=%d", req.ReservationID)
			handlers.RespondConflict(w, msgDuplicateReview)

		default:
			h.logger.Error("POST /reviews - Failed to create review: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review created successfully: review_id=%d, center_id=%d, user_id=%s",
		result.ID, result.CenterID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
