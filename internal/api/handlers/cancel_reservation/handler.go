package cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	reservationsService "github.com/m04kA/SMC-ReservationService/internal/service/reservations"
)

const (
	msgUnauthorized         = "требуется аутентификация"
	msgInvalidReservationID = "некорректный ID бронирования"
	msgReservationNotFound  = "бронирование не найдено"
	msgAccessDenied         = "нельзя отменить чужое бронирование"
	msgAlreadyCancelled     = "бронирование уже отменено"
	msgCannotCancel         = "время бронирования уже наступило"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{reservationId}/cancel - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	if err := h.service.Cancel(r.Context(), reservationID, userID); err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{reservationId}/cancel - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationsService.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{reservationId}/cancel - Access denied: reservation_id=%d, user_id=%s",
				reservationID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservationsService.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /reservations/{reservationId}/cancel - Already cancelled: reservation_id=%d",
				reservationID)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		case errors.Is(err, reservationsService.ErrCannotCancel):
			h.logger.Warn("PATCH /reservations/{reservationId}/cancel - Start has passed: reservation_id=%d",
				reservationID)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /reservations/{reservationId}/cancel - Failed: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{reservationId}/cancel - Reservation cancelled successfully: reservation_id=%d, user_id=%s",
		reservationID, userID)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
