package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

const (
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingFields      = "не заполнены обязательные поля"
	msgInvalidInput       = "некорректные данные бронирования"
	msgInThePast          = "выбранное время уже прошло"
	msgUserOverlap        = "у вас уже есть бронирование на этот или соседний час"
	msgSlotFull           = "выбранный слот полностью занят"
	msgCenterNotFound     = "центр не найден"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и часа)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrMissingFields):
			h.logger.Warn("POST /reservations - Missing fields: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrInThePast):
			h.logger.Warn("POST /reservations - Time in the past: user_id=%s, date=%s, hour=%s",
				userID, req.Date, req.Hour)
			handlers.RespondBadRequest(w, msgInThePast)

		case errors.Is(err, createReservation.ErrUserOverlap):
			h.logger.Warn("POST /reservations - Overlapping reservation: user_id=%s, date=%s", userID, req.Date)
			handlers.RespondConflict(w, msgUserOverlap)

		case errors.Is(err, createReservation.ErrSlotFull):
			h.logger.Warn("POST /reservations - Slot full: center_id=%d, date=%s, hour=%s",
				req.CenterID, req.Date, req.Hour)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, createReservation.ErrCenterNotFound):
			h.logger.Warn("POST /reservations - Center not found: center_id=%d", req.CenterID)
			handlers.RespondNotFound(w, msgCenterNotFound)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user_id=%s",
		result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
