package get_slot_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationsService "github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

const (
	msgInvalidCenterID = "некорректный ID центра"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidHour     = "некорректный формат часа, ожидается HH:MM"
	msgMissingParams   = "не указаны centerId или date"
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

// Handle GET /api/v1/reservations?centerId=&date=&hour=
// Час опционален: без него возвращаются активные брони центра на весь день
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	centerIDStr := query.Get("centerId")
	dateStr := query.Get("date")
	if centerIDStr == "" || dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	centerID, err := strconv.ParseInt(centerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid center ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCenterID)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	serviceReq := &models.GetSlotReservationsRequest{
		CenterID: centerID,
		Date:     date,
	}

	if hourStr := query.Get("hour"); hourStr != "" {
		hour, err := types.NewTimeStringFromString(hourStr)
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid hour: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHour)
			return
		}
		serviceReq.Hour = ptr.Ptr(hour)
	}

	result, err := h.service.GetBySlot(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, reservationsService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidHour)
			return
		}
		h.logger.Error("GET /reservations - Failed: center_id=%d, error=%v", centerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: center_id=%d, date=%s, count=%d",
		centerID, dateStr, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
