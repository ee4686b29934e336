package get_center_reviews

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	reviewsService "github.com/m04kA/SMC-ReservationService/internal/service/reviews"
)

const (
	msgInvalidCenterID = "некорректный ID центра"
	msgCenterNotFound  = "центр не найден"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/centers/{centerId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	centerID, err := strconv.ParseInt(vars["centerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /centers/{centerId}/reviews - Invalid center ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCenterID)
		return
	}

	result, err := h.service.GetByCenter(r.Context(), centerID)
	if err != nil {
		if errors.Is(err, reviewsService.ErrCenterNotFound) {
			h.logger.Warn("GET /centers/{centerId}/reviews - Center not found: center_id=%d", centerID)
			handlers.RespondNotFound(w, msgCenterNotFound)
			return
		}
		h.logger.Error("GET /centers/{centerId}/reviews - Failed: center_id=%d, error=%v", centerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /centers/{centerId}/reviews - Reviews retrieved successfully: center_id=%d, count=%d",
		centerID, len(result.Reviews))
	handlers.RespondJSON(w, http.StatusOK, result)
}
