package get_centers

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

type Handler struct {
	service CenterService
	logger  Logger
}

func NewHandler(service CenterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/centers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /centers - Failed to list centers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /centers - Centers retrieved successfully: count=%d", len(result.Centers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
