package recalculate_ratings

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

type Handler struct {
	useCase RecalculateRatingsUseCase
	logger  Logger
}

func NewHandler(useCase RecalculateRatingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// RecalculateResponse HTTP response model
type RecalculateResponse struct {
	CentersUpdated int `json:"centersUpdated"`
}

// Handle POST /api/v1/ratings/recalculate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /ratings/recalculate - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /ratings/recalculate - Recalculated ratings for %d centers", result.CentersUpdated)
	handlers.RespondJSON(w, http.StatusOK, RecalculateResponse{CentersUpdated: result.CentersUpdated})
}
