package get_user_favorites

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
)

const (
	msgUnauthorized = "требуется аутентификация"
	msgAccessDenied = "нет доступа к избранному другого пользователя"
)

type Handler struct {
	service FavoriteService
	logger  Logger
}

func NewHandler(service FavoriteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/favorites
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authUserID, ok := middleware.UserID(r)
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	userID := mux.Vars(r)["userId"]
	if userID != authUserID {
		h.logger.Warn("GET /users/{userId}/favorites - Access denied: auth_user=%s, requested_user=%s",
			authUserID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	result, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/{userId}/favorites - Failed: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{userId}/favorites - Favorites retrieved successfully: user_id=%s, count=%d",
		userID, len(result.CenterIDs))
	handlers.RespondJSON(w, http.StatusOK, result)
}
