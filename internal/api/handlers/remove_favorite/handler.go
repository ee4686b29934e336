package remove_favorite

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	favoritesService "github.com/m04kA/SMC-ReservationService/internal/service/favorites"
)

const (
	msgUnauthorized     = "требуется аутентификация"
	msgAccessDenied     = "нельзя изменить избранное другого пользователя"
	msgInvalidCenterID  = "некорректный ID центра"
	msgFavoriteNotFound = "центр не найден в избранном"
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

// Handle DELETE /api/v1/users/{userId}/favorites/{centerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authUserID, ok := middleware.UserID(r)
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)

	userID := vars["userId"]
	if userID != authUserID {
		h.logger.Warn("DELETE /users/{userId}/favorites/{centerId} - Access denied: auth_user=%s, requested_user=%s",
			authUserID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	centerID, err := strconv.ParseInt(vars["centerId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /users/{userId}/favorites/{centerId} - Invalid center ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCenterID)
		return
	}

	if err := h.service.Remove(r.Context(), userID, centerID); err != nil {
		switch {
		case errors.Is(err, favoritesService.ErrFavoriteNotFound):
			h.logger.Warn("DELETE /users/{userId}/favorites/{centerId} - Not found: user_id=%s, center_id=%d",
				userID, centerID)
			handlers.RespondNotFound(w, msgFavoriteNotFound)

		case errors.Is(err, favoritesService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCenterID)

		default:
			h.logger.Error("DELETE /users/{userId}/favorites/{centerId} - Failed: user_id=%s, center_id=%d, error=%v",
				userID, centerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /users/{userId}/favorites/{centerId} - Favorite removed: user_id=%s, center_id=%d",
		userID, centerID)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
