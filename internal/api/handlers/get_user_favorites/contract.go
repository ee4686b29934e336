package get_user_favorites

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/favorites/models"
)

type FavoriteService interface {
	ListByUser(ctx context.Context, userID string) (*models.FavoriteListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
