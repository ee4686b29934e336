package favorites

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// FavoriteRepository интерфейс репозитория избранного
type FavoriteRepository interface {
	Add(ctx context.Context, fav *domain.Favorite) error
	Remove(ctx context.Context, userID string, centerID int64) error
	Exists(ctx context.Context, userID string, centerID int64) (bool, error)
	GetCenterIDsByUser(ctx context.Context, userID string) ([]int64, error)
}

// CenterRepository интерфейс репозитория центров
type CenterRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Center, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
