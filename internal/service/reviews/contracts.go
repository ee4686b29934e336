package reviews

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	GetByCenterID(ctx context.Context, centerID int64) ([]*domain.Review, error)
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
