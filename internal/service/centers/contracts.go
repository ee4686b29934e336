package centers

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// CenterRepository интерфейс репозитория центров
type CenterRepository interface {
	List(ctx context.Context) ([]*domain.Center, error)
	GetByID(ctx context.Context, id int64) (*domain.Center, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
