package recalculate_ratings

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReviewRepository интерфейс для работы с хранилищем отзывов
type ReviewRepository interface {
	GetAll(ctx context.Context) ([]*domain.Review, error)
}

// CenterRepository интерфейс для работы с хранилищем центров
type CenterRepository interface {
	List(ctx context.Context) ([]*domain.Center, error)
	UpdateRating(ctx context.Context, id int64, rating float64, reviewCount int) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
