package create_review

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReviewRepository интерфейс для работы с хранилищем отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	GetByReservationID(ctx context.Context, reservationID int64) (*domain.Review, error)
	GetByCenterID(ctx context.Context, centerID int64) ([]*domain.Review, error)
}

// ReservationRepository интерфейс для работы с хранилищем бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// CenterRepository интерфейс для работы с хранилищем центров
type CenterRepository interface {
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
