package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	centerRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/center"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// UseCase use case для создания бронирования
// Единственный источник правил допуска: проверка прошедшего времени,
// пересечений по часам у пользователя и вместимости слота
type UseCase struct {
	reservationRepo ReservationRepository
	centerRepo      CenterRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	centerRepo CenterRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		centerRepo:      centerRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверки и вставка выполняются в одной сериализуемой транзакции,
// чтобы два конкурентных запроса на последнее место слота не прошли
// проверку вместимости одновременно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%s, center=%d, date=%s, hour=%s",
		req.UserID, req.CenterID, req.Date.Format(domain.DateFormat), req.Hour)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверка, что момент брони не прошел
	now := uc.timeProvider.Now()
	if err := validateNotInPast(req, now); err != nil {
		uc.logger.Warn("CreateReservation: time already passed: date=%s, hour=%s",
			req.Date.Format(domain.DateFormat), req.Hour)
		return nil, err
	}

	var result *domain.Reservation
	var remainingSpots int

	// 3. Read-check-write в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем центр (нужна вместимость слота)
		c, err := uc.centerRepo.GetByID(txCtx, req.CenterID)
		if err != nil {
			if errors.Is(err, centerRepo.ErrCenterNotFound) {
				uc.logger.Warn("CreateReservation: center id=%d not found", req.CenterID)
				return ErrCenterNotFound
			}
			uc.logger.Error("CreateReservation: failed to get center id=%d: %v", req.CenterID, err)
			return fmt.Errorf("%w: failed to get center: %v", ErrInternal, err)
		}

		capacity := c.EffectiveCapacity()

		// 3.2. Активные брони пользователя на эту дату (любые центры)
		userReservations, err := uc.reservationRepo.Find(txCtx, domain.SlotReservationsFilter{
			UserID:     ptr.Ptr(req.UserID),
			Date:       ptr.Ptr(req.Date),
			ActiveOnly: true,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get user reservations: %v", err)
			return fmt.Errorf("%w: failed to get user reservations: %v", ErrInternal, err)
		}

		// 3.3. Проверка пересечения по часам: тот же или соседний час
		// конфликтует - намеренный буфер между бронированиями
		if conflict := findOverlappingReservation(userReservations, req); conflict != nil {
			uc.logger.Warn("CreateReservation: user=%s already has reservation at %s on %s",
				req.UserID, conflict.Hour, req.Date.Format(domain.DateFormat))
			return fmt.Errorf("%w: existing reservation at %s", ErrUserOverlap, conflict.Hour)
		}

		// 3.4. Активные брони ровно этого слота
		slotReservations, err := uc.reservationRepo.Find(txCtx, domain.SlotReservationsFilter{
			CenterID:   ptr.Ptr(req.CenterID),
			Date:       ptr.Ptr(req.Date),
			Hour:       ptr.Ptr(req.Hour),
			ActiveOnly: true,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get slot reservations: %v", err)
			return fmt.Errorf("%w: failed to get slot reservations: %v", ErrInternal, err)
		}

		// 3.5. Проверка вместимости
		taken := countSlotReservations(slotReservations)
		if taken >= capacity {
			uc.logger.Warn("CreateReservation: slot full, %d/%d spots taken (center=%d, date=%s, hour=%s)",
				taken, capacity, req.CenterID, req.Date.Format(domain.DateFormat), req.Hour)
			return ErrSlotFull
		}

		uc.logger.Info("CreateReservation: slot available, %d/%d spots taken", taken, capacity)

		// 3.6. Создаем бронирование в статусе pending
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			CenterID: req.CenterID,
			UserID:   req.UserID,
			Date:     req.Date,
			Hour:     req.Hour,
			Status:   domain.StatusPending,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		remainingSpots = capacity - taken - 1
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:             result.ID,
		CenterID:       result.CenterID,
		UserID:         result.UserID,
		Date:           result.Date,
		Hour:           result.Hour,
		Status:         string(result.Status),
		RemainingSpots: remainingSpots,
		CreatedAt:      result.CreatedAt,
	}, nil
}
