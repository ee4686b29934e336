package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	centerRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/center"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// UseCase use case для получения доступных слотов центра на дату
type UseCase struct {
	reservationRepo ReservationRepository
	centerRepo      CenterRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	centerRepo CenterRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		centerRepo:      centerRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Чтение консультативное: истинность занятости гарантирует только
// проверка при создании брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: center=%d, date=%s",
		req.CenterID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем центр (нужна вместимость)
	c, err := uc.centerRepo.GetByID(ctx, req.CenterID)
	if err != nil {
		if errors.Is(err, centerRepo.ErrCenterNotFound) {
			uc.logger.Warn("GetAvailableSlots: center id=%d not found", req.CenterID)
			return nil, ErrCenterNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get center id=%d: %v", req.CenterID, err)
		return nil, fmt.Errorf("%w: failed to get center: %v", ErrInternal, err)
	}

	// 3. Активные брони центра на дату
	reservations, err := uc.reservationRepo.Find(ctx, domain.SlotReservationsFilter{
		CenterID:   ptr.Ptr(req.CenterID),
		Date:       ptr.Ptr(req.Date),
		ActiveOnly: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Строим сетку
	slots := buildSlots(req.Date, c.EffectiveCapacity(), reservations, uc.timeProvider.Now())

	uc.logger.Info("GetAvailableSlots: center=%d, date=%s, %d slots available",
		req.CenterID, req.Date.Format(domain.DateFormat), len(slots))

	return &Response{
		CenterID: req.CenterID,
		Date:     req.Date,
		Slots:    slots,
	}, nil
}
