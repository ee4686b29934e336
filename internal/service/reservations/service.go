package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// Service сервис для работы с бронированиями: история, просмотр
// занятости слота, отмена и подтверждение.
// Создание брони вынесено в отдельный use case с правилами допуска
type Service struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetUserReservations получает историю бронирований пользователя
// (все статусы, новые первыми)
func (s *Service) GetUserReservations(ctx context.Context, userID string) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%s", userID)

	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: successfully fetched %d reservations for user=%s",
		len(reservations), userID)
	return models.FromDomainReservationList(reservations, s.timeProvider.Now()), nil
}

// GetBySlot получает активные брони слота (центр, дата, опционально час)
// Консультативное чтение занятости без гарантий против гонок
func (s *Service) GetBySlot(ctx context.Context, req *models.GetSlotReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetBySlot: center=%d, date=%s", req.CenterID, req.Date.Format(domain.DateFormat))

	if req.CenterID <= 0 {
		return nil, fmt.Errorf("%w: centerId is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Hour != nil {
		if err := req.Hour.Validate(); err != nil {
			return nil, fmt.Errorf("%w: invalid hour format", ErrInvalidInput)
		}
	}

	reservations, err := s.reservationRepo.Find(ctx, domain.SlotReservationsFilter{
		CenterID:   ptr.Ptr(req.CenterID),
		Date:       ptr.Ptr(req.Date),
		Hour:       req.Hour,
		ActiveOnly: true,
	})
	if err != nil {
		s.logger.Error("GetBySlot: repository error for center=%d: %v", req.CenterID, err)
		return nil, fmt.Errorf("%w: GetBySlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBySlot: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations, s.timeProvider.Now()), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только свою бронь, только активную и
// только до наступления ее момента
func (s *Service) Cancel(ctx context.Context, reservationID int64, userID string) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%s", reservationID, userID)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := s.reservationRepo.GetByID(txCtx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				s.logger.Warn("Cancel: reservation id=%d not found", reservationID)
				return ErrReservationNotFound
			}
			s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if reservation.UserID != userID {
			s.logger.Warn("Cancel: access denied for user=%s to reservation id=%d", userID, reservationID)
			return ErrAccessDenied
		}

		if reservation.IsCancelled() {
			s.logger.Warn("Cancel: reservation id=%d is already cancelled", reservationID)
			return ErrAlreadyCancelled
		}

		if !reservation.CanBeCancelled(s.timeProvider.Now()) {
			s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, start has passed", reservationID)
			return ErrCannotCancel
		}

		if err := s.reservationRepo.Cancel(txCtx, reservationID); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", reservationID)
	return nil
}

// Confirm переводит бронирование из pending в confirmed
func (s *Service) Confirm(ctx context.Context, reservationID int64, userID string) error {
	s.logger.Info("Confirm: confirming reservation id=%d by user=%s", reservationID, userID)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := s.reservationRepo.GetByID(txCtx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				s.logger.Warn("Confirm: reservation id=%d not found", reservationID)
				return ErrReservationNotFound
			}
			s.logger.Error("Confirm: repository error for reservation id=%d: %v", reservationID, err)
			return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
		}

		if reservation.UserID != userID {
			s.logger.Warn("Confirm: access denied for user=%s to reservation id=%d", userID, reservationID)
			return ErrAccessDenied
		}

		// Подтвердить можно только ожидающую бронь
		if reservation.Status != domain.StatusPending {
			s.logger.Warn("Confirm: reservation id=%d has status=%s, expected pending",
				reservationID, reservation.Status)
			return ErrInvalidStatus
		}

		if err := s.reservationRepo.UpdateStatus(txCtx, reservationID, domain.StatusConfirmed); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			s.logger.Error("Confirm: repository error for reservation id=%d: %v", reservationID, err)
			return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Confirm: successfully confirmed reservation id=%d", reservationID)
	return nil
}
