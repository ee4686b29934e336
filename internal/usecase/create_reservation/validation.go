package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest проверяет обязательные поля запроса
// Порядок проверок важен для UX (самые дешевые и конкретные ошибки
// первыми), но не для корректности - каждая проверка независима
func validateRequest(req *Request) error {
	if req.CenterID <= 0 {
		return fmt.Errorf("%w: centerId is required", ErrMissingFields)
	}

	if req.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrMissingFields)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrMissingFields)
	}

	if req.Hour.IsZero() {
		return fmt.Errorf("%w: hour is required", ErrMissingFields)
	}

	// Валидируем формат часа
	if err := req.Hour.Validate(); err != nil {
		return fmt.Errorf("%w: invalid hour format: %v", ErrInvalidInput, err)
	}

	// Час должен входить в бронируемую сетку 09:00-21:00
	if h := req.Hour.Hour(); h < domain.FirstBookableHour || h > domain.LastBookableHour {
		return fmt.Errorf("%w: hour %s is outside the bookable grid %02d:00-%02d:00",
			ErrInvalidInput, req.Hour, domain.FirstBookableHour, domain.LastBookableHour)
	}

	return nil
}

// validateNotInPast проверяет, что момент брони не прошел
// Момент собирается из компонентов даты и часа в локальном гражданском
// времени вызывающей стороны, без таймзонной конвертации.
// Отклоняется только строго прошедшее время
func validateNotInPast(req *Request, now time.Time) error {
	if domain.CombineDateHour(req.Date, req.Hour).Before(now) {
		return ErrInThePast
	}
	return nil
}

// findOverlappingReservation ищет среди активных броней пользователя
// на эту дату первую, конфликтующую с запрошенным часом
// Правило: часы пересекаются, если |h1 - h2| <= 1 - одинаковый или
// соседний час недопустим даже в разных центрах
func findOverlappingReservation(reservations []*domain.Reservation, req *Request) *domain.Reservation {
	for _, existing := range reservations {
		if !existing.IsActive() {
			continue
		}
		if domain.HoursOverlap(existing.Hour, req.Hour) {
			return existing
		}
	}
	return nil
}

// countSlotReservations подсчитывает активные брони, занимающие
// ровно этот (центр, дата, час) слот
func countSlotReservations(reservations []*domain.Reservation) int {
	count := 0
	for _, existing := range reservations {
		if existing.IsActive() {
			count++
		}
	}
	return count
}
