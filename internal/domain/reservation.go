package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ReservationStatus represents the stored status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"

	// StatusCompleted вычисляемый статус для отображения: бронь в прошлом
	// и не отменена. В БД никогда не сохраняется
	StatusCompleted ReservationStatus = "completed"
)

// Reservation represents a one-hour booking of a sports center slot
type Reservation struct {
	ID       int64
	CenterID int64
	UserID   string // uid из внешнего identity provider
	Date     time.Time
	Hour     types.TimeString
	Status   ReservationStatus

	CancelledAt *time.Time
	CreatedAt   time.Time
}

// IsActive returns true if the reservation occupies its slot
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// StartsBefore возвращает true, если момент (date, hour) брони строго
// раньше now. Время собирается из компонентов даты и часа в локальном
// гражданском времени, без преобразования таймзон
func (r *Reservation) StartsBefore(now time.Time) bool {
	return CombineDateHour(r.Date, r.Hour).Before(now)
}

// DisplayStatus returns the status to show to the user: a past reservation
// that was not cancelled is reported as completed
func (r *Reservation) DisplayStatus(now time.Time) ReservationStatus {
	if r.Status != StatusCancelled && r.StartsBefore(now) {
		return StatusCompleted
	}
	return r.Status
}

// CanBeCancelled returns true if the owning user may still cancel:
// the reservation is active and its slot has not passed yet
func (r *Reservation) CanBeCancelled(now time.Time) bool {
	return r.IsActive() && !r.StartsBefore(now)
}

// CombineDateHour собирает момент времени из даты и часа HH:MM
// в локации даты (гражданское время, без таймзонной конвертации)
func CombineDateHour(date time.Time, hour types.TimeString) time.Time {
	minutes, err := hour.ToMinutes()
	if err != nil {
		minutes = 0
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		minutes/60, minutes%60, 0, 0,
		date.Location(),
	)
}

// HoursOverlap проверяет пересечение двух часов по правилу системы:
// часы конфликтуют, если их целочисленные значения совпадают или
// соседствуют (|h1 - h2| <= 1). Минуты игнорируются. Это намеренный
// буфер на отдых/переодевание между бронированиями, действует для
// пользователя на всю систему, независимо от центра
func HoursOverlap(h1, h2 types.TimeString) bool {
	d := h1.Hour() - h2.Hour()
	if d < 0 {
		d = -d
	}
	return d <= 1
}

// SlotReservationsFilter фильтр для выборки бронирований
type SlotReservationsFilter struct {
	CenterID   *int64
	UserID     *string
	Date       *time.Time
	Hour       *types.TimeString
	StatusIn   []ReservationStatus // nil = без фильтра по статусу
	ActiveOnly bool                // true = только pending/confirmed
}
