package confirm_reservation

import "context"

type ReservationService interface {
	Confirm(ctx context.Context, reservationID int64, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
