package create_review

import "errors"

var (
	// ErrMissingFields возвращается, когда обязательные поля не заполнены
	ErrMissingFields = errors.New("create_review: missing required fields")

	// ErrInvalidRating возвращается, когда оценка вне диапазона 1..5
	ErrInvalidRating = errors.New("create_review: rating must be between 1 and 5")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_review: invalid input data")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("create_review: reservation not found")

	// ErrForbidden возвращается, когда бронирование принадлежит другому
	// пользователю
	ErrForbidden = errors.New("create_review: reservation belongs to another user")

	// ErrDuplicateReview возвращается, когда по бронированию уже есть отзыв
	ErrDuplicateReview = errors.New("create_review: review for this reservation already exists")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_review: internal error")
)
