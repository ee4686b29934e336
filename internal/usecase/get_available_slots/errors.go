package get_available_slots

import "errors"

var (
	// ErrMissingFields возвращается, когда обязательные поля не заполнены
	ErrMissingFields = errors.New("get_available_slots: missing required fields")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrCenterNotFound возвращается, когда центр не найден
	ErrCenterNotFound = errors.New("get_available_slots: center not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
