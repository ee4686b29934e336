package favorites

import "errors"

var (
	// ErrCenterNotFound возвращается, когда центр не найден
	ErrCenterNotFound = errors.New("center not found")

	// ErrFavoriteNotFound возвращается при удалении отсутствующей записи
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
