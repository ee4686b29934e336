package centers

import "errors"

var (
	// ErrCenterNotFound возвращается, когда центр не найден
	ErrCenterNotFound = errors.New("center not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
