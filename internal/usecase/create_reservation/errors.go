package create_reservation

import "errors"

var (
	// ErrMissingFields возвращается, когда обязательные поля не заполнены
	ErrMissingFields = errors.New("create_reservation: missing required fields")

	// ErrInThePast возвращается, когда момент (дата, час) брони уже прошел
	ErrInThePast = errors.New("create_reservation: reservation time has already passed")

	// ErrUserOverlap возвращается, когда у пользователя уже есть бронь
	// на тот же или соседний час в эту дату (в любом центре)
	ErrUserOverlap = errors.New("create_reservation: overlapping reservation on this date")

	// ErrSlotFull возвращается, когда слот занят до вместимости центра
	ErrSlotFull = errors.New("create_reservation: time slot is fully reserved")

	// ErrCenterNotFound возвращается, когда центр не найден
	ErrCenterNotFound = errors.New("create_reservation: center not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// (в том числе при недоступности хранилища)
	ErrInternal = errors.New("create_reservation: internal error")
)
