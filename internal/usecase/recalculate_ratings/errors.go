package recalculate_ratings

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("recalculate_ratings: internal error")
)
