package domain

// Default configuration values
const (
	// DefaultCapacity вместимость слота, если у центра она не задана
	DefaultCapacity = 1
)

// Business validation constants
const (
	MinRating = 1
	MaxRating = 5

	// Границы бронируемой сетки: слоты с 09:00 до 21:00 включительно,
	// шаг - один час
	FirstBookableHour = 9
	LastBookableHour  = 21

	MaxCommentLength = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, занимающих слот
// Используется при подсчете занятости и проверке пересечений
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
