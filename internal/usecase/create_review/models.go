package create_review

import "time"

// Request модель запроса на создание отзыва
type Request struct {
	ReservationID int64  // ID бронирования, по которому оставляется отзыв
	UserID        string // uid пользователя из identity provider
	Rating        int    // Оценка 1..5
	Comment       string // Текст отзыва (опционально)
}

// Response модель ответа с созданным отзывом и пересчитанным рейтингом
type Response struct {
	ID            int64     // ID созданного отзыва
	CenterID      int64     // ID центра (берется из бронирования)
	ReservationID int64     // ID бронирования
	UserID        string    // uid пользователя
	Rating        int       // Оценка
	Comment       string    // Текст отзыва
	CreatedAt     time.Time // Время создания

	// CenterRating агрегированный рейтинг центра после этого отзыва
	CenterRating float64
	// CenterReviewCount количество отзывов центра после этого отзыва
	CenterReviewCount int
}
