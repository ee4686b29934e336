package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CenterID int64            // ID центра
	UserID   string           // uid пользователя из identity provider
	Date     time.Time        // Дата бронирования (без времени)
	Hour     types.TimeString // Час слота из сетки 09:00-21:00
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID       int64            // ID созданного бронирования
	CenterID int64            // ID центра
	UserID   string           // uid пользователя
	Date     time.Time        // Дата бронирования
	Hour     types.TimeString // Час слота
	Status   string           // Статус (всегда pending при создании)

	// RemainingSpots количество оставшихся мест в слоте после
	// этого бронирования
	RemainingSpots int

	CreatedAt time.Time // Время создания
}
