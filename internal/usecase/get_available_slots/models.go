package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	CenterID int64     // ID центра
	Date     time.Time // Дата, на которую запрашиваются слоты
}

// Slot один час бронируемой сетки с информацией о занятости
type Slot struct {
	Hour           types.TimeString // Час слота, например "14:00"
	TotalSpots     int              // Вместимость центра
	AvailableSpots int              // Сколько мест осталось
}

// Response модель ответа со слотами на дату
type Response struct {
	CenterID int64     // ID центра
	Date     time.Time // Запрошенная дата

	// Slots часы сетки 09:00-21:00, у которых есть хотя бы одно
	// свободное место; прошедшие часы сегодняшнего дня не включаются
	Slots []Slot
}
