package domain

import "time"

// Favorite связь пользователя с избранным центром.
// Чистая запись принадлежности, составной ключ (UserID, CenterID)
type Favorite struct {
	UserID    string
	CenterID  int64
	CreatedAt time.Time
}
