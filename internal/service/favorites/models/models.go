package models

// FavoriteListResponse ответ со списком избранных центров пользователя
type FavoriteListResponse struct {
	UserID    string  `json:"userId"`
	CenterIDs []int64 `json:"centerIds"`
}
