package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

// HeaderUserID заголовок с идентификатором пользователя
// Проставляется API-шлюзом после проверки токена
const HeaderUserID = "X-User-ID"

const msgUnauthorized = "требуется аутентификация"

type ctxKey string

const userIDKey ctxKey = "userID"

// Auth проверяет наличие заголовка X-User-ID и кладет uid в контекст
// запроса. Сервис доверяет шлюзу и сам токены не проверяет
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID извлекает uid пользователя из контекста запроса
func UserID(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}
