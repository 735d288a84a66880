package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/aidar/workday-backend/internal/service"
)

// contextKey это кастомный тип для ключей контекста
type contextKey string

// claimsKey ключ контекста для проверенных claims токена
const claimsKey contextKey = "claims"

// Auth создает middleware для валидации bearer-токенов. Проверенные claims
// кладутся в контекст запроса одним явным значением и читаются обработчиками
// через ClaimsFromContext.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Получаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, `{"message":"missing authorization header"}`, http.StatusUnauthorized)
				return
			}

			// Проверяем формат Bearer
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, `{"message":"invalid authorization header format"}`, http.StatusUnauthorized)
				return
			}

			// Валидируем токен
			claims, err := authService.ValidateToken(parts[1])
			if err != nil {
				http.Error(w, `{"message":"invalid or expired token"}`, http.StatusUnauthorized)
				return
			}

			// Добавляем claims в контекст и вызываем следующий обработчик
			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext извлекает проверенные claims из контекста запроса
func ClaimsFromContext(ctx context.Context) (*service.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*service.Claims)
	return claims, ok
}
