// Package middlewarectx содержит HTTP middleware для проверки токенов доступа.
//
// JWTMiddleware проверяет наличие и валидность bearer-токена в заголовке
// Authorization, находит субъекта токена через сервис аутентификации
// и в случае успеха добавляет пользователя в контекст запроса.
//
// Любой отказ даёт HTTP 401 Unauthorized с заголовком WWW-Authenticate: Bearer.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/fitness-tracker/internal/http/response"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/fitness-tracker/internal/models"
	auth "github.com/magabrotheeeer/fitness-tracker/internal/services/auth"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// User — ключ для модели пользователя в контексте
	User Key = "user"
)

// Service описывает интерфейс сервиса для проверки токена доступа.
type Service interface {
	Authorize(ctx context.Context, token string) (*models.User, error)
}

// UserFromContext извлекает аутентифицированного пользователя из контекста.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(User).(*models.User)
	return user, ok
}

func unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error(msg))
}

// JWTMiddleware возвращает HTTP middleware, который проверяет bearer-токен
// в заголовке Authorization.
//
// Если токен валиден и его субъект существует, добавляет пользователя
// в контекст запроса, иначе возвращает 401 Unauthorized.
func JWTMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"
			authHeader := r.Header.Get("Authorization")

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				unauthorized(w, r, "missing or invalid authorization header")
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			user, err := authService.Authorize(r.Context(), tokenStr)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrTokenExpired):
					log.Error("token expired", sl.Err(err))
					unauthorized(w, r, "token expired")
				case errors.Is(err, auth.ErrUnknownSubject):
					log.Error("unknown token subject", sl.Err(err))
					unauthorized(w, r, "unknown token subject")
				default:
					log.Error("invalid token", sl.Err(err))
					unauthorized(w, r, "invalid token")
				}
				return
			}
			ctx := context.WithValue(r.Context(), User, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
