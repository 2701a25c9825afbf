package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	apierrors "github.com/pribylovaa/library-management-api/internal/transport/http/errors"
)

// TokenVerifier проверяет access-токен и возвращает субъекта.
type TokenVerifier interface {
	VerifyAccessToken(token string) (uuid.UUID, error)
}

type ctxKeyUserID struct{}

// UserIDFrom возвращает ID аутентифицированного пользователя из контекста.
// Второе значение false означает, что запрос не проходил через RequireAuth.
func UserIDFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ctxKeyUserID{}).(uuid.UUID)
	return id, ok
}

// RequireAuth — гейт защищённых маршрутов: извлекает Bearer-токен из
// Authorization, проверяет его и кладёт ID субъекта в контекст.
//
// Отсутствие заголовка или токена — 401 "Authentication required".
// Любой режим отказа проверки (истёкший, битый, чужая подпись) даёт
// единый 401 "Invalid token": детали причины клиенту не сообщаются.
func RequireAuth(verifier TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				apierrors.WriteMessage(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			uid, err := verifier.VerifyAccessToken(token)
			if err != nil {
				apierrors.WriteMessage(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUserID{}, uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}
