// errors стандартизирует ответы об ошибках HTTP-слоя.
// На вход он принимает доменную ошибку из пакета service,
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Формат тела: {"message": <строка или массив строк>}; массив — только
// для пофилдовых сообщений валидации.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/library-management-api/internal/service"
)

// ErrorResponse — корневой объект в ответе об ошибке.
// Message — string для одиночных ошибок, []string для валидации.
type ErrorResponse struct {
	Message any `json:"message"`
}

// ToHTTP конвертирует доменную ошибку в HTTP-статус и тело ответа.
//
// Поведение:
//   - err == nil — это программная ошибка вызова: возвращаем 500,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - ошибки токенов различаются только на /refresh: гейт для всех
//     режимов отказа пишет единый ответ сам (см. middleware.RequireAuth);
//   - всё неизвестное — 500 без деталей.
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"}
	}

	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, ErrorResponse{Message: verr.Messages}
	}

	switch {
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusBadRequest, ErrorResponse{Message: "User already exists"}
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrorResponse{Message: "Invalid credentials"}
	case errors.Is(err, service.ErrMissingToken):
		return http.StatusUnauthorized, ErrorResponse{Message: "Refresh token is required"}
	case errors.Is(err, service.ErrTokenExpired):
		return http.StatusUnauthorized, ErrorResponse{Message: "Refresh token has expired"}
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, ErrorResponse{Message: "Invalid refresh token"}
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound, ErrorResponse{Message: "User not found"}
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Message: "Not found"}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrorResponse{Message: "Request timed out"}
	default:
		return http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"}
	}
}

// WriteError — хелпер для HTTP-хендлеров: пишет статус и тело по ToHTTP.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)
	writeBody(w, status, resp)
}

// WriteMessage пишет произвольное сообщение с заданным статусом.
// Используется гейтом (единый 401) и хендлерами для фиксированных ответов.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	writeBody(w, status, ErrorResponse{Message: message})
}

// WriteNotFound пишет 404 с сообщением "<Entity> not found".
func WriteNotFound(w http.ResponseWriter, entity string) {
	writeBody(w, http.StatusNotFound, ErrorResponse{Message: entity + " not found"})
}

func writeBody(w http.ResponseWriter, status int, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
