// handlers реализует REST-эндпойнты поверх бизнес-логики service.
// Каждый хендлер декодирует вход, зовёт сервис и пишет JSON-ответ;
// маппинг доменных ошибок на статусы — в пакете errors.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/library-management-api/internal/service"
	apierrors "github.com/pribylovaa/library-management-api/internal/transport/http/errors"
)

// Handlers агрегирует зависимости (бизнес-логика).
type Handlers struct {
	svc *service.Service
}

func New(svc *service.Service) *Handlers {
	return &Handlers{svc: svc}
}

// Healthcheck — публичная проверка живости API.
func (h *Handlers) Healthcheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "API is healthy"})
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// writeBadRequestBody — ответ на нечитаемое тело запроса.
func writeBadRequestBody(w http.ResponseWriter) {
	apierrors.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
}

// pathID извлекает {id} из URL. Некорректный UUID неотличим для клиента
// от несуществующей записи: пишем 404 "<entity> not found".
func pathID(w http.ResponseWriter, r *http.Request, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteNotFound(w, entity)
		return uuid.Nil, false
	}

	return id, true
}
