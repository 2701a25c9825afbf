// service содержит бизнес-логику библиотечного сервиса:
// регистрацию/аутентификацию пользователей, выпуск/проверку токенов
// и CRUD-операции над сущностями каталога через интерфейсы из пакета storage.
//
// Основные аспекты:
//   - Экземпляр Service не хранит состояние запроса и безопасен для
//     конкурентного использования из разных горутин при условии, что
//     переданное хранилище (storage.Storage) потокобезопасно.
//   - Ошибки возвращаются наружу и маппятся HTTP-слоем на статусы
//     (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"
	"strings"

	"github.com/pribylovaa/library-management-api/internal/config"
	"github.com/pribylovaa/library-management-api/internal/storage"
)

var (
	// ErrInvalidCredentials — пара email/пароль неверна или пользователь не найден.
	// Сообщение наружу одинаковое для обоих случаев, чтобы не допускать
	// перечисления аккаунтов. HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — токен некорректен по формату или подписи. HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrMissingToken — токен не передан. HTTP 401.
	ErrMissingToken = errors.New("missing token")

	// ErrEmailTaken — email уже занят другим пользователем. HTTP 400.
	ErrEmailTaken = errors.New("email already taken")

	// ErrUserNotFound — субъект токена больше не существует. HTTP 404.
	ErrUserNotFound = errors.New("user not found")

	// ErrNotFound — сущность каталога не найдена. HTTP 404.
	ErrNotFound = errors.New("not found")
)

// ValidationError — ошибка валидации входных данных с пофилдовыми
// сообщениями для клиента. HTTP 400.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// newValidationError собирает ValidationError, отбрасывая пустые сообщения.
func newValidationError(messages ...string) *ValidationError {
	out := make([]string, 0, len(messages))
	for _, m := range messages {
		if m != "" {
			out = append(out, m)
		}
	}

	return &ValidationError{Messages: out}
}

// Service описывает бизнес-логику библиотечного сервиса.
type Service struct {
	storage storage.Storage
	cfg     config.AuthConfig
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, cfg config.AuthConfig) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}
