// models содержит доменные модели библиотечного сервиса.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User — учётная запись пользователя.
//
// PasswordHash хранит bcrypt-хэш (соль встроена в сам хэш) и никогда
// не попадает в ответы API.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName возвращает отображаемое имя пользователя.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
