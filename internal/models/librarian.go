package models

import (
	"time"

	"github.com/google/uuid"
)

// Librarian — сотрудник библиотеки.
type Librarian struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
