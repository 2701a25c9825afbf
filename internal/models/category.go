package models

import (
	"time"

	"github.com/google/uuid"
)

// Category — тематическая категория каталога.
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
