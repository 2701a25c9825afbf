package models

import (
	"time"

	"github.com/google/uuid"
)

// Shelf — стеллаж хранения; привязан к категории.
type Shelf struct {
	ID         uuid.UUID
	Name       string
	CategoryID uuid.UUID
	Location   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
