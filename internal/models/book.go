package models

import (
	"time"

	"github.com/google/uuid"
)

// Book — книга каталога.
type Book struct {
	ID              uuid.UUID
	Title           string
	Author          string
	Publisher       string
	PublishedAt     time.Time
	AvailableCopies int64
	TotalCopies     int64
	CategoryID      uuid.UUID
	ShelfID         uuid.UUID
	// StudentID — номер студента, за которым закреплён экземпляр;
	// 0 — книга ни за кем не закреплена.
	StudentID int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
