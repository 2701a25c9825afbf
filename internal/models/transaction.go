package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction — выдача книги студенту.
//
// ReturnedAt == nil означает, что книга ещё не возвращена.
// FineAmount — начисленный штраф в минимальных денежных единицах.
type Transaction struct {
	ID          uuid.UUID
	StudentID   int64
	BookID      uuid.UUID
	LibrarianID uuid.UUID
	BorrowedAt  time.Time
	ReturnedAt  *time.Time
	FineAmount  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
