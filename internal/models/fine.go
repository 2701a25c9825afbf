package models

import (
	"time"

	"github.com/google/uuid"
)

// FineStatus — статус штрафа. Значения хранятся в БД как есть.
type FineStatus string

const (
	FineStatusPaid        FineStatus = "Paid"
	FineStatusUnpaid      FineStatus = "Unpaid"
	FineStatusIncurred    FineStatus = "Fine Incurred"
	FineStatusFinePaid    FineStatus = "Fine Paid"
	FineStatusNotReturned FineStatus = "Not Returned"
)

// Valid сообщает, входит ли значение в набор допустимых статусов.
func (s FineStatus) Valid() bool {
	switch s {
	case FineStatusPaid, FineStatusUnpaid, FineStatusIncurred,
		FineStatusFinePaid, FineStatusNotReturned:
		return true
	}

	return false
}

// Fine — штраф, начисленный по транзакции выдачи.
// Amount — сумма в минимальных денежных единицах.
type Fine struct {
	ID            uuid.UUID
	StudentID     int64
	TransactionID uuid.UUID
	Amount        int64
	Status        FineStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
