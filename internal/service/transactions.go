package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/library-management-api/internal/models"
	"github.com/pribylovaa/library-management-api/internal/storage"
)

// TransactionInput — данные создания/обновления выдачи книги.
type TransactionInput struct {
	StudentID   int64
	BookID      uuid.UUID
	LibrarianID uuid.UUID
	BorrowedAt  time.Time
	ReturnedAt  *time.Time
	FineAmount  int64
}

func validateTransactionInput(in *TransactionInput) error {
	var messages []string

	if in.StudentID <= 0 {
		messages = append(messages, "Student ID must be a positive number")
	}

	if in.BookID == uuid.Nil {
		messages = append(messages, "Book ID is required")
	}

	if in.LibrarianID == uuid.Nil {
		messages = append(messages, "Librarian ID is required")
	}

	if in.BorrowedAt.IsZero() {
		messages = append(messages, "Borrowed Date is required")
	}

	if in.ReturnedAt != nil && in.ReturnedAt.Before(in.BorrowedAt) {
		messages = append(messages, "Returned Date cannot be before Borrowed Date")
	}

	if in.FineAmount < 0 {
		messages = append(messages, "Fine Amount cannot be negative")
	}

	if len(messages) > 0 {
		return newValidationError(messages...)
	}

	return nil
}

// CreateTransaction регистрирует выдачу книги.
func (s *Service) CreateTransaction(ctx context.Context, in TransactionInput) (*models.Transaction, error) {
	const op = "service.transactions.CreateTransaction"

	if err := validateTransactionInput(&in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	transaction := &models.Transaction{
		ID:          uuid.New(),
		StudentID:   in.StudentID,
		BookID:      in.BookID,
		LibrarianID: in.LibrarianID,
		BorrowedAt:  in.BorrowedAt.UTC(),
		FineAmount:  in.FineAmount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.ReturnedAt != nil {
		returned := in.ReturnedAt.UTC()
		transaction.ReturnedAt = &returned
	}

	if err := s.storage.SaveTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return transaction, nil
}

// Transactions возвращает все выдачи.
func (s *Service) Transactions(ctx context.Context) ([]models.Transaction, error) {
	const op = "service.transactions.Transactions"

	transactions, err := s.storage.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return transactions, nil
}

// TransactionByID возвращает выдачу по ID.
func (s *Service) TransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	const op = "service.transactions.TransactionByID"

	transaction, err := s.storage.TransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return transaction, nil
}

// UpdateTransaction обновляет выдачу.
func (s *Service) UpdateTransaction(ctx context.Context, id uuid.UUID, in TransactionInput) (*models.Transaction, error) {
	const op = "service.transactions.UpdateTransaction"

	if err := validateTransactionInput(&in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	transaction, err := s.storage.TransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	transaction.StudentID = in.StudentID
	transaction.BookID = in.BookID
	transaction.LibrarianID = in.LibrarianID
	transaction.BorrowedAt = in.BorrowedAt.UTC()
	transaction.ReturnedAt = nil
	if in.ReturnedAt != nil {
		returned := in.ReturnedAt.UTC()
		transaction.ReturnedAt = &returned
	}
	transaction.FineAmount = in.FineAmount
	transaction.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateTransaction(ctx, transaction); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return transaction, nil
}

// DeleteTransaction удаляет выдачу по ID.
func (s *Service) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	const op = "service.transactions.DeleteTransaction"

	if err := s.storage.DeleteTransaction(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
