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

// FineInput — данные создания/обновления штрафа.
type FineInput struct {
	StudentID     int64
	TransactionID uuid.UUID
	Amount        int64
	Status        models.FineStatus
}

func validateFineInput(in *FineInput) error {
	var messages []string

	if in.StudentID <= 0 {
		messages = append(messages, "Student ID must be a positive number")
	}

	if in.TransactionID == uuid.Nil {
		messages = append(messages, "Transaction ID is required")
	}

	if in.Amount <= 0 {
		messages = append(messages, "Fine Amount must be a positive number")
	}

	if !in.Status.Valid() {
		messages = append(messages, "Fine Status must be one of Paid, Unpaid, Fine Incurred, Fine Paid, Not Returned")
	}

	if len(messages) > 0 {
		return newValidationError(messages...)
	}

	return nil
}

// CreateFine создаёт новый штраф.
func (s *Service) CreateFine(ctx context.Context, in FineInput) (*models.Fine, error) {
	const op = "service.fines.CreateFine"

	if err := validateFineInput(&in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	fine := &models.Fine{
		ID:            uuid.New(),
		StudentID:     in.StudentID,
		TransactionID: in.TransactionID,
		Amount:        in.Amount,
		Status:        in.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.storage.SaveFine(ctx, fine); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return fine, nil
}

// Fines возвращает все штрафы.
func (s *Service) Fines(ctx context.Context) ([]models.Fine, error) {
	const op = "service.fines.Fines"

	fines, err := s.storage.Fines(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return fines, nil
}

// FineByID возвращает штраф по ID.
func (s *Service) FineByID(ctx context.Context, id uuid.UUID) (*models.Fine, error) {
	const op = "service.fines.FineByID"

	fine, err := s.storage.FineByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return fine, nil
}

// UpdateFine обновляет штраф.
func (s *Service) UpdateFine(ctx context.Context, id uuid.UUID, in FineInput) (*models.Fine, error) {
	const op = "service.fines.UpdateFine"

	if err := validateFineInput(&in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	fine, err := s.storage.FineByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	fine.StudentID = in.StudentID
	fine.TransactionID = in.TransactionID
	fine.Amount = in.Amount
	fine.Status = in.Status
	fine.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateFine(ctx, fine); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return fine, nil
}

// DeleteFine удаляет штраф по ID.
func (s *Service) DeleteFine(ctx context.Context, id uuid.UUID) error {
	const op = "service.fines.DeleteFine"

	if err := s.storage.DeleteFine(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
