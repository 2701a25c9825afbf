package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/library-management-api/internal/models"
	"github.com/pribylovaa/library-management-api/internal/storage"
)

// ShelfInput — данные создания/обновления стеллажа.
type ShelfInput struct {
	Name       string
	CategoryID uuid.UUID
	Location   string
}

func validateShelfInput(in *ShelfInput) error {
	var messages []string

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		messages = append(messages, "Shelf Name is required")
	} else if len([]rune(in.Name)) > 100 {
		messages = append(messages, "Shelf Name cannot exceed 100 characters")
	}

	if in.CategoryID == uuid.Nil {
		messages = append(messages, "Category ID is required")
	}

	in.Location = strings.TrimSpace(in.Location)
	if in.Location == "" {
		messages = append(messages, "Location is required")
	} else if len([]rune(in.Location)) > 200 {
		messages = append(messages, "Location cannot exceed 200 characters")
	}

	if len(messages) > 0 {
		return newValidationError(messages...)
	}

	return nil
}

// CreateShelf создаёт новый стеллаж.
func (s *Service) CreateShelf(ctx context.Context, in ShelfInput) (*models.Shelf, error) {
	const op = "service.shelves.CreateShelf"

	if err := validateShelfInput(&in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	shelf := &models.Shelf{
		ID:         uuid.New(),
		Name:       in.Name,
		CategoryID: in.CategoryID,
		Location:   in.Location,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.storage.SaveShelf(ctx, shelf); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return shelf, nil
}

// Shelves возвращает все стеллажи.
func (s *Service) Shelves(ctx context.Context) ([]models.Shelf, error) {
	const op = "service.shelves.Shelves"

	shelves, err := s.storage.Shelves(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return shelves, nil
}

// ShelfByID возвращает стеллаж по ID.
func (s *Service) ShelfByID(ctx context.Context, id uuid.UUID) (*models.Shelf, error) {
	const op = "service.shelves.ShelfByID"

	shelf, err := s.storage.ShelfByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return shelf, nil
}

// UpdateShelf обновляет стеллаж.
func (s *Service) UpdateShelf(ctx context.Context, id uuid.UUID, in ShelfInput) (*models.Shelf, error) {
	const op = "service.shelves.UpdateShelf"

	if err := validateShelfInput(&in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	shelf, err := s.storage.ShelfByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	shelf.Name = in.Name
	shelf.CategoryID = in.CategoryID
	shelf.Location = in.Location
	shelf.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateShelf(ctx, shelf); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return shelf, nil
}

// DeleteShelf удаляет стеллаж по ID.
func (s *Service) DeleteShelf(ctx context.Context, id uuid.UUID) error {
	const op = "service.shelves.DeleteShelf"

	if err := s.storage.DeleteShelf(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
