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

// CategoryInput — данные создания/обновления категории.
type CategoryInput struct {
	Name string
}

func validateCategoryInput(in *CategoryInput) error {
	var messages []string

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		messages = append(messages, "Category Name is required")
	} else if len([]rune(in.Name)) > 100 {
		messages = append(messages, "Category Name cannot exceed 100 characters")
	}

	if len(messages) > 0 {
		return newValidationError(messages...)
	}

	return nil
}

// CreateCategory создаёт новую категорию.
func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (*models.Category, error) {
	const op = "service.categories.CreateCategory"

	if err := validateCategoryInput(&in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	category := &models.Category{
		ID:        uuid.New(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return category, nil
}

// Categories возвращает все категории.
func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	const op = "service.categories.Categories"

	categories, err := s.storage.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}

// CategoryByID возвращает категорию по ID.
func (s *Service) CategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	const op = "service.categories.CategoryByID"

	category, err := s.storage.CategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return category, nil
}

// UpdateCategory обновляет категорию.
func (s *Service) UpdateCategory(ctx context.Context, id uuid.UUID, in CategoryInput) (*models.Category, error) {
	const op = "service.categories.UpdateCategory"

	if err := validateCategoryInput(&in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	category, err := s.storage.CategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	category.Name = in.Name
	category.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return category, nil
}

// DeleteCategory удаляет категорию по ID.
func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	const op = "service.categories.DeleteCategory"

	if err := s.storage.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
