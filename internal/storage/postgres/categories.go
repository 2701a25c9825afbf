package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/library-management-api/internal/models"
	"github.com/pribylovaa/library-management-api/internal/storage"
)

// SaveCategory создаёт новую категорию.
func (s *Storage) SaveCategory(ctx context.Context, category *models.Category) error {
	const op = "storage.postgres.SaveCategory"

	query := `
		INSERT INTO categories(id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := s.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Categories возвращает все категории, новые первыми.
func (s *Storage) Categories(ctx context.Context) ([]models.Category, error) {
	const op = "storage.postgres.Categories"

	query := `
		SELECT id, name, created_at, updated_at
		FROM categories
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}

// CategoryByID находит категорию по ID.
func (s *Storage) CategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	const op = "storage.postgres.CategoryByID"

	query := `
		SELECT id, name, created_at, updated_at
		FROM categories
		WHERE id = $1
	`

	var c models.Category
	err := s.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &c, nil
}

// UpdateCategory обновляет категорию.
func (s *Storage) UpdateCategory(ctx context.Context, category *models.Category) error {
	const op = "storage.postgres.UpdateCategory"

	query := `
		UPDATE categories
		SET name = $2, updated_at = $3
		WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, query, category.ID, category.Name, category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteCategory удаляет категорию по ID.
func (s *Storage) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteCategory"

	tag, err := s.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
