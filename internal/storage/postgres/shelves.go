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

// SaveShelf создаёт новый стеллаж.
func (s *Storage) SaveShelf(ctx context.Context, shelf *models.Shelf) error {
	const op = "storage.postgres.SaveShelf"

	query := `
		INSERT INTO shelves(id, name, category_id, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.Exec(ctx, query,
		shelf.ID,
		shelf.Name,
		shelf.CategoryID,
		shelf.Location,
		shelf.CreatedAt,
		shelf.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Shelves возвращает все стеллажи, новые первыми.
func (s *Storage) Shelves(ctx context.Context) ([]models.Shelf, error) {
	const op = "storage.postgres.Shelves"

	query := `
		SELECT id, name, category_id, location, created_at, updated_at
		FROM shelves
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var shelves []models.Shelf
	for rows.Next() {
		var sh models.Shelf
		if err := rows.Scan(&sh.ID, &sh.Name, &sh.CategoryID, &sh.Location, &sh.CreatedAt, &sh.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		shelves = append(shelves, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return shelves, nil
}

// ShelfByID находит стеллаж по ID.
func (s *Storage) ShelfByID(ctx context.Context, id uuid.UUID) (*models.Shelf, error) {
	const op = "storage.postgres.ShelfByID"

	query := `
		SELECT id, name, category_id, location, created_at, updated_at
		FROM shelves
		WHERE id = $1
	`

	var sh models.Shelf
	err := s.db.QueryRow(ctx, query, id).Scan(&sh.ID, &sh.Name, &sh.CategoryID, &sh.Location, &sh.CreatedAt, &sh.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &sh, nil
}

// UpdateShelf обновляет стеллаж.
func (s *Storage) UpdateShelf(ctx context.Context, shelf *models.Shelf) error {
	const op = "storage.postgres.UpdateShelf"

	query := `
		UPDATE shelves
		SET name = $2, category_id = $3, location = $4, updated_at = $5
		WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, query,
		shelf.ID,
		shelf.Name,
		shelf.CategoryID,
		shelf.Location,
		shelf.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteShelf удаляет стеллаж по ID.
func (s *Storage) DeleteShelf(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteShelf"

	tag, err := s.db.Exec(ctx, `DELETE FROM shelves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
