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

// SaveLibrarian создаёт нового сотрудника.
func (s *Storage) SaveLibrarian(ctx context.Context, librarian *models.Librarian) error {
	const op = "storage.postgres.SaveLibrarian"

	query := `
		INSERT INTO librarians(id, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.Exec(ctx, query,
		librarian.ID,
		librarian.Name,
		librarian.Email,
		librarian.Phone,
		librarian.CreatedAt,
		librarian.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Librarians возвращает всех сотрудников, новые первыми.
func (s *Storage) Librarians(ctx context.Context) ([]models.Librarian, error) {
	const op = "storage.postgres.Librarians"

	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM librarians
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var librarians []models.Librarian
	for rows.Next() {
		var l models.Librarian
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		librarians = append(librarians, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return librarians, nil
}

// LibrarianByID находит сотрудника по ID.
func (s *Storage) LibrarianByID(ctx context.Context, id uuid.UUID) (*models.Librarian, error) {
	const op = "storage.postgres.LibrarianByID"

	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM librarians
		WHERE id = $1
	`

	var l models.Librarian
	err := s.db.QueryRow(ctx, query, id).Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &l, nil
}

// UpdateLibrarian обновляет сотрудника.
func (s *Storage) UpdateLibrarian(ctx context.Context, librarian *models.Librarian) error {
	const op = "storage.postgres.UpdateLibrarian"

	query := `
		UPDATE librarians
		SET name = $2, email = $3, phone = $4, updated_at = $5
		WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, query,
		librarian.ID,
		librarian.Name,
		librarian.Email,
		librarian.Phone,
		librarian.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteLibrarian удаляет сотрудника по ID.
func (s *Storage) DeleteLibrarian(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteLibrarian"

	tag, err := s.db.Exec(ctx, `DELETE FROM librarians WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
