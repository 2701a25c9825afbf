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

// SaveBook создаёт новую книгу.
func (s *Storage) SaveBook(ctx context.Context, book *models.Book) error {
	const op = "storage.postgres.SaveBook"

	query := `
		INSERT INTO books(id, title, author, publisher, published_at,
			available_copies, total_copies, category_id, shelf_id, student_id,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := s.db.Exec(ctx, query,
		book.ID,
		book.Title,
		book.Author,
		book.Publisher,
		book.PublishedAt,
		book.AvailableCopies,
		book.TotalCopies,
		book.CategoryID,
		book.ShelfID,
		book.StudentID,
		book.CreatedAt,
		book.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Books возвращает все книги, новые первыми.
func (s *Storage) Books(ctx context.Context) ([]models.Book, error) {
	const op = "storage.postgres.Books"

	query := `
		SELECT id, title, author, publisher, published_at,
			available_copies, total_copies, category_id, shelf_id, student_id,
			created_at, updated_at
		FROM books
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Publisher, &b.PublishedAt,
			&b.AvailableCopies, &b.TotalCopies, &b.CategoryID, &b.ShelfID,
			&b.StudentID, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return books, nil
}

// BookByID находит книгу по ID.
func (s *Storage) BookByID(ctx context.Context, id uuid.UUID) (*models.Book, error) {
	const op = "storage.postgres.BookByID"

	query := `
		SELECT id, title, author, publisher, published_at,
			available_copies, total_copies, category_id, shelf_id, student_id,
			created_at, updated_at
		FROM books
		WHERE id = $1
	`

	var b models.Book
	err := s.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.Publisher, &b.PublishedAt,
		&b.AvailableCopies, &b.TotalCopies, &b.CategoryID, &b.ShelfID,
		&b.StudentID, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &b, nil
}

// UpdateBook обновляет книгу целиком.
func (s *Storage) UpdateBook(ctx context.Context, book *models.Book) error {
	const op = "storage.postgres.UpdateBook"

	query := `
		UPDATE books
		SET title = $2, author = $3, publisher = $4, published_at = $5,
			available_copies = $6, total_copies = $7, category_id = $8,
			shelf_id = $9, student_id = $10, updated_at = $11
		WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, query,
		book.ID,
		book.Title,
		book.Author,
		book.Publisher,
		book.PublishedAt,
		book.AvailableCopies,
		book.TotalCopies,
		book.CategoryID,
		book.ShelfID,
		book.StudentID,
		book.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteBook удаляет книгу по ID.
func (s *Storage) DeleteBook(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteBook"

	tag, err := s.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
