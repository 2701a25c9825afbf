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

// SaveTransaction создаёт новую выдачу.
func (s *Storage) SaveTransaction(ctx context.Context, tr *models.Transaction) error {
	const op = "storage.postgres.SaveTransaction"

	query := `
		INSERT INTO transactions(id, student_id, book_id, librarian_id,
			borrowed_at, returned_at, fine_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.Exec(ctx, query,
		tr.ID,
		tr.StudentID,
		tr.BookID,
		tr.LibrarianID,
		tr.BorrowedAt,
		tr.ReturnedAt,
		tr.FineAmount,
		tr.CreatedAt,
		tr.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Transactions возвращает все выдачи, новые первыми.
func (s *Storage) Transactions(ctx context.Context) ([]models.Transaction, error) {
	const op = "storage.postgres.Transactions"

	query := `
		SELECT id, student_id, book_id, librarian_id,
			borrowed_at, returned_at, fine_amount, created_at, updated_at
		FROM transactions
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var tr models.Transaction
		if err := rows.Scan(
			&tr.ID, &tr.StudentID, &tr.BookID, &tr.LibrarianID,
			&tr.BorrowedAt, &tr.ReturnedAt, &tr.FineAmount, &tr.CreatedAt, &tr.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		transactions = append(transactions, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return transactions, nil
}

// TransactionByID находит выдачу по ID.
func (s *Storage) TransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	const op = "storage.postgres.TransactionByID"

	query := `
		SELECT id, student_id, book_id, librarian_id,
			borrowed_at, returned_at, fine_amount, created_at, updated_at
		FROM transactions
		WHERE id = $1
	`

	var tr models.Transaction
	err := s.db.QueryRow(ctx, query, id).Scan(
		&tr.ID, &tr.StudentID, &tr.BookID, &tr.LibrarianID,
		&tr.BorrowedAt, &tr.ReturnedAt, &tr.FineAmount, &tr.CreatedAt, &tr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &tr, nil
}

// UpdateTransaction обновляет выдачу.
func (s *Storage) UpdateTransaction(ctx context.Context, tr *models.Transaction) error {
	const op = "storage.postgres.UpdateTransaction"

	query := `
		UPDATE transactions
		SET student_id = $2, book_id = $3, librarian_id = $4,
			borrowed_at = $5, returned_at = $6, fine_amount = $7, updated_at = $8
		WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, query,
		tr.ID,
		tr.StudentID,
		tr.BookID,
		tr.LibrarianID,
		tr.BorrowedAt,
		tr.ReturnedAt,
		tr.FineAmount,
		tr.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteTransaction удаляет выдачу по ID.
func (s *Storage) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteTransaction"

	tag, err := s.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
