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

// SaveFine создаёт новый штраф.
func (s *Storage) SaveFine(ctx context.Context, fine *models.Fine) error {
	const op = "storage.postgres.SaveFine"

	query := `
		INSERT INTO fines(id, student_id, transaction_id, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.Exec(ctx, query,
		fine.ID,
		fine.StudentID,
		fine.TransactionID,
		fine.Amount,
		string(fine.Status),
		fine.CreatedAt,
		fine.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Fines возвращает все штрафы, новые первыми.
func (s *Storage) Fines(ctx context.Context) ([]models.Fine, error) {
	const op = "storage.postgres.Fines"

	query := `
		SELECT id, student_id, transaction_id, amount, status, created_at, updated_at
		FROM fines
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var fines []models.Fine
	for rows.Next() {
		var f models.Fine
		var status string
		if err := rows.Scan(&f.ID, &f.StudentID, &f.TransactionID, &f.Amount, &status, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		f.Status = models.FineStatus(status)
		fines = append(fines, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return fines, nil
}

// FineByID находит штраф по ID.
func (s *Storage) FineByID(ctx context.Context, id uuid.UUID) (*models.Fine, error) {
	const op = "storage.postgres.FineByID"

	query := `
		SELECT id, student_id, transaction_id, amount, status, created_at, updated_at
		FROM fines
		WHERE id = $1
	`

	var f models.Fine
	var status string
	err := s.db.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.StudentID, &f.TransactionID, &f.Amount, &status, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}
	f.Status = models.FineStatus(status)

	return &f, nil
}

// UpdateFine обновляет штраф.
func (s *Storage) UpdateFine(ctx context.Context, fine *models.Fine) error {
	const op = "storage.postgres.UpdateFine"

	query := `
		UPDATE fines
		SET student_id = $2, transaction_id = $3, amount = $4, status = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, query,
		fine.ID,
		fine.StudentID,
		fine.TransactionID,
		fine.Amount,
		string(fine.Status),
		fine.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteFine удаляет штраф по ID.
func (s *Storage) DeleteFine(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteFine"

	tag, err := s.db.Exec(ctx, `DELETE FROM fines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
