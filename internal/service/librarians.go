package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/pribylovaa/library-management-api/internal/models"
	"github.com/pribylovaa/library-management-api/internal/storage"
)

// LibrarianInput — данные создания/обновления сотрудника.
type LibrarianInput struct {
	Name  string
	Email string
	Phone string
}

func validateLibrarianInput(in *LibrarianInput) error {
	var messages []string

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		messages = append(messages, "Name is required")
	} else if len([]rune(in.Name)) > 100 {
		messages = append(messages, "Name cannot exceed 100 characters")
	}

	normEmail, err := validateEmail(in.Email)
	if err != nil {
		messages = append(messages, "Email must be a valid email address")
	} else {
		in.Email = normEmail
	}

	in.Phone = strings.TrimSpace(in.Phone)
	if in.Phone == "" {
		messages = append(messages, "Phone Number is required")
	} else if !isPhone(in.Phone) {
		messages = append(messages, "Phone Number must contain only digits")
	}

	if len(messages) > 0 {
		return newValidationError(messages...)
	}

	return nil
}

// isPhone допускает цифры и ведущий «+».
func isPhone(s string) bool {
	for i, r := range s {
		if i == 0 && r == '+' {
			continue
		}
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

// CreateLibrarian создаёт нового сотрудника.
func (s *Service) CreateLibrarian(ctx context.Context, in LibrarianInput) (*models.Librarian, error) {
	const op = "service.librarians.CreateLibrarian"

	if err := validateLibrarianInput(&in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	librarian := &models.Librarian{
		ID:        uuid.New(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SaveLibrarian(ctx, librarian); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return librarian, nil
}

// Librarians возвращает всех сотрудников.
func (s *Service) Librarians(ctx context.Context) ([]models.Librarian, error) {
	const op = "service.librarians.Librarians"

	librarians, err := s.storage.Librarians(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return librarians, nil
}

// LibrarianByID возвращает сотрудника по ID.
func (s *Service) LibrarianByID(ctx context.Context, id uuid.UUID) (*models.Librarian, error) {
	const op = "service.librarians.LibrarianByID"

	librarian, err := s.storage.LibrarianByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return librarian, nil
}

// UpdateLibrarian обновляет сотрудника.
func (s *Service) UpdateLibrarian(ctx context.Context, id uuid.UUID, in LibrarianInput) (*models.Librarian, error) {
	const op = "service.librarians.UpdateLibrarian"

	if err := validateLibrarianInput(&in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	librarian, err := s.storage.LibrarianByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	librarian.Name = in.Name
	librarian.Email = in.Email
	librarian.Phone = in.Phone
	librarian.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateLibrarian(ctx, librarian); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return librarian, nil
}

// DeleteLibrarian удаляет сотрудника по ID.
func (s *Service) DeleteLibrarian(ctx context.Context, id uuid.UUID) error {
	const op = "service.librarians.DeleteLibrarian"

	if err := s.storage.DeleteLibrarian(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
