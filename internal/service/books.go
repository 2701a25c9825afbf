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

// BookInput — данные создания/обновления книги.
type BookInput struct {
	Title           string
	Author          string
	Publisher       string
	PublishedAt     time.Time
	AvailableCopies int64
	TotalCopies     int64
	CategoryID      uuid.UUID
	ShelfID         uuid.UUID
	StudentID       int64
}

func validateBookInput(in *BookInput) error {
	var messages []string

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		messages = append(messages, "Title is required")
	} else if len([]rune(in.Title)) > 200 {
		messages = append(messages, "Title cannot exceed 200 characters")
	}

	in.Author = strings.TrimSpace(in.Author)
	if in.Author == "" {
		messages = append(messages, "Author is required")
	} else if len([]rune(in.Author)) > 100 {
		messages = append(messages, "Author cannot exceed 100 characters")
	}

	in.Publisher = strings.TrimSpace(in.Publisher)
	if len([]rune(in.Publisher)) > 100 {
		messages = append(messages, "Publisher cannot exceed 100 characters")
	}

	if in.AvailableCopies < 0 {
		messages = append(messages, "Available Copies cannot be negative")
	}
	if in.TotalCopies < 0 {
		messages = append(messages, "Total Copies cannot be negative")
	}
	if in.AvailableCopies >= 0 && in.TotalCopies >= 0 && in.AvailableCopies > in.TotalCopies {
		messages = append(messages, "Available Copies cannot exceed Total Copies")
	}

	if in.CategoryID == uuid.Nil {
		messages = append(messages, "Category ID is required")
	}
	if in.ShelfID == uuid.Nil {
		messages = append(messages, "Shelf ID is required")
	}
	if in.StudentID < 0 {
		messages = append(messages, "Student ID must be a positive number")
	}

	if len(messages) > 0 {
		return newValidationError(messages...)
	}

	return nil
}

// CreateBook создаёт новую книгу.
func (s *Service) CreateBook(ctx context.Context, in BookInput) (*models.Book, error) {
	const op = "service.books.CreateBook"

	if err := validateBookInput(&in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	book := &models.Book{
		ID:              uuid.New(),
		Title:           in.Title,
		Author:          in.Author,
		Publisher:       in.Publisher,
		PublishedAt:     in.PublishedAt,
		AvailableCopies: in.AvailableCopies,
		TotalCopies:     in.TotalCopies,
		CategoryID:      in.CategoryID,
		ShelfID:         in.ShelfID,
		StudentID:       in.StudentID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.storage.SaveBook(ctx, book); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return book, nil
}

// Books возвращает все книги.
func (s *Service) Books(ctx context.Context) ([]models.Book, error) {
	const op = "service.books.Books"

	books, err := s.storage.Books(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return books, nil
}

// BookByID возвращает книгу по ID.
func (s *Service) BookByID(ctx context.Context, id uuid.UUID) (*models.Book, error) {
	const op = "service.books.BookByID"

	book, err := s.storage.BookByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return book, nil
}

// UpdateBook обновляет книгу целиком.
func (s *Service) UpdateBook(ctx context.Context, id uuid.UUID, in BookInput) (*models.Book, error) {
	const op = "service.books.UpdateBook"

	if err := validateBookInput(&in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	book, err := s.storage.BookByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	book.Title = in.Title
	book.Author = in.Author
	book.Publisher = in.Publisher
	book.PublishedAt = in.PublishedAt
	book.AvailableCopies = in.AvailableCopies
	book.TotalCopies = in.TotalCopies
	book.CategoryID = in.CategoryID
	book.ShelfID = in.ShelfID
	book.StudentID = in.StudentID
	book.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateBook(ctx, book); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return book, nil
}

// DeleteBook удаляет книгу по ID.
func (s *Service) DeleteBook(ctx context.Context, id uuid.UUID) error {
	const op = "service.books.DeleteBook"

	if err := s.storage.DeleteBook(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
