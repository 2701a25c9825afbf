package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/library-management-api/internal/models"
	"github.com/pribylovaa/library-management-api/internal/service"
	apierrors "github.com/pribylovaa/library-management-api/internal/transport/http/errors"
)

type bookRequest struct {
	Title             string    `json:"title"`
	Author            string    `json:"author"`
	Publisher         string    `json:"publisher"`
	YearOfPublication time.Time `json:"yearOfPublication"`
	AvailableCopies   int64     `json:"availableCopies"`
	TotalCopies       int64     `json:"totalCopies"`
	CategoryID        uuid.UUID `json:"categoryId"`
	ShelfID           uuid.UUID `json:"shelfId"`
	StudentID         int64     `json:"studentId"`
}

type bookPayload struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Author            string    `json:"author"`
	Publisher         string    `json:"publisher"`
	YearOfPublication time.Time `json:"yearOfPublication"`
	AvailableCopies   int64     `json:"availableCopies"`
	TotalCopies       int64     `json:"totalCopies"`
	CategoryID        string    `json:"categoryId"`
	ShelfID           string    `json:"shelfId"`
	StudentID         int64     `json:"studentId"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (in bookRequest) toInput() service.BookInput {
	return service.BookInput{
		Title:           in.Title,
		Author:          in.Author,
		Publisher:       in.Publisher,
		PublishedAt:     in.YearOfPublication,
		AvailableCopies: in.AvailableCopies,
		TotalCopies:     in.TotalCopies,
		CategoryID:      in.CategoryID,
		ShelfID:         in.ShelfID,
		StudentID:       in.StudentID,
	}
}

func toBookPayload(b *models.Book) bookPayload {
	return bookPayload{
		ID:                b.ID.String(),
		Title:             b.Title,
		Author:            b.Author,
		Publisher:         b.Publisher,
		YearOfPublication: b.PublishedAt,
		AvailableCopies:   b.AvailableCopies,
		TotalCopies:       b.TotalCopies,
		CategoryID:        b.CategoryID.String(),
		ShelfID:           b.ShelfID.String(),
		StudentID:         b.StudentID,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// CreateBook — POST /books.
func (h *Handlers) CreateBook(w http.ResponseWriter, r *http.Request) {
	var in bookRequest
	if err := decodeStrict(r, &in); err != nil {
		writeBadRequestBody(w)
		return
	}

	book, err := h.svc.CreateBook(r.Context(), in.toInput())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBookPayload(book))
}

// ListBooks — GET /books.
func (h *Handlers) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.Books(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]bookPayload, 0, len(books))
	for i := range books {
		out = append(out, toBookPayload(&books[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

// GetBook — GET /books/{id}.
func (h *Handlers) GetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Book")
	if !ok {
		return
	}

	book, err := h.svc.BookByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.WriteNotFound(w, "Book")
			return
		}

		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookPayload(book))
}

// UpdateBook — PUT /books/{id}.
func (h *Handlers) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Book")
	if !ok {
		return
	}

	var in bookRequest
	if err := decodeStrict(r, &in); err != nil {
		writeBadRequestBody(w)
		return
	}

	book, err := h.svc.UpdateBook(r.Context(), id, in.toInput())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.WriteNotFound(w, "Book")
			return
		}

		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookPayload(book))
}

// DeleteBook — DELETE /books/{id}.
func (h *Handlers) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Book")
	if !ok {
		return
	}

	if err := h.svc.DeleteBook(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.WriteNotFound(w, "Book")
			return
		}

		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Book deleted successfully"})
}
