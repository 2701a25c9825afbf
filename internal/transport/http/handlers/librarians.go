package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/pribylovaa/library-management-api/internal/models"
	"github.com/pribylovaa/library-management-api/internal/service"
	apierrors "github.com/pribylovaa/library-management-api/internal/transport/http/errors"
)

type librarianRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type librarianPayload struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (in librarianRequest) toInput() service.LibrarianInput {
	return service.LibrarianInput{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.PhoneNumber,
	}
}

func toLibrarianPayload(l *models.Librarian) librarianPayload {
	return librarianPayload{
		ID:          l.ID.String(),
		Name:        l.Name,
		Email:       l.Email,
		PhoneNumber: l.Phone,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

// CreateLibrarian — POST /librarians.
func (h *Handlers) CreateLibrarian(w http.ResponseWriter, r *http.Request) {
	var in librarianRequest
	if err := decodeStrict(r, &in); err != nil {
		writeBadRequestBody(w)
		return
	}

	librarian, err := h.svc.CreateLibrarian(r.Context(), in.toInput())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLibrarianPayload(librarian))
}

// ListLibrarians — GET /librarians.
func (h *Handlers) ListLibrarians(w http.ResponseWriter, r *http.Request) {
	librarians, err := h.svc.Librarians(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]librarianPayload, 0, len(librarians))
	for i := range librarians {
		out = append(out, toLibrarianPayload(&librarians[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

// GetLibrarian — GET /librarians/{id}.
func (h *Handlers) GetLibrarian(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Librarian")
	if !ok {
		return
	}

	librarian, err := h.svc.LibrarianByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.WriteNotFound(w, "Librarian")
			return
		}

		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLibrarianPayload(librarian))
}

// UpdateLibrarian — PUT /librarians/{id}.
func (h *Handlers) UpdateLibrarian(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Librarian")
	if !ok {
		return
	}

	var in librarianRequest
	if err := decodeStrict(r, &in); err != nil {
		writeBadRequestBody(w)
		return
	}

	librarian, err := h.svc.UpdateLibrarian(r.Context(), id, in.toInput())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.WriteNotFound(w, "Librarian")
			return
		}

		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLibrarianPayload(librarian))
}

// DeleteLibrarian — DELETE /librarians/{id}.
func (h *Handlers) DeleteLibrarian(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Librarian")
	if !ok {
		return
	}

	if err := h.svc.DeleteLibrarian(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.WriteNotFound(w, "Librarian")
			return
		}

		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Librarian deleted successfully"})
}
