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

type shelfRequest struct {
	Name       string    `json:"name"`
	CategoryID uuid.UUID `json:"categoryId"`
	Location   string    `json:"location"`
}

type shelfPayload struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CategoryID string    `json:"categoryId"`
	Location   string    `json:"location"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (in shelfRequest) toInput() service.ShelfInput {
	return service.ShelfInput{
		Name:       in.Name,
		CategoryID: in.CategoryID,
		Location:   in.Location,
	}
}

func toShelfPayload(s *models.Shelf) shelfPayload {
	return shelfPayload{
		ID:         s.ID.String(),
		Name:       s.Name,
		CategoryID: s.CategoryID.String(),
		Location:   s.Location,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// CreateShelf — POST /shelves.
func (h *Handlers) CreateShelf(w http.ResponseWriter, r *http.Request) {
	var in shelfRequest
	if err := decodeStrict(r, &in); err != nil {
		writeBadRequestBody(w)
		return
	}

	shelf, err := h.svc.CreateShelf(r.Context(), in.toInput())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toShelfPayload(shelf))
}

// ListShelves — GET /shelves.
func (h *Handlers) ListShelves(w http.ResponseWriter, r *http.Request) {
	shelves, err := h.svc.Shelves(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]shelfPayload, 0, len(shelves))
	for i := range shelves {
		out = append(out, toShelfPayload(&shelves[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

// GetShelf — GET /shelves/{id}.
func (h *Handlers) GetShelf(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Shelf")
	if !ok {
		return
	}

	shelf, err := h.svc.ShelfByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.WriteNotFound(w, "Shelf")
			return
		}

		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toShelfPayload(shelf))
}

// UpdateShelf — PUT /shelves/{id}.
func (h *Handlers) UpdateShelf(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Shelf")
	if !ok {
		return
	}

	var in shelfRequest
	if err := decodeStrict(r, &in); err != nil {
		writeBadRequestBody(w)
		return
	}

	shelf, err := h.svc.UpdateShelf(r.Context(), id, in.toInput())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.WriteNotFound(w, "Shelf")
			return
		}

		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toShelfPayload(shelf))
}

// DeleteShelf — DELETE /shelves/{id}.
func (h *Handlers) DeleteShelf(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Shelf")
	if !ok {
		return
	}

	if err := h.svc.DeleteShelf(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.WriteNotFound(w, "Shelf")
			return
		}

		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Shelf deleted successfully"})
}
