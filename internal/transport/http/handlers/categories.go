package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/pribylovaa/library-management-api/internal/models"
	"github.com/pribylovaa/library-management-api/internal/service"
	apierrors "github.com/pribylovaa/library-management-api/internal/transport/http/errors"
)

type categoryRequest struct {
	Name string `json:"name"`
}

type categoryPayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCategoryPayload(c *models.Category) categoryPayload {
	return categoryPayload{
		ID:        c.ID.String(),
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CreateCategory — POST /categories.
func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in categoryRequest
	if err := decodeStrict(r, &in); err != nil {
		writeBadRequestBody(w)
		return
	}

	category, err := h.svc.CreateCategory(r.Context(), service.CategoryInput{Name: in.Name})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryPayload(category))
}

// ListCategories — GET /categories.
func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]categoryPayload, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryPayload(&categories[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

// GetCategory — GET /categories/{id}.
func (h *Handlers) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Category")
	if !ok {
		return
	}

	category, err := h.svc.CategoryByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.WriteNotFound(w, "Category")
			return
		}

		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryPayload(category))
}

// UpdateCategory — PUT /categories/{id}.
func (h *Handlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Category")
	if !ok {
		return
	}

	var in categoryRequest
	if err := decodeStrict(r, &in); err != nil {
		writeBadRequestBody(w)
		return
	}

	category, err := h.svc.UpdateCategory(r.Context(), id, service.CategoryInput{Name: in.Name})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.WriteNotFound(w, "Category")
			return
		}

		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryPayload(category))
}

// DeleteCategory — DELETE /categories/{id}.
func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Category")
	if !ok {
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.WriteNotFound(w, "Category")
			return
		}

		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}
