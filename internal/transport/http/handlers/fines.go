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

type fineRequest struct {
	StudentID     int64     `json:"studentId"`
	TransactionID uuid.UUID `json:"transactionId"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
}

type finePayload struct {
	ID            string    `json:"id"`
	StudentID     int64     `json:"studentId"`
	TransactionID string    `json:"transactionId"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (in fineRequest) toInput() service.FineInput {
	return service.FineInput{
		StudentID:     in.StudentID,
		TransactionID: in.TransactionID,
		Amount:        in.Amount,
		Status:        models.FineStatus(in.Status),
	}
}

func toFinePayload(f *models.Fine) finePayload {
	return finePayload{
		ID:            f.ID.String(),
		StudentID:     f.StudentID,
		TransactionID: f.TransactionID.String(),
		Amount:        f.Amount,
		Status:        string(f.Status),
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

// CreateFine — POST /fines.
func (h *Handlers) CreateFine(w http.ResponseWriter, r *http.Request) {
	var in fineRequest
	if err := decodeStrict(r, &in); err != nil {
		writeBadRequestBody(w)
		return
	}

	fine, err := h.svc.CreateFine(r.Context(), in.toInput())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFinePayload(fine))
}

// ListFines — GET /fines.
func (h *Handlers) ListFines(w http.ResponseWriter, r *http.Request) {
	fines, err := h.svc.Fines(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]finePayload, 0, len(fines))
	for i := range fines {
		out = append(out, toFinePayload(&fines[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

// GetFine — GET /fines/{id}.
func (h *Handlers) GetFine(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Fine")
	if !ok {
		return
	}

	fine, err := h.svc.FineByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.WriteNotFound(w, "Fine")
			return
		}

		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFinePayload(fine))
}

// UpdateFine — PUT /fines/{id}.
func (h *Handlers) UpdateFine(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Fine")
	if !ok {
		return
	}

	var in fineRequest
	if err := decodeStrict(r, &in); err != nil {
		writeBadRequestBody(w)
		return
	}

	fine, err := h.svc.UpdateFine(r.Context(), id, in.toInput())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.WriteNotFound(w, "Fine")
			return
		}

		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFinePayload(fine))
}

// DeleteFine — DELETE /fines/{id}.
func (h *Handlers) DeleteFine(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Fine")
	if !ok {
		return
	}

	if err := h.svc.DeleteFine(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.WriteNotFound(w, "Fine")
			return
		}

		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Fine deleted successfully"})
}
