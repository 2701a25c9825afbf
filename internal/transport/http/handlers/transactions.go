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

type transactionRequest struct {
	StudentID   int64      `json:"studentId"`
	BookID      uuid.UUID  `json:"bookId"`
	LibrarianID uuid.UUID  `json:"librarianId"`
	BorrowDate  time.Time  `json:"borrowDate"`
	ReturnDate  *time.Time `json:"returnDate"`
	Fine        int64      `json:"fine"`
}

type transactionPayload struct {
	ID          string     `json:"id"`
	StudentID   int64      `json:"studentId"`
	BookID      string     `json:"bookId"`
	LibrarianID string     `json:"librarianId"`
	BorrowDate  time.Time  `json:"borrowDate"`
	ReturnDate  *time.Time `json:"returnDate"`
	Fine        int64      `json:"fine"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (in transactionRequest) toInput() service.TransactionInput {
	return service.TransactionInput{
		StudentID:   in.StudentID,
		BookID:      in.BookID,
		LibrarianID: in.LibrarianID,
		BorrowedAt:  in.BorrowDate,
		ReturnedAt:  in.ReturnDate,
		FineAmount:  in.Fine,
	}
}

func toTransactionPayload(tr *models.Transaction) transactionPayload {
	return transactionPayload{
		ID:          tr.ID.String(),
		StudentID:   tr.StudentID,
		BookID:      tr.BookID.String(),
		LibrarianID: tr.LibrarianID.String(),
		BorrowDate:  tr.BorrowedAt,
		ReturnDate:  tr.ReturnedAt,
		Fine:        tr.FineAmount,
		CreatedAt:   tr.CreatedAt,
		UpdatedAt:   tr.UpdatedAt,
	}
}

// CreateTransaction — POST /transactions.
func (h *Handlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var in transactionRequest
	if err := decodeStrict(r, &in); err != nil {
		writeBadRequestBody(w)
		return
	}

	transaction, err := h.svc.CreateTransaction(r.Context(), in.toInput())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTransactionPayload(transaction))
}

// ListTransactions — GET /transactions.
func (h *Handlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.svc.Transactions(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]transactionPayload, 0, len(transactions))
	for i := range transactions {
		out = append(out, toTransactionPayload(&transactions[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

// GetTransaction — GET /transactions/{id}.
func (h *Handlers) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Transaction")
	if !ok {
		return
	}

	transaction, err := h.svc.TransactionByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.WriteNotFound(w, "Transaction")
			return
		}

		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransactionPayload(transaction))
}

// UpdateTransaction — PUT /transactions/{id}.
func (h *Handlers) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Transaction")
	if !ok {
		return
	}

	var in transactionRequest
	if err := decodeStrict(r, &in); err != nil {
		writeBadRequestBody(w)
		return
	}

	transaction, err := h.svc.UpdateTransaction(r.Context(), id, in.toInput())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.WriteNotFound(w, "Transaction")
			return
		}

		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransactionPayload(transaction))
}

// DeleteTransaction — DELETE /transactions/{id}.
func (h *Handlers) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Transaction")
	if !ok {
		return
	}

	if err := h.svc.DeleteTransaction(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.WriteNotFound(w, "Transaction")
			return
		}

		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted successfully"})
}
