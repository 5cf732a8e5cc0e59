package item

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fatura/internal/bill"
	"github.com/MrJamesThe3rd/fatura/internal/card"
	"github.com/MrJamesThe3rd/fatura/internal/item"
)

var validate = validator.New()

type Handler struct {
	svc *item.Service
}

func NewHandler(svc *item.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Post("/installments", h.createInstallments)
	r.Get("/bill/{billID}", h.listByBill)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Patch("/{id}/move", h.move)
	r.Delete("/{id}", h.delete)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, item.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, bill.ErrInvalidMonth):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, item.ErrNotFound):
		http.Error(w, "item not found", http.StatusNotFound)
	case errors.Is(err, bill.ErrNotFound):
		http.Error(w, "bill not found", http.StatusNotFound)
	case errors.Is(err, card.ErrNotFound):
		http.Error(w, "card not found", http.StatusNotFound)
	case errors.Is(err, item.ErrTargetNotOpen):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type createItemRequest struct {
	CardID       uuid.UUID     `json:"card_id" validate:"required"`
	Amount       int64         `json:"amount" validate:"required,gt=0"`
	Category     item.Category `json:"category" validate:"required"`
	Description  string        `json:"description"`
	PurchaseDate time.Time     `json:"purchase_date" validate:"required"`
	Month        int           `json:"month" validate:"required,min=1,max=12"`
	Year         int           `json:"year" validate:"required"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	it, err := h.svc.Create(r.Context(), item.CreateParams{
		CardID:       req.CardID,
		Amount:       req.Amount,
		Category:     req.Category,
		Description:  req.Description,
		PurchaseDate: req.PurchaseDate,
		Month:        req.Month,
		Year:         req.Year,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(it)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createInstallmentsRequest struct {
	CardID       uuid.UUID     `json:"card_id" validate:"required"`
	Description  string        `json:"description"`
	TotalAmount  int64         `json:"total_amount" validate:"required,gt=0"`
	Category     item.Category `json:"category" validate:"required"`
	PurchaseDate time.Time     `json:"purchase_date" validate:"required"`
	Installments int           `json:"installments" validate:"required,min=2,max=12"`
	StartMonth   int           `json:"start_month" validate:"required,min=1,max=12"`
	StartYear    int           `json:"start_year" validate:"required"`
}

func (h *Handler) createInstallments(w http.ResponseWriter, r *http.Request) {
	var req createInstallmentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, err := h.svc.CreateInstallmentPurchase(r.Context(), item.InstallmentParams{
		CardID:       req.CardID,
		Description:  req.Description,
		TotalAmount:  req.TotalAmount,
		Category:     req.Category,
		PurchaseDate: req.PurchaseDate,
		Installments: req.Installments,
		StartMonth:   req.StartMonth,
		StartYear:    req.StartYear,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponseList(items)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listByBill(w http.ResponseWriter, r *http.Request) {
	billID, err := uuid.Parse(chi.URLParam(r, "billID"))
	if err != nil {
		http.Error(w, "invalid bill id", http.StatusBadRequest)
		return
	}

	items, err := h.svc.ListByBill(r.Context(), billID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(items)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	it, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(it)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateItemRequest struct {
	Amount      *int64         `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Category    *item.Category `json:"category,omitempty"`
	Description *string        `json:"description,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	it, err := h.svc.Update(r.Context(), id, item.UpdateParams{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(it)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type moveItemRequest struct {
	TargetBillID uuid.UUID `json:"target_bill_id" validate:"required"`
}

func (h *Handler) move(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req moveItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.MoveItem(r.Context(), id, req.TargetBillID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
