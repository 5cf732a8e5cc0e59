package bill

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fatura/internal/bill"
	"github.com/MrJamesThe3rd/fatura/internal/card"
	"github.com/MrJamesThe3rd/fatura/internal/item"
)

type Handler struct {
	bills *bill.Service
	items *item.Service
}

func NewHandler(bills *bill.Service, items *item.Service) *Handler {
	return &Handler{bills: bills, items: items}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/card/{cardID}", h.listByCard)
	r.Get("/card/{cardID}/{year}/{month}", h.resolve)
	r.Get("/{id}", h.get)
	r.Post("/{id}/pay", h.pay)
	r.Post("/catchup", h.catchUp)
}

// resolve returns the bill for the card's statement month, creating it when
// it does not exist yet.
func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) {
	cardID, err := uuid.Parse(chi.URLParam(r, "cardID"))
	if err != nil {
		http.Error(w, "invalid card id", http.StatusBadRequest)
		return
	}

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}

	m, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	b, err := h.bills.Resolve(r.Context(), cardID, m, year)
	if err != nil {
		switch {
		case errors.Is(err, bill.ErrInvalidMonth):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, card.ErrNotFound):
			http.Error(w, "card not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(b, nil)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listByCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := uuid.Parse(chi.URLParam(r, "cardID"))
	if err != nil {
		http.Error(w, "invalid card id", http.StatusBadRequest)
		return
	}

	var bills []*bill.Bill

	if r.URL.Query().Get("open") == "true" {
		bills, err = h.bills.ListOpenByCard(r.Context(), cardID)
	} else {
		bills, err = h.bills.ListByCard(r.Context(), cardID)
	}

	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(bills)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	b, err := h.bills.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, bill.ErrNotFound) {
			http.Error(w, "bill not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	items, err := h.items.ListByBill(r.Context(), id)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(b, items)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	b, err := h.bills.MarkPaid(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, bill.ErrNotFound):
			http.Error(w, "bill not found", http.StatusNotFound)
		case errors.Is(err, bill.ErrInvalidTransition):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(b, nil)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type catchUpRequest struct {
	AsOf *time.Time `json:"as_of,omitempty"`
}

// catchUp runs the overdue-bill sweep on demand, e.g. when the UI comes to
// the foreground after days of inactivity.
func (h *Handler) catchUp(w http.ResponseWriter, r *http.Request) {
	var req catchUpRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	asOf := time.Now()
	if req.AsOf != nil {
		asOf = *req.AsOf
	}

	h.bills.CatchUp(r.Context(), asOf)

	w.WriteHeader(http.StatusNoContent)
}
