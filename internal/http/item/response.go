package item

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fatura/internal/item"
)

type itemResponse struct {
	ID                uuid.UUID     `json:"id"`
	BillID            uuid.UUID     `json:"bill_id"`
	Amount            int64         `json:"amount"`
	Category          item.Category `json:"category"`
	Description       string        `json:"description"`
	PurchaseDate      time.Time     `json:"purchase_date"`
	InstallmentNumber int           `json:"installment_number"`
	TotalInstallments int           `json:"total_installments"`
	GroupID           *uuid.UUID    `json:"group_id,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         *time.Time    `json:"updated_at,omitempty"`
}

func toResponse(it *item.Item) itemResponse {
	return itemResponse{
		ID:                it.ID,
		BillID:            it.BillID,
		Amount:            it.Amount,
		Category:          it.Category,
		Description:       it.Description,
		PurchaseDate:      it.PurchaseDate,
		InstallmentNumber: it.InstallmentNumber,
		TotalInstallments: it.TotalInstallments,
		GroupID:           it.GroupID,
		CreatedAt:         it.CreatedAt,
		UpdatedAt:         it.UpdatedAt,
	}
}

func toResponseList(items []*item.Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toResponse(it))
	}

	return out
}
