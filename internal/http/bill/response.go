package bill

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fatura/internal/bill"
	"github.com/MrJamesThe3rd/fatura/internal/item"
)

type billResponse struct {
	ID          uuid.UUID      `json:"id"`
	CardID      uuid.UUID      `json:"card_id"`
	Month       int            `json:"month"`
	Year        int            `json:"year"`
	ClosingDate time.Time      `json:"closing_date"`
	DueDate     time.Time      `json:"due_date"`
	TotalAmount int64          `json:"total_amount"`
	Status      bill.Status    `json:"status"`
	PaidAt      *time.Time     `json:"paid_at,omitempty"`
	Items       []itemResponse `json:"items,omitempty"`
}

type itemResponse struct {
	ID                uuid.UUID     `json:"id"`
	Amount            int64         `json:"amount"`
	Category          item.Category `json:"category"`
	Description       string        `json:"description"`
	PurchaseDate      time.Time     `json:"purchase_date"`
	InstallmentNumber int           `json:"installment_number"`
	TotalInstallments int           `json:"total_installments"`
	GroupID           *uuid.UUID    `json:"group_id,omitempty"`
}

func toResponse(b *bill.Bill, items []*item.Item) billResponse {
	resp := billResponse{
		ID:          b.ID,
		CardID:      b.CardID,
		Month:       b.Month,
		Year:        b.Year,
		ClosingDate: b.ClosingDate,
		DueDate:     b.DueDate,
		TotalAmount: b.TotalAmount,
		Status:      b.EffectiveStatus(time.Now()),
		PaidAt:      b.PaidAt,
	}

	for _, it := range items {
		resp.Items = append(resp.Items, itemResponse{
			ID:                it.ID,
			Amount:            it.Amount,
			Category:          it.Category,
			Description:       it.Description,
			PurchaseDate:      it.PurchaseDate,
			InstallmentNumber: it.InstallmentNumber,
			TotalInstallments: it.TotalInstallments,
			GroupID:           it.GroupID,
		})
	}

	return resp
}

func toResponseList(bills []*bill.Bill) []billResponse {
	resp := make([]billResponse, len(bills))
	for i, b := range bills {
		resp[i] = toResponse(b, nil)
	}

	return resp
}
