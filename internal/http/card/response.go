package card

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fatura/internal/card"
)

type cardResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	ClosingDay int        `json:"closing_day"`
	DueDay     int        `json:"due_day"`
	Limit      int64      `json:"limit"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

func toResponse(c *card.Card) cardResponse {
	return cardResponse{
		ID:         c.ID,
		Name:       c.Name,
		ClosingDay: c.ClosingDay,
		DueDay:     c.DueDay,
		Limit:      c.Limit,
		Active:     c.Active,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func toResponseList(cards []*card.Card) []cardResponse {
	resp := make([]cardResponse, len(cards))
	for i, c := range cards {
		resp[i] = toResponse(c)
	}

	return resp
}
