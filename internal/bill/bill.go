// Package bill implements the credit-card statement lifecycle: resolving the
// bill for a (card, month, year) key, closing bills on or after their closing
// day, marking them paid, and keeping each bill's cached total in sync with
// its items.
package bill

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fatura/internal/card"
	"github.com/MrJamesThe3rd/fatura/internal/month"
)

var (
	ErrNotFound          = errors.New("bill not found")
	ErrInvalidMonth      = errors.New("month must be between 1 and 12")
	ErrInvalidTransition = errors.New("invalid bill status transition")
)

// Status represents the lifecycle state of a bill.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
	StatusPaid   Status = "paid"

	// StatusOverdue is derived, never persisted. See Bill.EffectiveStatus.
	StatusOverdue Status = "overdue"
)

// transitions is the complete forward-only state machine. Anything absent
// here is illegal; there is no path back from paid or closed.
var transitions = map[Status]Status{
	StatusOpen:   StatusClosed,
	StatusClosed: StatusPaid,
}

// CanTransition reports whether a bill may move from one status to another.
func CanTransition(from, to Status) bool {
	return transitions[from] == to
}

// Bill represents one statement period for one card. The (CardID, Month,
// Year) triple is unique per card. TotalAmount is a cache over the bill's
// items and is only trustworthy immediately after a Recalc.
type Bill struct {
	ID          uuid.UUID
	CardID      uuid.UUID
	Month       int // 1-12
	Year        int
	ClosingDate time.Time
	DueDate     time.Time
	TotalAmount int64 // cents
	Status      Status
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// EffectiveStatus returns the status as callers should display it: an unpaid
// bill past its due date reads as overdue even though the stored status never
// changes to overdue.
func (b *Bill) EffectiveStatus(now time.Time) Status {
	if b.Status != StatusPaid && b.DueDate.Before(now) {
		return StatusOverdue
	}

	return b.Status
}

// maxBillingDay caps closing/due days so the derived dates exist in every
// month, February included. A card configured for day 29-31 bills on the
// 28th. Deliberate simplification carried over from the product behavior.
const maxBillingDay = 28

func clampDay(d int) int {
	if d > maxBillingDay {
		return maxBillingDay
	}

	if d < 1 {
		return 1
	}

	return d
}

// NewMonthly builds the open bill for a card's statement period, deriving
// closing and due dates from the card's billing-day configuration. The due
// date rolls into the next month when the due day falls before the closing
// day (payment is due after the statement closes).
func NewMonthly(c *card.Card, m, year int) *Bill {
	closing := time.Date(year, time.Month(m), clampDay(c.ClosingDay), 0, 0, 0, 0, time.Local)

	dueYear, dueMonth := year, m
	if c.DueDay < c.ClosingDay {
		dueYear, dueMonth = month.IndexOf(year, m).Add(1).Date()
	}

	due := time.Date(dueYear, time.Month(dueMonth), clampDay(c.DueDay), 0, 0, 0, 0, time.Local)

	return &Bill{
		CardID:      c.ID,
		Month:       m,
		Year:        year,
		ClosingDate: closing,
		DueDate:     due,
		TotalAmount: 0,
		Status:      StatusOpen,
	}
}
