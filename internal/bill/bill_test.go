package bill_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/fatura/internal/bill"
	"github.com/MrJamesThe3rd/fatura/internal/card"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name     string
		from, to bill.Status
		want     bool
	}{
		{"OpenToClosed", bill.StatusOpen, bill.StatusClosed, true},
		{"ClosedToPaid", bill.StatusClosed, bill.StatusPaid, true},
		{"OpenToPaid", bill.StatusOpen, bill.StatusPaid, false},
		{"PaidToClosed", bill.StatusPaid, bill.StatusClosed, false},
		{"PaidToOpen", bill.StatusPaid, bill.StatusOpen, false},
		{"ClosedToOpen", bill.StatusClosed, bill.StatusOpen, false},
		{"ClosedToClosed", bill.StatusClosed, bill.StatusClosed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bill.CanTransition(tt.from, tt.to))
		})
	}
}

func TestNewMonthly_DueDayAfterClosingDay(t *testing.T) {
	c := &card.Card{ClosingDay: 5, DueDay: 15}

	b := bill.NewMonthly(c, 3, 2024)

	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local), b.ClosingDate)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local), b.DueDate)
	assert.Equal(t, bill.StatusOpen, b.Status)
	assert.Zero(t, b.TotalAmount)
}

func TestNewMonthly_DueDayBeforeClosingDay_RollsToNextMonth(t *testing.T) {
	c := &card.Card{ClosingDay: 20, DueDay: 5}

	b := bill.NewMonthly(c, 3, 2024)

	assert.Equal(t, time.Date(2024, 3, 20, 0, 0, 0, 0, time.Local), b.ClosingDate)
	assert.Equal(t, time.Date(2024, 4, 5, 0, 0, 0, 0, time.Local), b.DueDate)
}

func TestNewMonthly_DecemberRollsIntoNextYear(t *testing.T) {
	c := &card.Card{ClosingDay: 25, DueDay: 8}

	b := bill.NewMonthly(c, 12, 2024)

	assert.Equal(t, time.Date(2024, 12, 25, 0, 0, 0, 0, time.Local), b.ClosingDate)
	assert.Equal(t, time.Date(2025, 1, 8, 0, 0, 0, 0, time.Local), b.DueDate)
}

func TestNewMonthly_ClampsDaysTo28(t *testing.T) {
	c := &card.Card{ClosingDay: 31, DueDay: 30}

	b := bill.NewMonthly(c, 2, 2023)

	assert.Equal(t, time.Date(2023, 2, 28, 0, 0, 0, 0, time.Local), b.ClosingDate)
	assert.Equal(t, time.Date(2023, 2, 28, 0, 0, 0, 0, time.Local), b.DueDate)
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)
	past := time.Date(2024, 6, 5, 0, 0, 0, 0, time.Local)
	future := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)
	paidAt := now

	tests := []struct {
		name string
		b    bill.Bill
		want bill.Status
	}{
		{"OpenBeforeDue", bill.Bill{Status: bill.StatusOpen, DueDate: future}, bill.StatusOpen},
		{"ClosedBeforeDue", bill.Bill{Status: bill.StatusClosed, DueDate: future}, bill.StatusClosed},
		{"ClosedPastDue", bill.Bill{Status: bill.StatusClosed, DueDate: past}, bill.StatusOverdue},
		{"OpenPastDue", bill.Bill{Status: bill.StatusOpen, DueDate: past}, bill.StatusOverdue},
		{"PaidPastDue", bill.Bill{Status: bill.StatusPaid, DueDate: past, PaidAt: &paidAt}, bill.StatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.b.EffectiveStatus(now))
		})
	}
}
