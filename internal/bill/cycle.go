package bill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fatura/internal/card"
	"github.com/MrJamesThe3rd/fatura/internal/month"
)

// CloseDueBill closes the card's bill for asOf's month when asOf lands on the
// card's closing day, then resolves the following month's bill so the card
// always has an open statement. Returns whether a close happened.
func (s *Service) CloseDueBill(ctx context.Context, c *card.Card, asOf time.Time) (bool, error) {
	if asOf.Day() != c.ClosingDay {
		return false, nil
	}

	b, err := s.repo.GetByCardAndMonth(ctx, c.ID, int(asOf.Month()), asOf.Year())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}

		return false, err
	}

	return s.closeAndRoll(ctx, c, b)
}

// CloseOverdueBills closes every open bill whose closing date has already
// passed, rolling the next month's bill into existence after each close. It
// re-sweeps until no overdue open bill remains, so a card that sat unused for
// several months catches up to exactly one open bill. Returns the number of
// bills closed.
func (s *Service) CloseOverdueBills(ctx context.Context, c *card.Card, today time.Time) (int, error) {
	closed := 0

	for {
		open, err := s.repo.ListOpenByCard(ctx, c.ID)
		if err != nil {
			return closed, err
		}

		progressed := false

		for _, b := range open {
			if !b.ClosingDate.Before(today) {
				continue
			}

			ok, err := s.closeAndRoll(ctx, c, b)
			if err != nil {
				return closed, err
			}

			if ok {
				closed++
				progressed = true
			}
		}

		if !progressed {
			return closed, nil
		}
	}
}

// closeAndRoll transitions one open bill to closed and eagerly resolves the
// following month's bill.
func (s *Service) closeAndRoll(ctx context.Context, c *card.Card, b *Bill) (bool, error) {
	if !CanTransition(b.Status, StatusClosed) {
		return false, nil
	}

	if err := s.repo.UpdateStatus(ctx, b.ID, StatusClosed, nil); err != nil {
		return false, fmt.Errorf("closing bill %s: %w", b.ID, err)
	}

	nextYear, nextMonth := month.IndexOf(b.Year, b.Month).Add(1).Date()
	if _, err := s.Resolve(ctx, c.ID, nextMonth, nextYear); err != nil {
		return true, fmt.Errorf("resolving next bill after close: %w", err)
	}

	return true, nil
}

// CatchUp runs the overdue sweep for every active card. One card's failure is
// logged and does not block the others; the sweep is idempotent and will be
// retried on the next tick.
func (s *Service) CatchUp(ctx context.Context, today time.Time) {
	cards, err := s.cards.ListActiveCards(ctx)
	if err != nil {
		slog.Error("listing cards for billing catch-up", "error", err)
		return
	}

	for _, c := range cards {
		closed, err := s.CloseOverdueBills(ctx, c, today)
		if err != nil {
			slog.Error("closing overdue bills", "card", c.ID, "error", err)
			continue
		}

		if closed > 0 {
			slog.Info("closed overdue bills", "card", c.ID, "count", closed)
		}
	}
}

// MarkPaid transitions a closed bill to paid, stamping PaidAt. Paying an
// already-paid bill is a no-op success; paying an open bill is rejected by
// the transition table.
func (s *Service) MarkPaid(ctx context.Context, id uuid.UUID) (*Bill, error) {
	b, err := s.repo.GetBill(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.Status == StatusPaid {
		return b, nil
	}

	if !CanTransition(b.Status, StatusPaid) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, StatusPaid)
	}

	now := time.Now()
	if err := s.repo.UpdateStatus(ctx, id, StatusPaid, &now); err != nil {
		return nil, fmt.Errorf("marking bill paid: %w", err)
	}

	b.Status = StatusPaid
	b.PaidAt = &now

	return b, nil
}
