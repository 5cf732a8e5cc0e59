package bill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fatura/internal/card"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=bill
type Repository interface {
	GetBill(ctx context.Context, id uuid.UUID) (*Bill, error)
	GetByCardAndMonth(ctx context.Context, cardID uuid.UUID, m, year int) (*Bill, error)
	UpsertBill(ctx context.Context, b *Bill) (*Bill, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, paidAt *time.Time) error
	UpdateTotal(ctx context.Context, id uuid.UUID, amount int64) error
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]*Bill, error)
	ListOpenByCard(ctx context.Context, cardID uuid.UUID) ([]*Bill, error)
}

// CardDirectory is the slice of the card domain the billing cycle needs.
type CardDirectory interface {
	GetCard(ctx context.Context, id uuid.UUID) (*card.Card, error)
	ListActiveCards(ctx context.Context) ([]*card.Card, error)
}

// ItemSummer aggregates item amounts per bill; implemented by the item store.
type ItemSummer interface {
	SumByBill(ctx context.Context, billID uuid.UUID) (int64, error)
}

type Service struct {
	repo  Repository
	cards CardDirectory
	items ItemSummer
}

func NewService(repo Repository, cards CardDirectory, items ItemSummer) *Service {
	return &Service{repo: repo, cards: cards, items: items}
}

// Resolve returns the bill for the given card and statement month, creating
// it when absent. Resolution is idempotent: the insert is keyed on
// (card_id, month, year), so concurrent resolvers converge on one row.
func (s *Service) Resolve(ctx context.Context, cardID uuid.UUID, m, year int) (*Bill, error) {
	if m < 1 || m > 12 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMonth, m)
	}

	b, err := s.repo.GetByCardAndMonth(ctx, cardID, m, year)
	if err == nil {
		return b, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	c, err := s.cards.GetCard(ctx, cardID)
	if err != nil {
		return nil, err
	}

	return s.repo.UpsertBill(ctx, NewMonthly(c, m, year))
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Bill, error) {
	return s.repo.GetBill(ctx, id)
}

func (s *Service) ListByCard(ctx context.Context, cardID uuid.UUID) ([]*Bill, error) {
	return s.repo.ListByCard(ctx, cardID)
}

func (s *Service) ListOpenByCard(ctx context.Context, cardID uuid.UUID) ([]*Bill, error) {
	return s.repo.ListOpenByCard(ctx, cardID)
}

// Recalc recomputes the bill's cached total from its items and persists it.
// Every item mutation must be followed by a Recalc of the affected bill;
// there is no trigger-based fallback.
func (s *Service) Recalc(ctx context.Context, billID uuid.UUID) (int64, error) {
	sum, err := s.items.SumByBill(ctx, billID)
	if err != nil {
		return 0, fmt.Errorf("summing items: %w", err)
	}

	if err := s.repo.UpdateTotal(ctx, billID, sum); err != nil {
		return 0, fmt.Errorf("updating total: %w", err)
	}

	return sum, nil
}
