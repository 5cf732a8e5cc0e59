package item

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fatura/internal/bill"
	"github.com/MrJamesThe3rd/fatura/internal/card"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=item
type Repository interface {
	CreateItem(ctx context.Context, it *Item) error
	GetItem(ctx context.Context, id uuid.UUID) (*Item, error)
	UpdateItem(ctx context.Context, it *Item) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	ListByBill(ctx context.Context, billID uuid.UUID) ([]*Item, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*Item, error)
	SumByBill(ctx context.Context, billID uuid.UUID) (int64, error)

	Begin(ctx context.Context) (LedgerTx, error)
}

// LedgerTx scopes multi-row ledger operations (installment fan-out, group
// relocation) to one database transaction: either every item write and every
// bill total lands, or none do.
type LedgerTx interface {
	GetItem(ctx context.Context, id uuid.UUID) (*Item, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*Item, error)
	CreateItem(ctx context.Context, it *Item) error
	ReassignItem(ctx context.Context, itemID, billID uuid.UUID) error

	GetBill(ctx context.Context, id uuid.UUID) (*bill.Bill, error)
	UpsertBill(ctx context.Context, b *bill.Bill) (*bill.Bill, error)
	RecalcBill(ctx context.Context, billID uuid.UUID) error

	Commit() error
	Rollback() error
}

// CardLookup resolves card billing configuration for bill creation inside
// ledger transactions.
type CardLookup interface {
	GetCard(ctx context.Context, id uuid.UUID) (*card.Card, error)
}

// Bills is the slice of the bill service the item service drives: resolving
// the bill a purchase lands on and reconciling totals after mutations.
type Bills interface {
	Resolve(ctx context.Context, cardID uuid.UUID, m, year int) (*bill.Bill, error)
	Recalc(ctx context.Context, billID uuid.UUID) (int64, error)
}

type Service struct {
	repo  Repository
	cards CardLookup
	bills Bills
}

func NewService(repo Repository, cards CardLookup, bills Bills) *Service {
	return &Service{repo: repo, cards: cards, bills: bills}
}

type CreateParams struct {
	CardID       uuid.UUID
	Amount       int64
	Category     Category
	Description  string
	PurchaseDate time.Time
	Month        int // statement month the purchase posts to
	Year         int
}

// Create posts a single (non-installment) purchase to the card's bill for
// the given statement month, creating the bill when needed, and reconciles
// the bill total.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Item, error) {
	if params.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidArgument)
	}

	if !params.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidArgument, params.Category)
	}

	b, err := s.bills.Resolve(ctx, params.CardID, params.Month, params.Year)
	if err != nil {
		return nil, err
	}

	it := &Item{
		BillID:            b.ID,
		Amount:            params.Amount,
		Category:          params.Category,
		Description:       params.Description,
		PurchaseDate:      params.PurchaseDate,
		InstallmentNumber: 1,
		TotalInstallments: 1,
	}
	if err := s.repo.CreateItem(ctx, it); err != nil {
		return nil, err
	}

	if _, err := s.bills.Recalc(ctx, b.ID); err != nil {
		return nil, err
	}

	return it, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Item, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *Service) ListByBill(ctx context.Context, billID uuid.UUID) ([]*Item, error) {
	return s.repo.ListByBill(ctx, billID)
}

func (s *Service) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*Item, error) {
	return s.repo.ListByGroup(ctx, groupID)
}

type UpdateParams struct {
	Amount      *int64
	Category    *Category
	Description *string
}

// Update edits an item in place and reconciles its bill. Moving an item to
// another bill goes through MoveItem, never through Update.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Item, error) {
	it, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Amount != nil {
		if *params.Amount <= 0 {
			return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidArgument)
		}

		it.Amount = *params.Amount
	}

	if params.Category != nil {
		if !params.Category.IsValid() {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidArgument, *params.Category)
		}

		it.Category = *params.Category
	}

	if params.Description != nil {
		it.Description = *params.Description
	}

	if err := s.repo.UpdateItem(ctx, it); err != nil {
		return nil, err
	}

	if _, err := s.bills.Recalc(ctx, it.BillID); err != nil {
		return nil, err
	}

	return it, nil
}

// Delete removes a single item and reconciles its bill. Whether deleting one
// installment should take the rest of its group along is the caller's policy;
// the ledger deletes exactly what it is asked to.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	it, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return err
	}

	_, err = s.bills.Recalc(ctx, it.BillID)

	return err
}
