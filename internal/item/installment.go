package item

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fatura/internal/bill"
	"github.com/MrJamesThe3rd/fatura/internal/month"
)

const (
	MinInstallments = 2
	MaxInstallments = 12
)

type InstallmentParams struct {
	CardID       uuid.UUID
	Description  string
	TotalAmount  int64 // cents, full purchase price
	Category     Category
	PurchaseDate time.Time
	Installments int
	StartMonth   int
	StartYear    int
}

// splitAmount divides a purchase total into n per-installment amounts using
// integer division. The first installment absorbs the whole rounding
// remainder, so the parts always sum back to total.
func splitAmount(total int64, n int) []int64 {
	base := total / int64(n)
	remainder := total % int64(n)

	amounts := make([]int64, n)
	for i := range amounts {
		amounts[i] = base
	}

	amounts[0] += remainder

	return amounts
}

// CreateInstallmentPurchase splits a purchase across n consecutive bills,
// starting at (StartMonth, StartYear). Each target bill is resolved inside
// the transaction and its total reconciled right after its item is inserted,
// so every bill the fan-out touches is consistent the moment it is touched.
// The whole fan-out commits or rolls back as one unit.
func (s *Service) CreateInstallmentPurchase(ctx context.Context, params InstallmentParams) ([]*Item, error) {
	if params.Installments < MinInstallments || params.Installments > MaxInstallments {
		return nil, fmt.Errorf("%w: installments must be between %d and %d, got %d",
			ErrInvalidArgument, MinInstallments, MaxInstallments, params.Installments)
	}

	if params.TotalAmount <= 0 {
		return nil, fmt.Errorf("%w: total amount must be positive", ErrInvalidArgument)
	}

	if params.StartMonth < 1 || params.StartMonth > 12 {
		return nil, fmt.Errorf("%w: start month must be between 1 and 12", ErrInvalidArgument)
	}

	if !params.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidArgument, params.Category)
	}

	c, err := s.cards.GetCard(ctx, params.CardID)
	if err != nil {
		return nil, err
	}

	amounts := splitAmount(params.TotalAmount, params.Installments)
	groupID := uuid.New()
	start := month.IndexOf(params.StartYear, params.StartMonth)

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning installment tx: %w", err)
	}
	defer tx.Rollback()

	items := make([]*Item, 0, params.Installments)

	for i := 1; i <= params.Installments; i++ {
		year, m := start.Add(i - 1).Date()

		b, err := tx.UpsertBill(ctx, bill.NewMonthly(c, m, year))
		if err != nil {
			return nil, fmt.Errorf("resolving bill for installment %d: %w", i, err)
		}

		it := &Item{
			BillID:            b.ID,
			Amount:            amounts[i-1],
			Category:          params.Category,
			Description:       fmt.Sprintf("%s (%d/%d)", params.Description, i, params.Installments),
			PurchaseDate:      params.PurchaseDate,
			InstallmentNumber: i,
			TotalInstallments: params.Installments,
			GroupID:           &groupID,
		}
		if err := tx.CreateItem(ctx, it); err != nil {
			return nil, fmt.Errorf("creating installment %d: %w", i, err)
		}

		if err := tx.RecalcBill(ctx, b.ID); err != nil {
			return nil, fmt.Errorf("reconciling bill for installment %d: %w", i, err)
		}

		items = append(items, it)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing installment purchase: %w", err)
	}

	return items, nil
}
