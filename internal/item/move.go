package item

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fatura/internal/bill"
	"github.com/MrJamesThe3rd/fatura/internal/month"
)

// MoveItem relocates an item to another bill. An item that belongs to an
// installment group drags the whole group along, each member shifted by the
// same number of months so the installments keep their relative spacing.
//
// Only open bills accept items; if any member's destination bill is closed or
// paid the entire move fails and nothing changes. All reassignments and all
// total reconciliations for every bill touched happen in one transaction.
func (s *Service) MoveItem(ctx context.Context, itemID, targetBillID uuid.UUID) error {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning move tx: %w", err)
	}
	defer tx.Rollback()

	it, err := tx.GetItem(ctx, itemID)
	if err != nil {
		return err
	}

	if it.BillID == targetBillID {
		return nil
	}

	target, err := tx.GetBill(ctx, targetBillID)
	if err != nil {
		return err
	}

	if target.Status != bill.StatusOpen {
		return fmt.Errorf("bill %s is %s: %w", target.ID, target.Status, ErrTargetNotOpen)
	}

	touched := map[uuid.UUID]struct{}{}

	if it.GroupID == nil {
		if err := tx.ReassignItem(ctx, it.ID, target.ID); err != nil {
			return fmt.Errorf("reassigning item: %w", err)
		}

		touched[it.BillID] = struct{}{}
		touched[target.ID] = struct{}{}
	} else {
		if err := s.moveGroup(ctx, tx, it, target, touched); err != nil {
			return err
		}
	}

	for billID := range touched {
		if err := tx.RecalcBill(ctx, billID); err != nil {
			return fmt.Errorf("reconciling bill %s: %w", billID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing move: %w", err)
	}

	return nil
}

type relocation struct {
	item *Item
	from uuid.UUID
	to   uuid.UUID
}

// moveGroup shifts every item of an installment group by the month distance
// between the first installment's bill and the target bill. Destinations are
// all resolved and validated open before the first reassignment; a single
// non-open destination aborts the move naming the offending installment.
func (s *Service) moveGroup(ctx context.Context, tx LedgerTx, it *Item, target *bill.Bill, touched map[uuid.UUID]struct{}) error {
	group, err := tx.ListByGroup(ctx, *it.GroupID)
	if err != nil {
		return fmt.Errorf("loading installment group: %w", err)
	}

	// The group is ordered by installment number; the first installment's
	// bill anchors the shift.
	ref := group[0]

	refBill, err := tx.GetBill(ctx, ref.BillID)
	if err != nil {
		return fmt.Errorf("loading reference bill: %w", err)
	}

	shift := month.IndexOf(target.Year, target.Month).Sub(month.IndexOf(refBill.Year, refBill.Month))

	c, err := s.cards.GetCard(ctx, target.CardID)
	if err != nil {
		return err
	}

	moves := make([]relocation, 0, len(group))

	for _, member := range group {
		current, err := tx.GetBill(ctx, member.BillID)
		if err != nil {
			return fmt.Errorf("loading bill for installment %d: %w", member.InstallmentNumber, err)
		}

		destYear, destMonth := month.IndexOf(current.Year, current.Month).Add(shift).Date()

		dest, err := tx.UpsertBill(ctx, bill.NewMonthly(c, destMonth, destYear))
		if err != nil {
			return fmt.Errorf("resolving bill for installment %d: %w", member.InstallmentNumber, err)
		}

		if dest.Status != bill.StatusOpen {
			return fmt.Errorf("installment %d/%d would land on %s bill %d/%d: %w",
				member.InstallmentNumber, member.TotalInstallments, dest.Status, dest.Month, dest.Year, ErrTargetNotOpen)
		}

		moves = append(moves, relocation{item: member, from: member.BillID, to: dest.ID})
	}

	for _, mv := range moves {
		if err := tx.ReassignItem(ctx, mv.item.ID, mv.to); err != nil {
			return fmt.Errorf("reassigning installment %d: %w", mv.item.InstallmentNumber, err)
		}

		touched[mv.from] = struct{}{}
		touched[mv.to] = struct{}{}
	}

	return nil
}
