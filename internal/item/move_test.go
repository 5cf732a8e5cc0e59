package item_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/fatura/internal/bill"
	"github.com/MrJamesThe3rd/fatura/internal/card"
	"github.com/MrJamesThe3rd/fatura/internal/item"
)

func newMoveTx(t *testing.T, m serviceMocks) *item.MockLedgerTx {
	t.Helper()

	tx := item.NewMockLedgerTx(gomock.NewController(t))
	m.repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	return tx
}

func openBill(cardID uuid.UUID, m, year int) *bill.Bill {
	return &bill.Bill{ID: uuid.New(), CardID: cardID, Month: m, Year: year, Status: bill.StatusOpen}
}

func TestService_MoveItem_AlreadyOnTargetBill(t *testing.T) {
	svc, m := newService(t)
	tx := newMoveTx(t, m)

	target := uuid.New()
	it := &item.Item{ID: uuid.New(), BillID: target}
	tx.EXPECT().GetItem(gomock.Any(), it.ID).Return(it, nil)

	require.NoError(t, svc.MoveItem(context.Background(), it.ID, target))
}

func TestService_MoveItem_TargetNotFound(t *testing.T) {
	svc, m := newService(t)
	tx := newMoveTx(t, m)

	it := &item.Item{ID: uuid.New(), BillID: uuid.New()}
	target := uuid.New()

	tx.EXPECT().GetItem(gomock.Any(), it.ID).Return(it, nil)
	tx.EXPECT().GetBill(gomock.Any(), target).Return(nil, bill.ErrNotFound)

	err := svc.MoveItem(context.Background(), it.ID, target)
	assert.ErrorIs(t, err, bill.ErrNotFound)
}

func TestService_MoveItem_TargetNotOpen(t *testing.T) {
	svc, m := newService(t)
	tx := newMoveTx(t, m)

	it := &item.Item{ID: uuid.New(), BillID: uuid.New()}
	target := &bill.Bill{ID: uuid.New(), Month: 4, Year: 2024, Status: bill.StatusClosed}

	tx.EXPECT().GetItem(gomock.Any(), it.ID).Return(it, nil)
	tx.EXPECT().GetBill(gomock.Any(), target.ID).Return(target, nil)

	err := svc.MoveItem(context.Background(), it.ID, target.ID)
	assert.ErrorIs(t, err, item.ErrTargetNotOpen)
}

func TestService_MoveItem_SingleItem(t *testing.T) {
	svc, m := newService(t)
	tx := newMoveTx(t, m)

	cardID := uuid.New()
	from := openBill(cardID, 3, 2024)
	target := openBill(cardID, 4, 2024)
	it := &item.Item{ID: uuid.New(), BillID: from.ID, Amount: 1000}

	tx.EXPECT().GetItem(gomock.Any(), it.ID).Return(it, nil)
	tx.EXPECT().GetBill(gomock.Any(), target.ID).Return(target, nil)
	tx.EXPECT().ReassignItem(gomock.Any(), it.ID, target.ID).Return(nil)
	tx.EXPECT().RecalcBill(gomock.Any(), from.ID).Return(nil)
	tx.EXPECT().RecalcBill(gomock.Any(), target.ID).Return(nil)
	tx.EXPECT().Commit().Return(nil)

	require.NoError(t, svc.MoveItem(context.Background(), it.ID, target.ID))
}

// Moving one installment drags the whole group, shifted by the distance from
// the first installment's bill to the target bill.
func TestService_MoveItem_GroupKeepsSpacing(t *testing.T) {
	svc, m := newService(t)
	tx := newMoveTx(t, m)

	c := &card.Card{ID: uuid.New(), ClosingDay: 5, DueDay: 15}
	groupID := uuid.New()

	mar := openBill(c.ID, 3, 2024)
	apr := openBill(c.ID, 4, 2024)
	may := openBill(c.ID, 5, 2024)
	jun := openBill(c.ID, 6, 2024)
	jul := openBill(c.ID, 7, 2024)

	first := &item.Item{ID: uuid.New(), BillID: mar.ID, InstallmentNumber: 1, TotalInstallments: 3, GroupID: &groupID}
	second := &item.Item{ID: uuid.New(), BillID: apr.ID, InstallmentNumber: 2, TotalInstallments: 3, GroupID: &groupID}
	third := &item.Item{ID: uuid.New(), BillID: may.ID, InstallmentNumber: 3, TotalInstallments: 3, GroupID: &groupID}

	// Moving the second installment to May shifts the group by two months.
	tx.EXPECT().GetItem(gomock.Any(), second.ID).Return(second, nil)
	tx.EXPECT().GetBill(gomock.Any(), may.ID).Return(may, nil).AnyTimes()
	tx.EXPECT().GetBill(gomock.Any(), mar.ID).Return(mar, nil).AnyTimes()
	tx.EXPECT().GetBill(gomock.Any(), apr.ID).Return(apr, nil).AnyTimes()
	tx.EXPECT().ListByGroup(gomock.Any(), groupID).Return([]*item.Item{first, second, third}, nil)
	m.cards.EXPECT().GetCard(gomock.Any(), c.ID).Return(c, nil)

	dests := map[int]*bill.Bill{5: may, 6: jun, 7: jul}

	tx.EXPECT().
		UpsertBill(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *bill.Bill) (*bill.Bill, error) {
			dest, ok := dests[b.Month]
			require.True(t, ok, "unexpected destination month %d", b.Month)
			return dest, nil
		}).
		Times(3)

	tx.EXPECT().ReassignItem(gomock.Any(), first.ID, may.ID).Return(nil)
	tx.EXPECT().ReassignItem(gomock.Any(), second.ID, jun.ID).Return(nil)
	tx.EXPECT().ReassignItem(gomock.Any(), third.ID, jul.ID).Return(nil)

	// Every source and destination bill is reconciled.
	tx.EXPECT().RecalcBill(gomock.Any(), mar.ID).Return(nil)
	tx.EXPECT().RecalcBill(gomock.Any(), apr.ID).Return(nil)
	tx.EXPECT().RecalcBill(gomock.Any(), may.ID).Return(nil)
	tx.EXPECT().RecalcBill(gomock.Any(), jun.ID).Return(nil)
	tx.EXPECT().RecalcBill(gomock.Any(), jul.ID).Return(nil)

	tx.EXPECT().Commit().Return(nil)

	require.NoError(t, svc.MoveItem(context.Background(), second.ID, may.ID))
}

// One installment landing on a non-open bill fails the whole move before any
// reassignment happens.
func TestService_MoveItem_GroupAtomicity(t *testing.T) {
	svc, m := newService(t)
	tx := newMoveTx(t, m)

	c := &card.Card{ID: uuid.New(), ClosingDay: 5, DueDay: 15}
	groupID := uuid.New()

	mar := openBill(c.ID, 3, 2024)
	apr := openBill(c.ID, 4, 2024)
	may := openBill(c.ID, 5, 2024)
	junClosed := &bill.Bill{ID: uuid.New(), CardID: c.ID, Month: 6, Year: 2024, Status: bill.StatusClosed}

	first := &item.Item{ID: uuid.New(), BillID: mar.ID, InstallmentNumber: 1, TotalInstallments: 2, GroupID: &groupID}
	second := &item.Item{ID: uuid.New(), BillID: apr.ID, InstallmentNumber: 2, TotalInstallments: 2, GroupID: &groupID}

	tx.EXPECT().GetItem(gomock.Any(), first.ID).Return(first, nil)
	tx.EXPECT().GetBill(gomock.Any(), may.ID).Return(may, nil).AnyTimes()
	tx.EXPECT().GetBill(gomock.Any(), mar.ID).Return(mar, nil).AnyTimes()
	tx.EXPECT().GetBill(gomock.Any(), apr.ID).Return(apr, nil).AnyTimes()
	tx.EXPECT().ListByGroup(gomock.Any(), groupID).Return([]*item.Item{first, second}, nil)
	m.cards.EXPECT().GetCard(gomock.Any(), c.ID).Return(c, nil)

	// First installment's destination (May) is open, the second's (June) is
	// closed. No ReassignItem, no RecalcBill, no Commit may happen.
	tx.EXPECT().
		UpsertBill(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *bill.Bill) (*bill.Bill, error) {
			switch b.Month {
			case 5:
				return may, nil
			case 6:
				return junClosed, nil
			}

			t.Fatalf("unexpected destination month %d", b.Month)
			return nil, nil
		}).
		Times(2)

	err := svc.MoveItem(context.Background(), first.ID, may.ID)
	require.ErrorIs(t, err, item.ErrTargetNotOpen)
	assert.Contains(t, err.Error(), "2/2")
}
