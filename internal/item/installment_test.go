package item_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/fatura/internal/bill"
	"github.com/MrJamesThe3rd/fatura/internal/card"
	"github.com/MrJamesThe3rd/fatura/internal/item"
)

func TestService_CreateInstallmentPurchase_InvalidParams(t *testing.T) {
	base := item.InstallmentParams{
		CardID:       uuid.New(),
		Description:  "TV",
		TotalAmount:  1000,
		Category:     item.CategoryShopping,
		Installments: 3,
		StartMonth:   3,
		StartYear:    2024,
	}

	tests := []struct {
		name   string
		mutate func(p *item.InstallmentParams)
	}{
		{"OneInstallment", func(p *item.InstallmentParams) { p.Installments = 1 }},
		{"ThirteenInstallments", func(p *item.InstallmentParams) { p.Installments = 13 }},
		{"ZeroAmount", func(p *item.InstallmentParams) { p.TotalAmount = 0 }},
		{"NegativeAmount", func(p *item.InstallmentParams) { p.TotalAmount = -500 }},
		{"MonthZero", func(p *item.InstallmentParams) { p.StartMonth = 0 }},
		{"MonthThirteen", func(p *item.InstallmentParams) { p.StartMonth = 13 }},
		{"UnknownCategory", func(p *item.InstallmentParams) { p.Category = "gadgets" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)

			params := base
			tt.mutate(&params)

			_, err := svc.CreateInstallmentPurchase(context.Background(), params)
			assert.ErrorIs(t, err, item.ErrInvalidArgument)
		})
	}
}

func TestService_CreateInstallmentPurchase_SplitsAcrossBills(t *testing.T) {
	svc, m := newService(t)

	ctrl := gomock.NewController(t)
	tx := item.NewMockLedgerTx(ctrl)

	c := &card.Card{ID: uuid.New(), ClosingDay: 5, DueDay: 15}
	m.cards.EXPECT().GetCard(gomock.Any(), c.ID).Return(c, nil)
	m.repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

	billIDs := map[int]uuid.UUID{11: uuid.New(), 12: uuid.New(), 1: uuid.New()}

	tx.EXPECT().
		UpsertBill(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *bill.Bill) (*bill.Bill, error) {
			b.ID = billIDs[b.Month]
			b.Status = bill.StatusOpen
			return b, nil
		}).
		Times(3)

	var created []*item.Item

	tx.EXPECT().
		CreateItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, it *item.Item) error {
			it.ID = uuid.New()
			created = append(created, it)
			return nil
		}).
		Times(3)

	// Each bill is reconciled right after its installment lands.
	tx.EXPECT().RecalcBill(gomock.Any(), billIDs[11]).Return(nil)
	tx.EXPECT().RecalcBill(gomock.Any(), billIDs[12]).Return(nil)
	tx.EXPECT().RecalcBill(gomock.Any(), billIDs[1]).Return(nil)

	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	// November start crosses the year boundary on the third installment.
	items, err := svc.CreateInstallmentPurchase(context.Background(), item.InstallmentParams{
		CardID:       c.ID,
		Description:  "Sofa",
		TotalAmount:  1000,
		Category:     item.CategoryShopping,
		PurchaseDate: time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC),
		Installments: 3,
		StartMonth:   11,
		StartYear:    2024,
	})
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, int64(334), items[0].Amount)
	assert.Equal(t, int64(333), items[1].Amount)
	assert.Equal(t, int64(333), items[2].Amount)

	assert.Equal(t, "Sofa (1/3)", items[0].Description)
	assert.Equal(t, "Sofa (2/3)", items[1].Description)
	assert.Equal(t, "Sofa (3/3)", items[2].Description)

	assert.Equal(t, billIDs[11], items[0].BillID)
	assert.Equal(t, billIDs[12], items[1].BillID)
	assert.Equal(t, billIDs[1], items[2].BillID)

	require.NotNil(t, items[0].GroupID)
	for _, it := range items {
		assert.Equal(t, items[0].GroupID, it.GroupID)
		assert.Equal(t, 3, it.TotalInstallments)
	}

	assert.Equal(t, 1, items[0].InstallmentNumber)
	assert.Equal(t, 2, items[1].InstallmentNumber)
	assert.Equal(t, 3, items[2].InstallmentNumber)
}

func TestService_CreateInstallmentPurchase_FailureRollsBack(t *testing.T) {
	svc, m := newService(t)

	ctrl := gomock.NewController(t)
	tx := item.NewMockLedgerTx(ctrl)

	c := &card.Card{ID: uuid.New(), ClosingDay: 5, DueDay: 15}
	m.cards.EXPECT().GetCard(gomock.Any(), c.ID).Return(c, nil)
	m.repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

	tx.EXPECT().
		UpsertBill(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *bill.Bill) (*bill.Bill, error) {
			b.ID = uuid.New()
			return b, nil
		})
	tx.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
	tx.EXPECT().Rollback().Return(nil)

	// No Commit: the transaction must abort with nothing applied.
	_, err := svc.CreateInstallmentPurchase(context.Background(), item.InstallmentParams{
		CardID:       c.ID,
		Description:  "TV",
		TotalAmount:  90_000,
		Category:     item.CategoryShopping,
		Installments: 6,
		StartMonth:   3,
		StartYear:    2024,
	})
	assert.Error(t, err)
}

func TestService_CreateInstallmentPurchase_CardNotFound(t *testing.T) {
	svc, m := newService(t)

	m.cards.EXPECT().GetCard(gomock.Any(), gomock.Any()).Return(nil, card.ErrNotFound)

	_, err := svc.CreateInstallmentPurchase(context.Background(), item.InstallmentParams{
		CardID:       uuid.New(),
		TotalAmount:  1000,
		Category:     item.CategoryShopping,
		Installments: 2,
		StartMonth:   3,
		StartYear:    2024,
	})
	assert.ErrorIs(t, err, card.ErrNotFound)
}
