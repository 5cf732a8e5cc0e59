package item_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/fatura/internal/bill"
	"github.com/MrJamesThe3rd/fatura/internal/item"
)

type serviceMocks struct {
	repo  *item.MockRepository
	cards *item.MockCardLookup
	bills *item.MockBills
}

func newService(t *testing.T) (*item.Service, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		repo:  item.NewMockRepository(ctrl),
		cards: item.NewMockCardLookup(ctrl),
		bills: item.NewMockBills(ctrl),
	}

	return item.NewService(m.repo, m.cards, m.bills), m
}

func TestService_Create(t *testing.T) {
	svc, m := newService(t)

	cardID := uuid.New()
	b := &bill.Bill{ID: uuid.New(), CardID: cardID, Month: 3, Year: 2024, Status: bill.StatusOpen}

	m.bills.EXPECT().Resolve(gomock.Any(), cardID, 3, 2024).Return(b, nil)
	m.repo.EXPECT().
		CreateItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, it *item.Item) error {
			assert.Equal(t, b.ID, it.BillID)
			assert.Equal(t, 1, it.InstallmentNumber)
			assert.Equal(t, 1, it.TotalInstallments)
			assert.Nil(t, it.GroupID)

			it.ID = uuid.New()
			return nil
		})
	m.bills.EXPECT().Recalc(gomock.Any(), b.ID).Return(int64(2500), nil)

	got, err := svc.Create(context.Background(), item.CreateParams{
		CardID:       cardID,
		Amount:       2500,
		Category:     item.CategoryFood,
		Description:  "Groceries",
		PurchaseDate: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Month:        3,
		Year:         2024,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
}

func TestService_Create_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		params item.CreateParams
	}{
		{"ZeroAmount", item.CreateParams{Amount: 0, Category: item.CategoryFood, Month: 3, Year: 2024}},
		{"NegativeAmount", item.CreateParams{Amount: -100, Category: item.CategoryFood, Month: 3, Year: 2024}},
		{"UnknownCategory", item.CreateParams{Amount: 100, Category: "gadgets", Month: 3, Year: 2024}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)

			_, err := svc.Create(context.Background(), tt.params)
			assert.ErrorIs(t, err, item.ErrInvalidArgument)
		})
	}
}

func TestService_Update_RecalcsBill(t *testing.T) {
	svc, m := newService(t)

	billID := uuid.New()
	existing := &item.Item{ID: uuid.New(), BillID: billID, Amount: 1000, Category: item.CategoryFood}

	m.repo.EXPECT().GetItem(gomock.Any(), existing.ID).Return(existing, nil)
	m.repo.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).Return(nil)
	m.bills.EXPECT().Recalc(gomock.Any(), billID).Return(int64(1500), nil)

	newAmount := int64(1500)
	got, err := svc.Update(context.Background(), existing.ID, item.UpdateParams{Amount: &newAmount})
	require.NoError(t, err)
	assert.Equal(t, int64(1500), got.Amount)
}

func TestService_Update_InvalidAmount(t *testing.T) {
	svc, m := newService(t)

	existing := &item.Item{ID: uuid.New(), BillID: uuid.New(), Amount: 1000, Category: item.CategoryFood}
	m.repo.EXPECT().GetItem(gomock.Any(), existing.ID).Return(existing, nil)

	bad := int64(0)
	_, err := svc.Update(context.Background(), existing.ID, item.UpdateParams{Amount: &bad})
	assert.ErrorIs(t, err, item.ErrInvalidArgument)
}

func TestService_Delete_RecalcsBill(t *testing.T) {
	svc, m := newService(t)

	billID := uuid.New()
	existing := &item.Item{ID: uuid.New(), BillID: billID}

	m.repo.EXPECT().GetItem(gomock.Any(), existing.ID).Return(existing, nil)
	m.repo.EXPECT().DeleteItem(gomock.Any(), existing.ID).Return(nil)
	m.bills.EXPECT().Recalc(gomock.Any(), billID).Return(int64(0), nil)

	require.NoError(t, svc.Delete(context.Background(), existing.ID))
}

func TestService_Get_NotFound(t *testing.T) {
	svc, m := newService(t)

	m.repo.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(nil, item.ErrNotFound)

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, item.ErrNotFound)
}
