package bill_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/fatura/internal/bill"
	"github.com/MrJamesThe3rd/fatura/internal/card"
)

type serviceMocks struct {
	repo  *bill.MockRepository
	cards *bill.MockCardDirectory
	items *bill.MockItemSummer
}

func newService(t *testing.T) (*bill.Service, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		repo:  bill.NewMockRepository(ctrl),
		cards: bill.NewMockCardDirectory(ctrl),
		items: bill.NewMockItemSummer(ctrl),
	}

	return bill.NewService(m.repo, m.cards, m.items), m
}

func TestService_Resolve_ExistingBill(t *testing.T) {
	svc, m := newService(t)

	cardID := uuid.New()
	existing := &bill.Bill{ID: uuid.New(), CardID: cardID, Month: 3, Year: 2024, Status: bill.StatusOpen}

	// No upsert and no card lookup when the bill already exists.
	m.repo.EXPECT().GetByCardAndMonth(gomock.Any(), cardID, 3, 2024).Return(existing, nil)

	got, err := svc.Resolve(context.Background(), cardID, 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
}

func TestService_Resolve_CreatesWhenAbsent(t *testing.T) {
	svc, m := newService(t)

	cardID := uuid.New()
	c := &card.Card{ID: cardID, Name: "Visa", ClosingDay: 5, DueDay: 15}

	m.repo.EXPECT().GetByCardAndMonth(gomock.Any(), cardID, 3, 2024).Return(nil, bill.ErrNotFound)
	m.cards.EXPECT().GetCard(gomock.Any(), cardID).Return(c, nil)
	m.repo.EXPECT().
		UpsertBill(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *bill.Bill) (*bill.Bill, error) {
			assert.Equal(t, cardID, b.CardID)
			assert.Equal(t, 3, b.Month)
			assert.Equal(t, 2024, b.Year)
			assert.Equal(t, bill.StatusOpen, b.Status)
			assert.Zero(t, b.TotalAmount)

			b.ID = uuid.New()
			return b, nil
		})

	got, err := svc.Resolve(context.Background(), cardID, 3, 2024)
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
}

func TestService_Resolve_Idempotent(t *testing.T) {
	svc, m := newService(t)

	cardID := uuid.New()
	c := &card.Card{ID: cardID, ClosingDay: 5, DueDay: 15}
	billID := uuid.New()

	first := m.repo.EXPECT().GetByCardAndMonth(gomock.Any(), cardID, 7, 2024).Return(nil, bill.ErrNotFound)
	m.cards.EXPECT().GetCard(gomock.Any(), cardID).Return(c, nil)
	m.repo.EXPECT().
		UpsertBill(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *bill.Bill) (*bill.Bill, error) {
			b.ID = billID
			return b, nil
		})

	created := &bill.Bill{ID: billID, CardID: cardID, Month: 7, Year: 2024, Status: bill.StatusOpen}
	m.repo.EXPECT().GetByCardAndMonth(gomock.Any(), cardID, 7, 2024).Return(created, nil).After(first)

	a, err := svc.Resolve(context.Background(), cardID, 7, 2024)
	require.NoError(t, err)

	b, err := svc.Resolve(context.Background(), cardID, 7, 2024)
	require.NoError(t, err)

	assert.Equal(t, a.ID, b.ID)
}

func TestService_Resolve_InvalidMonth(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Resolve(context.Background(), uuid.New(), 13, 2024)
	assert.ErrorIs(t, err, bill.ErrInvalidMonth)

	_, err = svc.Resolve(context.Background(), uuid.New(), 0, 2024)
	assert.ErrorIs(t, err, bill.ErrInvalidMonth)
}

func TestService_Resolve_CardNotFound(t *testing.T) {
	svc, m := newService(t)

	cardID := uuid.New()
	m.repo.EXPECT().GetByCardAndMonth(gomock.Any(), cardID, 3, 2024).Return(nil, bill.ErrNotFound)
	m.cards.EXPECT().GetCard(gomock.Any(), cardID).Return(nil, card.ErrNotFound)

	_, err := svc.Resolve(context.Background(), cardID, 3, 2024)
	assert.ErrorIs(t, err, card.ErrNotFound)
}

func TestService_Recalc(t *testing.T) {
	svc, m := newService(t)

	billID := uuid.New()
	m.items.EXPECT().SumByBill(gomock.Any(), billID).Return(int64(12_345), nil)
	m.repo.EXPECT().UpdateTotal(gomock.Any(), billID, int64(12_345)).Return(nil)

	sum, err := svc.Recalc(context.Background(), billID)
	require.NoError(t, err)
	assert.Equal(t, int64(12_345), sum)
}

func TestService_Recalc_EmptyBillPersistsZero(t *testing.T) {
	svc, m := newService(t)

	billID := uuid.New()
	m.items.EXPECT().SumByBill(gomock.Any(), billID).Return(int64(0), nil)
	m.repo.EXPECT().UpdateTotal(gomock.Any(), billID, int64(0)).Return(nil)

	sum, err := svc.Recalc(context.Background(), billID)
	require.NoError(t, err)
	assert.Zero(t, sum)
}

func TestService_Recalc_SumError(t *testing.T) {
	svc, m := newService(t)

	m.items.EXPECT().SumByBill(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db error"))

	_, err := svc.Recalc(context.Background(), uuid.New())
	assert.Error(t, err)
}
