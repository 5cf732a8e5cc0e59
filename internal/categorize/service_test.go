package categorize_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/fatura/internal/categorize"
	"github.com/MrJamesThe3rd/fatura/internal/item"
)

func TestService_Suggest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := categorize.NewMockRepository(ctrl)
	repo.EXPECT().FindCategory(gomock.Any(), "UBER TRIP 123").Return(item.CategoryTransport, nil)

	svc := categorize.NewService(repo)

	got, err := svc.Suggest(context.Background(), "UBER TRIP 123")
	require.NoError(t, err)
	assert.Equal(t, item.CategoryTransport, got)
}

func TestService_Suggest_NoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := categorize.NewMockRepository(ctrl)
	repo.EXPECT().FindCategory(gomock.Any(), "MYSTERY SHOP").Return(item.Category(""), nil)

	svc := categorize.NewService(repo)

	got, err := svc.Suggest(context.Background(), "MYSTERY SHOP")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_Learn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := categorize.NewMockRepository(ctrl)
	repo.EXPECT().CreateMapping(gomock.Any(), "UBER", item.CategoryTransport).Return(nil)

	svc := categorize.NewService(repo)

	require.NoError(t, svc.Learn(context.Background(), "UBER", item.CategoryTransport))
}

func TestService_Learn_UnknownCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := categorize.NewMockRepository(ctrl)
	svc := categorize.NewService(repo)

	err := svc.Learn(context.Background(), "UBER", "gadgets")
	assert.ErrorIs(t, err, item.ErrInvalidArgument)
}
