package app

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/dwikikusuma/storefront/pkg/logger"
)

type fakeRepo struct {
	loaded  domain.Cart
	loadErr error
	saveErr error
	saved   []domain.Cart
}

func (r *fakeRepo) Load(ctx context.Context) (domain.Cart, error) { return r.loaded, r.loadErr }
func (r *fakeRepo) Save(ctx context.Context, c domain.Cart) error {
	r.saved = append(r.saved, c)
	return r.saveErr
}

func shoe() domain.LineItem {
	return domain.LineItem{ProductID: "shoe", Name: "Runner", Price: decimal.NewFromInt(2500)}
}

func TestServiceRehydrates(t *testing.T) {
	repo := &fakeRepo{loaded: domain.Cart{Items: []domain.LineItem{{ProductID: "p1", Quantity: 2}}}}
	svc := NewService(context.Background(), repo, logger.Discard())

	assert.Equal(t, 2, svc.TotalQuantity())
}

func TestServiceLoadFailureStartsEmpty(t *testing.T) {
	repo := &fakeRepo{loadErr: errors.New("disk gone")}
	svc := NewService(context.Background(), repo, logger.Discard())

	assert.Empty(t, svc.Items())
}

func TestServicePersistsEveryMutation(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := NewService(ctx, repo, logger.Discard())

	require.NoError(t, svc.Add(ctx, shoe()))
	require.NoError(t, svc.AddQuantity(ctx, shoe(), 2))
	require.NoError(t, svc.Remove(ctx, "shoe"))

	require.Len(t, repo.saved, 3)
	last := repo.saved[2]
	require.Len(t, last.Items, 1)
	assert.Equal(t, 2, last.Items[0].Quantity)

	require.NoError(t, svc.RemoveCompletely(ctx, "shoe"))
	assert.Empty(t, svc.Items())

	require.NoError(t, svc.Add(ctx, shoe()))
	require.NoError(t, svc.Clear(ctx))
	assert.Zero(t, svc.TotalQuantity())
}

func TestServiceSaveFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{saveErr: errors.New("locked")}
	svc := NewService(ctx, repo, logger.Discard())

	err := svc.Add(ctx, shoe())
	require.Error(t, err)
	assert.Equal(t, 1, svc.TotalQuantity())
}

func TestServiceInvalidItemIsNotSaved(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := NewService(ctx, repo, logger.Discard())

	require.Error(t, svc.Add(ctx, domain.LineItem{}))
	assert.Empty(t, repo.saved)
}

func TestServiceSelected(t *testing.T) {
	ctx := context.Background()
	svc := NewService(ctx, &fakeRepo{}, logger.Discard())
	require.NoError(t, svc.Add(ctx, shoe()))
	require.NoError(t, svc.Add(ctx, domain.LineItem{ProductID: "belt", Price: decimal.NewFromInt(900)}))

	t.Run("no ids -> whole cart", func(t *testing.T) {
		assert.Len(t, svc.Selected(nil), 2)
	})

	t.Run("ids -> only those", func(t *testing.T) {
		got := svc.Selected([]string{"belt"})
		require.Len(t, got, 1)
		assert.Equal(t, "belt", got[0].ProductID)
	})
}

func TestServiceItemsIsACopy(t *testing.T) {
	ctx := context.Background()
	svc := NewService(ctx, &fakeRepo{}, logger.Discard())
	require.NoError(t, svc.Add(ctx, shoe()))

	items := svc.Items()
	items[0].Quantity = 99

	got, ok := svc.Lookup("shoe")
	require.True(t, ok)
	assert.Equal(t, 1, got.Quantity)
}
