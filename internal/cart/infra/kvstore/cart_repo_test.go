package kvstore

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/dwikikusuma/storefront/internal/storage"
	"github.com/dwikikusuma/storefront/pkg/logger"
)

func TestCartRepoLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing stored -> empty", func(t *testing.T) {
		repo := NewCartRepo(storage.NewMemoryStore(), logger.Discard())
		c, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, c.Items)
	})

	t.Run("malformed json -> empty, no error", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, CartKey, `[{"_id": "p1", "quantity":`))

		c, err := NewCartRepo(store, logger.Discard()).Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, c.Items)
	})

	t.Run("null -> empty", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, CartKey, `null`))

		c, err := NewCartRepo(store, logger.Discard()).Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, c.Items)
	})

	t.Run("numeric prices from the browser format -> decoded", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, CartKey,
			`[{"_id":"p1","name":"Watch","price":1299.5,"quantity":2,"selectedColor":"Black"}]`))

		c, err := NewCartRepo(store, logger.Discard()).Load(ctx)
		require.NoError(t, err)
		require.Len(t, c.Items, 1)
		assert.True(t, decimal.RequireFromString("1299.5").Equal(c.Items[0].Price))
		assert.Equal(t, "Black", c.Items[0].SelectedColor)
	})
}

func TestCartRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewCartRepo(store, logger.Discard())

	require.NoError(t, repo.Save(ctx, domain.Cart{}))
	raw, err := store.Get(ctx, CartKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	in := domain.Cart{Items: []domain.LineItem{
		{ProductID: "p1", Name: "Bag", Price: decimal.RequireFromString("49.90"), Quantity: 3},
	}}
	require.NoError(t, repo.Save(ctx, in))

	raw, err = store.Get(ctx, CartKey)
	require.NoError(t, err)
	assert.Contains(t, raw, `"price":49.9`)
	assert.JSONEq(t, `[{"_id":"p1","name":"Bag","price":49.9,"quantity":3}]`, raw)

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 3, out.Items[0].Quantity)
	assert.True(t, in.Items[0].Price.Equal(out.Items[0].Price))
}
