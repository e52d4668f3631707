package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/dwikikusuma/storefront/internal/storage"
)

const CartKey = "cartItems"

type CartRepo struct {
	store storage.Store
	log   *slog.Logger
}

func NewCartRepo(store storage.Store, log *slog.Logger) *CartRepo {
	return &CartRepo{store: store, log: log}
}

// Load returns an empty cart when nothing is stored or the stored value does
// not parse. Only storage failures are reported.
func (r *CartRepo) Load(ctx context.Context) (domain.Cart, error) {
	raw, err := r.store.Get(ctx, CartKey)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, err
	}

	var items []domain.LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		r.log.Warn("stored cart is malformed, starting empty", slog.Any("err", err))
		return domain.Cart{}, nil
	}

	return domain.Normalize(items), nil
}

func (r *CartRepo) Save(ctx context.Context, cart domain.Cart) error {
	items := cart.Items
	if items == nil {
		items = []domain.LineItem{}
	}

	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	return r.store.Set(ctx, CartKey, string(b))
}
