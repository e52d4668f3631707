package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) Selected(ids []string) []checkoutapp.CartItem {
	lines := r.svc.Selected(ids)

	items := make([]checkoutapp.CartItem, 0, len(lines))
	for _, it := range lines {
		items = append(items, checkoutapp.CartItem{
			ProductID:     it.ProductID,
			Name:          it.Name,
			Image:         it.Image,
			Price:         it.Price,
			Quantity:      it.Quantity,
			SelectedSize:  it.SelectedSize,
			SelectedColor: it.SelectedColor,
		})
	}
	return items
}

func (r *CartServiceReader) RemoveCompletely(ctx context.Context, productID string) error {
	return r.svc.RemoveCompletely(ctx, productID)
}
