package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/order/domain"
)

type OrderRepo interface {
	ListOrders(ctx context.Context, userID string, bucket domain.Bucket) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (domain.Order, error)
	CancelOrder(ctx context.Context, id, userID string) (domain.Order, error)
	ConfirmReceived(ctx context.Context, id, userID string) (domain.Order, error)
}
