package app

import (
	"context"

	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/internal/review/domain"
)

type OrderHistory interface {
	ListOrders(ctx context.Context, userID string, bucket orderdomain.Bucket) ([]orderdomain.Order, error)
}

type ReviewRepo interface {
	SubmitReview(ctx context.Context, r domain.NewReview) error
}
