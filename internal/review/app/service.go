package app

import (
	"context"
	"log/slog"

	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/internal/review/domain"
)

type Service struct {
	orders  OrderHistory
	reviews ReviewRepo
	log     *slog.Logger
}

func NewService(orders OrderHistory, reviews ReviewRepo, log *slog.Logger) *Service {
	return &Service{orders: orders, reviews: reviews, log: log}
}

// Eligibility checks the user's reviews on p and their confirmed purchases.
// A failed history lookup counts as not purchased.
func (s *Service) Eligibility(ctx context.Context, userID string, p catalogdomain.Product) domain.Eligibility {
	if userID == "" {
		return domain.Eligibility{}
	}

	e := domain.Eligibility{AlreadyReviewed: p.ReviewedBy(userID)}

	history, err := s.orders.ListOrders(ctx, userID, orderdomain.BucketHistory)
	if err != nil {
		s.log.Warn("could not verify purchase history", slog.String("user_id", userID), slog.Any("err", err))
		return e
	}
	e.CanReview = domain.Purchased(history, p.ID)
	return e
}

func (s *Service) Submit(ctx context.Context, userID string, p catalogdomain.Product, rating int, comment string) error {
	r := domain.NewReview{ProductID: p.ID, UserID: userID, Rating: rating, Comment: comment}.Normalized()

	if err := s.Eligibility(ctx, userID, p).Validate(r); err != nil {
		return err
	}
	if err := s.reviews.SubmitReview(ctx, r); err != nil {
		return err
	}

	s.log.Info("review submitted", slog.String("product_id", p.ID), slog.Int("rating", rating))
	return nil
}
