package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/apperr"
)

var ErrForbidden = apperr.New(apperr.ErrForbidden, "You do not have permission to view this order.")

type Service struct {
	repo OrderRepo
	log  *slog.Logger
}

func NewService(repo OrderRepo, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) List(ctx context.Context, userID string, bucket domain.Bucket) ([]domain.Order, error) {
	if userID == "" {
		return nil, apperr.New(apperr.ErrNotAuthenticated, "You must be logged in to view your orders.")
	}
	if !bucket.Valid() {
		return nil, apperr.Invalidf("unknown order bucket %q", bucket)
	}
	return s.repo.ListOrders(ctx, userID, bucket)
}

// Overview holds both order buckets. A failed bucket keeps its error and
// leaves the other one intact.
type Overview struct {
	Active     []domain.Order
	History    []domain.Order
	ActiveErr  error
	HistoryErr error
}

func (o Overview) Err() error {
	switch {
	case o.ActiveErr != nil && o.HistoryErr != nil:
		return fmt.Errorf("Failed to load active orders: %w. Also failed to load order history: %w.", o.ActiveErr, o.HistoryErr)
	case o.ActiveErr != nil:
		return fmt.Errorf("Failed to load active orders: %w.", o.ActiveErr)
	case o.HistoryErr != nil:
		return fmt.Errorf("Failed to load order history: %w.", o.HistoryErr)
	}
	return nil
}

// Overview fetches the active and history buckets concurrently.
func (s *Service) Overview(ctx context.Context, userID string) (Overview, error) {
	if userID == "" {
		return Overview{}, apperr.New(apperr.ErrNotAuthenticated, "You must be logged in to view your orders.")
	}

	var ov Overview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ov.Active, ov.ActiveErr = s.repo.ListOrders(gctx, userID, domain.BucketActive)
		return nil
	})
	g.Go(func() error {
		ov.History, ov.HistoryErr = s.repo.ListOrders(gctx, userID, domain.BucketHistory)
		return nil
	})
	_ = g.Wait()

	if ov.ActiveErr != nil {
		s.log.Warn("active orders failed", slog.String("user_id", userID), slog.Any("err", ov.ActiveErr))
	}
	if ov.HistoryErr != nil {
		s.log.Warn("order history failed", slog.String("user_id", userID), slog.Any("err", ov.HistoryErr))
	}
	return ov, nil
}

// Get loads an order that belongs to userID.
func (s *Service) Get(ctx context.Context, userID, id string) (domain.Order, error) {
	if userID == "" {
		return domain.Order{}, apperr.New(apperr.ErrNotAuthenticated, "You must be logged in to view order details.")
	}
	if strings.TrimSpace(id) == "" {
		return domain.Order{}, apperr.Invalid("No order ID provided.")
	}

	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if !o.OwnedBy(userID) {
		return domain.Order{}, ErrForbidden
	}
	return o, nil
}

func (s *Service) Cancel(ctx context.Context, userID string, o domain.Order) (domain.Order, error) {
	if !o.OwnedBy(userID) {
		return domain.Order{}, ErrForbidden
	}
	if !o.CanCancel() {
		return domain.Order{}, apperr.Invalidf("Order cannot be cancelled while %s (%s).", o.Status, o.DeliveryOption)
	}

	updated, err := s.repo.CancelOrder(ctx, o.ID, userID)
	if err != nil {
		return domain.Order{}, err
	}
	s.log.Info("order cancelled", slog.String("order_id", o.ID))
	return updated, nil
}

func (s *Service) ConfirmReceived(ctx context.Context, userID string, o domain.Order) (domain.Order, error) {
	if !o.OwnedBy(userID) {
		return domain.Order{}, ErrForbidden
	}
	if !o.CanConfirmReceived() {
		return domain.Order{}, apperr.Invalidf("Order cannot be confirmed while %s (%s).", o.Status, o.DeliveryOption)
	}

	updated, err := s.repo.ConfirmReceived(ctx, o.ID, userID)
	if err != nil {
		return domain.Order{}, err
	}
	s.log.Info("order receipt confirmed", slog.String("order_id", o.ID))
	return updated, nil
}
