package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

// Service is the cart holder: the in-memory cart plus its persisted copy.
// Every mutation writes the whole cart back (last write wins).
type Service struct {
	mu   sync.Mutex
	repo CartRepo
	log  *slog.Logger
	cart domain.Cart
}

// NewService rehydrates the cart from repo. A repo failure starts an empty
// cart rather than failing the caller.
func NewService(ctx context.Context, repo CartRepo, log *slog.Logger) *Service {
	cart, err := repo.Load(ctx)
	if err != nil {
		log.Warn("cart load failed, starting empty", slog.Any("err", err))
		cart = domain.Cart{}
	}

	return &Service{
		repo: repo,
		log:  log,
		cart: cart,
	}
}

func (s *Service) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.cart.Items)
}

func (s *Service) Lookup(productID string) (domain.LineItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lookup(productID)
}

func (s *Service) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalQuantity()
}

// Selected returns the chosen items, or the whole cart when ids is empty.
func (s *Service) Selected(ids []string) []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(ids) == 0 {
		return slices.Clone(s.cart.Items)
	}
	return s.cart.Select(ids)
}

func (s *Service) Add(ctx context.Context, item domain.LineItem) error {
	return s.AddQuantity(ctx, item, 1)
}

func (s *Service) AddQuantity(ctx context.Context, item domain.LineItem, n int) error {
	return s.mutate(ctx, func(c *domain.Cart) error {
		return c.AddQuantity(item, n)
	})
}

func (s *Service) Remove(ctx context.Context, productID string) error {
	return s.mutate(ctx, func(c *domain.Cart) error {
		c.Remove(productID)
		return nil
	})
}

func (s *Service) RemoveCompletely(ctx context.Context, productID string) error {
	return s.mutate(ctx, func(c *domain.Cart) error {
		c.RemoveCompletely(productID)
		return nil
	})
}

func (s *Service) Clear(ctx context.Context) error {
	return s.mutate(ctx, func(c *domain.Cart) error {
		c.Clear()
		return nil
	})
}

func (s *Service) mutate(ctx context.Context, fn func(c *domain.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(&s.cart); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, domain.Cart{Items: slices.Clone(s.cart.Items)}); err != nil {
		s.log.Warn("cart save failed", slog.Any("err", err))
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
