package app

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/pkg/apperr"
)

const DefaultRelatedLimit = 6

type Service struct {
	repo         ProductRepo
	log          *slog.Logger
	relatedLimit int
}

func NewService(repo ProductRepo, relatedLimit int, log *slog.Logger) *Service {
	if relatedLimit <= 0 {
		relatedLimit = DefaultRelatedLimit
	}
	return &Service{
		repo:         repo,
		log:          log,
		relatedLimit: relatedLimit,
	}
}

// List fetches the whole catalog and narrows it with f.
func (s *Service) List(ctx context.Context, f domain.Filter) ([]domain.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Apply(products, f), nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, apperr.Invalid("product id is required")
	}
	return s.repo.GetProduct(ctx, id)
}

// Brands returns the brand facets offered for category.
func (s *Service) Brands(ctx context.Context, category string) ([]string, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Brands(products, category), nil
}

// Related picks up to n other products at random. Listing failures yield
// no suggestions.
func (s *Service) Related(ctx context.Context, id string, n int) []domain.Product {
	if n <= 0 {
		n = s.relatedLimit
	}

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		s.log.Warn("related products unavailable", "product_id", id, "err", err)
		return nil
	}

	others := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			others = append(others, p)
		}
	}
	rand.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})

	if len(others) > n {
		others = others[:n]
	}
	return others
}

// PrepareLine loads the product and validates an add-to-cart request for it,
// given inCart units already in the cart.
func (s *Service) PrepareLine(ctx context.Context, id string, inCart, qty int, size, color string) (domain.Selection, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return domain.Selection{}, err
	}
	return domain.PrepareSelection(p, inCart, qty, size, color)
}
