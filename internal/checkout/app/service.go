package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/storefront/internal/checkout/domain"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/apperr"
)

type CartReader interface {
	// Selected returns the chosen cart lines, or the whole cart for no ids.
	Selected(ids []string) []CartItem
	RemoveCompletely(ctx context.Context, productID string) error
}

type CartItem struct {
	ProductID     string
	Name          string
	Image         string
	Price         decimal.Decimal
	Quantity      int
	SelectedSize  string
	SelectedColor string
}

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, o orderdomain.NewOrder) (orderdomain.Order, error)
}

type Service struct {
	Cart   CartReader
	Orders OrderPlacer

	log *slog.Logger
}

func NewService(cart CartReader, orders OrderPlacer, log *slog.Logger) *Service {
	return &Service{
		Cart:   cart,
		Orders: orders,
		log:    log,
	}
}

var ErrEmptyCart = apperr.Invalid(domain.MsgEmptyCart)

// Quote prices exactly the selected cart lines. Naming a product that is not
// in the cart is an error rather than a silent drop.
func (s *Service) Quote(ids []string) (domain.Quote, error) {
	items := s.Cart.Selected(ids)
	if missing := notInCart(ids, items); len(missing) > 0 {
		return domain.Quote{}, apperr.Invalidf(domain.MsgNotInCart, strings.Join(missing, ", "))
	}
	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(items))
	total := decimal.Zero
	qty := 0
	for i, it := range items {
		lineTotal := it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		lines[i] = domain.QuoteLine{
			ProductID:     it.ProductID,
			Name:          it.Name,
			Image:         it.Image,
			Quantity:      it.Quantity,
			UnitPrice:     it.Price,
			LineTotal:     lineTotal,
			SelectedSize:  it.SelectedSize,
			SelectedColor: it.SelectedColor,
		}
		total = total.Add(lineTotal)
		qty += it.Quantity
	}

	return domain.Quote{Lines: lines, Quantity: qty, Total: total}, nil
}

func notInCart(ids []string, items []CartItem) []string {
	found := make(map[string]bool, len(items))
	for _, it := range items {
		found[it.ProductID] = true
	}

	var missing []string
	for _, id := range ids {
		if !found[id] {
			found[id] = true
			missing = append(missing, id)
		}
	}
	return missing
}

type PlaceRequest struct {
	UserID        string
	ProductIDs    []string
	Address       orderdomain.ShippingAddress
	PaymentMethod string
}

// Validate runs the shipping address and payment checks that need no backend.
func (s *Service) Validate(req PlaceRequest) error {
	if err := domain.ValidateAddress(req.Address); err != nil {
		return err
	}
	_, err := domain.PaymentMethod(req.PaymentMethod)
	return err
}

// Place validates locally, submits the order and drops the placed lines from
// the cart. A failed submission leaves the cart as it was.
func (s *Service) Place(ctx context.Context, req PlaceRequest) (orderdomain.Order, error) {
	if req.UserID == "" {
		return orderdomain.Order{}, apperr.New(apperr.ErrNotAuthenticated, "Please log in to proceed with checkout.")
	}

	quote, err := s.Quote(req.ProductIDs)
	if err != nil {
		return orderdomain.Order{}, err
	}
	if err := s.Validate(req); err != nil {
		return orderdomain.Order{}, err
	}
	payment, _ := domain.PaymentMethod(req.PaymentMethod)

	placed, err := s.Orders.PlaceOrder(ctx, orderdomain.NewOrder{
		UserID:          req.UserID,
		Products:        quote.OrderLines(),
		ShippingAddress: req.Address,
		PaymentMethod:   payment,
		TotalPrice:      quote.Total,
	})
	if err != nil {
		return orderdomain.Order{}, err
	}

	for _, l := range quote.Lines {
		if err := s.Cart.RemoveCompletely(ctx, l.ProductID); err != nil {
			s.log.Warn("placed item left in cart",
				slog.String("product_id", l.ProductID),
				slog.Any("err", err),
			)
		}
	}

	s.log.Info("order placed",
		slog.String("order_id", placed.ID),
		slog.Int("lines", len(quote.Lines)),
		slog.String("total", quote.Total.StringFixed(2)),
	)
	return placed, nil
}
