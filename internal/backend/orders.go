package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dwikikusuma/storefront/internal/order/domain"
)

type orderLine struct {
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	Image         string  `json:"image,omitempty"`
	SelectedSize  string  `json:"selectedSize,omitempty"`
	SelectedColor string  `json:"selectedColor,omitempty"`
}

type placeOrderRequest struct {
	UserID          string                 `json:"userId"`
	Products        []orderLine            `json:"products"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	TotalPrice      float64                `json:"totalPrice"`
	OrderStatus     domain.Status          `json:"orderStatus"`
}

type ownerRequest struct {
	UserID string `json:"userId"`
}

var bucketFallback = map[domain.Bucket]string{
	domain.BucketActive:  "Failed to fetch active orders",
	domain.BucketHistory: "Failed to fetch order history",
}

// PlaceOrder submits a new order. Prices go over the wire as JSON numbers.
func (c *Client) PlaceOrder(ctx context.Context, o domain.NewOrder) (domain.Order, error) {
	req := placeOrderRequest{
		UserID:          o.UserID,
		Products:        make([]orderLine, 0, len(o.Products)),
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		TotalPrice:      o.TotalPrice.InexactFloat64(),
		OrderStatus:     domain.StatusPending,
	}
	for _, l := range o.Products {
		req.Products = append(req.Products, orderLine{
			ProductID:     l.ProductID.String(),
			Name:          l.Name,
			Quantity:      l.Quantity,
			Price:         l.Price.InexactFloat64(),
			Image:         l.Image,
			SelectedSize:  l.SelectedSize,
			SelectedColor: l.SelectedColor,
		})
	}

	b, err := c.do(ctx, http.MethodPost, "/api/orders", req, "Failed to place order.")
	if err != nil {
		return domain.Order{}, err
	}
	return decodeOrder(b)
}

func (c *Client) ListOrders(ctx context.Context, userID string, bucket domain.Bucket) ([]domain.Order, error) {
	path := fmt.Sprintf("/api/orders/user/%s?status=%s", url.PathEscape(userID), url.QueryEscape(string(bucket)))

	var orders []domain.Order
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &orders, bucketFallback[bucket]); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	b, err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(id), nil, "")
	if err != nil {
		return domain.Order{}, err
	}
	return decodeOrder(b)
}

func (c *Client) CancelOrder(ctx context.Context, id, userID string) (domain.Order, error) {
	return c.updateOrder(ctx, id, "cancel", userID, "Failed to cancel order.")
}

func (c *Client) ConfirmReceived(ctx context.Context, id, userID string) (domain.Order, error) {
	return c.updateOrder(ctx, id, "confirm-received", userID, "Failed to confirm receipt.")
}

func (c *Client) updateOrder(ctx context.Context, id, action, userID, fallback string) (domain.Order, error) {
	path := fmt.Sprintf("/api/orders/%s/%s", url.PathEscape(id), action)
	b, err := c.do(ctx, http.MethodPut, path, ownerRequest{UserID: userID}, fallback)
	if err != nil {
		return domain.Order{}, err
	}
	return decodeOrder(b)
}

func decodeOrder(b []byte) (domain.Order, error) {
	var o domain.Order
	if err := json.Unmarshal(unwrap(b, "order"), &o); err != nil {
		return domain.Order{}, fmt.Errorf("decode order: %w", err)
	}
	return o, nil
}
