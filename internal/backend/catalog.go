package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	b, err := c.do(ctx, http.MethodGet, "/api/products", nil, "")
	if err != nil {
		return nil, err
	}

	raw := unwrap(b, "products")
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	b, err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(id), nil, "")
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			apiErr.Message = "Failed to fetch product details."
		}
		return domain.Product{}, err
	}

	var p domain.Product
	if err := json.Unmarshal(unwrap(b, "product"), &p); err != nil {
		return domain.Product{}, fmt.Errorf("decode product: %w", err)
	}
	return p, nil
}

// unwrap returns the value under key when the body is an envelope object
// holding it, and the body itself otherwise.
func unwrap(body []byte, key string) []byte {
	if v := gjson.GetBytes(body, key); v.Exists() && (v.IsArray() || v.IsObject()) {
		return []byte(v.Raw)
	}
	return body
}
