package backend

import (
	authapp "github.com/dwikikusuma/storefront/internal/auth/app"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	reviewapp "github.com/dwikikusuma/storefront/internal/review/app"
)

var (
	_ authapp.Authenticator   = (*Client)(nil)
	_ catalogapp.ProductRepo  = (*Client)(nil)
	_ orderapp.OrderRepo      = (*Client)(nil)
	_ checkoutapp.OrderPlacer = (*Client)(nil)
	_ reviewapp.OrderHistory  = (*Client)(nil)
	_ reviewapp.ReviewRepo    = (*Client)(nil)
)
