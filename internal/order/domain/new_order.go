package domain

import "github.com/shopspring/decimal"

const DefaultPaymentMethod = "Cash on Delivery"

// NewOrder is the body sent when placing an order. Status is always Pending.
type NewOrder struct {
	UserID          string
	Products        []Line
	ShippingAddress ShippingAddress
	PaymentMethod   string
	TotalPrice      decimal.Decimal
}
