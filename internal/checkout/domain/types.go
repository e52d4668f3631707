package domain

import (
	"regexp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/apperr"
	"github.com/dwikikusuma/storefront/pkg/jsonid"
)

var pincodeRe = regexp.MustCompile(`^\d{6}$`)

var PaymentMethods = []string{orderdomain.DefaultPaymentMethod, "Credit/Debit Card", "Google Pay"}

const (
	MsgEmptyCart       = "Your cart is empty. Please add items before checking out."
	MsgNotInCart       = "Not in your cart: %s."
	MsgAddressRequired = "Please fill in all shipping address details."
	MsgBadPincode      = "Pincode must be a 6-digit number."
)

type QuoteLine struct {
	ProductID     string
	Name          string
	Image         string
	Quantity      int
	UnitPrice     decimal.Decimal
	LineTotal     decimal.Decimal
	SelectedSize  string
	SelectedColor string
}

type Quote struct {
	Lines    []QuoteLine
	Quantity int
	Total    decimal.Decimal
}

// OrderLines converts the quote into the product list of an order.
func (q Quote) OrderLines() []orderdomain.Line {
	lines := make([]orderdomain.Line, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, orderdomain.Line{
			ProductID:     jsonid.ID(l.ProductID),
			Name:          l.Name,
			Quantity:      l.Quantity,
			Price:         l.UnitPrice,
			Image:         l.Image,
			SelectedSize:  l.SelectedSize,
			SelectedColor: l.SelectedColor,
		})
	}
	return lines
}

// ValidateAddress requires every field and a 6-digit pincode.
func ValidateAddress(a orderdomain.ShippingAddress) error {
	for _, f := range []string{a.PersonName, a.MobileNumber, a.Address, a.Pincode, a.State} {
		if strings.TrimSpace(f) == "" {
			return apperr.Invalid(MsgAddressRequired)
		}
	}
	if !pincodeRe.MatchString(a.Pincode) {
		return apperr.Invalid(MsgBadPincode)
	}
	return nil
}

// PaymentMethod returns the method to use, defaulting to cash on delivery.
func PaymentMethod(m string) (string, error) {
	m = strings.TrimSpace(m)
	if m == "" {
		return orderdomain.DefaultPaymentMethod, nil
	}
	if !slices.Contains(PaymentMethods, m) {
		return "", apperr.Invalidf("Unsupported payment method %q.", m)
	}
	return m, nil
}
