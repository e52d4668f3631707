package domain

import (
	"slices"

	"github.com/dwikikusuma/storefront/pkg/apperr"
)

const (
	MsgOutOfStock = "This product is currently out of stock."
	MsgAllInCart  = "All available items of this product are already in your cart."
)

// Selection is a validated add-to-cart request.
type Selection struct {
	Product  Product
	Quantity int
	Size     string
	Color    string
}

// PrepareSelection checks stock and variant choice before a product goes into
// the cart. inCart units already in the cart count against stock. A single
// offered size or colour is picked automatically.
func PrepareSelection(p Product, inCart, qty int, size, color string) (Selection, error) {
	if qty < 1 {
		qty = 1
	}
	if !p.InStock() {
		return Selection{}, apperr.Invalid(MsgOutOfStock)
	}

	available := p.Stock - max(inCart, 0)
	if available <= 0 {
		return Selection{}, apperr.Invalid(MsgAllInCart)
	}
	if qty > available {
		return Selection{}, apperr.Invalidf("Cannot add %d to cart. Only %d items available.", qty, available)
	}

	size, err := pickVariant("size", p.Sizes, size)
	if err != nil {
		return Selection{}, err
	}
	color, err = pickVariant("color", p.Colors, color)
	if err != nil {
		return Selection{}, err
	}

	return Selection{Product: p, Quantity: qty, Size: size, Color: color}, nil
}

func pickVariant(kind string, offered []string, chosen string) (string, error) {
	switch {
	case len(offered) == 0:
		return chosen, nil
	case chosen == "" && len(offered) == 1:
		return offered[0], nil
	case chosen == "":
		return "", apperr.Invalidf("Please select a %s before adding to cart.", kind)
	case !slices.Contains(offered, chosen):
		return "", apperr.Invalidf("%s %q is not available for this product.", kind, chosen)
	}
	return chosen, nil
}
