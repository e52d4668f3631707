package main

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
	checkoutdomain "github.com/dwikikusuma/storefront/internal/checkout/domain"
	"github.com/dwikikusuma/storefront/pkg/apperr"
)

func cmdCart(ctx context.Context, a *app, args []string) error {
	fs := newFlags("cart")
	items := fs.String("items", "", "comma separated product ids to total")
	if err := parse(fs, args); err != nil {
		return err
	}

	lines := a.cart.Items()
	if len(lines) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return nil
	}

	ids := splitList(*items)
	var missing []string
	for _, id := range ids {
		if _, ok := a.cart.Lookup(id); !ok && !slices.Contains(missing, id) {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return apperr.Invalidf(checkoutdomain.MsgNotInCart, strings.Join(missing, ", "))
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSIZE\tCOLOUR\tQTY\tPRICE\tSUBTOTAL")
	for _, li := range lines {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			li.ProductID, li.Name, li.SelectedSize, li.SelectedColor, li.Quantity, money(li.Price), money(li.LineTotal()))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	totals := cartdomain.Sum(a.cart.Selected(ids))
	label := "Cart"
	if len(ids) > 0 {
		label = "Selected"
	}
	fmt.Fprintf(a.out, "\n%s: %d line(s), %d item(s), total %s\n", label, totals.Lines, totals.Quantity, money(totals.Price))
	return nil
}

func cmdCartAdd(ctx context.Context, a *app, args []string) error {
	fs := newFlags("cart-add")
	qty := fs.Int("qty", 1, "quantity")
	size := fs.String("size", "", "size")
	color := fs.String("color", "", "colour")
	id, err := parseWithID(fs, args, "product id")
	if err != nil {
		return err
	}

	inCart := 0
	if li, ok := a.cart.Lookup(id); ok {
		inCart = li.Quantity
	}

	sel, err := a.catalog.PrepareLine(ctx, id, inCart, *qty, *size, *color)
	if err != nil {
		return err
	}
	if err := a.cart.AddQuantity(ctx, lineFromSelection(sel), sel.Quantity); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Product added to cart!")
	fmt.Fprintf(a.out, "Cart: %d item(s)\n", a.cart.TotalQuantity())
	return nil
}

func cmdCartRemove(ctx context.Context, a *app, args []string) error {
	fs := newFlags("cart-remove")
	all := fs.Bool("all", false, "remove every unit")
	id, err := parseWithID(fs, args, "product id")
	if err != nil {
		return err
	}

	if _, ok := a.cart.Lookup(id); !ok {
		fmt.Fprintln(a.out, "That product is not in your cart.")
		return nil
	}

	if *all {
		err = a.cart.RemoveCompletely(ctx, id)
	} else {
		err = a.cart.Remove(ctx, id)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Cart: %d item(s)\n", a.cart.TotalQuantity())
	return nil
}

func cmdCartClear(ctx context.Context, a *app, args []string) error {
	if err := parse(newFlags("cart-clear"), args); err != nil {
		return err
	}
	if err := a.cart.Clear(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Your cart is empty.")
	return nil
}

func lineFromSelection(sel catalogdomain.Selection) cartdomain.LineItem {
	return cartdomain.LineItem{
		ProductID:     sel.Product.ID,
		Name:          sel.Product.Name,
		Price:         sel.Product.EffectivePrice(),
		Image:         sel.Product.Image,
		SelectedSize:  sel.Size,
		SelectedColor: sel.Color,
	}
}
