package main

import (
	"context"
	"fmt"

	authapp "github.com/dwikikusuma/storefront/internal/auth/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
)

func cmdCheckout(ctx context.Context, a *app, args []string) error {
	fs := newFlags("checkout")
	items := fs.String("items", "", "comma separated product ids; empty means the whole cart")
	req := checkoutapp.PlaceRequest{}
	fs.StringVar(&req.Address.PersonName, "name", "", "recipient name (defaults to your username)")
	fs.StringVar(&req.Address.MobileNumber, "mobile", "", "recipient mobile (defaults to your account's)")
	fs.StringVar(&req.Address.Address, "address", "", "street address")
	fs.StringVar(&req.Address.Pincode, "pincode", "", "6 digit pincode")
	fs.StringVar(&req.Address.State, "state", "", "state")
	fs.StringVar(&req.PaymentMethod, "payment", "", "Cash on Delivery, Credit/Debit Card or Google Pay")
	quoteOnly := fs.Bool("quote", false, "only show the order summary")
	if err := parse(fs, args); err != nil {
		return err
	}
	req.ProductIDs = splitList(*items)

	q, err := a.checkout.Quote(req.ProductIDs)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Order summary")
	for _, l := range q.Lines {
		fmt.Fprintf(a.out, "  %dx %s  %s\n", l.Quantity, l.Name, money(l.LineTotal))
	}
	fmt.Fprintf(a.out, "Total (%d item(s)): %s\n", q.Quantity, money(q.Total))
	if *quoteOnly {
		return nil
	}

	current := a.session.Current()
	if current == nil {
		return authapp.ErrNotAuthenticated
	}
	if req.Address.PersonName == "" {
		req.Address.PersonName = current.Username
	}
	if req.Address.MobileNumber == "" {
		req.Address.MobileNumber = current.MobileNumber
	}
	if err := a.checkout.Validate(req); err != nil {
		return err
	}

	user, err := a.session.RequireUser(ctx)
	if err != nil {
		return err
	}
	req.UserID = user.ID

	placed, err := a.checkout.Place(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Order placed successfully!")
	fmt.Fprintf(a.out, "Order #%s: storefront order %s\n", placed.ShortID(), placed.ID)
	return nil
}
