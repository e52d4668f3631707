package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/dwikikusuma/storefront/internal/order/domain"
)

func cmdOrders(ctx context.Context, a *app, args []string) error {
	if err := parse(newFlags("orders"), args); err != nil {
		return err
	}
	user, err := a.session.RequireUser(ctx)
	if err != nil {
		return err
	}

	ov, err := a.orders.Overview(ctx, user.ID)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Active orders")
	if ov.ActiveErr == nil {
		if err := printOrders(a, ov.Active, "You have no active orders."); err != nil {
			return err
		}
	}
	fmt.Fprintln(a.out, "\nOrder history")
	if ov.HistoryErr == nil {
		if err := printOrders(a, ov.History, "No past orders yet."); err != nil {
			return err
		}
	}
	return ov.Err()
}

func printOrders(a *app, orders []domain.Order, empty string) error {
	if len(orders) == 0 {
		fmt.Fprintf(a.out, "  %s\n", empty)
		return nil
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tPLACED\tITEMS\tTOTAL\tSTATUS\tDELIVERY")
	for _, o := range orders {
		fmt.Fprintf(tw, "  %s\t%s\t%d\t%s\t%s\t%s\n",
			o.ID, o.CreatedAt.Format("2006-01-02"), len(o.Products), money(o.TotalPrice), o.Status, o.DeliveryOption)
	}
	return tw.Flush()
}

// loadOrder resolves the signed-in user and one of their orders.
func loadOrder(ctx context.Context, a *app, name string, args []string) (string, domain.Order, error) {
	fs := newFlags(name)
	id, err := parseWithID(fs, args, "order id")
	if err != nil {
		return "", domain.Order{}, err
	}
	return loadOrderByID(ctx, a, id)
}

func loadOrderByID(ctx context.Context, a *app, id string) (string, domain.Order, error) {
	user, err := a.session.RequireUser(ctx)
	if err != nil {
		return "", domain.Order{}, err
	}
	o, err := a.orders.Get(ctx, user.ID, id)
	if err != nil {
		return "", domain.Order{}, err
	}
	return user.ID, o, nil
}

func cmdOrder(ctx context.Context, a *app, args []string) error {
	_, o, err := loadOrder(ctx, a, "order", args)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Order #%s\n", o.ID)
	fmt.Fprintf(a.out, "Placed: %s\n", o.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(a.out, "Delivery Status: %s\n\n", o.Status)
	for _, s := range o.Progress() {
		fmt.Fprintf(a.out, "  [%-9s] %s\n", s.State, s.Stage)
	}

	fmt.Fprintln(a.out)
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCT\tSIZE\tCOLOUR\tQTY\tPRICE\tSUBTOTAL")
	for _, l := range o.Products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			l.Name, l.SelectedSize, l.SelectedColor, l.Quantity, money(l.Price), money(l.Subtotal()))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Total: %s (%s)\n", money(o.TotalPrice), o.PaymentMethod)

	addr := o.ShippingAddress
	fmt.Fprintf(a.out, "\nShip to: %s, %s\n  %s, %s, %s\n", addr.PersonName, addr.MobileNumber, addr.Address, addr.Pincode, addr.State)

	switch {
	case o.CanCancel():
		fmt.Fprintf(a.out, "\nThis order can still be cancelled: storefront order-cancel %s\n", o.ID)
	case o.CanConfirmReceived():
		fmt.Fprintf(a.out, "\nArriving today. Confirm receipt: storefront order-confirm %s\n", o.ID)
	case o.ReceiptAvailable():
		fmt.Fprintf(a.out, "\nDownload your receipt: storefront receipt %s\n", o.ID)
	}
	return nil
}

func cmdOrderCancel(ctx context.Context, a *app, args []string) error {
	userID, o, err := loadOrder(ctx, a, "order-cancel", args)
	if err != nil {
		return err
	}

	updated, err := a.orders.Cancel(ctx, userID, o)
	if err != nil {
		return fmt.Errorf("Error cancelling order: %w", err)
	}
	fmt.Fprintf(a.out, "Order #%s cancelled. Status: %s\n", updated.ShortID(), updated.Status)
	return nil
}

func cmdOrderConfirm(ctx context.Context, a *app, args []string) error {
	userID, o, err := loadOrder(ctx, a, "order-confirm", args)
	if err != nil {
		return err
	}

	if _, err := a.orders.ConfirmReceived(ctx, userID, o); err != nil {
		return fmt.Errorf("Error confirming product receipt: %w", err)
	}
	fmt.Fprintln(a.out, "Product receipt confirmed! This order is now in your history.")
	return nil
}

func cmdReceipt(ctx context.Context, a *app, args []string) error {
	fs := newFlags("receipt")
	dir := fs.String("dir", ".", "directory to write the receipt into")
	id, err := parseWithID(fs, args, "order id")
	if err != nil {
		return err
	}
	_, o, err := loadOrderByID(ctx, a, id)
	if err != nil {
		return err
	}
	if !o.ReceiptAvailable() {
		return domain.ErrNoReceipt
	}

	path := filepath.Join(*dir, domain.ReceiptFilename(o))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create receipt: %w", err)
	}
	if err := domain.WriteReceipt(f, o); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write receipt: %w", err)
	}

	fmt.Fprintf(a.out, "Receipt saved to %s\n", path)
	return nil
}
