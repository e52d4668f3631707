package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

type command struct {
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"login":         {"log in: -username -password", cmdLogin},
	"signup":        {"create an account: -username -password -confirm -age -mobile", cmdSignup},
	"logout":        {"log out", cmdLogout},
	"whoami":        {"show the signed-in user and any pending notice", cmdWhoami},
	"profile":       {"fetch the signed-in user's profile", cmdProfile},
	"products":      {"list products: -search -category -brand -min -max -colors -sizes -rating", cmdProducts},
	"brands":        {"list brand facets: -category", cmdBrands},
	"product":       {"show a product with reviews and related items: <id>", cmdProduct},
	"cart":          {"show the cart: -items id,id to total a selection", cmdCart},
	"cart-add":      {"add a product: <id> -qty -size -color", cmdCartAdd},
	"cart-remove":   {"remove one unit: <id> [-all]", cmdCartRemove},
	"cart-clear":    {"empty the cart", cmdCartClear},
	"checkout":      {"place an order: -items -name -mobile -address -pincode -state -payment", cmdCheckout},
	"orders":        {"list active orders and order history", cmdOrders},
	"order":         {"show an order with delivery progress: <id>", cmdOrder},
	"order-cancel":  {"cancel an order: <id>", cmdOrderCancel},
	"order-confirm": {"confirm an order was received: <id>", cmdOrderConfirm},
	"receipt":       {"save the HTML receipt of a confirmed order: <id> [-dir]", cmdReceipt},
	"review":        {"review a purchased product: <id> -rating -comment", cmdReview},
	"watch":         {"keep checking that the signed-in account still exists", cmdWatch},
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: storefront <command> [flags]")
	fmt.Fprintln(w)

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-14s %s\n", name, commands[name].summary)
	}
}

func newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return usageError{fmt.Sprintf("%s: %v", fs.Name(), err)}
	}
	if fs.NArg() > 0 {
		return usageError{fmt.Sprintf("%s: unexpected argument %q", fs.Name(), fs.Arg(0))}
	}
	return nil
}

// parseWithID accepts the id either before or after the flags.
func parseWithID(fs *flag.FlagSet, args []string, what string) (string, error) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		return args[0], parse(fs, args[1:])
	}
	if err := fs.Parse(args); err != nil {
		return "", usageError{fmt.Sprintf("%s: %v", fs.Name(), err)}
	}
	if fs.NArg() != 1 {
		return "", usageError{fmt.Sprintf("%s: %s is required", fs.Name(), what)}
	}
	return fs.Arg(0), nil
}

// splitList parses a comma separated flag value.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
