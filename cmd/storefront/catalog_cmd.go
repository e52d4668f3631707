package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

func cmdProducts(ctx context.Context, a *app, args []string) error {
	fs := newFlags("products")
	var f domain.Filter
	fs.StringVar(&f.Search, "search", "", "search term")
	fs.StringVar(&f.Category, "category", domain.All, "category")
	fs.StringVar(&f.Brand, "brand", domain.All, "brand")
	fs.Float64Var(&f.MinRating, "rating", 0, "minimum average rating")
	minPrice := fs.String("min", "", "minimum price")
	maxPrice := fs.String("max", "", "maximum price")
	colors := fs.String("colors", "", "comma separated colours, any match")
	sizes := fs.String("sizes", "", "comma separated sizes, any match")
	if err := parse(fs, args); err != nil {
		return err
	}

	var err error
	if f.MinPrice, err = parsePrice("min", *minPrice); err != nil {
		return err
	}
	if f.MaxPrice, err = parsePrice("max", *maxPrice); err != nil {
		return err
	}
	f.Colors = splitList(*colors)
	f.Sizes = splitList(*sizes)

	products, err := a.catalog.List(ctx, f)
	if err != nil {
		return fmt.Errorf("Failed to load products: %w.", err)
	}
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products match your filters.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBRAND\tCATEGORY\tPRICE\tRATING\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.1f\t%d\n",
			p.ID, p.Name, p.Brand, p.Category, money(p.EffectivePrice()), p.AverageRating, p.Stock)
	}
	return tw.Flush()
}

func cmdBrands(ctx context.Context, a *app, args []string) error {
	fs := newFlags("brands")
	category := fs.String("category", domain.All, "category")
	if err := parse(fs, args); err != nil {
		return err
	}

	brands, err := a.catalog.Brands(ctx, *category)
	if err != nil {
		return fmt.Errorf("Failed to load products: %w.", err)
	}
	for _, b := range brands {
		if b == "" {
			b = "(unbranded)"
		}
		fmt.Fprintln(a.out, b)
	}
	return nil
}

func cmdProduct(ctx context.Context, a *app, args []string) error {
	fs := newFlags("product")
	id, err := parseWithID(fs, args, "product id")
	if err != nil {
		return err
	}

	p, err := a.catalog.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s  [%s / %s]\n", p.Name, p.Category, p.Brand)
	if p.SalePrice.Valid && p.Price.IsPositive() && p.SalePrice.Decimal.LessThan(p.Price) {
		save := decimal.NewFromInt(100).Sub(p.SalePrice.Decimal.Div(p.Price).Mul(decimal.NewFromInt(100)))
		fmt.Fprintf(a.out, "Price: %s (was %s, save %s%%)\n", money(p.SalePrice.Decimal), money(p.Price), save.StringFixed(0))
	} else {
		fmt.Fprintf(a.out, "Price: %s\n", money(p.Price))
	}
	if p.InStock() {
		fmt.Fprintf(a.out, "In stock: %d\n", p.Stock)
	} else {
		fmt.Fprintln(a.out, "Out of stock")
	}
	if len(p.Sizes) > 0 {
		fmt.Fprintf(a.out, "Sizes: %s\n", strings.Join(p.Sizes, ", "))
	}
	if len(p.Colors) > 0 {
		fmt.Fprintf(a.out, "Colours: %s\n", strings.Join(p.Colors, ", "))
	}
	if p.Description != "" {
		fmt.Fprintf(a.out, "\n%s\n", p.Description)
	}

	fmt.Fprintln(a.out)
	if p.ReviewCount > 0 {
		fmt.Fprintf(a.out, "Rating: %.1f (%d reviews)\n", p.AverageRating, p.ReviewCount)
	} else {
		fmt.Fprintln(a.out, "No reviews yet. Be the first!")
	}
	for _, r := range p.Reviews {
		fmt.Fprintf(a.out, "  %s %s - %s\n", stars(r.Rating), r.Username, r.CreatedAt.Format("2006-01-02"))
		if r.Comment != "" {
			fmt.Fprintf(a.out, "    %s\n", r.Comment)
		}
	}

	if user := a.session.Current(); user.Complete() {
		e := a.reviews.Eligibility(ctx, user.ID, p)
		switch {
		case e.AlreadyReviewed:
			fmt.Fprintln(a.out, "You have already submitted a review for this product. Thank you!")
		case e.CanReview:
			fmt.Fprintf(a.out, "You can review this product: storefront review %s -rating 1-5\n", p.ID)
		}
	}

	if related := a.catalog.Related(ctx, p.ID, 0); len(related) > 0 {
		fmt.Fprintln(a.out, "\nYou may also like:")
		for _, r := range related {
			fmt.Fprintf(a.out, "  %s  %s  %s\n", r.ID, r.Name, money(r.EffectivePrice()))
		}
	}
	return nil
}

func parsePrice(name, s string) (decimal.NullDecimal, error) {
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, usageError{fmt.Sprintf("products: -%s must be a number", name)}
	}
	return decimal.NewNullDecimal(d), nil
}

func money(d decimal.Decimal) string {
	return "₹" + d.StringFixed(2)
}

func stars(n int) string {
	n = max(0, min(n, 5))
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}
