package main

import (
	"context"
	"fmt"

	"github.com/dwikikusuma/storefront/internal/review/domain"
	"github.com/dwikikusuma/storefront/pkg/apperr"
)

func cmdReview(ctx context.Context, a *app, args []string) error {
	fs := newFlags("review")
	rating := fs.Int("rating", 0, "star rating, 1 to 5")
	comment := fs.String("comment", "", "review text")
	id, err := parseWithID(fs, args, "product id")
	if err != nil {
		return err
	}

	user := a.session.Current()
	if !user.Complete() {
		return apperr.New(apperr.ErrNotAuthenticated, domain.MsgLoginRequired)
	}

	p, err := a.catalog.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := a.reviews.Submit(ctx, user.ID, p, *rating, *comment); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Your review has been submitted successfully!")
	return nil
}
