package backend

import (
	"context"
	"net/http"

	"github.com/dwikikusuma/storefront/internal/review/domain"
)

func (c *Client) SubmitReview(ctx context.Context, r domain.NewReview) error {
	_, err := c.do(ctx, http.MethodPost, "/api/reviews", r, "Failed to submit review.")
	return err
}
