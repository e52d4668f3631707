package domain

import (
	"strings"

	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/apperr"
)

const (
	MsgLoginRequired   = "You must be logged in to submit a review."
	MsgNotEligible     = "You can only review products you have purchased and confirmed receipt of."
	MsgRatingRequired  = "Please provide a star rating."
	MsgAlreadyReviewed = "You have already submitted a review for this product."
)

const (
	MinRating = 1
	MaxRating = 5
)

type NewReview struct {
	ProductID string `json:"productId"`
	UserID    string `json:"userId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type Eligibility struct {
	AlreadyReviewed bool
	CanReview       bool
}

// Validate applies the submission rules in order: login, purchase, rating,
// then duplicate review.
func (e Eligibility) Validate(r NewReview) error {
	if r.UserID == "" {
		return apperr.New(apperr.ErrNotAuthenticated, MsgLoginRequired)
	}
	if !e.CanReview {
		return apperr.New(apperr.ErrForbidden, MsgNotEligible)
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		return apperr.Invalid(MsgRatingRequired)
	}
	if e.AlreadyReviewed {
		return apperr.Invalid(MsgAlreadyReviewed)
	}
	return nil
}

// Purchased reports whether a confirmed delivery in history contains the
// product.
func Purchased(history []orderdomain.Order, productID string) bool {
	for _, o := range history {
		if o.Status == orderdomain.StatusDeliveredConfirmed && o.Contains(productID) {
			return true
		}
	}
	return false
}

func (r NewReview) Normalized() NewReview {
	r.Comment = strings.TrimSpace(r.Comment)
	return r
}
