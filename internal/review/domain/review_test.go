package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/apperr"
)

func TestValidateRuleOrder(t *testing.T) {
	eligible := Eligibility{CanReview: true}

	cases := []struct {
		name string
		e    Eligibility
		r    NewReview
		want string
	}{
		{"no user -> login first", Eligibility{AlreadyReviewed: true}, NewReview{Rating: 0}, MsgLoginRequired},
		{"not purchased beats rating", Eligibility{AlreadyReviewed: true}, NewReview{UserID: "u", Rating: 0}, MsgNotEligible},
		{"rating beats duplicate", Eligibility{CanReview: true, AlreadyReviewed: true}, NewReview{UserID: "u", Rating: 0}, MsgRatingRequired},
		{"rating above 5", eligible, NewReview{UserID: "u", Rating: 6}, MsgRatingRequired},
		{"duplicate", Eligibility{CanReview: true, AlreadyReviewed: true}, NewReview{UserID: "u", Rating: 4}, MsgAlreadyReviewed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.EqualError(t, tc.e.Validate(tc.r), tc.want)
		})
	}

	t.Run("eligible -> ok", func(t *testing.T) {
		assert.NoError(t, eligible.Validate(NewReview{UserID: "u", Rating: 5}))
	})

	t.Run("no user -> not authenticated kind", func(t *testing.T) {
		assert.ErrorIs(t, eligible.Validate(NewReview{Rating: 5}), apperr.ErrNotAuthenticated)
	})
}

func TestPurchased(t *testing.T) {
	confirmed := orderdomain.Order{Status: orderdomain.StatusDeliveredConfirmed, Products: []orderdomain.Line{{ProductID: "p1"}}}
	delivered := orderdomain.Order{Status: orderdomain.StatusDelivered, Products: []orderdomain.Line{{ProductID: "p2"}}}

	assert.True(t, Purchased([]orderdomain.Order{delivered, confirmed}, "p1"))
	assert.False(t, Purchased([]orderdomain.Order{delivered, confirmed}, "p2"))
	assert.False(t, Purchased(nil, "p1"))
}
