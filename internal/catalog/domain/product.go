package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/storefront/pkg/jsonid"
)

type Product struct {
	ID            string              `json:"_id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Price         decimal.Decimal     `json:"price"`
	SalePrice     decimal.NullDecimal `json:"salePrice"`
	Image         string              `json:"image"`
	Category      string              `json:"category"`
	Brand         string              `json:"brand"`
	Colors        []string            `json:"colors"`
	Sizes         []string            `json:"size"`
	Tags          []string            `json:"tags"`
	Stock         int                 `json:"stock"`
	AverageRating float64             `json:"averageRating"`
	ReviewCount   int                 `json:"reviewCount"`
	Reviews       []Review            `json:"reviews"`
	CreatedAt     time.Time           `json:"createdAt"`
}

type Review struct {
	UserID    jsonid.ID `json:"userId"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// EffectivePrice is the sale price when one is set.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.SalePrice.Valid {
		return p.SalePrice.Decimal
	}
	return p.Price
}

func (p Product) InStock() bool { return p.Stock > 0 }

// ReviewedBy reports whether userID already left a review.
func (p Product) ReviewedBy(userID string) bool {
	return slices.ContainsFunc(p.Reviews, func(r Review) bool {
		return r.UserID.String() == userID
	})
}
