package domain

import (
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

const All = "All"

var Categories = []string{All, "Shoes", "Watch", "Perfume", "Belt", "Bag"}

var Sizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

var Colors = []string{"Red", "Blue", "Green", "Black", "White", "Grey", "Orange", "Pink", "Purple", "Yellow", "Brown", "Beige"}

// HouseBrands are always offered as brand facets for their category.
var HouseBrands = map[string][]string{
	"Bag":     {"Louis Vuitton", "Gucci", "Chanel", "Hermes", "Prada"},
	"Watch":   {"Rado", "Omega", "Rolex", "Tag Heuer", "Cartier"},
	"Perfume": {"Valentino", "Dior", "Chanel", "Tom Ford", "Creed"},
	"Belt":    {"Hermes", "Gucci", "Louis Vuitton", "Versace", "Salvatore Ferragamo"},
	"Shoes":   {"Nike", "Adidas", "Puma", "Gucci", "Prada"},
}

// Filter narrows a product listing. Zero values mean "no constraint"; an
// empty or "All" category/brand matches everything.
type Filter struct {
	Search    string
	Category  string
	Brand     string
	MinPrice  decimal.NullDecimal
	MaxPrice  decimal.NullDecimal
	Colors    []string
	Sizes     []string
	MinRating float64
}

func (f Filter) Match(p Product) bool {
	if f.Category != "" && f.Category != All && p.Category != f.Category {
		return false
	}
	if f.Brand != "" && f.Brand != All && p.Brand != f.Brand {
		return false
	}

	price := p.EffectivePrice()
	if f.MinPrice.Valid && price.LessThan(f.MinPrice.Decimal) {
		return false
	}
	if f.MaxPrice.Valid && price.GreaterThan(f.MaxPrice.Decimal) {
		return false
	}

	if len(f.Colors) > 0 && !anyIn(p.Colors, f.Colors) {
		return false
	}
	if len(f.Sizes) > 0 && !anyIn(p.Sizes, f.Sizes) {
		return false
	}

	if f.MinRating > 0 && p.AverageRating < f.MinRating {
		return false
	}

	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		return matchesSearch(p, term)
	}
	return true
}

func Apply(products []Product, f Filter) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// matchesSearch: name prefix, or substring of description, category, brand
// or any tag.
func matchesSearch(p Product, term string) bool {
	if strings.HasPrefix(strings.ToLower(p.Name), term) {
		return true
	}
	for _, field := range []string{p.Description, p.Category, p.Brand} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return slices.ContainsFunc(p.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), term)
	})
}

func anyIn(have, want []string) bool {
	return slices.ContainsFunc(have, func(v string) bool {
		return slices.Contains(want, v)
	})
}

// Brands lists brand facets for a category: "All" first, then sorted unique
// names with an empty name last.
func Brands(products []Product, category string) []string {
	set := make(map[string]struct{})
	unbranded := false
	for _, p := range products {
		if category != "" && category != All && p.Category != category {
			continue
		}
		if p.Brand == "" {
			unbranded = true
			continue
		}
		set[p.Brand] = struct{}{}
	}
	if category != "" && category != All {
		for _, b := range HouseBrands[category] {
			set[b] = struct{}{}
		}
	}

	brands := make([]string, 0, len(set))
	for b := range set {
		brands = append(brands, b)
	}
	sort.Strings(brands)
	if unbranded {
		brands = append(brands, "")
	}

	return append([]string{All}, brands...)
}
