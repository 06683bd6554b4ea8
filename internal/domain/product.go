package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalogued grocery item.
type Product struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Brand     string `json:"brand,omitempty"`
	GTIN      string `json:"gtin,omitempty"`
	SizeGrams int64  `json:"size_g,omitempty"`
	AltNames  string `json:"alt_names,omitempty"` // comma-separated alternate names
}

// AliasList returns every text string that should resolve to this product:
// the name, "brand name", and each comma-separated alternate name.
// The list always contains at least the product name.
func (p Product) AliasList() []string {
	aliases := []string{p.Name}

	if p.Brand != "" {
		aliases = append(aliases, p.Brand+" "+p.Name)
	}

	for _, alt := range strings.Split(p.AltNames, ",") {
		alt = strings.TrimSpace(alt)
		if alt != "" {
			aliases = append(aliases, alt)
		}
	}

	return aliases
}

// ValidGTIN reports whether s is a plausible GTIN: 8, 12, 13 or 14 digits.
func ValidGTIN(s string) bool {
	switch len(s) {
	case 8, 12, 13, 14:
	default:
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Store is a physical retail location.
type Store struct {
	ID      string  `json:"id"`
	Chain   string  `json:"chain"`
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// PriceFact is the last observed price of a product at a store.
// At most one fact exists per (product, store) pair.
type PriceFact struct {
	ProductID int64           `json:"product_id"`
	StoreID   string          `json:"store_id"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Coordinates is a shopper location in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
