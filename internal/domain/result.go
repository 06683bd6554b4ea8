package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Suggestion is an alternate product offered alongside (or instead of) a
// resolved match.
type Suggestion struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
}

// Candidate is the result of identifying a product from extracted text lines.
// ProductID and ProductName are nil when no candidate met the confidence
// threshold; a low-confidence result is not an error.
type Candidate struct {
	Score       float64      `json:"score"`
	ProductID   *int64       `json:"product_id"`
	ProductName *string      `json:"product_name"`
	Lines       []string     `json:"lines"`
	Suggestions []Suggestion `json:"suggestions"`
}

// PriceRow is one store's price for a product, annotated relative to the
// cheapest row in the same comparison.
type PriceRow struct {
	StoreID           string          `json:"store_id"`
	StoreName         string          `json:"store_name"`
	Chain             string          `json:"chain"`
	DistanceKm        float64         `json:"distance_km"`
	Price             decimal.Decimal `json:"price"`
	Currency          string          `json:"currency"`
	IsCheapest        bool            `json:"is_cheapest"`
	SavingsVsCheapest decimal.Decimal `json:"savings_vs_cheapest"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductSummary identifies the product a comparison is about.
type ProductSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CompareSummary aggregates a comparison. Both fields are nil when the
// product has no prices.
type CompareSummary struct {
	Cheapest   *decimal.Decimal `json:"cheapest"`
	MaxSavings *decimal.Decimal `json:"max_savings"`
}

// CompareResult is a full price comparison for one product, rows sorted
// ascending by price.
type CompareResult struct {
	Product ProductSummary `json:"product"`
	Prices  []PriceRow     `json:"prices"`
	Summary CompareSummary `json:"summary"`
}
