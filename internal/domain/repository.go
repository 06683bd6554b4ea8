package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ProductCatalog is the read side of the product store. AllProducts feeds
// alias index rebuilds; ProductByID backs comparisons and result summaries.
type ProductCatalog interface {
	AllProducts(ctx context.Context) ([]Product, error)
	GetProductByID(ctx context.Context, id int64) (*Product, error)
}

// StorePrice joins a price fact with the identity and location of the store
// it was observed at.
type StorePrice struct {
	StoreID   string
	StoreName string
	Chain     string
	Lat       float64
	Lng       float64
	Price     decimal.Decimal
	Currency  string
	UpdatedAt time.Time
}

// PricingStore provides current prices for a product across all stores.
// A product with no prices yields an empty slice, which is a valid result,
// not an error; callers resolve product existence against the catalog.
// Implementations backed by an upstream source may still surface
// ErrProductNotFound, which callers pass through untranslated.
type PricingStore interface {
	PricesForProduct(ctx context.Context, productID int64) ([]StorePrice, error)
}
