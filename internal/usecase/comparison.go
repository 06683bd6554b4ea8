package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/shelfscout/backend/internal/domain"
	"github.com/shelfscout/backend/internal/geo"
)

// Comparator aggregates per-store prices for a product, ranks them by price,
// and computes savings relative to the cheapest option.
type Comparator struct {
	catalog domain.ProductCatalog
	pricing domain.PricingStore
	logger  zerolog.Logger
}

// NewComparator creates a comparator over the given collaborators.
func NewComparator(catalog domain.ProductCatalog, pricing domain.PricingStore, logger zerolog.Logger) *Comparator {
	return &Comparator{
		catalog: catalog,
		pricing: pricing,
		logger:  logger.With().Str("component", "comparator").Logger(),
	}
}

// Compare builds a price comparison for the product. An unknown product fails
// with ErrProductNotFound; a known product with no prices yields empty rows
// and a null summary. When shopper coordinates are supplied each row carries
// its distance; otherwise distance is zero and not meaningful.
func (c *Comparator) Compare(ctx context.Context, productID int64, at *domain.Coordinates) (*domain.CompareResult, error) {
	if at != nil {
		// Validate up front so a bad shopper location fails before any fetch.
		if _, err := geo.DistanceKm(at.Lat, at.Lng, at.Lat, at.Lng); err != nil {
			return nil, err
		}
	}

	product, err := c.catalog.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	facts, err := c.pricing.PricesForProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPricingUnavailable, err)
	}

	result := &domain.CompareResult{
		Product: domain.ProductSummary{ID: product.ID, Name: product.Name},
		Prices:  []domain.PriceRow{},
	}

	if len(facts) == 0 {
		c.logger.Debug().Int64("product_id", productID).Msg("no prices for product")
		return result, nil
	}

	for _, f := range facts {
		row := domain.PriceRow{
			StoreID:   f.StoreID,
			StoreName: f.StoreName,
			Chain:     f.Chain,
			Price:     f.Price,
			Currency:  f.Currency,
			UpdatedAt: f.UpdatedAt,
		}
		if at != nil {
			km, err := geo.DistanceKm(at.Lat, at.Lng, f.Lat, f.Lng)
			if err != nil {
				return nil, err
			}
			row.DistanceKm = km
		}
		result.Prices = append(result.Prices, row)
	}

	sort.Slice(result.Prices, func(i, j int) bool {
		cmp := result.Prices[i].Price.Cmp(result.Prices[j].Price)
		if cmp != 0 {
			return cmp < 0
		}
		return result.Prices[i].StoreName < result.Prices[j].StoreName
	})

	cheapest := result.Prices[0].Price
	maxSavings := decimal.Zero
	for i := range result.Prices {
		row := &result.Prices[i]
		row.IsCheapest = row.Price.Equal(cheapest)
		row.SavingsVsCheapest = row.Price.Sub(cheapest).Round(2)
		if row.SavingsVsCheapest.GreaterThan(maxSavings) {
			maxSavings = row.SavingsVsCheapest
		}
	}

	result.Summary = domain.CompareSummary{
		Cheapest:   &cheapest,
		MaxSavings: &maxSavings,
	}

	c.logger.Debug().
		Int64("product_id", productID).
		Int("stores", len(result.Prices)).
		Str("cheapest", cheapest.String()).
		Msg("comparison complete")

	return result, nil
}
