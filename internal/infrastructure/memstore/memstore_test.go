package memstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfscout/backend/internal/domain"
)

func TestCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("returns products ordered by ID", func(t *testing.T) {
		c := NewCatalog(
			domain.Product{ID: 3, Name: "Oats"},
			domain.Product{ID: 1, Name: "Butter"},
			domain.Product{ID: 2, Name: "Milk"},
		)

		products, err := c.AllProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 3)
		assert.Equal(t, int64(1), products[0].ID)
		assert.Equal(t, int64(3), products[2].ID)
	})

	t.Run("lookup by ID", func(t *testing.T) {
		c := NewCatalog(domain.Product{ID: 1, Name: "Butter"})

		p, err := c.GetProductByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Butter", p.Name)

		_, err = c.GetProductByID(ctx, 42)
		assert.True(t, errors.Is(err, domain.ErrProductNotFound))
	})

	t.Run("upsert replaces an existing product", func(t *testing.T) {
		c := NewCatalog(domain.Product{ID: 1, Name: "Butter"})
		c.UpsertProduct(domain.Product{ID: 1, Name: "Salted Butter"})

		p, err := c.GetProductByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Salted Butter", p.Name)

		products, err := c.AllProducts(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("backfills size from the product name", func(t *testing.T) {
		c := NewCatalog(domain.Product{ID: 1, Name: "Butter 500g"})

		p, err := c.GetProductByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(500), p.SizeGrams)
	})

	t.Run("explicit size is not overwritten", func(t *testing.T) {
		c := NewCatalog(domain.Product{ID: 1, Name: "Butter 500g", SizeGrams: 250})

		p, err := c.GetProductByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(250), p.SizeGrams)
	})
}

func TestPricing(t *testing.T) {
	ctx := context.Background()

	t.Run("joins price facts with store records", func(t *testing.T) {
		p := NewPricing()
		p.UpsertStore(domain.Store{ID: "s1", Chain: "PaknSave", Name: "PaknSave Albany", Lat: -36.72, Lng: 174.71})
		p.UpsertPrice(domain.PriceFact{
			ProductID: 1,
			StoreID:   "s1",
			Price:     decimal.RequireFromString("6.49"),
			Currency:  "NZD",
			UpdatedAt: time.Now(),
		})

		prices, err := p.PricesForProduct(ctx, 1)
		require.NoError(t, err)
		require.Len(t, prices, 1)
		assert.Equal(t, "PaknSave Albany", prices[0].StoreName)
		assert.Equal(t, "PaknSave", prices[0].Chain)
		assert.Equal(t, -36.72, prices[0].Lat)
	})

	t.Run("at most one fact per product and store", func(t *testing.T) {
		p := NewPricing()
		p.UpsertStore(domain.Store{ID: "s1", Name: "Alpha"})
		p.UpsertPrice(domain.PriceFact{ProductID: 1, StoreID: "s1", Price: decimal.RequireFromString("6.49")})
		p.UpsertPrice(domain.PriceFact{ProductID: 1, StoreID: "s1", Price: decimal.RequireFromString("5.99")})

		prices, err := p.PricesForProduct(ctx, 1)
		require.NoError(t, err)
		require.Len(t, prices, 1)
		assert.True(t, prices[0].Price.Equal(decimal.RequireFromString("5.99")))
	})

	t.Run("product with no facts yields empty slice", func(t *testing.T) {
		p := NewPricing()

		prices, err := p.PricesForProduct(ctx, 99)
		require.NoError(t, err)
		assert.NotNil(t, prices)
		assert.Empty(t, prices)
	})

	t.Run("concurrent reads and writes", func(t *testing.T) {
		p := NewPricing()
		p.UpsertStore(domain.Store{ID: "s1", Name: "Alpha"})

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					p.UpsertPrice(domain.PriceFact{ProductID: 1, StoreID: "s1", Price: decimal.New(int64(j), -2)})
				}
			}()
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					_, err := p.PricesForProduct(ctx, 1)
					assert.NoError(t, err)
				}
			}()
		}
		wg.Wait()
	})
}
