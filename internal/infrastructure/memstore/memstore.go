// Package memstore provides thread-safe in-memory implementations of the
// catalog and pricing collaborators, used for tests and local runs.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/shelfscout/backend/internal/domain"
)

// Catalog is a thread-safe in-memory product catalog.
type Catalog struct {
	mutex    sync.RWMutex
	products map[int64]domain.Product
}

// NewCatalog creates a catalog pre-loaded with the given products.
func NewCatalog(products ...domain.Product) *Catalog {
	c := &Catalog{products: make(map[int64]domain.Product, len(products))}
	for _, p := range products {
		c.upsertLocked(p)
	}
	return c
}

// UpsertProduct inserts or replaces a product. A missing size is backfilled
// from the product name when it carries a recognizable gram quantity.
func (c *Catalog) UpsertProduct(p domain.Product) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.upsertLocked(p)
}

func (c *Catalog) upsertLocked(p domain.Product) {
	if p.SizeGrams == 0 {
		if grams, ok := domain.ExtractGrams(p.Name); ok {
			p.SizeGrams = grams
		}
	}
	c.products[p.ID] = p
}

// AllProducts returns a snapshot of every product, ordered by ID.
func (c *Catalog) AllProducts(ctx context.Context) ([]domain.Product, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	products := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

// GetProductByID returns the product or ErrProductNotFound.
func (c *Catalog) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	p, exists := c.products[id]
	if !exists {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

// Pricing is a thread-safe in-memory pricing store joining price facts with
// store records.
type Pricing struct {
	mutex  sync.RWMutex
	stores map[string]domain.Store
	// facts is keyed by product, then store, guaranteeing at most one
	// fact per (product, store) pair.
	facts map[int64]map[string]domain.PriceFact
}

// NewPricing creates an empty pricing store.
func NewPricing() *Pricing {
	return &Pricing{
		stores: make(map[string]domain.Store),
		facts:  make(map[int64]map[string]domain.PriceFact),
	}
}

// UpsertStore inserts or replaces a store record.
func (p *Pricing) UpsertStore(s domain.Store) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.stores[s.ID] = s
}

// UpsertPrice inserts or replaces the price fact for (product, store).
func (p *Pricing) UpsertPrice(f domain.PriceFact) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	byStore, exists := p.facts[f.ProductID]
	if !exists {
		byStore = make(map[string]domain.PriceFact)
		p.facts[f.ProductID] = byStore
	}
	byStore[f.StoreID] = f
}

// PricesForProduct returns every store price for the product. A product with
// no facts yields an empty slice.
func (p *Pricing) PricesForProduct(ctx context.Context, productID int64) ([]domain.StorePrice, error) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	prices := []domain.StorePrice{}
	for storeID, f := range p.facts[productID] {
		sp := domain.StorePrice{
			StoreID:   storeID,
			Price:     f.Price,
			Currency:  f.Currency,
			UpdatedAt: f.UpdatedAt,
		}
		if s, exists := p.stores[storeID]; exists {
			sp.StoreName = s.Name
			sp.Chain = s.Chain
			sp.Lat = s.Lat
			sp.Lng = s.Lng
		}
		prices = append(prices, sp)
	}
	return prices, nil
}
