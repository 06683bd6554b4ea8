package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/shelfscout/backend/internal/domain"
)

// EngineConfig holds configuration for the comparison engine.
type EngineConfig struct {
	ConfidenceThreshold float64
	MaxSuggestions      int
	SuggestLimit        int
}

// Engine is the facade consumed by the delivery layer: identify a product
// from photo text, compare its prices, suggest products from partial text.
// Every call is a pure function of its inputs plus the current alias index
// snapshot; the only write path is Rebuild.
type Engine struct {
	catalog    domain.ProductCatalog
	matcher    *Matcher
	comparator *Comparator
	logger     zerolog.Logger

	suggestLimit int

	index     atomic.Pointer[AliasIndex]
	rebuildMu sync.Mutex
}

// NewEngine wires the engine. The alias index starts empty; call Rebuild
// once the catalog is reachable.
func NewEngine(catalog domain.ProductCatalog, pricing domain.PricingStore, config EngineConfig, logger zerolog.Logger) *Engine {
	suggestLimit := config.SuggestLimit
	if suggestLimit <= 0 {
		suggestLimit = 10
	}

	e := &Engine{
		catalog: catalog,
		matcher: NewMatcher(MatcherConfig{
			ConfidenceThreshold: config.ConfidenceThreshold,
			MaxSuggestions:      config.MaxSuggestions,
		}, logger),
		comparator:   NewComparator(catalog, pricing, logger),
		logger:       logger.With().Str("component", "engine").Logger(),
		suggestLimit: suggestLimit,
	}
	e.index.Store(BuildAliasIndex(nil))
	return e
}

// Rebuild constructs a fresh alias index from the current catalog snapshot
// and publishes it atomically. Rebuilds are serialized; readers see either
// the fully-old or fully-new index, never a mix.
func (e *Engine) Rebuild(ctx context.Context) error {
	e.rebuildMu.Lock()
	defer e.rebuildMu.Unlock()

	products, err := e.catalog.AllProducts(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	idx := BuildAliasIndex(products)
	e.index.Store(idx)

	e.logger.Info().
		Int("products", len(products)).
		Int("aliases", idx.Entries()).
		Msg("alias index rebuilt")

	return nil
}

// IdentifyByPhoto resolves OCR-extracted text lines to a catalogued product.
// It never hard-fails on a poor match; low confidence degrades to suggestions.
func (e *Engine) IdentifyByPhoto(ctx context.Context, lines []string) (domain.Candidate, error) {
	return e.matcher.Identify(ctx, lines, e.index.Load())
}

// ComparePrices ranks all known store prices for a product, cheapest first,
// with savings relative to the cheapest row.
func (e *Engine) ComparePrices(ctx context.Context, productID int64, at *domain.Coordinates) (*domain.CompareResult, error) {
	return e.comparator.Compare(ctx, productID, at)
}

// SuggestProducts returns products whose alias contains the normalized
// partial text, most specific (shortest alias) first.
func (e *Engine) SuggestProducts(ctx context.Context, partial string) ([]domain.Suggestion, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return e.index.Load().Search(partial, e.suggestLimit), nil
}

// IndexStats reports the size of the current index snapshot, for the health
// endpoint and operator logs.
func (e *Engine) IndexStats() (aliases int) {
	return e.index.Load().Entries()
}
