package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shelfscout/backend/internal/domain"
)

// Scoring weights. Containment dominates; token overlap and a brand hit
// refine it. Tunable constants validated by the property tests.
const (
	weightContainment = 0.5
	weightOverlap     = 0.3
	weightBrand       = 0.2
)

// shortLineMin is the minimum normalized-line length for the reverse
// containment check (line inside alias), so one- or two-letter fragments
// don't match everything.
const shortLineMin = 3

// MatcherConfig holds configuration for the candidate matcher
type MatcherConfig struct {
	ConfidenceThreshold float64
	MaxSuggestions      int
}

// Matcher scores OCR-extracted text lines against an alias index and
// produces a ranked identification result.
type Matcher struct {
	confidenceThreshold float64
	maxSuggestions      int
	logger              zerolog.Logger
}

// NewMatcher creates a matcher with the given configuration.
func NewMatcher(config MatcherConfig, logger zerolog.Logger) *Matcher {
	threshold := config.ConfidenceThreshold
	if threshold <= 0 {
		threshold = 0.6
	}

	maxSuggestions := config.MaxSuggestions
	if maxSuggestions <= 0 {
		maxSuggestions = 5
	}

	return &Matcher{
		confidenceThreshold: threshold,
		maxSuggestions:      maxSuggestions,
		logger:              logger.With().Str("component", "matcher").Logger(),
	}
}

// productScore accumulates the best single-line evidence for one product.
type productScore struct {
	productID   int64
	productName string
	score       float64
	aliasLen    int // length of the best-matching alias, used for tie-breaks
}

// Identify scores the given lines against the index. A top score at or above
// the confidence threshold resolves the product; otherwise the result has no
// resolved product and only suggestions. Empty input yields a zero candidate.
func (m *Matcher) Identify(ctx context.Context, lines []string, idx *AliasIndex) (domain.Candidate, error) {
	if lines == nil {
		lines = []string{}
	}
	candidate := domain.Candidate{
		Lines:       lines,
		Suggestions: []domain.Suggestion{},
	}

	if len(lines) == 0 || idx == nil {
		return candidate, nil
	}

	scores := make(map[int64]*productScore)

	for _, line := range lines {
		select {
		case <-ctx.Done():
			return candidate, ctx.Err()
		default:
		}

		normalized := normalizeText(line)
		if normalized == "" {
			continue
		}

		// A line that is exactly a known GTIN is a definitive hit.
		if id, name, ok := idx.LookupGTIN(normalized); ok {
			m.record(scores, id, name, 1.0, len(normalized))
			continue
		}

		lineTokens := strings.Fields(normalized)
		detectedBrand, hasBrand := idx.DetectBrand(normalized)

		for _, e := range idx.entries {
			if !aliasMatches(normalized, e.alias) {
				continue
			}

			score := weightContainment
			score += weightOverlap * tokenOverlap(lineTokens, e.tokens)
			if hasBrand && e.brand != "" && e.brand == detectedBrand {
				score += weightBrand
			}

			m.logger.Debug().
				Str("line", normalized).
				Str("alias", e.alias).
				Int64("product_id", e.productID).
				Float64("score", score).
				Msg("alias hit")

			m.record(scores, e.productID, e.productName, score, len(e.alias))
		}
	}

	if len(scores) == 0 {
		return candidate, nil
	}

	ranked := make([]*productScore, 0, len(scores))
	for _, s := range scores {
		ranked = append(ranked, s)
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.aliasLen != b.aliasLen {
			return a.aliasLen < b.aliasLen
		}
		return a.productName < b.productName
	})

	top := ranked[0]
	candidate.Score = top.score

	rest := ranked
	if top.score >= m.confidenceThreshold {
		candidate.ProductID = &top.productID
		candidate.ProductName = &top.productName
		rest = ranked[1:]
	}

	for _, s := range rest {
		if len(candidate.Suggestions) == m.maxSuggestions {
			break
		}
		if candidate.ProductID != nil && s.productID == *candidate.ProductID {
			continue
		}
		candidate.Suggestions = append(candidate.Suggestions, domain.Suggestion{
			ProductID: s.productID,
			Name:      s.productName,
		})
	}

	m.logger.Debug().
		Float64("score", candidate.Score).
		Int("suggestions", len(candidate.Suggestions)).
		Bool("resolved", candidate.ProductID != nil).
		Msg("identification complete")

	return candidate, nil
}

// record keeps the maximum single-line score per product. On equal scores the
// shorter alias wins so tie-breaking stays deterministic.
func (m *Matcher) record(scores map[int64]*productScore, id int64, name string, score float64, aliasLen int) {
	existing, ok := scores[id]
	if !ok {
		scores[id] = &productScore{productID: id, productName: name, score: score, aliasLen: aliasLen}
		return
	}
	if score > existing.score || (score == existing.score && aliasLen < existing.aliasLen) {
		existing.score = score
		existing.aliasLen = aliasLen
	}
}

// aliasMatches reports substring containment between a normalized line and a
// normalized alias: the alias inside the line, or the line inside the alias
// when the line is long enough to be meaningful.
func aliasMatches(line, alias string) bool {
	if strings.Contains(line, alias) {
		return true
	}
	return len(line) >= shortLineMin && strings.Contains(alias, line)
}
