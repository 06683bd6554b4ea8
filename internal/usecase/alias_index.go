package usecase

import (
	"sort"
	"strings"
	"time"

	"github.com/shelfscout/backend/internal/domain"
)

// aliasEntry is one normalized alias with a back-reference to its product.
type aliasEntry struct {
	alias       string
	tokens      []string
	productID   int64
	productName string
	brand       string // normalized brand, "" if the product has none
}

// AliasIndex is an immutable snapshot of the catalog, queryable by alias
// text, brand token, and GTIN. Rebuilding produces a fresh instance; readers
// never observe a partially built index.
type AliasIndex struct {
	entries []aliasEntry
	brands  []string // sorted by descending length, ties alphabetical
	gtins   map[string]aliasEntry
	builtAt time.Time
}

// BuildAliasIndex constructs an index from a catalog snapshot. Every alias of
// every product is normalized and stored; brand tokens are precomputed and
// length-sorted so detection tries "lewis road creamery" before "lewis road".
func BuildAliasIndex(products []domain.Product) *AliasIndex {
	idx := &AliasIndex{
		gtins:   make(map[string]aliasEntry),
		builtAt: time.Now(),
	}

	brandSet := make(map[string]bool)

	for _, p := range products {
		brand := normalizeText(p.Brand)
		if brand != "" {
			brandSet[brand] = true
		}

		for _, alias := range p.AliasList() {
			normalized := normalizeText(alias)
			if normalized == "" {
				continue
			}
			idx.entries = append(idx.entries, aliasEntry{
				alias:       normalized,
				tokens:      tokenize(alias),
				productID:   p.ID,
				productName: p.Name,
				brand:       brand,
			})
		}

		if domain.ValidGTIN(p.GTIN) {
			idx.gtins[p.GTIN] = aliasEntry{
				alias:       p.GTIN,
				productID:   p.ID,
				productName: p.Name,
				brand:       brand,
			}
		}
	}

	// Shorter aliases first so suggestion search scans in final rank order.
	sort.Slice(idx.entries, func(i, j int) bool {
		a, b := idx.entries[i], idx.entries[j]
		if len(a.alias) != len(b.alias) {
			return len(a.alias) < len(b.alias)
		}
		if a.alias != b.alias {
			return a.alias < b.alias
		}
		return a.productID < b.productID
	})

	for brand := range brandSet {
		idx.brands = append(idx.brands, brand)
	}
	sort.Slice(idx.brands, func(i, j int) bool {
		if len(idx.brands[i]) != len(idx.brands[j]) {
			return len(idx.brands[i]) > len(idx.brands[j])
		}
		return idx.brands[i] < idx.brands[j]
	})

	return idx
}

// DetectBrand returns the longest known brand token appearing in the
// normalized line, or false if none matches.
func (idx *AliasIndex) DetectBrand(line string) (string, bool) {
	for _, brand := range idx.brands {
		if containsToken(line, brand) {
			return brand, true
		}
	}
	return "", false
}

// LookupGTIN resolves a normalized line consisting solely of a known GTIN
// (spaces between digit groups allowed) to its product. Lines mixing digits
// with other text never resolve here, even when their digits happen to
// concatenate into a known code.
func (idx *AliasIndex) LookupGTIN(line string) (int64, string, bool) {
	digits := digitsOnly(line)
	if digits == "" || digits != strings.ReplaceAll(line, " ", "") {
		return 0, "", false
	}
	entry, ok := idx.gtins[digits]
	if !ok {
		return 0, "", false
	}
	return entry.productID, entry.productName, true
}

// Search returns up to limit suggestions whose alias contains the normalized
// query as a substring, shortest alias first, then alphabetical. Each product
// appears at most once, represented by its shortest matching alias.
func (idx *AliasIndex) Search(query string, limit int) []domain.Suggestion {
	suggestions := []domain.Suggestion{}

	normalized := normalizeText(query)
	if normalized == "" || limit <= 0 {
		return suggestions
	}

	seen := make(map[int64]bool)
	for _, e := range idx.entries {
		if !strings.Contains(e.alias, normalized) || seen[e.productID] {
			continue
		}
		seen[e.productID] = true
		suggestions = append(suggestions, domain.Suggestion{
			ProductID: e.productID,
			Name:      e.productName,
		})
		if len(suggestions) == limit {
			break
		}
	}

	return suggestions
}

// Entries returns the number of indexed aliases (for logging/monitoring).
func (idx *AliasIndex) Entries() int {
	return len(idx.entries)
}

// BuiltAt returns the time this snapshot was constructed.
func (idx *AliasIndex) BuiltAt() time.Time {
	return idx.builtAt
}

// containsToken reports whether needle occurs in haystack on word boundaries,
// so the brand "pam" does not fire inside "parmesan".
func containsToken(haystack, needle string) bool {
	idx := 0
	for {
		i := strings.Index(haystack[idx:], needle)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(needle)
		startOK := start == 0 || haystack[start-1] == ' '
		endOK := end == len(haystack) || haystack[end] == ' '
		if startOK && endOK {
			return true
		}
		idx = start + 1
		if idx >= len(haystack) {
			return false
		}
	}
}
