package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	punctuationRegex    = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex = regexp.MustCompile(`\s+`)
)

// normalizeText lowercases, strips punctuation, and collapses whitespace.
// Aliases and incoming OCR lines are normalized identically so substring
// checks are meaningful.
func normalizeText(s string) string {
	s = strings.ToLower(s)
	s = punctuationRegex.ReplaceAllString(s, " ")
	s = multipleSpacesRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// tokenize splits normalized text into word tokens.
func tokenize(s string) []string {
	return strings.Fields(normalizeText(s))
}

// tokenOverlap returns the Jaccard ratio between two token sets: the count of
// shared tokens over the count of distinct tokens across both.
func tokenOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	set := make(map[string]bool, len(a))
	for _, t := range a {
		set[t] = true
	}

	union := make(map[string]bool, len(a)+len(b))
	for _, t := range a {
		union[t] = true
	}

	shared := 0
	seen := make(map[string]bool)
	for _, t := range b {
		union[t] = true
		if set[t] && !seen[t] {
			shared++
			seen[t] = true
		}
	}

	return float64(shared) / float64(len(union))
}

// digitsOnly strips everything but digits; used to test lines against GTINs.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}
