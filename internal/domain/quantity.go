package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// gramQuantityRegex matches weight patterns like "500g", "1.5 kg", "250 grams"
var gramQuantityRegex = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(kg|kgs|kilograms?|g|grams?)\b`)

// ExtractGrams extracts a gram quantity from free text, e.g. "Butter 500g"
// yields 500 and "Flour 1.5kg" yields 1500. Returns false when the text
// carries no recognizable weight.
func ExtractGrams(text string) (int64, bool) {
	m := gramQuantityRegex.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil || value <= 0 {
		return 0, false
	}

	unit := strings.ToLower(m[2])
	if strings.HasPrefix(unit, "k") {
		value *= 1000
	}

	return int64(value + 0.5), true
}
