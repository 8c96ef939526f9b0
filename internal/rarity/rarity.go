// Package rarity buckets a production-count string into a rarity label.
package rarity

import (
	"regexp"
	"strconv"
	"strings"
)

var digitsRe = regexp.MustCompile(`\d+`)

// Classifier assigns rarity labels by production volume. The thresholds are
// this classifier's own; callers treat the mapping as opaque.
type Classifier struct{}

func New() *Classifier { return &Classifier{} }

func (c *Classifier) Classify(count string) string {
	tok := digitsRe.FindString(strings.ReplaceAll(count, ",", ""))
	if tok == "" {
		return "Unknown"
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return "Unknown"
	}
	switch {
	case n <= 100:
		return "Ultra Rare"
	case n <= 1000:
		return "Very Rare"
	case n <= 10000:
		return "Rare"
	case n <= 100000:
		return "Uncommon"
	default:
		return "Common"
	}
}
