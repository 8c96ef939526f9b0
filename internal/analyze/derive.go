package analyze

import (
	"context"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Collaborator interfaces consumed by the resolver. Implementations live in
// internal/search, internal/vision and internal/rarity.

// CountLookup queries a search provider for a textual answer possibly
// containing a production number.
type CountLookup interface {
	SearchCount(ctx context.Context, query string) (string, error)
}

// LogoLookup finds a brand logo URL, empty when nothing was found.
type LogoLookup interface {
	SearchLogo(ctx context.Context, brand string) (string, error)
}

// TextGenerator answers a free-form text question. Used as the last lookup
// stage before the production-count sentinel.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// RarityClassifier maps a production-count string to a rarity label. Bucket
// thresholds are the classifier's business.
type RarityClassifier interface {
	Classify(count string) string
}

// CountUnavailable is the terminal fallback for production-count resolution.
const CountUnavailable = "Production numbers not available."

const (
	logoAttempts  = 3
	logoPause     = time.Second
	lookupTimeout = 10 * time.Second
)

// Resolver computes the derived attributes: production count, rarity and
// brand logo. It owns no state beyond the injected caches; lookup failures
// and timeouts degrade the one attribute, never the request.
type Resolver struct {
	Counts *Cache
	Logos  *Cache
	Count  CountLookup
	Logo   LogoLookup
	Gen    TextGenerator
	Rarity RarityClassifier

	// Pause between logo attempts; overridable in tests.
	LogoPause time.Duration
}

func NewResolver(c *Caches, count CountLookup, logo LogoLookup, gen TextGenerator, rarity RarityClassifier) *Resolver {
	return &Resolver{
		Counts:    c.Counts,
		Logos:     c.Logos,
		Count:     count,
		Logo:      logo,
		Gen:       gen,
		Rarity:    rarity,
		LogoPause: logoPause,
	}
}

var digitsRe = regexp.MustCompile(`\d+`)

// countQueries are the ordered phrasings for the search stage.
var countQueries = []string{
	"%s production numbers",
	"%s total produced",
	"%s units built",
}

// ResolveProductionCount resolves the production count for a car, trying in
// strict order: integers already embedded in the extracted field (ignoring
// anything that reads as a calendar year), the cache, the search provider
// with three query phrasings, a direct question to the text generator, and
// finally the sentinel. Whatever stage wins is written back to the cache.
func (r *Resolver) ResolveProductionCount(ctx context.Context, carName, extracted string) string {
	// Stage 1: the field text itself.
	if _, ok := firstNonYearInt(extracted); ok {
		r.storeCount(carName, extracted)
		return extracted
	}

	// Stage 2: cache.
	if v, ok := r.Counts.Get(carName); ok && carName != "" {
		log.Printf("[count][cache] hit for %q: %s", carName, v)
		return v
	}

	// Stage 3: search provider.
	if r.Count != nil && carName != "" {
		for _, q := range countQueries {
			query := strings.Replace(q, "%s", carName, 1)
			resp, err := r.lookupCount(ctx, query)
			if err != nil {
				log.Printf("[count][search] %q: %v", query, err)
				continue
			}
			if strings.TrimSpace(resp) == "" {
				continue
			}
			if n, ok := firstInt(resp); ok {
				v := formatUnits(n)
				r.storeCount(carName, v)
				return v
			}
		}
	}

	// Stage 4: ask the text generator directly.
	if r.Gen != nil && carName != "" {
		prompt := "What is the total number of " + carName + " produced? Please provide a specific number or range."
		resp, err := r.generate(ctx, prompt)
		if err != nil {
			log.Printf("[count][gen] %v", err)
		} else if s := strings.TrimSpace(resp); s != "" {
			v := s
			if n, ok := firstInt(s); ok {
				v = formatUnits(n)
			}
			r.storeCount(carName, v)
			return v
		}
	}

	// Stage 5: sentinel.
	r.storeCount(carName, CountUnavailable)
	return CountUnavailable
}

func (r *Resolver) storeCount(carName, v string) {
	if strings.TrimSpace(carName) != "" {
		r.Counts.Put(carName, v)
	}
}

func (r *Resolver) lookupCount(ctx context.Context, query string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()
	return r.Count.SearchCount(ctx, query)
}

func (r *Resolver) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()
	return r.Gen.GenerateText(ctx, prompt)
}

// ResolveRarity forwards the resolved count to the classifier.
func (r *Resolver) ResolveRarity(count string) string {
	if r.Rarity == nil {
		return ""
	}
	return r.Rarity.Classify(count)
}

// ResolveLogo finds a logo URL for the brand: cache first, then up to three
// lookup attempts with a fixed pause. The outcome is cached either way so a
// brand with no logo is not looked up again for the process lifetime.
func (r *Resolver) ResolveLogo(ctx context.Context, brand string) string {
	if strings.TrimSpace(brand) == "" {
		return ""
	}
	if v, ok := r.Logos.Get(brand); ok {
		log.Printf("[logo][cache] hit for %q: %s", brand, v)
		return v
	}
	if r.Logo == nil {
		return ""
	}
	for attempt := 1; attempt <= logoAttempts; attempt++ {
		url, err := r.lookupLogo(ctx, brand)
		if err != nil {
			log.Printf("[logo] attempt %d for %q: %v", attempt, brand, err)
		} else if url != "" {
			r.Logos.Put(brand, url)
			return url
		}
		if attempt < logoAttempts {
			time.Sleep(r.LogoPause)
		}
	}
	r.Logos.Put(brand, "")
	return ""
}

func (r *Resolver) lookupLogo(ctx context.Context, brand string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()
	return r.Logo.SearchLogo(ctx, brand)
}

// firstNonYearInt returns the first integer in s that does not read as a
// calendar year (inclusive range 1900..2030).
func firstNonYearInt(s string) (int, bool) {
	for _, tok := range digitsRe.FindAllString(strings.ReplaceAll(s, ",", ""), -1) {
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		if n >= 1900 && n <= 2030 {
			continue
		}
		return n, true
	}
	return 0, false
}

func firstInt(s string) (int, bool) {
	tok := digitsRe.FindString(strings.ReplaceAll(s, ",", ""))
	if tok == "" {
		return 0, false
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return n, true
}

// formatUnits renders a count with thousands separators, "12,000 units".
func formatUnits(n int) string {
	return groupDigits(strconv.Itoa(n)) + " units"
}

func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
