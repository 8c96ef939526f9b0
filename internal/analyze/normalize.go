package analyze

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kozuong/Car-AI/internal/lang"
)

var titleCaser = cases.Title(language.Und)

// Brands whose marketing name spans two words joined with a hyphen
// (Mercedes-Benz, Alfa-Romeo).
var hyphenatedBrands = map[string]bool{
	"mercedes": true,
	"alfa":     true,
}

// NormalizeBrand extracts the brand from a brand or car-name string: the
// first token title-cased, or the first two tokens hyphenated for the
// two-word brand names.
func NormalizeBrand(s string) string {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) == 0 {
		return ""
	}
	if len(parts) > 1 && hyphenatedBrands[strings.ToLower(parts[0])] {
		return titleCaser.String(parts[0]) + "-" + titleCaser.String(parts[1])
	}
	return titleCaser.String(parts[0])
}

// rangeRe matches "A - B" integer ranges with an optional currency mark on
// the second bound ("$80,000 - $100,000" after comma stripping).
var rangeRe = regexp.MustCompile(`(\d+)\s*(?:-|–|to|đến)\s*\$?(\d+)`)

// AverageRange collapses an integer range to its floor midpoint, keeping the
// unit suffix and a leading currency mark. Strings without a clean two-bound
// integer range (single values, no numbers, decimal bounds) pass through
// unchanged.
func AverageRange(s string) string {
	clean := strings.ReplaceAll(s, ",", "")
	m := rangeRe.FindStringSubmatchIndex(clean)
	if m == nil {
		return s
	}
	// Decimal bounds ("3.5-4.0") are not a range of integers.
	if m[0] > 0 && clean[m[0]-1] == '.' {
		return s
	}
	if m[1] < len(clean) && clean[m[1]] == '.' {
		return s
	}
	a, errA := strconv.Atoi(clean[m[2]:m[3]])
	b, errB := strconv.Atoi(clean[m[4]:m[5]])
	if errA != nil || errB != nil {
		return s
	}
	out := strconv.Itoa((a + b) / 2)
	if strings.HasSuffix(strings.TrimSpace(clean[:m[0]]), "$") {
		out = "$" + out
	}
	if suffix := strings.TrimSpace(clean[m[1]:]); suffix != "" {
		out += " " + suffix
	}
	return out
}

// TranslateUnits rewrites production-count unit phrases into the target
// language. Applied once, at assembly time.
func TranslateUnits(s string, tb lang.Table) string {
	for _, r := range tb.UnitReplacements {
		s = strings.ReplaceAll(s, r[0], r[1])
	}
	return s
}

// Normalize collapses ranged numeric fields to single representative values.
// Acceleration is left alone: its bounds are fractional seconds.
func Normalize(f FieldMap) FieldMap {
	f.Year = AverageRange(f.Year)
	f.Price = AverageRange(f.Price)
	f.Power = AverageRange(f.Power)
	f.TopSpeed = AverageRange(f.TopSpeed)
	return f
}
