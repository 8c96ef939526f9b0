package analyze

import (
	"regexp"
	"strings"

	"github.com/kozuong/Car-AI/internal/lang"
)

// fallbackKeys are filled on the Vietnamese side from English when empty.
// The Vietnamese value is authoritative when present; English values are
// never overwritten.
var fallbackKeys = []string{
	KeyYear, KeyPower, KeyAcceleration, KeyTopSpeed,
	KeyPrice, KeyNumberProduced, KeyRarity,
}

// asciiToken matches a whitespace-delimited token of plain English prose:
// letters, digits and common punctuation, no diacritics.
var asciiToken = regexp.MustCompile(`^[a-zA-Z0-9\-.,:;]+$`)

// MostlyEnglish reports whether more than half of the tokens look like plain
// ASCII technical tokens, i.e. the text leaked the wrong language.
func MostlyEnglish(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	n := 0
	for _, w := range words {
		if asciiToken.MatchString(w) {
			n++
		}
	}
	return float64(n)/float64(len(words)) > 0.5
}

// Reconcile merges the two language extractions. Empty Vietnamese values in
// the fallback key set are filled from English. Vietnamese descriptive
// fields that scored as mostly English are blanked rather than replaced —
// English prose must not be presented as a Vietnamese result. A blanked or
// missing Vietnamese description gets one last manual extraction pass over
// the raw Vietnamese text before falling back to the sentinel.
func Reconcile(en, vi FieldMap, viTable lang.Table) (FieldMap, FieldMap) {
	for _, k := range fallbackKeys {
		if vi.get(k) == "" {
			vi.set(k, en.get(k))
		}
	}

	if vi.EngineDetail != "" && MostlyEnglish(vi.EngineDetail) {
		vi.EngineDetail = ""
	}
	if vi.Interior != "" && MostlyEnglish(vi.Interior) {
		vi.Interior = ""
	}

	if vi.Description == "" || MostlyEnglish(vi.Description) {
		vi.Description = recoverOverview(vi.RawText, viTable)
	}

	return en, vi
}

// recoverOverview re-extracts the Overview block straight from the raw text,
// returning the language's sentinel when nothing usable is found.
func recoverOverview(raw string, tb lang.Table) string {
	if block := overviewBlock(raw, tb); block != "" && !MostlyEnglish(block) {
		return block
	}
	return tb.DescriptionUnavailable
}

func overviewBlock(raw string, tb lang.Table) string {
	if len(tb.OverviewHeaders) == 0 || raw == "" {
		return ""
	}
	stops := make([]string, 0, len(tb.EngineHeaders)+len(tb.InteriorHeaders))
	for _, h := range append(append([]string{}, tb.EngineHeaders...), tb.InteriorHeaders...) {
		stops = append(stops, regexp.QuoteMeta(strings.TrimSuffix(h, ":")))
	}
	pattern := `(?is)` + regexp.QuoteMeta(tb.OverviewHeaders[0]) +
		`\s*(.+?)(?:\n(?:` + strings.Join(stops, "|") + `)|\z)`
	re, err := regexp.Compile(pattern)
	if err != nil {
		return ""
	}
	m := re.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
