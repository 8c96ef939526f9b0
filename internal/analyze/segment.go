package analyze

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kozuong/Car-AI/internal/lang"
)

// Segmenter states. The scanner starts in stateNone and moves between
// sections on recognized header lines; end of input flushes whatever
// section is open.
type segState int

const (
	stateNone segState = iota
	statePerformance
	stateOverview
	stateEngine
	stateInterior
)

// genericHeader matches a bare section header line ("Something:") in either
// language, with nothing after the colon.
var genericHeader = regexp.MustCompile(`^[\p{L}\d &/-]+:$`)

// minProseLen is the minimum length for a line to qualify as recovered
// prose in the late description fallbacks.
const minProseLen = 100

// Segment scans one raw model output into a FieldMap using the language's
// header and alias tables. Malformed input never fails; it just produces a
// sparser map. The full input is retained in RawText.
func Segment(text string, tb lang.Table) FieldMap {
	fields := FieldMap{RawText: text, Features: []string{}}

	state := stateNone
	var buf []string

	flush := func() {
		if len(buf) == 0 {
			return
		}
		switch state {
		case stateOverview:
			if fields.Description == "" {
				fields.Description = strings.TrimSpace(strings.Join(buf, " "))
			}
		case stateEngine:
			fields.EngineDetail = strings.Join(buf, "\n")
		case stateInterior:
			fields.Interior = strings.Join(buf, "\n")
		}
		buf = nil
	}

	lines := strings.Split(text, "\n")
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if next, ok := matchHeader(line, tb); ok {
			flush()
			state = next
			continue
		}

		if state == statePerformance {
			scanPerformanceLine(line, tb, &fields)
			continue
		}

		bullet := strings.HasPrefix(line, "- ")

		if !bullet && strings.Contains(line, ":") {
			key, value, _ := strings.Cut(line, ":")
			key = strings.ToLower(strings.Trim(key, "*- \t"))
			value = strings.Trim(strings.TrimSpace(value), "*")

			if target, ok := tb.KeyAliases[key]; ok && value != "" {
				assignAlias(target, value, &fields)
				continue
			}
			if hasKey(tb.EngineHintKeys, key) {
				flush()
				state = stateEngine
				buf = append(buf, line)
				continue
			}
			if hasKey(tb.InteriorHintKeys, key) {
				flush()
				state = stateInterior
				buf = append(buf, line)
				continue
			}
		}

		switch state {
		case stateOverview:
			if !bullet {
				buf = append(buf, line)
			}
		case stateEngine, stateInterior:
			if bullet {
				buf = append(buf, strings.TrimPrefix(line, "- "))
			} else {
				buf = append(buf, line)
			}
		}
	}
	flush()

	fallbackDescription(lines, tb, &fields)
	fallbackLongestProse(lines, &fields)

	return fields
}

// matchHeader reports whether the line is a recognized (or at least
// header-shaped) section header and the state it switches to. Recognized
// headers must be bare — a trailing value makes the line a key/value line,
// not a header. Unrecognized header-shaped lines close the open section.
func matchHeader(line string, tb lang.Table) (segState, bool) {
	lower := strings.ToLower(line)
	switch {
	case hasBareHeader(tb.PerformanceHeaders, lower):
		return statePerformance, true
	case hasBareHeader(tb.OverviewHeaders, lower), hasBareHeader(tb.DescriptionHeaders, lower):
		return stateOverview, true
	case hasBareHeader(tb.EngineHeaders, lower):
		return stateEngine, true
	case hasBareHeader(tb.InteriorHeaders, lower):
		return stateInterior, true
	case genericHeader.MatchString(line):
		return stateNone, true
	}
	return stateNone, false
}

func hasBareHeader(headers []string, lower string) bool {
	for _, h := range headers {
		if lower == h {
			return true
		}
	}
	return false
}

func hasKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// scanPerformanceLine assigns power / acceleration / top speed directly from
// marker lines inside the Performance section.
func scanPerformanceLine(line string, tb lang.Table, fields *FieldMap) {
	lower := strings.ToLower(line)
	value := ""
	if _, after, ok := strings.Cut(line, ":"); ok {
		value = strings.TrimSpace(after)
	}
	if value == "" {
		return
	}
	switch {
	case containsAny(lower, tb.TopSpeedMarkers):
		fields.TopSpeed = value
	case containsAny(lower, tb.AccelMarkers):
		fields.Acceleration = value
	case containsAny(lower, tb.PowerMarkers):
		fields.Power = value
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func assignAlias(target, value string, fields *FieldMap) {
	if target == KeyFeatures {
		parts := strings.Split(value, ",")
		features := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				features = append(features, p)
			}
		}
		fields.Features = features
		return
	}
	fields.set(target, value)
}

// fallbackDescription recovers a description from the block of non-header
// lines preceding the first header when no Overview section was found.
func fallbackDescription(lines []string, tb lang.Table, fields *FieldMap) {
	if fields.Description != "" {
		return
	}
	var candidate []string
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if _, ok := matchHeader(line, tb); ok {
			break
		}
		candidate = append(candidate, line)
	}
	if len(candidate) > 0 {
		fields.Description = strings.Join(candidate, " ")
	}
}

// fallbackLongestProse fills any still-empty long-text field with the
// longest colon-free line of at least minProseLen characters.
func fallbackLongestProse(lines []string, fields *FieldMap) {
	if fields.Description != "" && fields.EngineDetail != "" && fields.Interior != "" {
		return
	}
	longest := ""
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if strings.Contains(line, ":") {
			continue
		}
		if utf8.RuneCountInString(line) >= minProseLen && len(line) > len(longest) {
			longest = line
		}
	}
	if longest == "" {
		return
	}
	if fields.Description == "" {
		fields.Description = longest
	}
	if fields.EngineDetail == "" {
		fields.EngineDetail = longest
	}
	if fields.Interior == "" {
		fields.Interior = longest
	}
}
