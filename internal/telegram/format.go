package telegram

import (
	"strings"
	"unicode/utf8"

	"github.com/kozuong/Car-AI/internal/analyze"
)

const maxDescRunes = 600

// FormatRecord renders one record as a plain-text chat card.
func FormatRecord(rec analyze.CarRecord) string {
	var b strings.Builder
	b.WriteString("🚗 " + rec.CarName + "\n")
	writeLine(&b, "Brand", rec.Brand)
	writeLine(&b, "Year", rec.Year)
	writeLine(&b, "Price", rec.Price)
	writeLine(&b, "Power", rec.Power)
	writeLine(&b, "0-100", rec.Acceleration)
	writeLine(&b, "Top speed", rec.TopSpeed)
	writeLine(&b, "Produced", rec.NumberProduced)
	writeLine(&b, "Rarity", rec.Rarity)
	if len(rec.Features) > 0 {
		writeLine(&b, "Features", strings.Join(rec.Features, ", "))
	}
	if rec.Description != "" {
		b.WriteString("\n" + truncate(rec.Description, maxDescRunes) + "\n")
	}
	return b.String()
}

func writeLine(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(label + ": " + value + "\n")
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "…"
}
