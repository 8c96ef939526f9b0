package analyze

import (
	"testing"

	"github.com/kozuong/Car-AI/internal/lang"
)

func TestAverageRange(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"150-200 hp", "175 hp"},
		{"2020-2022", "2021"},
		{"100 đến 200 km/h", "150 km/h"},
		{"2020 to 2022", "2021"},
		{"$80,000 - $100,000", "$90000"},
		{"1,500 - 2,500 units", "2000 units"},
		// Floor midpoint for odd sums.
		{"100-101", "100"},
		// No range: pass through untouched.
		{"250 hp", "250 hp"},
		{"fast", "fast"},
		{"", ""},
		// Decimal bounds are not an integer range.
		{"3.5-4.0 seconds", "3.5-4.0 seconds"},
		{"180-200.5 km/h", "180-200.5 km/h"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := AverageRange(tt.in); got != tt.want {
				t.Errorf("AverageRange(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeBrand(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"toyota corolla", "Toyota"},
		{"FERRARI", "Ferrari"},
		{"mercedes benz c300", "Mercedes-Benz"},
		{"alfa romeo giulia", "Alfa-Romeo"},
		{"  porsche  ", "Porsche"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeBrand(tt.in); got != tt.want {
			t.Errorf("NormalizeBrand(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTranslateUnits(t *testing.T) {
	vi := lang.ForCode(lang.VI)
	en := lang.ForCode(lang.EN)

	if got := TranslateUnits("500 units/year", vi); got != "500 xe/năm" {
		t.Errorf("to vi: %q", got)
	}
	if got := TranslateUnits("12,000 units", vi); got != "12,000 xe" {
		t.Errorf("to vi: %q", got)
	}
	if got := TranslateUnits("500 xe/năm", en); got != "500 units/year" {
		t.Errorf("to en: %q", got)
	}
	if got := TranslateUnits("Production numbers not available.", vi); got != "Production numbers not available." {
		t.Errorf("sentinel must pass through: %q", got)
	}
}

func TestNormalizeLeavesAcceleration(t *testing.T) {
	f := FieldMap{
		Year:         "2020-2022",
		Power:        "150-200 hp",
		Acceleration: "3.5-4.0 seconds",
		TopSpeed:     "180-200 km/h",
		Price:        "$80,000 - $100,000",
	}
	f = Normalize(f)
	if f.Year != "2021" || f.Power != "175 hp" || f.TopSpeed != "190 km/h" || f.Price != "$90000" {
		t.Errorf("normalized fields: %+v", f)
	}
	if f.Acceleration != "3.5-4.0 seconds" {
		t.Errorf("acceleration must be untouched: %q", f.Acceleration)
	}
}
