package analyze

import (
	"strings"
	"unicode/utf8"

	"github.com/kozuong/Car-AI/internal/lang"
)

// minDescriptionLen is the threshold below which an English description is
// replaced with one of the two fixed fallbacks.
const minDescriptionLen = 100

func joinName(brand, model string) string {
	return strings.TrimSpace(strings.TrimSpace(brand) + " " + strings.TrimSpace(model))
}

// AssembleEN builds the English record. There is no hard completeness check
// on this side: whatever is missing is filled with the best available
// fallback instead of rejected.
func AssembleEN(f FieldMap, tb lang.Table, logoURL string) CarRecord {
	carName := joinName(f.Brand, f.Model)
	brand := NormalizeBrand(carName)

	desc := strings.TrimSpace(f.Description)
	if utf8.RuneCountInString(desc) < minDescriptionLen {
		desc = defaultDescription(carName, f.Year, f.Power, f.TopSpeed, tb)
	}

	features := f.Features
	if features == nil {
		features = []string{}
	}

	return CarRecord{
		CarName:        carName,
		Brand:          brand,
		Year:           f.Year,
		Price:          f.Price,
		Power:          f.Power,
		Acceleration:   f.Acceleration,
		TopSpeed:       f.TopSpeed,
		Description:    desc,
		EngineDetail:   f.EngineDetail,
		Interior:       f.Interior,
		Features:       features,
		NumberProduced: TranslateUnits(f.NumberProduced, tb),
		Rarity:         f.Rarity,
		LogoURL:        logoURL,
	}
}

// AssembleVI builds the Vietnamese record from the reconciled fields, with
// the unreconciled extraction kept as *_vi shadow copies for audit. Identity
// fields are required: a record with a fabricated brand or model would
// poison downstream matching, so their absence is an explicit failure.
// Features mirror the English list; the genuine Vietnamese list stays in
// FeaturesVI.
func AssembleVI(f, orig FieldMap, enFeatures []string, tb lang.Table, logoURL string) (CarRecord, error) {
	carName := joinName(f.Brand, f.Model)

	var missing []string
	if strings.TrimSpace(f.Brand) == "" {
		missing = append(missing, KeyBrand)
	}
	if strings.TrimSpace(f.Model) == "" {
		missing = append(missing, KeyModel)
	}
	if carName == "" {
		missing = append(missing, "car_name")
	}
	if len(missing) > 0 {
		return CarRecord{}, &ExtractionIncompleteError{Missing: missing}
	}

	desc := strings.TrimSpace(f.Description)
	if desc == "" {
		desc = tb.DescriptionUnavailable
	}

	features := enFeatures
	if features == nil {
		features = []string{}
	}

	return CarRecord{
		CarName:        carName,
		Brand:          NormalizeBrand(carName),
		Year:           f.Year,
		Price:          f.Price,
		Power:          f.Power,
		Acceleration:   f.Acceleration,
		TopSpeed:       f.TopSpeed,
		Description:    desc,
		EngineDetail:   f.EngineDetail,
		Interior:       f.Interior,
		Features:       features,
		NumberProduced: TranslateUnits(f.NumberProduced, tb),
		Rarity:         f.Rarity,
		LogoURL:        logoURL,

		CarNameVI:      joinName(orig.Brand, orig.Model),
		BrandVI:        orig.Brand,
		ModelVI:        orig.Model,
		DescriptionVI:  orig.Description,
		EngineDetailVI: orig.EngineDetail,
		InteriorVI:     orig.Interior,
		FeaturesVI:     orig.Features,
	}, nil
}

// defaultDescription is the generated-default fallback; without enough data
// for it, the fixed unavailable sentinel.
func defaultDescription(carName, year, power, topSpeed string, tb lang.Table) string {
	if carName != "" && year != "" && power != "" && topSpeed != "" {
		return "The " + carName + " (" + year + ") is a remarkable vehicle known for its performance and features. " +
			"With " + power + " of power and a top speed of " + topSpeed + ", it offers an impressive driving experience. " +
			"This model combines advanced technology with sophisticated design, making it a standout in its class."
	}
	return tb.DescriptionUnavailable
}
