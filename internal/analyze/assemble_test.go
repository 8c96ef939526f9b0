package analyze

import (
	"errors"
	"strings"
	"testing"

	"github.com/kozuong/Car-AI/internal/lang"
)

func TestAssembleEN(t *testing.T) {
	en := lang.ForCode(lang.EN)

	t.Run("name and brand derived together", func(t *testing.T) {
		rec := AssembleEN(FieldMap{Brand: "toyota", Model: "Corolla"}, en, "")
		if rec.CarName != "toyota Corolla" {
			t.Errorf("car name: %q", rec.CarName)
		}
		if rec.Brand != "Toyota" {
			t.Errorf("brand: %q", rec.Brand)
		}
	})

	t.Run("empty identity stays consistently empty", func(t *testing.T) {
		rec := AssembleEN(FieldMap{Year: "2020"}, en, "")
		if rec.CarName != "" || rec.Brand != "" {
			t.Errorf("car name %q and brand %q must both be empty", rec.CarName, rec.Brand)
		}
	})

	t.Run("short description replaced by generated default", func(t *testing.T) {
		rec := AssembleEN(FieldMap{
			Brand: "Toyota", Model: "Corolla",
			Year: "2020", Power: "140 hp", TopSpeed: "180 km/h",
			Description: "Nice car.",
		}, en, "")
		if !strings.Contains(rec.Description, "Toyota Corolla (2020)") {
			t.Errorf("description: %q", rec.Description)
		}
		if !strings.Contains(rec.Description, "140 hp") {
			t.Errorf("description: %q", rec.Description)
		}
	})

	t.Run("short description without performance data gets sentinel", func(t *testing.T) {
		rec := AssembleEN(FieldMap{Brand: "Toyota", Model: "Corolla", Description: "Nice car."}, en, "")
		if rec.Description != en.DescriptionUnavailable {
			t.Errorf("description: %q", rec.Description)
		}
	})

	t.Run("units rendered in english", func(t *testing.T) {
		rec := AssembleEN(FieldMap{Brand: "a", Model: "b", NumberProduced: "500 xe/năm"}, en, "")
		if rec.NumberProduced != "500 units/year" {
			t.Errorf("number produced: %q", rec.NumberProduced)
		}
	})

	t.Run("nil features become an empty list", func(t *testing.T) {
		rec := AssembleEN(FieldMap{Features: nil}, en, "")
		if rec.Features == nil || len(rec.Features) != 0 {
			t.Errorf("features: %#v", rec.Features)
		}
	})
}

func TestAssembleVI(t *testing.T) {
	vi := lang.ForCode(lang.VI)

	t.Run("missing identity is an explicit failure", func(t *testing.T) {
		_, err := AssembleVI(FieldMap{Brand: "Ferrari"}, FieldMap{}, nil, vi, "")
		var incomplete *ExtractionIncompleteError
		if !errors.As(err, &incomplete) {
			t.Fatalf("err = %v", err)
		}
		if len(incomplete.Missing) != 1 || incomplete.Missing[0] != KeyModel {
			t.Errorf("missing: %v", incomplete.Missing)
		}

		_, err = AssembleVI(FieldMap{}, FieldMap{}, nil, vi, "")
		if !errors.As(err, &incomplete) {
			t.Fatalf("err = %v", err)
		}
		if len(incomplete.Missing) != 3 {
			t.Errorf("missing: %v", incomplete.Missing)
		}
	})

	t.Run("complete record with shadows", func(t *testing.T) {
		fields := FieldMap{
			Brand: "Toyota", Model: "Corolla",
			Year: "2020", NumberProduced: "12,000 units",
			Description: "Một mẫu sedan bền bỉ",
		}
		orig := FieldMap{
			Brand: "Toyota", Model: "Corolla",
			Description: "Bản gốc tiếng Việt",
			Features:    []string{"màn hình cảm ứng"},
		}
		rec, err := AssembleVI(fields, orig, []string{"touchscreen"}, vi, "https://cdn.example/l.png")
		if err != nil {
			t.Fatal(err)
		}
		if rec.CarName != "Toyota Corolla" || rec.Brand != "Toyota" {
			t.Errorf("identity: %q %q", rec.CarName, rec.Brand)
		}
		if rec.NumberProduced != "12,000 xe" {
			t.Errorf("number produced: %q", rec.NumberProduced)
		}
		if len(rec.Features) != 1 || rec.Features[0] != "touchscreen" {
			t.Errorf("features mirror the english list: %v", rec.Features)
		}
		if len(rec.FeaturesVI) != 1 || rec.FeaturesVI[0] != "màn hình cảm ứng" {
			t.Errorf("features_vi: %v", rec.FeaturesVI)
		}
		if rec.DescriptionVI != "Bản gốc tiếng Việt" {
			t.Errorf("description_vi: %q", rec.DescriptionVI)
		}
		if rec.LogoURL != "https://cdn.example/l.png" {
			t.Errorf("logo: %q", rec.LogoURL)
		}
	})

	t.Run("empty description falls back to sentinel", func(t *testing.T) {
		rec, err := AssembleVI(FieldMap{Brand: "a", Model: "b"}, FieldMap{}, nil, vi, "")
		if err != nil {
			t.Fatal(err)
		}
		if rec.Description != vi.DescriptionUnavailable {
			t.Errorf("description: %q", rec.Description)
		}
	})
}
