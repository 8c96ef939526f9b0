// Package lang holds the per-language tables the analysis pipeline is
// parameterized with: the vision prompt, the section headers and key aliases
// the segmenter recognizes, performance-line markers, production-unit phrase
// replacements and user-facing sentinels. Adding a language means adding a
// table here, not another code path.
package lang

type Code string

const (
	EN Code = "en"
	VI Code = "vi"
)

// Table drives the segmenter and assembler for one language.
type Table struct {
	Code Code

	// Prompt shown verbatim to the vision model.
	Prompt string

	// Section headers, matched case-insensitively against the whole line.
	PerformanceHeaders []string
	DescriptionHeaders []string
	OverviewHeaders    []string
	EngineHeaders      []string
	InteriorHeaders    []string

	// Substrings that identify performance lines inside the Performance
	// section, matched case-insensitively.
	PowerMarkers    []string
	AccelMarkers    []string
	TopSpeedMarkers []string

	// KeyAliases maps a lowercased "Key:" label to a FieldMap key.
	KeyAliases map[string]string

	// EngineHintKeys / InteriorHintKeys are "Key:" labels that mark the
	// start of the engine / interior bullet block when the model drops the
	// section header itself.
	EngineHintKeys   []string
	InteriorHintKeys []string

	// UnitReplacements rewrite production-count unit phrases into this
	// language at assembly time, applied in order.
	UnitReplacements [][2]string

	// DescriptionUnavailable is the sentinel used when no description in
	// this language can be recovered.
	DescriptionUnavailable string
}

var tableEN = Table{
	Code:               EN,
	Prompt:             PromptEN,
	PerformanceHeaders: []string{"performance:"},
	DescriptionHeaders: []string{"description:"},
	OverviewHeaders:    []string{"overview:"},
	EngineHeaders:      []string{"engine details:"},
	InteriorHeaders:    []string{"interior & features:", "interior and features:"},
	PowerMarkers:       []string{"power"},
	AccelMarkers:       []string{"0-60", "0-100", "acceleration"},
	TopSpeedMarkers:    []string{"top speed"},
	KeyAliases: map[string]string{
		"brand":           "brand",
		"model":           "model",
		"year":            "year",
		"price":           "price",
		"overview":        "description",
		"power":           "power",
		"acceleration":    "acceleration",
		"0-100 km/h":      "acceleration",
		"top speed":       "top_speed",
		"number produced": "number_produced",
		"rarity":          "rarity",
		"key features":    "features",
	},
	EngineHintKeys:   []string{"configuration"},
	InteriorHintKeys: []string{"seating"},
	UnitReplacements: [][2]string{
		{"xe/năm", "units/year"},
		{"xe", "units"},
	},
	DescriptionUnavailable: "A detailed description is not available for this vehicle at the moment.",
}

var tableVI = Table{
	Code:               VI,
	Prompt:             PromptVI,
	PerformanceHeaders: []string{"hiệu năng:"},
	DescriptionHeaders: []string{"mô tả:"},
	OverviewHeaders:    []string{"tổng quan:"},
	EngineHeaders:      []string{"chi tiết động cơ:"},
	InteriorHeaders:    []string{"nội thất & tính năng:", "nội thất và tính năng:"},
	PowerMarkers:       []string{"công suất"},
	AccelMarkers:       []string{"0-100", "tăng tốc"},
	TopSpeedMarkers:    []string{"tốc độ tối đa"},
	KeyAliases: map[string]string{
		"hãng":                "brand",
		"tên hãng":            "brand",
		"mẫu xe":              "model",
		"tên mẫu xe":          "model",
		"năm":                 "year",
		"năm sản xuất":        "year",
		"giá":                 "price",
		"tổng quan":           "description",
		"mô tả":               "description",
		"công suất":           "power",
		"tăng tốc":            "acceleration",
		"tăng tốc 0-100 km/h": "acceleration",
		"tốc độ tối đa":       "top_speed",
		"số lượng sản xuất":   "number_produced",
		"độ hiếm":             "rarity",
		"tính năng nổi bật":   "features",
	},
	EngineHintKeys:   []string{"cấu hình"},
	InteriorHintKeys: []string{"ghế ngồi"},
	UnitReplacements: [][2]string{
		{"units/year", "xe/năm"},
		{"per year", "xe/năm"},
		{"units", "xe"},
		{"unit", "xe"},
	},
	DescriptionUnavailable: "Mô tả chưa khả dụng bằng tiếng Việt.",
}

// ForCode returns the table for a language code, defaulting to English.
func ForCode(c Code) Table {
	if c == VI {
		return tableVI
	}
	return tableEN
}

// Pair returns the primary (EN) and secondary (VI) tables the service is
// configured for.
func Pair() (Table, Table) {
	return tableEN, tableVI
}
