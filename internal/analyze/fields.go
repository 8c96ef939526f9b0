package analyze

// FieldMap is the intermediate extraction result for one language. The key
// set is closed: every attribute the segmenter can recover has a field here,
// missing values stay as the zero value, never nil (Features is kept
// non-nil by the segmenter).
type FieldMap struct {
	Brand          string
	Model          string
	Year           string
	Price          string
	Power          string
	Acceleration   string
	TopSpeed       string
	Description    string
	EngineDetail   string
	Interior       string
	Features       []string
	NumberProduced string
	Rarity         string

	// RawText keeps the complete model output for the late description
	// fallbacks and for diagnostics.
	RawText string
}

// Field keys, used by the reconciler's fallback table and by the language
// alias tables in internal/lang.
const (
	KeyBrand          = "brand"
	KeyModel          = "model"
	KeyYear           = "year"
	KeyPrice          = "price"
	KeyPower          = "power"
	KeyAcceleration   = "acceleration"
	KeyTopSpeed       = "top_speed"
	KeyDescription    = "description"
	KeyEngineDetail   = "engine_detail"
	KeyInterior       = "interior"
	KeyFeatures       = "features"
	KeyNumberProduced = "number_produced"
	KeyRarity         = "rarity"
)

func (f *FieldMap) get(key string) string {
	switch key {
	case KeyBrand:
		return f.Brand
	case KeyModel:
		return f.Model
	case KeyYear:
		return f.Year
	case KeyPrice:
		return f.Price
	case KeyPower:
		return f.Power
	case KeyAcceleration:
		return f.Acceleration
	case KeyTopSpeed:
		return f.TopSpeed
	case KeyDescription:
		return f.Description
	case KeyEngineDetail:
		return f.EngineDetail
	case KeyInterior:
		return f.Interior
	case KeyNumberProduced:
		return f.NumberProduced
	case KeyRarity:
		return f.Rarity
	}
	return ""
}

func (f *FieldMap) set(key, value string) {
	switch key {
	case KeyBrand:
		f.Brand = value
	case KeyModel:
		f.Model = value
	case KeyYear:
		f.Year = value
	case KeyPrice:
		f.Price = value
	case KeyPower:
		f.Power = value
	case KeyAcceleration:
		f.Acceleration = value
	case KeyTopSpeed:
		f.TopSpeed = value
	case KeyDescription:
		f.Description = value
	case KeyEngineDetail:
		f.EngineDetail = value
	case KeyInterior:
		f.Interior = value
	case KeyNumberProduced:
		f.NumberProduced = value
	case KeyRarity:
		f.Rarity = value
	}
}

// CarRecord is one assembled, per-language result.
type CarRecord struct {
	CarName        string   `json:"car_name"`
	Brand          string   `json:"brand"`
	Year           string   `json:"year"`
	Price          string   `json:"price"`
	Power          string   `json:"power"`
	Acceleration   string   `json:"acceleration"`
	TopSpeed       string   `json:"top_speed"`
	Description    string   `json:"description"`
	EngineDetail   string   `json:"engine_detail"`
	Interior       string   `json:"interior"`
	Features       []string `json:"features"`
	NumberProduced string   `json:"number_produced"`
	Rarity         string   `json:"rarity"`
	LogoURL        string   `json:"logo_url"`

	// Vietnamese records carry the unreconciled Vietnamese extraction for
	// audit; empty and omitted on the English record.
	CarNameVI      string   `json:"car_name_vi,omitempty"`
	BrandVI        string   `json:"brand_vi,omitempty"`
	ModelVI        string   `json:"model_vi,omitempty"`
	DescriptionVI  string   `json:"description_vi,omitempty"`
	EngineDetailVI string   `json:"engine_detail_vi,omitempty"`
	InteriorVI     string   `json:"interior_vi,omitempty"`
	FeaturesVI     []string `json:"features_vi,omitempty"`
}
