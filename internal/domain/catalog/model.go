package catalog

// Category groups standardized lab parameters by panel.
type Category string

const (
	CategoryHematology   Category = "hematology"
	CategoryBiochemistry Category = "biochemistry"
	CategoryLipids       Category = "lipids"
	CategoryHormones     Category = "hormones"
	CategoryVitamins     Category = "vitamins"
	CategoryImmunology   Category = "immunology"
	CategoryUrine        Category = "urine"
	CategoryOther        Category = "other"
)

// Parameter is a canonical lab parameter descriptor. Parameters are loaded
// once at process start and never mutated.
type Parameter struct {
	Key            string   `json:"key"`
	DisplayName    string   `json:"display_name"`
	Unit           string   `json:"unit,omitempty"`
	ReferenceRange string   `json:"reference_range,omitempty"`
	Category       Category `json:"category"`
}
