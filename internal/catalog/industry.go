package catalog

import "strings"

// Extension names an industry extension catalog.
type Extension string

// Extension catalogs shipped with the seeder.
const (
	Technology    Extension = "technology"
	Construction  Extension = "construction"
	Manufacturing Extension = "manufacturing"
	Healthcare    Extension = "healthcare"
	Retail        Extension = "retail"
	Finance       Extension = "finance"
	Education     Extension = "education"
	Logistics     Extension = "logistics"
	Hospitality   Extension = "hospitality"
	Media         Extension = "media"
	Energy        Extension = "energy"
)

// Extensions lists every extension catalog.
var Extensions = []Extension{
	Technology,
	Construction,
	Manufacturing,
	Healthcare,
	Retail,
	Finance,
	Education,
	Logistics,
	Hospitality,
	Media,
	Energy,
}

// industries maps industry keys to the extension they select.
// Several keys share one extension.
var industries = map[string]Extension{
	"software_dev":    Technology,
	"it_services":     Technology,
	"cybersecurity":   Technology,
	"data_analytics":  Technology,
	"data_science":    Technology,
	"cloud_services":  Technology,
	"telecom":         Technology,
	"saas":            Technology,
	"paas":            Technology,
	"iaas":            Technology,
	"hardware":        Technology,
	"gaming":          Technology,
	"mobile_apps":     Technology,
	"web_development": Technology,
	"ai_ml":           Technology,

	"construction":        Construction,
	"architecture":        Construction,
	"civil_engineering":   Construction,
	"interior_design":     Construction,
	"building_materials":  Construction,
	"mep":                 Construction,
	"infrastructure":      Construction,
	"real_estate_dev":     Construction,
	"property_management": Construction,
	"facility_management": Construction,
	"urban_planning":      Construction,

	"automotive":        Manufacturing,
	"textile":           Manufacturing,
	"food_production":   Manufacturing,
	"chemicals":         Manufacturing,
	"pharmaceuticals":   Manufacturing,
	"machinery":         Manufacturing,
	"plastics":          Manufacturing,
	"electronics_mfg":   Manufacturing,
	"furniture_mfg":     Manufacturing,
	"metal_fabrication": Manufacturing,
	"packaging_mfg":     Manufacturing,
	"aerospace":         Manufacturing,
	"shipbuilding":      Manufacturing,

	"hospital":        Healthcare,
	"pharmacy":        Healthcare,
	"dental":          Healthcare,
	"medical_labs":    Healthcare,
	"fitness":         Healthcare,
	"beauty_salon":    Healthcare,
	"cosmetics":       Healthcare,
	"wellness":        Healthcare,
	"spa":             Healthcare,
	"nutrition":       Healthcare,
	"mental_health":   Healthcare,
	"elderly_care":    Healthcare,
	"veterinary":      Healthcare,
	"medical_devices": Healthcare,

	"ecommerce":          Retail,
	"retail":             Retail,
	"fashion_retail":     Retail,
	"supermarket":        Retail,
	"electronics_retail": Retail,
	"home_goods":         Retail,
	"jewelry":            Retail,
	"automotive_sales":   Retail,
	"wholesale":          Retail,
	"bookstore":          Retail,
	"sports_retail":      Retail,
	"toy_store":          Retail,
	"pet_supplies":       Retail,
	"luxury_retail":      Retail,

	"banking":         Finance,
	"investment":      Finance,
	"insurance":       Finance,
	"accounting":      Finance,
	"fintech":         Finance,
	"legal":           Finance,
	"consulting":      Finance,
	"auditing":        Finance,
	"venture_capital": Finance,
	"private_equity":  Finance,
	"stock_brokerage": Finance,
	"microfinance":    Finance,
	"crowdfunding":    Finance,

	"education":          Education,
	"training":           Education,
	"e_learning":         Education,
	"language_school":    Education,
	"technical_training": Education,
	"university":         Education,
	"research_institute": Education,

	"logistics":      Logistics,
	"transportation": Logistics,
	"shipping":       Logistics,
	"freight":        Logistics,
	"warehousing":    Logistics,
	"courier":        Logistics,
	"aviation":       Logistics,

	"hospitality":    Hospitality,
	"tourism":        Hospitality,
	"hotel":          Hospitality,
	"restaurant":     Hospitality,
	"catering":       Hospitality,
	"event_planning": Hospitality,
	"travel_agency":  Hospitality,

	"energy":           Energy,
	"renewable_energy": Energy,
	"oil_gas":          Energy,
	"environmental":    Energy,
	"waste_management": Energy,
	"water_treatment":  Energy,

	"media":                Media,
	"entertainment":        Media,
	"publishing":           Media,
	"broadcasting":         Media,
	"film_production":      Media,
	"music":                Media,
	"gaming_entertainment": Media,
}

// Lookup returns the extension selected by the industry key.
// Keys are matched case-insensitively, ignoring surrounding spaces.
func Lookup(industry string) (Extension, bool) {
	ext, ok := industries[strings.ToLower(strings.TrimSpace(industry))]
	return ext, ok
}
