package aqi

// Category is the closed set of AQI severity labels.
type Category string

const (
	CategoryGood         Category = "Good"
	CategorySatisfactory Category = "Satisfactory"
	CategoryModerate     Category = "Moderate"
	CategoryPoor         Category = "Poor"
	CategoryVeryPoor     Category = "Very Poor"
	CategorySevere       Category = "Severe"

	// CategoryUnknown covers values outside every breakpoint band.
	CategoryUnknown Category = "Unknown"
	// CategoryError marks a degraded result from the external provider.
	CategoryError Category = "Error"
)

// Reading holds one snapshot of pollutant concentrations plus weather
// context. The wire layer requires all nine fields even though the heuristic
// only consumes four.
type Reading struct {
	PM25        float64 `json:"pm25"`
	PM10        float64 `json:"pm10"`
	NO2         float64 `json:"no2"`
	SO2         float64 `json:"so2"`
	CO          float64 `json:"co"`
	O3          float64 `json:"o3"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// Classification pairs a category with its display color.
type Classification struct {
	Category Category `json:"category"`
	Color    string   `json:"color"`
}

// AdviceRecord holds the six guidance fields returned for every category.
type AdviceRecord struct {
	General         string `json:"general"`
	Children        string `json:"children"`
	Elderly         string `json:"elderly"`
	Sensitive       string `json:"sensitive"`
	Mask            string `json:"mask"`
	OutdoorActivity string `json:"outdoor_activity"`
}

// Result is serialized back to API consumers of the prediction endpoint.
type Result struct {
	AQI      float64      `json:"aqi"`
	Category Category     `json:"category"`
	Color    string       `json:"color"`
	Advice   AdviceRecord `json:"advice"`
}

// LocationResult augments Result with the normalized provider components.
// AQI == -1 together with CategoryError signals a degraded lookup; the HTTP
// layer converts that sentinel into a 503 instead of forwarding it.
type LocationResult struct {
	Result
	Components map[string]float64 `json:"components"`
}

// Degraded reports whether the result carries the provider failure sentinel.
func (r LocationResult) Degraded() bool {
	return r.AQI == DegradedAQI
}

// DegradedAQI is the sole failure signal on location results.
const DegradedAQI = -1.0
