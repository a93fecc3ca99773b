package aqi

import "math"

// breakpoint is one inclusive band of the classification scale.
type breakpoint struct {
	low, high float64
	class     Classification
}

// Bands follow the CPCB-style scale used by the original model: the upper band
// is open-ended and anything falling between or outside bands is Unknown.
var breakpoints = []breakpoint{
	{0, 50, Classification{CategoryGood, "#009966"}},
	{51, 100, Classification{CategorySatisfactory, "#FFDE33"}},
	{101, 200, Classification{CategoryModerate, "#FF9933"}},
	{201, 300, Classification{CategoryPoor, "#CC0033"}},
	{301, 400, Classification{CategoryVeryPoor, "#660099"}},
	{401, math.Inf(1), Classification{CategorySevere, "#7E0023"}},
}

// ClassificationUnknown is returned for values outside every band.
var ClassificationUnknown = Classification{CategoryUnknown, "#808080"}

// Classify maps an AQI value onto its category and display color. It is total:
// NaN and negative values classify as Unknown rather than erroring.
func Classify(value float64) Classification {
	if math.IsNaN(value) {
		return ClassificationUnknown
	}
	for _, bp := range breakpoints {
		if value >= bp.low && value <= bp.high {
			return bp.class
		}
	}
	return ClassificationUnknown
}
