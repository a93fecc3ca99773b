package aqi

// Estimate computes the heuristic AQI from the four driving pollutants. The
// weights match the synthetic series the regression model was validated
// against; CO, O3 and the weather fields are intentionally not part of the
// formula. No clamping is applied, out-of-range results land in the Unknown
// bucket downstream.
func Estimate(pm25, pm10, no2, so2 float64) float64 {
	return 0.5*pm25 + 0.3*pm10 + 0.1*no2 + 0.1*so2
}
