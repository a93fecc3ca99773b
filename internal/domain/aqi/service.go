package aqi

import (
	"context"
	"log/slog"
	"math"

	apperrors "github.com/Sujal12345-pheoniix/AirGaurd/pkg/errors"
)

// DefaultAQI substitutes a non-finite estimate so the prediction endpoint
// always returns a well-formed result.
const DefaultAQI = 100.0

// Service exposes the advisory pipeline.
type Service interface {
	FromReadings(reading Reading) Result
	FromLocation(ctx context.Context, lat, lon float64) LocationResult
	HealthAdvice(value float64) (Classification, AdviceRecord)
}

// ProviderClient fetches current pollutant concentrations for a coordinate.
type ProviderClient interface {
	Fetch(ctx context.Context, lat, lon float64) (ProviderSample, error)
}

// ProviderSample is the normalized snapshot returned by the upstream provider.
// Temperature and humidity are not sourced from the air-quality API and carry
// fixed defaults.
type ProviderSample struct {
	PM25        float64
	PM10        float64
	NO2         float64
	SO2         float64
	O3          float64
	CO          float64
	Temperature float64
	Humidity    float64
}

// Components flattens the sample into the wire map exposed to API consumers.
func (s ProviderSample) Components() map[string]float64 {
	return map[string]float64{
		"pm25":        s.PM25,
		"pm10":        s.PM10,
		"no2":         s.NO2,
		"so2":         s.SO2,
		"o3":          s.O3,
		"co":          s.CO,
		"temperature": s.Temperature,
		"humidity":    s.Humidity,
	}
}

type service struct {
	provider ProviderClient
	logger   *slog.Logger
}

// NewService wires up the advisory pipeline domain.
func NewService(provider ProviderClient, logger *slog.Logger) Service {
	return &service{
		provider: provider,
		logger:   logger.With("component", "aqi.service"),
	}
}

// FromReadings runs estimate, classify and advise over a direct reading. It is
// total; a non-finite estimate (malformed floats at the boundary) falls back to
// DefaultAQI before classification.
func (s *service) FromReadings(reading Reading) Result {
	value := Estimate(reading.PM25, reading.PM10, reading.NO2, reading.SO2)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		s.logger.Warn("non-finite estimate, substituting default", "default", DefaultAQI)
		value = DefaultAQI
	}
	class := Classify(value)
	return Result{
		AQI:      value,
		Category: class.Category,
		Color:    class.Color,
		Advice:   Advise(string(class.Category)),
	}
}

// FromLocation resolves pollutants for a coordinate and runs them through the
// pipeline. Provider failures never escape: they collapse into the degraded
// sentinel (AQI -1, category Error) that the HTTP layer turns into a 503.
func (s *service) FromLocation(ctx context.Context, lat, lon float64) LocationResult {
	sample, err := s.provider.Fetch(ctx, lat, lon)
	if err != nil {
		// Malformed payloads mean the provider contract broke; plain
		// unavailability is a transient condition and logs quieter.
		if apperrors.IsCode(err, "provider_response_invalid") {
			s.logger.Error("provider returned malformed data", "lat", lat, "lon", lon, "error", err)
		} else {
			s.logger.Warn("provider fetch failed", "lat", lat, "lon", lon, "error", err)
		}
		return degradedResult()
	}

	value := Estimate(sample.PM25, sample.PM10, sample.NO2, sample.SO2)
	class := Classify(value)
	return LocationResult{
		Result: Result{
			AQI:      value,
			Category: class.Category,
			Color:    class.Color,
			Advice:   Advise(string(class.Category)),
		},
		Components: sample.Components(),
	}
}

// HealthAdvice classifies a raw AQI value and returns the matching guidance.
func (s *service) HealthAdvice(value float64) (Classification, AdviceRecord) {
	class := Classify(value)
	return class, Advise(string(class.Category))
}

func degradedResult() LocationResult {
	return LocationResult{
		Result: Result{
			AQI:      DegradedAQI,
			Category: CategoryError,
			Color:    "#808080",
			Advice:   AdviceRecord{General: "Could not fetch data."},
		},
		Components: map[string]float64{},
	}
}
