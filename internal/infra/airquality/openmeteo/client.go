package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Sujal12345-pheoniix/AirGaurd/internal/domain/aqi"
	apperrors "github.com/Sujal12345-pheoniix/AirGaurd/pkg/errors"
)

const defaultBaseURL = "https://air-quality-api.open-meteo.com/v1/air-quality"

// currentVariables is the comma separated list requested from the provider.
const currentVariables = "pm10,pm2_5,nitrogen_dioxide,sulphur_dioxide,ozone,carbon_monoxide"

// The air-quality API carries no weather fields; callers receive these fixed
// placeholders instead of a second upstream call.
const (
	defaultTemperature = 25.0
	defaultHumidity    = 50.0
)

// Client fetches current pollutant concentrations from Open-Meteo.
type Client struct {
	baseURL string
	http    *resty.Client
}

// NewClient builds an API client. A zero timeout falls back to 10s; the
// provider call is never retried, a single failure is terminal per request.
func NewClient(baseURL string, timeout time.Duration) *Client {
	url := strings.TrimSpace(baseURL)
	if url == "" {
		url = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New()
	client.SetTimeout(timeout)

	return &Client{
		baseURL: strings.TrimRight(url, "/"),
		http:    client,
	}
}

// Fetch retrieves the current pollutant snapshot for a coordinate. Field names
// are normalized from the provider vocabulary (pm2_5, nitrogen_dioxide, ...)
// to the internal one; fields absent from the response default to zero.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (aqi.ProviderSample, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"latitude":  strconv.FormatFloat(lat, 'f', -1, 64),
			"longitude": strconv.FormatFloat(lon, 'f', -1, 64),
			"current":   currentVariables,
			"timezone":  "auto",
		}).
		Get(c.baseURL)

	if err != nil {
		return aqi.ProviderSample{}, apperrors.Wrap("provider_unavailable", "air quality request failed", err)
	}
	if resp.StatusCode() >= 300 {
		return aqi.ProviderSample{}, apperrors.Wrap("provider_unavailable", fmt.Sprintf("air quality request error: status=%d body=%s", resp.StatusCode(), truncateBody(resp.Body())), nil)
	}

	var raw apiResponse
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return aqi.ProviderSample{}, apperrors.Wrap("provider_response_invalid", "decode air quality response", err)
	}

	return aqi.ProviderSample{
		PM25:        raw.Current.PM25,
		PM10:        raw.Current.PM10,
		NO2:         raw.Current.NitrogenDioxide,
		SO2:         raw.Current.SulphurDioxide,
		O3:          raw.Current.Ozone,
		CO:          raw.Current.CarbonMonoxide,
		Temperature: defaultTemperature,
		Humidity:    defaultHumidity,
	}, nil
}

type apiResponse struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Timezone  string     `json:"timezone"`
	Current   currentSet `json:"current"`
}

type currentSet struct {
	Time            string  `json:"time"`
	PM10            float64 `json:"pm10"`
	PM25            float64 `json:"pm2_5"`
	NitrogenDioxide float64 `json:"nitrogen_dioxide"`
	SulphurDioxide  float64 `json:"sulphur_dioxide"`
	Ozone           float64 `json:"ozone"`
	CarbonMonoxide  float64 `json:"carbon_monoxide"`
}

func truncateBody(body []byte) string {
	const limit = 4 << 10
	if len(body) > limit {
		body = body[:limit]
	}
	return string(body)
}
