package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sujal12345-pheoniix/AirGaurd/internal/domain/aqi"
	"github.com/Sujal12345-pheoniix/AirGaurd/internal/domain/chat"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	aqiSvc  aqi.Service
	chatSvc chat.Service
	logger  *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(aqiSvc aqi.Service, chatSvc chat.Service, logger *slog.Logger) *Handler {
	return &Handler{
		aqiSvc:  aqiSvc,
		chatSvc: chatSvc,
		logger:  logger.With("component", "http.handler"),
	}
}

// readingPayload is the prediction request body. Pointer fields distinguish a
// missing key from a legitimate zero concentration.
type readingPayload struct {
	PM25        *float64 `json:"pm25" binding:"required"`
	PM10        *float64 `json:"pm10" binding:"required"`
	NO2         *float64 `json:"no2" binding:"required"`
	SO2         *float64 `json:"so2" binding:"required"`
	CO          *float64 `json:"co" binding:"required"`
	O3          *float64 `json:"o3" binding:"required"`
	Temperature *float64 `json:"temperature" binding:"required"`
	Humidity    *float64 `json:"humidity" binding:"required"`
	WindSpeed   *float64 `json:"wind_speed" binding:"required"`
}

func (p readingPayload) toReading() aqi.Reading {
	return aqi.Reading{
		PM25:        *p.PM25,
		PM10:        *p.PM10,
		NO2:         *p.NO2,
		SO2:         *p.SO2,
		CO:          *p.CO,
		O3:          *p.O3,
		Temperature: *p.Temperature,
		Humidity:    *p.Humidity,
		WindSpeed:   *p.WindSpeed,
	}
}

// locationPayload identifies a geographic point. The equator and the prime
// meridian are valid inputs, hence pointers again.
type locationPayload struct {
	Latitude  *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
}

// chatPayload is the chatbot request body.
type chatPayload struct {
	Message  string `json:"message" binding:"required"`
	Location string `json:"location"`
}

// PredictAQI estimates AQI from direct pollutant readings.
func (h *Handler) PredictAQI(c *gin.Context) {
	var payload readingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, h.aqiSvc.FromReadings(payload.toReading()))
}

// LocationAQI resolves AQI for a coordinate via the external provider. The
// degraded sentinel (aqi == -1) is converted to a 503 here; forwarding it as a
// success would let a failed lookup masquerade as an Unknown classification.
func (h *Handler) LocationAQI(c *gin.Context) {
	var payload locationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	result := h.aqiSvc.FromLocation(c.Request.Context(), *payload.Latitude, *payload.Longitude)
	if result.Degraded() {
		abortWithError(c, NewHTTPError(http.StatusServiceUnavailable, "service_unavailable", "external air quality provider unavailable", nil))
		return
	}

	c.JSON(http.StatusOK, result)
}

// Chat answers a single air-quality question. The responder never fails, so
// this endpoint always returns 200 with some response text.
func (h *Handler) Chat(c *gin.Context) {
	var payload chatPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	req := chat.Request{Message: payload.Message, Location: payload.Location}
	c.JSON(http.StatusOK, h.chatSvc.Respond(c.Request.Context(), req))
}

// HealthAdvice classifies a raw AQI value and returns the matching guidance.
func (h *Handler) HealthAdvice(c *gin.Context) {
	raw := c.Query("aqi")
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "query parameter aqi must be a number", err))
		return
	}

	class, advice := h.aqiSvc.HealthAdvice(value)
	c.JSON(http.StatusOK, gin.H{
		"category": class.Category,
		"color":    class.Color,
		"advice":   advice,
	})
}

// Healthz is the liveness probe.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
