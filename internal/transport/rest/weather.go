package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
)

type weatherService interface {
	GetWeather(ctx context.Context, location string) (domain.WeatherReport, error)
}

// WeatherHandler serves /api/weather.
type WeatherHandler struct {
	svc weatherService
	log *slog.Logger
}

// NewWeatherHandler creates a WeatherHandler.
func NewWeatherHandler(svc weatherService, logger *slog.Logger) *WeatherHandler {
	return &WeatherHandler{svc: svc, log: logger.With("handler", "weather")}
}

type weatherResponse struct {
	Location        string                  `json:"location"`
	Temperature     float64                 `json:"temperature"`
	Humidity        float64                 `json:"humidity"`
	Condition       string                  `json:"condition"`
	Description     string                  `json:"description"`
	Icon            string                  `json:"icon"`
	UpdatedAt       time.Time               `json:"updatedAt"`
	Stale           bool                    `json:"stale"`
	Recommendations recommendationsResponse `json:"recommendations"`
}

type recommendationsResponse struct {
	Watering string `json:"watering"`
	Planting string `json:"planting"`
	General  string `json:"general"`
}

// Get handles GET /api/weather/{location}.
func (h *WeatherHandler) Get(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.GetWeather(r.Context(), r.PathValue("location"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	snap, rec := report.Weather, report.Recommendations
	writeJSON(w, http.StatusOK, weatherResponse{
		Location:    snap.Location,
		Temperature: snap.Temperature,
		Humidity:    snap.Humidity,
		Condition:   snap.Condition,
		Description: snap.Description,
		Icon:        snap.Icon,
		UpdatedAt:   snap.UpdatedAt,
		Stale:       report.Stale,
		Recommendations: recommendationsResponse{
			Watering: rec.Watering,
			Planting: rec.Planting,
			General:  rec.General,
		},
	})
}
