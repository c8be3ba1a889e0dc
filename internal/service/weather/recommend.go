package weather

import (
	"strings"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
)

// Temperature bands in degrees Fahrenheit.
const (
	hotAbove  = 85
	coldBelow = 50
	idealLow  = 65
	idealHigh = 75
	sunnyHot  = 80

	humidAbove = 70
	dryBelow   = 30
)

// Recommend derives gardening hints from current conditions.
// Temperature sets the baseline, the sky condition overrides it and
// humidity adjusts the result.
func Recommend(temperatureF, humidity float64, condition string) domain.Recommendations {
	r := domain.Recommendations{
		Watering: "Water normally",
		Planting: "Good conditions for most activities",
		General:  "Perfect weather for gardening",
	}

	switch {
	case temperatureF > hotAbove:
		r.Watering = "Water early morning or evening to avoid evaporation"
		r.Planting = "Avoid planting during hot afternoon hours"
		r.General = "Provide shade for sensitive plants"
	case temperatureF < coldBelow:
		r.Watering = "Reduce watering frequency"
		r.Planting = "Wait for warmer weather for most planting"
		r.General = "Protect plants from frost"
	case temperatureF >= idealLow && temperatureF <= idealHigh:
		r.Watering = "Ideal watering conditions"
		r.Planting = "Perfect time for planting most vegetables and flowers"
		r.General = "Excellent weather for all garden activities"
	}

	cond := strings.ToLower(condition)
	switch {
	case strings.Contains(cond, "rain"):
		r.Watering = "Skip watering today - natural rainfall is sufficient"
		r.General = "Great for established plants, check drainage for potted plants"
	case strings.Contains(cond, "sun"):
		if temperatureF > sunnyHot {
			r.Watering = "Water deeply in early morning"
			r.General = "Provide afternoon shade for delicate plants"
		}
	case strings.Contains(cond, "cloud"):
		r.Watering = "Good conditions for watering without quick evaporation"
		r.Planting = "Overcast conditions are gentle for new plantings"
	}

	switch {
	case humidity > humidAbove:
		r.General += ". Watch for fungal diseases in humid conditions"
	case humidity < dryBelow:
		r.Watering = "Increase watering frequency in low humidity"
		r.General += ". Plants may need extra water in dry air"
	}

	return r
}
