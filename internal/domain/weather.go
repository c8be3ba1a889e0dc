package domain

import "time"

// WeatherSnapshot is the cached current weather for a location.
// Temperatures are in degrees Fahrenheit, humidity in percent.
type WeatherSnapshot struct {
	Location    string
	Temperature float64
	Humidity    float64
	Condition   string
	Description string
	Icon        string
	UpdatedAt   time.Time
}

// Conditions returns the subset of the snapshot attached to generated tips.
func (w WeatherSnapshot) Conditions() WeatherConditions {
	return WeatherConditions{
		Temperature: w.Temperature,
		Humidity:    w.Humidity,
		Condition:   w.Condition,
	}
}

// WeatherConditions is stored alongside a tip as JSON.
type WeatherConditions struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Condition   string  `json:"condition"`
}

// Recommendations are gardening hints derived from the current weather.
type Recommendations struct {
	Watering string
	Planting string
	General  string
}

// WeatherReport pairs a snapshot with its recommendations.
type WeatherReport struct {
	Weather         WeatherSnapshot
	Recommendations Recommendations
	Stale           bool
}
