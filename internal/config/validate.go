package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}

	if c.Garden.DefaultWateringDays <= 0 {
		return fmt.Errorf("garden.default_watering_days must be > 0 (got %d)", c.Garden.DefaultWateringDays)
	}

	if err := c.Weather.validate(); err != nil {
		return fmt.Errorf("weather: %w", err)
	}

	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}

	if c.RateLimit.TipsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.tips_per_minute must be > 0 (got %d)", c.RateLimit.TipsPerMinute)
	}

	return nil
}

func (w *WeatherConfig) validate() error {
	// Recommendation thresholds are in Fahrenheit.
	if w.Units != "imperial" {
		return fmt.Errorf("units must be imperial (got %q)", w.Units)
	}
	if w.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be > 0 (got %v)", w.CacheTTL)
	}
	if w.CacheSize <= 0 {
		return fmt.Errorf("cache_size must be > 0 (got %d)", w.CacheSize)
	}
	if w.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", w.Timeout)
	}
	return nil
}
