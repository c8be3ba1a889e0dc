// Package openweather fetches current conditions from the OpenWeather API.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/greenthumb-backend/internal/config"
	"github.com/heartmarshall/greenthumb-backend/internal/domain"
)

const (
	defaultBackoff = 300 * time.Millisecond
	maxRetries     = 2
)

// Provider fetches current weather from OpenWeather.
type Provider struct {
	baseURL    string
	apiKey     string
	units      string
	httpClient *http.Client
	backoff    time.Duration
	log        *slog.Logger
}

// NewProvider creates a Provider from the weather config section.
func NewProvider(cfg config.WeatherConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		units:      cfg.Units,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		backoff:    defaultBackoff,
		log:        logger.With("adapter", "openweather"),
	}
}

// Current returns the current conditions for location.
// Returns domain.ErrNotFound when OpenWeather does not know the location.
func (p *Provider) Current(ctx context.Context, location string) (*domain.WeatherSnapshot, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", p.apiKey)
	q.Set("units", p.units)
	reqURL := p.baseURL + "/weather?" + q.Encode()

	p.log.DebugContext(ctx, "openweather request", slog.String("location", location))

	attempt := 0
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(p.backoff))
	body, err := retry.DoValue(ctx, backoff, func(ctx context.Context) ([]byte, error) {
		attempt++
		body, err := p.fetch(ctx, reqURL)
		var rs *retryableStatus
		if err != nil && (errors.As(err, &rs) || isNetworkError(err)) {
			p.log.WarnContext(ctx, "openweather retry",
				slog.String("location", location),
				slog.Int("attempt", attempt),
				slog.String("reason", err.Error()))
			return nil, retry.RetryableError(err)
		}
		return body, err
	})
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			p.log.ErrorContext(ctx, "openweather request failed",
				slog.String("location", location),
				slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("openweather: %w", err)
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("openweather: decode json: %w", err)
	}
	if len(resp.Weather) == 0 {
		return nil, errors.New("openweather: response has no conditions")
	}

	return &domain.WeatherSnapshot{
		Location:    resp.Name,
		Temperature: math.Round(resp.Main.Temp),
		Humidity:    resp.Main.Humidity,
		Condition:   resp.Weather[0].Main,
		Description: resp.Weather[0].Description,
		Icon:        resp.Weather[0].Icon,
	}, nil
}

func (p *Provider) fetch(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
		return nil, &retryableStatus{code: resp.StatusCode}
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

type retryableStatus struct {
	code int
}

func (e *retryableStatus) Error() string {
	return fmt.Sprintf("status %d", e.code)
}

func isNetworkError(err error) bool {
	var ue *url.Error
	return errors.As(err, &ue) && !errors.Is(err, context.Canceled)
}
