// Package weather serves cached current conditions and derives gardening
// recommendations from them.
package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
)

type weatherRepo interface {
	Get(ctx context.Context, location string) (*domain.WeatherSnapshot, error)
	Upsert(ctx context.Context, w domain.WeatherSnapshot) error
}

// weatherProvider fetches live conditions.
type weatherProvider interface {
	Current(ctx context.Context, location string) (*domain.WeatherSnapshot, error)
}

// Service implements the weather lookup with a two-level cache.
type Service struct {
	log      *slog.Logger
	repo     weatherRepo
	provider weatherProvider
	cache    *expirable.LRU[string, domain.WeatherSnapshot]
	ttl      time.Duration
	clock    clockwork.Clock
}

// NewService creates a weather service. provider may be nil, in which case
// only stored snapshots are served.
func NewService(
	logger *slog.Logger,
	repo weatherRepo,
	provider weatherProvider,
	clock clockwork.Clock,
	ttl time.Duration,
	cacheSize int,
) *Service {
	return &Service{
		log:      logger.With("service", "weather"),
		repo:     repo,
		provider: provider,
		cache:    expirable.NewLRU[string, domain.WeatherSnapshot](cacheSize, nil, ttl),
		ttl:      ttl,
		clock:    clock,
	}
}

// GetWeather returns current conditions for location with recommendations.
// Lookup order: in-process cache, stored snapshot younger than the TTL,
// live provider. When the provider fails an older stored snapshot is served
// and marked stale. Returns domain.ErrNotFound when nothing is available.
func (s *Service) GetWeather(ctx context.Context, location string) (domain.WeatherReport, error) {
	key := normalizeLocation(location)
	if key == "" {
		return domain.WeatherReport{}, domain.NewValidationError("location", "required")
	}

	now := s.clock.Now()

	if snap, ok := s.cache.Get(key); ok && s.fresh(snap, now) {
		return report(snap, false), nil
	}

	stored, err := s.repo.Get(ctx, key)
	switch {
	case err == nil:
		if s.fresh(*stored, now) {
			s.cache.Add(key, *stored)
			return report(*stored, false), nil
		}
	case errors.Is(err, domain.ErrNotFound):
		stored = nil
	default:
		s.log.WarnContext(ctx, "stored weather unavailable",
			slog.String("location", key),
			slog.String("error", err.Error()))
		stored = nil
	}

	live, err := s.fetch(ctx, key, now)
	if err == nil {
		return report(*live, false), nil
	}

	if stored != nil {
		s.log.WarnContext(ctx, "serving stale weather",
			slog.String("location", key),
			slog.Time("updated_at", stored.UpdatedAt),
			slog.String("error", err.Error()))
		return report(*stored, true), nil
	}

	if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrUnavailable) {
		s.log.ErrorContext(ctx, "weather lookup failed",
			slog.String("location", key),
			slog.String("error", err.Error()))
	}
	return domain.WeatherReport{}, fmt.Errorf("weather.GetWeather: %s: %w", key, domain.ErrNotFound)
}

func (s *Service) fetch(ctx context.Context, key string, now time.Time) (*domain.WeatherSnapshot, error) {
	if s.provider == nil {
		return nil, domain.ErrUnavailable
	}

	live, err := s.provider.Current(ctx, key)
	if err != nil {
		return nil, err
	}
	live.Location = key
	live.UpdatedAt = now

	if err := s.repo.Upsert(ctx, *live); err != nil {
		s.log.WarnContext(ctx, "store weather failed",
			slog.String("location", key),
			slog.String("error", err.Error()))
	}
	s.cache.Add(key, *live)

	return live, nil
}

func (s *Service) fresh(snap domain.WeatherSnapshot, now time.Time) bool {
	return now.Sub(snap.UpdatedAt) <= s.ttl
}

func report(snap domain.WeatherSnapshot, stale bool) domain.WeatherReport {
	return domain.WeatherReport{
		Weather:         snap,
		Recommendations: Recommend(snap.Temperature, snap.Humidity, snap.Condition),
		Stale:           stale,
	}
}

func normalizeLocation(location string) string {
	return strings.ToLower(strings.Join(strings.Fields(location), " "))
}
