package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/greenthumb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/greenthumb-backend/internal/adapter/postgres/aitip"
	"github.com/heartmarshall/greenthumb-backend/internal/adapter/postgres/careevent"
	plantrepo "github.com/heartmarshall/greenthumb-backend/internal/adapter/postgres/plant"
	userrepo "github.com/heartmarshall/greenthumb-backend/internal/adapter/postgres/user"
	weatherrepo "github.com/heartmarshall/greenthumb-backend/internal/adapter/postgres/weather"
	"github.com/heartmarshall/greenthumb-backend/internal/adapter/provider/openweather"
	"github.com/heartmarshall/greenthumb-backend/internal/adapter/provider/tipgen"
	"github.com/heartmarshall/greenthumb-backend/internal/auth"
	"github.com/heartmarshall/greenthumb-backend/internal/config"
	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"github.com/heartmarshall/greenthumb-backend/internal/service/care"
	"github.com/heartmarshall/greenthumb-backend/internal/service/dashboard"
	"github.com/heartmarshall/greenthumb-backend/internal/service/plant"
	"github.com/heartmarshall/greenthumb-backend/internal/service/tip"
	"github.com/heartmarshall/greenthumb-backend/internal/service/user"
	"github.com/heartmarshall/greenthumb-backend/internal/service/weather"
	"github.com/heartmarshall/greenthumb-backend/internal/transport/middleware"
	"github.com/heartmarshall/greenthumb-backend/internal/transport/rest"
)

// Repos holds every repository over one database handle.
type Repos struct {
	Plants  *plantrepo.Repo
	Events  *careevent.Repo
	Tips    *aitip.Repo
	Weather *weatherrepo.Repo
	Users   *userrepo.Repo
	Tx      *postgres.TxManager
}

// NewRepos creates the repositories.
func NewRepos(db postgres.DB) Repos {
	return Repos{
		Plants:  plantrepo.New(db),
		Events:  careevent.New(db),
		Tips:    aitip.New(db),
		Weather: weatherrepo.New(db),
		Users:   userrepo.New(db),
		Tx:      postgres.NewTxManager(db),
	}
}

// NewDashboard creates the dashboard service. Shared by the server and gardenctl.
func NewDashboard(repos Repos, clock clockwork.Clock, logger *slog.Logger) *dashboard.Service {
	return dashboard.NewService(logger, repos.Plants, repos.Events, repos.Tips, repos.Tx, clock)
}

// NewJWTManager creates the access-token manager from config.
func NewJWTManager(cfg config.AuthConfig, clock clockwork.Clock) *auth.JWTManager {
	return auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL, clock)
}

type currentWeather interface {
	Current(ctx context.Context, location string) (*domain.WeatherSnapshot, error)
}

type tipWriter interface {
	Generate(ctx context.Context, req domain.TipRequest) (*domain.GeneratedTip, error)
}

// newWeatherProvider returns nil when no API key is configured.
func newWeatherProvider(cfg config.WeatherConfig, logger *slog.Logger) currentWeather {
	if !cfg.Enabled() {
		logger.Warn("weather provider disabled: no api key configured")
		return nil
	}
	return openweather.NewProvider(cfg, logger)
}

// newTipGenerator returns nil when no API key is configured.
func newTipGenerator(cfg config.LLMConfig, logger *slog.Logger) tipWriter {
	if !cfg.Enabled() {
		logger.Warn("tip generator disabled: no api key configured")
		return nil
	}
	return tipgen.NewGenerator(cfg, logger)
}

// NewHandler builds the services and the HTTP handler tree. The returned
// stop function releases background resources.
func NewHandler(cfg *config.Config, db postgres.DB, clock clockwork.Clock, logger *slog.Logger) (http.Handler, func()) {
	repos := NewRepos(db)
	jwt := NewJWTManager(cfg.Auth, clock)

	weatherSvc := weather.NewService(
		logger, repos.Weather, newWeatherProvider(cfg.Weather, logger),
		clock, cfg.Weather.CacheTTL, cfg.Weather.CacheSize,
	)
	plantSvc := plant.NewService(logger, repos.Plants, repos.Events, repos.Tx, clock, cfg.Garden.DefaultWateringDays)
	careSvc := care.NewService(logger, repos.Events, repos.Plants, clock)
	tipSvc := tip.NewService(
		logger, repos.Tips, repos.Users, repos.Plants, weatherSvc,
		newTipGenerator(cfg.LLM, logger), clock,
	)
	userSvc := user.NewService(logger, repos.Users, clock)
	dashSvc := NewDashboard(repos, clock, logger)

	health := rest.NewHealthHandler(db, BuildVersion(), clock).
		WithIntegration("weather", cfg.Weather.Enabled()).
		WithIntegration("llm", cfg.LLM.Enabled())

	limiter := middleware.NewRateLimiter(clock, rateLimitCleanupInterval)
	protect := middleware.Chain(
		middleware.RequireUser,
		middleware.ProvisionUser(userSvc, provisionedUsersCacheSize),
	)

	mux := rest.NewRouter(rest.Handlers{
		Health:    health,
		User:      rest.NewUserHandler(userSvc, logger),
		Dashboard: rest.NewDashboardHandler(dashSvc, logger),
		Plant:     rest.NewPlantHandler(plantSvc, clock, logger),
		Care:      rest.NewCareHandler(careSvc, logger),
		Tip:       rest.NewTipHandler(tipSvc, logger),
		Weather:   rest.NewWeatherHandler(weatherSvc, logger),
	}, protect, limiter.Limit(cfg.RateLimit.TipsPerMinute))

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwt),
	)(mux)

	return handler, limiter.Stop
}
