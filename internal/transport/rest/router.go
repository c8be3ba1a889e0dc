package rest

import (
	"net/http"

	"github.com/heartmarshall/greenthumb-backend/internal/transport/middleware"
)

// Handlers groups every REST handler served by the router.
type Handlers struct {
	Health    *HealthHandler
	User      *UserHandler
	Dashboard *DashboardHandler
	Plant     *PlantHandler
	Care      *CareHandler
	Tip       *TipHandler
	Weather   *WeatherHandler
}

// NewRouter registers all routes. Probes are public; every /api route is
// wrapped with protect, and tip generation additionally with limitTips.
// Either middleware may be nil.
func NewRouter(h Handlers, protect, limitTips middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	api := func(pattern string, fn http.HandlerFunc, extra ...middleware.Middleware) {
		mws := append([]middleware.Middleware{protect}, extra...)
		mux.Handle(pattern, middleware.Chain(mws...)(fn))
	}

	api("GET /api/auth/user", h.User.Me)
	api("PUT /api/auth/user", h.User.UpdateProfile)

	api("GET /api/dashboard/stats", h.Dashboard.Stats)

	api("GET /api/plants", h.Plant.List)
	api("POST /api/plants", h.Plant.Create)
	api("GET /api/plants/needing-water", h.Plant.NeedingWater)
	api("GET /api/plants/{id}", h.Plant.Get)
	api("PUT /api/plants/{id}", h.Plant.Update)
	api("PATCH /api/plants/{id}", h.Plant.Update)
	api("DELETE /api/plants/{id}", h.Plant.Delete)
	api("POST /api/plants/{id}/water", h.Plant.Water)

	api("GET /api/care-events", h.Care.List)
	api("POST /api/care-events", h.Care.Create)
	api("GET /api/care-events/upcoming", h.Care.Upcoming)
	api("GET /api/care-events/due", h.Care.Due)
	api("PATCH /api/care-events/{id}", h.Care.Update)
	api("PUT /api/care-events/{id}/complete", h.Care.Complete)

	api("GET /api/ai-tips", h.Tip.List)
	api("POST /api/ai-tips/generate", h.Tip.Generate, limitTips)
	api("PUT /api/ai-tips/{id}/bookmark", h.Tip.Bookmark)
	api("PUT /api/ai-tips/{id}/helpful", h.Tip.Helpful)

	api("GET /api/weather/{location}", h.Weather.Get)

	return mux
}
