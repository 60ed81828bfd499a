package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"ulascansenturk/weather-analytics-service/internal/service"
)

type HomeHandler struct {
	overviewService service.OverviewService
	ping            func(ctx context.Context) error
	timeout         time.Duration
}

func NewHomeHandler(overviewService service.OverviewService, ping func(ctx context.Context) error, timeout time.Duration) *HomeHandler {
	return &HomeHandler{
		overviewService: overviewService,
		ping:            ping,
		timeout:         timeout,
	}
}

// Overview is the dashboard summary: totals, the first cities by name and the latest records.
func (h *HomeHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r, h.timeout)
	defer cancel()

	overview, err := h.overviewService.Overview(ctx)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	cities := make([]OverviewCityResponse, 0, len(overview.Cities))
	for _, c := range overview.Cities {
		cities = append(cities, OverviewCityResponse{ID: c.ID, Name: c.Name, Country: c.Country})
	}

	respondWithJSON(w, http.StatusOK, OverviewResponse{
		CityCount:          overview.CityCount,
		WeatherRecordCount: overview.WeatherRecordCount,
		Cities:             cities,
		RecentWeather:      toWeatherRecordResponses(overview.RecentWeather),
		Endpoints: map[string]string{
			"api":             absoluteURL(r, "/api/").String(),
			"cities":          absoluteURL(r, "/api/cities/").String(),
			"weather-records": absoluteURL(r, "/api/weather-records/").String(),
			"analytics":       absoluteURL(r, "/api/weather-records/analytics/").String(),
		},
	})
}

func (h *HomeHandler) APIRoot(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"cities":          absoluteURL(r, "/api/cities/").String(),
		"weather-records": absoluteURL(r, "/api/weather-records/").String(),
	})
}

func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("database ping failed")
		respondWithJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Database: err.Error()})
		return
	}

	respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
}
