package handlers

import (
	"context"
	"net/http"
	"time"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"ulascansenturk/weather-analytics-service/internal/metrics"
	"ulascansenturk/weather-analytics-service/internal/service"
)

type RouterConfig struct {
	Logger             zerolog.Logger
	CityService        service.CityService
	RecordService      service.WeatherRecordService
	AnalyticsService   service.AnalyticsService
	OverviewService    service.OverviewService
	Ping               func(ctx context.Context) error
	Timeout            time.Duration
	RateLimiter        *rate.Limiter
	CORSAllowedOrigins []string
}

// NewRouter wires every route. Resource paths answer with and without the trailing slash.
func NewRouter(cfg RouterConfig) http.Handler {
	cities := NewCityHandler(cfg.CityService, cfg.Timeout)
	records := NewWeatherRecordHandler(cfg.RecordService, cfg.AnalyticsService, cfg.Timeout)
	home := NewHomeHandler(cfg.OverviewService, cfg.Ping, cfg.Timeout)

	middlewares := []mux.MiddlewareFunc{
		CorrelationIDMiddleware(cfg.Logger),
		MetricsMiddleware,
		AccessLogMiddleware,
	}

	r := mux.NewRouter()
	r.Use(middlewares...)

	// mux skips r.Use middlewares for unmatched requests
	r.NotFoundHandler = chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respondWithError(w, http.StatusNotFound, "Not found.")
	}), middlewares)
	r.MethodNotAllowedHandler = chain(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, `Method "`+req.Method+`" not allowed.`)
	}), middlewares)

	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/health", home.Health).Methods(http.MethodGet)
	r.HandleFunc("/", home.Overview).Methods(http.MethodGet)

	rateLimit := RateLimitMiddleware(cfg.RateLimiter)
	r.Handle("/api", rateLimit(http.HandlerFunc(home.APIRoot))).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(rateLimit)

	route(api, "/", home.APIRoot, http.MethodGet)

	route(api, "/cities", cities.List, http.MethodGet)
	route(api, "/cities", cities.Create, http.MethodPost)
	route(api, "/cities/{id:[0-9]+}", cities.Get, http.MethodGet)
	route(api, "/cities/{id:[0-9]+}", cities.Update, http.MethodPut)
	route(api, "/cities/{id:[0-9]+}", cities.PartialUpdate, http.MethodPatch)
	route(api, "/cities/{id:[0-9]+}", cities.Delete, http.MethodDelete)
	route(api, "/cities/{id:[0-9]+}/fetch_weather", cities.FetchWeather, http.MethodPost)

	route(api, "/weather-records", records.List, http.MethodGet)
	route(api, "/weather-records", records.Create, http.MethodPost)
	route(api, "/weather-records/analytics", records.Analytics, http.MethodGet)
	route(api, "/weather-records/{id:[0-9]+}", records.Get, http.MethodGet)
	route(api, "/weather-records/{id:[0-9]+}", records.Update, http.MethodPut)
	route(api, "/weather-records/{id:[0-9]+}", records.PartialUpdate, http.MethodPatch)
	route(api, "/weather-records/{id:[0-9]+}", records.Delete, http.MethodDelete)

	if len(cfg.CORSAllowedOrigins) == 0 {
		return r
	}

	return gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(cfg.CORSAllowedOrigins),
		gorillahandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type", "Accept", "Authorization", correlationIDHeader}),
		gorillahandlers.ExposedHeaders([]string{correlationIDHeader}),
		gorillahandlers.AllowCredentials(),
	)(r)
}

// chain applies middlewares in the order mux.Router.Use would.
func chain(h http.Handler, middlewares []mux.MiddlewareFunc) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

func route(r *mux.Router, path string, h http.HandlerFunc, method string) {
	if path == "/" {
		r.HandleFunc(path, h).Methods(method)
		return
	}
	r.HandleFunc(path, h).Methods(method)
	r.HandleFunc(path+"/", h).Methods(method)
}
