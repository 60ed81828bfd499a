package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"ulascansenturk/weather-analytics-service/internal/metrics"
)

var (
	ErrUpstreamStatus    = errors.New("weather provider returned a non-success status")
	ErrMalformedResponse = errors.New("weather provider returned a malformed response")
	ErrCircuitOpen       = errors.New("weather provider circuit breaker is open")
)

type CurrentWeather struct {
	Temperature float64
	FeelsLike   float64
	Humidity    int
	Pressure    int
	WindSpeed   float64
	Description string
}

type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, latitude, longitude float64) (CurrentWeather, error)
}

type OpenWeatherClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

type Option func(*OpenWeatherClient)

func WithHTTPClient(client *http.Client) Option {
	return func(c *OpenWeatherClient) {
		c.client = client
	}
}

// WithCircuitBreaker trips after the given number of consecutive failures and stays open for
// timeout. Calls made while open fail fast with ErrCircuitOpen.
func WithCircuitBreaker(failures uint32, timeout time.Duration) Option {
	return func(c *OpenWeatherClient) {
		c.circuit = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "openweather",
			MaxRequests: 1,
			Timeout:     timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			},
		})
	}
}

func NewOpenWeatherClient(apiKey, baseURL string, timeout time.Duration, opts ...Option) *OpenWeatherClient {
	c := &OpenWeatherClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type openWeatherResponse struct {
	Main *struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// GetCurrentWeather makes exactly one request to the current weather endpoint in metric units.
func (c *OpenWeatherClient) GetCurrentWeather(ctx context.Context, latitude, longitude float64) (CurrentWeather, error) {
	start := time.Now()

	result, err := c.execute(ctx, latitude, longitude)

	status := "success"
	if err != nil {
		status = "error"
		var statusErr *upstreamStatusError
		if errors.As(err, &statusErr) {
			status = "http_" + strconv.Itoa(statusErr.code)
		}
	}
	metrics.WeatherAPICallsTotal.WithLabelValues(status).Inc()
	metrics.WeatherAPIDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())

	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).
			Float64("latitude", latitude).
			Float64("longitude", longitude).
			Msg("weather provider call failed")
		return CurrentWeather{}, err
	}

	return result, nil
}

func (c *OpenWeatherClient) execute(ctx context.Context, latitude, longitude float64) (CurrentWeather, error) {
	if c.circuit == nil {
		return c.fetch(ctx, latitude, longitude)
	}

	out, err := c.circuit.Execute(func() (interface{}, error) {
		return c.fetch(ctx, latitude, longitude)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return CurrentWeather{}, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}
	if err != nil {
		return CurrentWeather{}, err
	}
	return out.(CurrentWeather), nil
}

func (c *OpenWeatherClient) fetch(ctx context.Context, latitude, longitude float64) (CurrentWeather, error) {
	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	values.Set("appid", c.apiKey)
	values.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return CurrentWeather{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return CurrentWeather{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return CurrentWeather{}, &upstreamStatusError{code: resp.StatusCode}
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return CurrentWeather{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if payload.Main == nil {
		return CurrentWeather{}, fmt.Errorf("%w: missing main section", ErrMalformedResponse)
	}
	if len(payload.Weather) == 0 {
		return CurrentWeather{}, fmt.Errorf("%w: missing weather conditions", ErrMalformedResponse)
	}

	return CurrentWeather{
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    int(math.Round(payload.Main.Humidity)),
		Pressure:    int(math.Round(payload.Main.Pressure)),
		WindSpeed:   payload.Wind.Speed,
		Description: payload.Weather[0].Description,
	}, nil
}

type upstreamStatusError struct {
	code int
}

func (e *upstreamStatusError) Error() string {
	return fmt.Sprintf("%d %s", e.code, http.StatusText(e.code))
}

func (e *upstreamStatusError) Unwrap() error {
	return ErrUpstreamStatus
}
