package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"golang.org/x/time/rate"

	"ulascansenturk/weather-analytics-service/internal/api/v1/handlers"
	"ulascansenturk/weather-analytics-service/internal/mocks"
)

// routerSuite serves requests through the full router with every service mocked.
type routerSuite struct {
	suite.Suite
	cities    *mocks.MockCityService
	records   *mocks.MockWeatherRecordService
	analytics *mocks.MockAnalyticsService
	overview  *mocks.MockOverviewService
	pingErr   error
	limiter   *rate.Limiter
	logs      *bytes.Buffer
	router    http.Handler
}

func (s *routerSuite) SetupTest() {
	s.cities = mocks.NewMockCityService(s.T())
	s.records = mocks.NewMockWeatherRecordService(s.T())
	s.analytics = mocks.NewMockAnalyticsService(s.T())
	s.overview = mocks.NewMockOverviewService(s.T())
	s.pingErr = nil
	s.limiter = nil
	s.logs = &bytes.Buffer{}
	s.buildRouter()
}

func (s *routerSuite) buildRouter() {
	s.router = handlers.NewRouter(handlers.RouterConfig{
		Logger:             zerolog.New(s.logs),
		CityService:        s.cities,
		RecordService:      s.records,
		AnalyticsService:   s.analytics,
		OverviewService:    s.overview,
		Ping:               func(context.Context) error { return s.pingErr },
		RateLimiter:        s.limiter,
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	})
}

func (s *routerSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func (s *routerSuite) decode(recorder *httptest.ResponseRecorder, dst interface{}) {
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), dst), recorder.Body.String())
}

func (s *routerSuite) errorResponse(recorder *httptest.ResponseRecorder) handlers.ErrorResponse {
	var response handlers.ErrorResponse
	s.decode(recorder, &response)
	return response
}

func ptr[T any](v T) *T {
	return &v
}

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}
