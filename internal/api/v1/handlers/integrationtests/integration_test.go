package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgTestContainers "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ulascansenturk/weather-analytics-service/internal/api/v1/handlers"
	"ulascansenturk/weather-analytics-service/internal/db"
	"ulascansenturk/weather-analytics-service/internal/db/city"
	"ulascansenturk/weather-analytics-service/internal/db/weatherrecord"
	"ulascansenturk/weather-analytics-service/internal/providers"
	"ulascansenturk/weather-analytics-service/internal/service"
)

var (
	postgresContainer *pgTestContainers.PostgresContainer
	sharedDB          *gorm.DB
)

type testSetup struct {
	router   http.Handler
	provider *httptest.Server
	db       *gorm.DB
}

const (
	dbName     = "test_api_database"
	dbUser     = "test_user"
	dbPassword = "test_password"
)

func init() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func SetupPostgres(t *testing.T) (*gorm.DB, func()) {
	if sharedDB != nil {
		err := sharedDB.Migrator().DropTable(&weatherrecord.WeatherRecord{}, &city.City{})
		require.NoError(t, err)

		err = db.Migrate(sharedDB)
		require.NoError(t, err)

		return sharedDB, func() {}
	}

	log.Info().Msg("Setting up new PostgreSQL container")

	ctx := context.Background()

	var err error
	postgresContainer, err = pgTestContainers.Run(ctx,
		"postgres:13.3",
		pgTestContainers.WithDatabase(dbName),
		pgTestContainers.WithUsername(dbUser),
		pgTestContainers.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(10*time.Second)),
	)
	require.NoError(t, err)

	host, err := postgresContainer.Host(context.Background())
	require.NoError(t, err)

	endpoint, err := postgresContainer.Endpoint(context.Background(), "")
	require.NoError(t, err)

	parts := strings.Split(endpoint, ":")
	port := parts[1]

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, dbUser, dbPassword, dbName,
	)

	sharedDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	log.Info().Msgf("Connected to database: %s on %s:%s", dbName, host, port)

	require.NoError(t, db.Ping(ctx, sharedDB))

	err = db.Migrate(sharedDB)
	require.NoError(t, err)

	return sharedDB, func() {
		if postgresContainer != nil {
			log.Info().Msg("Terminating PostgreSQL container")
			if err := postgresContainer.Terminate(context.Background()); err != nil {
				log.Error().Err(err).Msg("Failed to terminate PostgreSQL container")
			}
		}
	}
}

func setupTest(t *testing.T, providerHandler http.HandlerFunc) *testSetup {
	database, _ := SetupPostgres(t)

	provider := httptest.NewServer(providerHandler)
	t.Cleanup(provider.Close)

	cityRepo := city.NewRepository(database)
	recordRepo := weatherrecord.NewRepository(database)
	weatherProvider := providers.NewOpenWeatherClient("test_key", provider.URL, 2*time.Second)

	router := handlers.NewRouter(handlers.RouterConfig{
		Logger: log.Logger,
		CityService: service.NewCityService(cityRepo, recordRepo, weatherProvider, service.CityServiceConfig{
			PageSize:           10,
			RecentWeatherLimit: 5,
		}),
		RecordService:    service.NewWeatherRecordService(recordRepo, cityRepo, 10),
		AnalyticsService: service.NewAnalyticsService(recordRepo, 7, 0),
		OverviewService:  service.NewOverviewService(cityRepo, recordRepo, 5),
		Ping: func(ctx context.Context) error {
			return db.Ping(ctx, database)
		},
		Timeout: 10 * time.Second,
	})

	return &testSetup{
		router:   router,
		provider: provider,
		db:       database,
	}
}

func (ts *testSetup) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	t.Logf("%s %s -> %d", method, target, w.Code)
	return w
}

func (ts *testSetup) createCity(t *testing.T, name, country string, lat, lon float64) handlers.CityResponse {
	w := ts.do(t, http.MethodPost, "/api/cities/",
		fmt.Sprintf(`{"name": %q, "country": %q, "latitude": %v, "longitude": %v}`, name, country, lat, lon))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var response handlers.CityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func (ts *testSetup) createRecord(t *testing.T, cityID uint, temperature float64, recordedAt time.Time) {
	w := ts.do(t, http.MethodPost, "/api/weather-records/", fmt.Sprintf(`{
		"city": %d, "temperature": %v, "feels_like": %v, "humidity": 70,
		"pressure": 1012, "wind_speed": 3.5, "description": "light rain", "recorded_at": %q
	}`, cityID, temperature, temperature-1, recordedAt.UTC().Format(time.RFC3339)))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func failingProvider(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusInternalServerError)
}

func TestWeatherAnalyticsService(t *testing.T) {
	_, cleanup := SetupPostgres(t)
	defer cleanup()

	t.Run("CreateCityAndFetchDetail", func(t *testing.T) {
		log.Info().Msg("➡️ Running test: CreateCityAndFetchDetail")

		ts := setupTest(t, failingProvider)

		created := ts.createCity(t, "Mumbai", "India", 19.0760, 72.8777)

		assert.Equal(t, "Mumbai", created.Name)
		assert.Equal(t, "India", created.Country)
		assert.Equal(t, 19.0760, created.Latitude)
		assert.Equal(t, 72.8777, created.Longitude)
		assert.Zero(t, created.WeatherRecordsCount)

		w := ts.do(t, http.MethodGet, fmt.Sprintf("/api/cities/%d/", created.ID), "")
		require.Equal(t, http.StatusOK, w.Code)

		var detail handlers.CityDetailResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
		assert.Equal(t, "Mumbai", detail.Name)
		assert.NotNil(t, detail.RecentWeather)
		assert.Empty(t, detail.RecentWeather)

		log.Info().Msg("✅ TEST PASSED: CreateCityAndFetchDetail")
	})

	t.Run("DuplicateCityName", func(t *testing.T) {
		ts := setupTest(t, failingProvider)

		ts.createCity(t, "Mumbai", "India", 19.0760, 72.8777)

		w := ts.do(t, http.MethodPost, "/api/cities/",
			`{"name": "Mumbai", "country": "India", "latitude": 1, "longitude": 2}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var response handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "name", response.Errors[0].Field)
	})

	t.Run("AnalyticsForFiveLondonRecords", func(t *testing.T) {
		log.Info().Msg("➡️ Running test: AnalyticsForFiveLondonRecords")

		ts := setupTest(t, failingProvider)

		london := ts.createCity(t, "London", "United Kingdom", 51.5072, -0.1276)
		for i := 0; i < 5; i++ {
			ts.createRecord(t, london.ID, 15.5, time.Now().Add(-time.Duration(i+1)*time.Hour))
		}

		w := ts.do(t, http.MethodGet, "/api/weather-records/analytics/", "")
		require.Equal(t, http.StatusOK, w.Code)

		var report handlers.AnalyticsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		assert.Equal(t, "Last 7 days", report.Period)
		assert.Equal(t, 5, report.Statistics.TotalRecords)
		require.NotNil(t, report.Statistics.AverageTemperature)
		assert.Equal(t, 15.5, *report.Statistics.AverageTemperature)
		assert.Len(t, report.DailyTrends, 7)
		require.NotNil(t, report.CitySummary)
		require.Len(t, *report.CitySummary, 1)
		assert.Equal(t, "London", (*report.CitySummary)[0].CityName)
		assert.Equal(t, 5, (*report.CitySummary)[0].RecordCount)

		w = ts.do(t, http.MethodGet, fmt.Sprintf("/api/weather-records/analytics/?city_id=%d&days=3", london.ID), "")
		require.Equal(t, http.StatusOK, w.Code)

		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		assert.NotContains(t, raw, "city_summary")

		var trends []handlers.DailyTrendResponse
		require.NoError(t, json.Unmarshal(raw["daily_trends"], &trends))
		assert.Len(t, trends, 3)

		log.Info().Msg("✅ TEST PASSED: AnalyticsForFiveLondonRecords")
	})

	t.Run("CityListCountsAndPagination", func(t *testing.T) {
		ts := setupTest(t, failingProvider)

		for i := 0; i < 12; i++ {
			ts.createCity(t, fmt.Sprintf("City %02d", i), "Testland", float64(i), float64(i))
		}

		w := ts.do(t, http.MethodGet, "/api/cities/", "")
		require.Equal(t, http.StatusOK, w.Code)

		var page handlers.PaginatedResponse[handlers.CityResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, int64(12), page.Count)
		assert.Len(t, page.Results, 10)
		assert.Equal(t, "City 00", page.Results[0].Name)
		assert.NotNil(t, page.Next)
		assert.Nil(t, page.Previous)

		w = ts.do(t, http.MethodGet, "/api/cities/?page=2", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Len(t, page.Results, 2)
		assert.Nil(t, page.Next)

		w = ts.do(t, http.MethodGet, "/api/cities/?page=3", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("DeleteCityCascadesToRecords", func(t *testing.T) {
		log.Info().Msg("➡️ Running test: DeleteCityCascadesToRecords")

		ts := setupTest(t, failingProvider)

		athens := ts.createCity(t, "Athens", "Greece", 37.9838, 23.7275)
		ts.createRecord(t, athens.ID, 22, time.Now().Add(-time.Hour))
		ts.createRecord(t, athens.ID, 23, time.Now().Add(-2*time.Hour))

		var before int64
		require.NoError(t, ts.db.Model(&weatherrecord.WeatherRecord{}).Where("city_id = ?", athens.ID).Count(&before).Error)
		require.Equal(t, int64(2), before)

		w := ts.do(t, http.MethodDelete, fmt.Sprintf("/api/cities/%d/", athens.ID), "")
		require.Equal(t, http.StatusNoContent, w.Code)

		var after int64
		require.NoError(t, ts.db.Model(&weatherrecord.WeatherRecord{}).Where("city_id = ?", athens.ID).Count(&after).Error)
		assert.Zero(t, after)

		w = ts.do(t, http.MethodGet, fmt.Sprintf("/api/cities/%d/", athens.ID), "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		log.Info().Msg("✅ TEST PASSED: DeleteCityCascadesToRecords")
	})

	t.Run("FetchWeatherProviderFailure", func(t *testing.T) {
		log.Info().Msg("➡️ Running test: FetchWeatherProviderFailure")

		ts := setupTest(t, failingProvider)

		london := ts.createCity(t, "London", "United Kingdom", 51.5072, -0.1276)

		w := ts.do(t, http.MethodPost, fmt.Sprintf("/api/cities/%d/fetch_weather/", london.ID), "")
		require.Equal(t, http.StatusServiceUnavailable, w.Code)

		var response handlers.FetchWeatherResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response.Success)
		assert.True(t, strings.HasPrefix(response.Error, "Failed to fetch weather data: "), response.Error)

		var count int64
		require.NoError(t, ts.db.Model(&weatherrecord.WeatherRecord{}).Count(&count).Error)
		assert.Zero(t, count)

		log.Info().Msg("✅ TEST PASSED: FetchWeatherProviderFailure")
	})

	t.Run("FetchWeatherStoresRecord", func(t *testing.T) {
		ts := setupTest(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{
				"weather": [{"main": "Haze", "description": "haze"}],
				"main": {"temp": 29.99, "feels_like": 33.41, "pressure": 1009, "humidity": 62},
				"wind": {"speed": 3.6}
			}`)
		})

		mumbai := ts.createCity(t, "Mumbai", "India", 19.0760, 72.8777)

		w := ts.do(t, http.MethodPost, fmt.Sprintf("/api/cities/%d/fetch_weather/", mumbai.ID), "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var response handlers.FetchWeatherResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Success)
		require.NotNil(t, response.Data)
		assert.Equal(t, mumbai.ID, response.Data.City)
		assert.Equal(t, "Mumbai", response.Data.CityName)
		assert.Equal(t, 29.99, response.Data.Temperature)
		assert.Equal(t, "haze", response.Data.Description)

		w = ts.do(t, http.MethodGet, fmt.Sprintf("/api/cities/%d/", mumbai.ID), "")
		var detail handlers.CityDetailResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
		require.Len(t, detail.RecentWeather, 1)
		assert.Equal(t, 62, detail.RecentWeather[0].Humidity)
	})

	t.Run("RecordForUnknownCity", func(t *testing.T) {
		ts := setupTest(t, failingProvider)

		w := ts.do(t, http.MethodPost, "/api/weather-records/", `{
			"city": 999, "temperature": 1, "feels_like": 1, "humidity": 1,
			"pressure": 1, "wind_speed": 1, "description": "fog"
		}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var response handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "city", response.Errors[0].Field)
	})

	t.Run("Health", func(t *testing.T) {
		ts := setupTest(t, failingProvider)

		w := ts.do(t, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
