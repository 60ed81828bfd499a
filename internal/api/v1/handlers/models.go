package handlers

import (
	"time"

	"ulascansenturk/weather-analytics-service/internal/analytics"
	"ulascansenturk/weather-analytics-service/internal/db/city"
	"ulascansenturk/weather-analytics-service/internal/db/weatherrecord"
	"ulascansenturk/weather-analytics-service/internal/service"
)

type CityResponse struct {
	ID                  uint      `json:"id"`
	Name                string    `json:"name"`
	Country             string    `json:"country"`
	Latitude            float64   `json:"latitude"`
	Longitude           float64   `json:"longitude"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	WeatherRecordsCount int64     `json:"weather_records_count"`
}

type CityDetailResponse struct {
	ID            uint                    `json:"id"`
	Name          string                  `json:"name"`
	Country       string                  `json:"country"`
	Latitude      float64                 `json:"latitude"`
	Longitude     float64                 `json:"longitude"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
	RecentWeather []WeatherRecordResponse `json:"recent_weather"`
}

type WeatherRecordResponse struct {
	ID          uint      `json:"id"`
	City        uint      `json:"city"`
	CityName    string    `json:"city_name"`
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feels_like"`
	Humidity    int       `json:"humidity"`
	Pressure    int       `json:"pressure"`
	WindSpeed   float64   `json:"wind_speed"`
	Description string    `json:"description"`
	RecordedAt  time.Time `json:"recorded_at"`
	CreatedAt   time.Time `json:"created_at"`
}

type PaginatedResponse[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

type FetchWeatherResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Data    *WeatherRecordResponse `json:"data,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

type StatisticsResponse struct {
	AverageTemperature *float64 `json:"average_temperature"`
	MaxTemperature     *float64 `json:"max_temperature"`
	MinTemperature     *float64 `json:"min_temperature"`
	AverageHumidity    *float64 `json:"average_humidity"`
	AveragePressure    *float64 `json:"average_pressure"`
	AverageWindSpeed   *float64 `json:"average_wind_speed"`
	TotalRecords       int      `json:"total_records"`
}

type DailyTrendResponse struct {
	Date               string   `json:"date"`
	AverageTemperature *float64 `json:"avg_temperature"`
	AverageHumidity    *float64 `json:"avg_humidity"`
}

type CitySummaryResponse struct {
	CityName           string  `json:"city_name"`
	Country            string  `json:"country"`
	AverageTemperature float64 `json:"avg_temperature"`
	RecordCount        int     `json:"record_count"`
}

type AnalyticsResponse struct {
	Period      string               `json:"period"`
	Statistics  StatisticsResponse   `json:"statistics"`
	DailyTrends []DailyTrendResponse `json:"daily_trends"`
	// nil pointer drops the key entirely for single-city reports
	CitySummary *[]CitySummaryResponse `json:"city_summary,omitempty"`
}

type OverviewCityResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type OverviewResponse struct {
	CityCount          int64                   `json:"city_count"`
	WeatherRecordCount int64                   `json:"weather_record_count"`
	Cities             []OverviewCityResponse  `json:"cities"`
	RecentWeather      []WeatherRecordResponse `json:"recent_weather"`
	Endpoints          map[string]string       `json:"endpoints"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
	Field  string `json:"field,omitempty"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}

func toCityResponse(c city.City, weatherRecordsCount int64) CityResponse {
	return CityResponse{
		ID:                  c.ID,
		Name:                c.Name,
		Country:             c.Country,
		Latitude:            c.Latitude,
		Longitude:           c.Longitude,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
		WeatherRecordsCount: weatherRecordsCount,
	}
}

func toCityDetailResponse(detail service.CityDetail) CityDetailResponse {
	c := detail.City
	return CityDetailResponse{
		ID:            c.ID,
		Name:          c.Name,
		Country:       c.Country,
		Latitude:      c.Latitude,
		Longitude:     c.Longitude,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		RecentWeather: toWeatherRecordResponses(detail.RecentWeather),
	}
}

func toWeatherRecordResponse(r weatherrecord.WeatherRecord) WeatherRecordResponse {
	return WeatherRecordResponse{
		ID:          r.ID,
		City:        r.CityID,
		CityName:    r.City.Name,
		Temperature: r.Temperature,
		FeelsLike:   r.FeelsLike,
		Humidity:    r.Humidity,
		Pressure:    r.Pressure,
		WindSpeed:   r.WindSpeed,
		Description: r.Description,
		RecordedAt:  r.RecordedAt,
		CreatedAt:   r.CreatedAt,
	}
}

func toWeatherRecordResponses(records []weatherrecord.WeatherRecord) []WeatherRecordResponse {
	out := make([]WeatherRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toWeatherRecordResponse(r))
	}
	return out
}

func toAnalyticsResponse(report analytics.Report) AnalyticsResponse {
	stats := report.Statistics

	trends := make([]DailyTrendResponse, 0, len(report.DailyTrends))
	for _, t := range report.DailyTrends {
		trends = append(trends, DailyTrendResponse{
			Date:               t.Date,
			AverageTemperature: t.AverageTemperature,
			AverageHumidity:    t.AverageHumidity,
		})
	}

	response := AnalyticsResponse{
		Period: report.Period,
		Statistics: StatisticsResponse{
			AverageTemperature: stats.AverageTemperature,
			MaxTemperature:     stats.MaxTemperature,
			MinTemperature:     stats.MinTemperature,
			AverageHumidity:    stats.AverageHumidity,
			AveragePressure:    stats.AveragePressure,
			AverageWindSpeed:   stats.AverageWindSpeed,
			TotalRecords:       stats.TotalRecords,
		},
		DailyTrends: trends,
	}

	if report.CitySummary != nil {
		summary := make([]CitySummaryResponse, 0, len(report.CitySummary))
		for _, s := range report.CitySummary {
			summary = append(summary, CitySummaryResponse{
				CityName:           s.CityName,
				Country:            s.Country,
				AverageTemperature: s.AverageTemperature,
				RecordCount:        s.RecordCount,
			})
		}
		response.CitySummary = &summary
	}

	return response
}
