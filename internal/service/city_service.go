package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"ulascansenturk/weather-analytics-service/internal/db/city"
	"ulascansenturk/weather-analytics-service/internal/db/weatherrecord"
	"ulascansenturk/weather-analytics-service/internal/metrics"
	"ulascansenturk/weather-analytics-service/internal/providers"
)

type CityFields struct {
	Name      string
	Country   string
	Latitude  float64
	Longitude float64
}

// CityPatch carries the fields of an update. Nil fields keep their stored value.
type CityPatch struct {
	Name      *string
	Country   *string
	Latitude  *float64
	Longitude *float64
}

type CityWithCount struct {
	City                city.City
	WeatherRecordsCount int64
}

type CityDetail struct {
	City          city.City
	RecentWeather []weatherrecord.WeatherRecord
}

type CityService interface {
	List(ctx context.Context, page int) (Page[CityWithCount], error)
	Get(ctx context.Context, id uint) (CityDetail, error)
	Create(ctx context.Context, fields CityFields) (CityWithCount, error)
	Update(ctx context.Context, id uint, patch CityPatch) (CityWithCount, error)
	Delete(ctx context.Context, id uint) error
	FetchWeather(ctx context.Context, id uint) (weatherrecord.WeatherRecord, error)
}

type CityServiceConfig struct {
	PageSize           int
	RecentWeatherLimit int
}

type cityService struct {
	cities   city.Repository
	records  weatherrecord.Repository
	provider providers.WeatherProvider
	cfg      CityServiceConfig
	now      func() time.Time
}

func NewCityService(
	cities city.Repository,
	records weatherrecord.Repository,
	provider providers.WeatherProvider,
	cfg CityServiceConfig,
) CityService {
	return &cityService{
		cities:   cities,
		records:  records,
		provider: provider,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *cityService) List(ctx context.Context, page int) (Page[CityWithCount], error) {
	offset, err := offsetFor(page, s.cfg.PageSize)
	if err != nil {
		return Page[CityWithCount]{}, err
	}

	cities, total, err := s.cities.List(ctx, offset, s.cfg.PageSize)
	if err != nil {
		return Page[CityWithCount]{}, fmt.Errorf("list cities: %w", err)
	}

	ids := make([]uint, 0, len(cities))
	for _, c := range cities {
		ids = append(ids, c.ID)
	}

	counts, err := s.records.CountByCity(ctx, ids)
	if err != nil {
		return Page[CityWithCount]{}, fmt.Errorf("count weather records: %w", err)
	}

	items := make([]CityWithCount, 0, len(cities))
	for _, c := range cities {
		items = append(items, CityWithCount{City: c, WeatherRecordsCount: counts[c.ID]})
	}

	return newPage(items, total, page, s.cfg.PageSize)
}

func (s *cityService) Get(ctx context.Context, id uint) (CityDetail, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return CityDetail{}, err
	}

	recent, err := s.records.Recent(ctx, &c.ID, s.cfg.RecentWeatherLimit)
	if err != nil {
		return CityDetail{}, fmt.Errorf("recent weather for city %d: %w", id, err)
	}

	return CityDetail{City: *c, RecentWeather: recent}, nil
}

func (s *cityService) Create(ctx context.Context, fields CityFields) (CityWithCount, error) {
	c := &city.City{
		Name:      fields.Name,
		Country:   fields.Country,
		Latitude:  fields.Latitude,
		Longitude: fields.Longitude,
	}

	if err := s.cities.Create(ctx, c); err != nil {
		return CityWithCount{}, translateCityWriteError(err)
	}

	return CityWithCount{City: *c}, nil
}

func (s *cityService) Update(ctx context.Context, id uint, patch CityPatch) (CityWithCount, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return CityWithCount{}, err
	}

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Country != nil {
		c.Country = *patch.Country
	}
	if patch.Latitude != nil {
		c.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		c.Longitude = *patch.Longitude
	}

	if err := s.cities.Update(ctx, c); err != nil {
		return CityWithCount{}, translateCityWriteError(err)
	}

	counts, err := s.records.CountByCity(ctx, []uint{c.ID})
	if err != nil {
		return CityWithCount{}, fmt.Errorf("count weather records: %w", err)
	}

	return CityWithCount{City: *c, WeatherRecordsCount: counts[c.ID]}, nil
}

func (s *cityService) Delete(ctx context.Context, id uint) error {
	if err := s.cities.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete city %d: %w", id, err)
	}
	return nil
}

// FetchWeather asks the provider for the current weather at the city's coordinates and stores it
// as a new record. Nothing is written when the provider call fails.
func (s *cityService) FetchWeather(ctx context.Context, id uint) (weatherrecord.WeatherRecord, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return weatherrecord.WeatherRecord{}, err
	}

	current, err := s.provider.GetCurrentWeather(ctx, c.Latitude, c.Longitude)
	if err != nil {
		return weatherrecord.WeatherRecord{}, &ProviderError{Err: err}
	}

	record := weatherrecord.WeatherRecord{
		CityID:      c.ID,
		City:        *c,
		Temperature: current.Temperature,
		FeelsLike:   current.FeelsLike,
		Humidity:    current.Humidity,
		Pressure:    current.Pressure,
		WindSpeed:   current.WindSpeed,
		Description: current.Description,
		RecordedAt:  s.now().UTC(),
	}

	if err := s.records.Create(ctx, &record); err != nil {
		return weatherrecord.WeatherRecord{}, fmt.Errorf("store fetched weather for city %d: %w", id, err)
	}

	metrics.WeatherRecordsIngestedTotal.Inc()
	zerolog.Ctx(ctx).Info().
		Uint("city_id", c.ID).
		Uint("weather_record_id", record.ID).
		Float64("temperature", record.Temperature).
		Msg("weather data fetched")

	return record, nil
}

func (s *cityService) find(ctx context.Context, id uint) (*city.City, error) {
	c, err := s.cities.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get city %d: %w", id, err)
	}
	return c, nil
}

func translateCityWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return NewValidationError("name", "city with this name already exists.")
	}
	return fmt.Errorf("save city: %w", err)
}
