package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ulascansenturk/weather-analytics-service/internal/db/city"
	"ulascansenturk/weather-analytics-service/internal/db/weatherrecord"
)

type WeatherRecordFields struct {
	CityID      uint
	Temperature float64
	FeelsLike   float64
	Humidity    int
	Pressure    int
	WindSpeed   float64
	Description string
	// RecordedAt defaults to the creation time when nil.
	RecordedAt *time.Time
}

type WeatherRecordPatch struct {
	CityID      *uint
	Temperature *float64
	FeelsLike   *float64
	Humidity    *int
	Pressure    *int
	WindSpeed   *float64
	Description *string
	RecordedAt  *time.Time
}

// RecordListFilter holds the optional listing filters. Days keeps records recorded within the
// trailing number of days.
type RecordListFilter struct {
	CityID *uint
	Days   *int
}

type WeatherRecordService interface {
	List(ctx context.Context, filter RecordListFilter, page int) (Page[weatherrecord.WeatherRecord], error)
	Get(ctx context.Context, id uint) (weatherrecord.WeatherRecord, error)
	Create(ctx context.Context, fields WeatherRecordFields) (weatherrecord.WeatherRecord, error)
	Update(ctx context.Context, id uint, patch WeatherRecordPatch) (weatherrecord.WeatherRecord, error)
	Delete(ctx context.Context, id uint) error
}

type weatherRecordService struct {
	records  weatherrecord.Repository
	cities   city.Repository
	pageSize int
	now      func() time.Time
}

func NewWeatherRecordService(records weatherrecord.Repository, cities city.Repository, pageSize int) WeatherRecordService {
	return &weatherRecordService{
		records:  records,
		cities:   cities,
		pageSize: pageSize,
		now:      time.Now,
	}
}

func (s *weatherRecordService) List(ctx context.Context, filter RecordListFilter, page int) (Page[weatherrecord.WeatherRecord], error) {
	query := weatherrecord.Filter{CityID: filter.CityID}
	if filter.Days != nil {
		since := s.now().UTC().Add(-time.Duration(*filter.Days) * 24 * time.Hour)
		query.Since = &since
	}

	offset, err := offsetFor(page, s.pageSize)
	if err != nil {
		return Page[weatherrecord.WeatherRecord]{}, err
	}

	records, total, err := s.records.List(ctx, query, offset, s.pageSize)
	if err != nil {
		return Page[weatherrecord.WeatherRecord]{}, fmt.Errorf("list weather records: %w", err)
	}

	return newPage(records, total, page, s.pageSize)
}

func (s *weatherRecordService) Get(ctx context.Context, id uint) (weatherrecord.WeatherRecord, error) {
	record, err := s.records.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return weatherrecord.WeatherRecord{}, ErrNotFound
		}
		return weatherrecord.WeatherRecord{}, fmt.Errorf("get weather record %d: %w", id, err)
	}
	return *record, nil
}

func (s *weatherRecordService) Create(ctx context.Context, fields WeatherRecordFields) (weatherrecord.WeatherRecord, error) {
	owner, err := s.owningCity(ctx, fields.CityID)
	if err != nil {
		return weatherrecord.WeatherRecord{}, err
	}

	recordedAt := s.now().UTC()
	if fields.RecordedAt != nil {
		recordedAt = *fields.RecordedAt
	}

	record := weatherrecord.WeatherRecord{
		CityID:      owner.ID,
		City:        *owner,
		Temperature: fields.Temperature,
		FeelsLike:   fields.FeelsLike,
		Humidity:    fields.Humidity,
		Pressure:    fields.Pressure,
		WindSpeed:   fields.WindSpeed,
		Description: fields.Description,
		RecordedAt:  recordedAt,
	}

	if err := s.records.Create(ctx, &record); err != nil {
		return weatherrecord.WeatherRecord{}, translateRecordWriteError(err, fields.CityID)
	}

	return record, nil
}

func (s *weatherRecordService) Update(ctx context.Context, id uint, patch WeatherRecordPatch) (weatherrecord.WeatherRecord, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return weatherrecord.WeatherRecord{}, err
	}

	if patch.CityID != nil && *patch.CityID != record.CityID {
		owner, err := s.owningCity(ctx, *patch.CityID)
		if err != nil {
			return weatherrecord.WeatherRecord{}, err
		}
		record.CityID = owner.ID
		record.City = *owner
	}
	if patch.Temperature != nil {
		record.Temperature = *patch.Temperature
	}
	if patch.FeelsLike != nil {
		record.FeelsLike = *patch.FeelsLike
	}
	if patch.Humidity != nil {
		record.Humidity = *patch.Humidity
	}
	if patch.Pressure != nil {
		record.Pressure = *patch.Pressure
	}
	if patch.WindSpeed != nil {
		record.WindSpeed = *patch.WindSpeed
	}
	if patch.Description != nil {
		record.Description = *patch.Description
	}
	if patch.RecordedAt != nil {
		record.RecordedAt = *patch.RecordedAt
	}

	if err := s.records.Update(ctx, &record); err != nil {
		return weatherrecord.WeatherRecord{}, translateRecordWriteError(err, record.CityID)
	}

	return record, nil
}

func (s *weatherRecordService) Delete(ctx context.Context, id uint) error {
	if err := s.records.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete weather record %d: %w", id, err)
	}
	return nil
}

// owningCity resolves the city a record points at. A missing city is a validation problem on
// the record, not a missing resource.
func (s *weatherRecordService) owningCity(ctx context.Context, cityID uint) (*city.City, error) {
	owner, err := s.cities.Get(ctx, cityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidCityReference(cityID)
		}
		return nil, fmt.Errorf("get city %d: %w", cityID, err)
	}
	return owner, nil
}

func translateRecordWriteError(err error, cityID uint) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return invalidCityReference(cityID)
	}
	return fmt.Errorf("save weather record: %w", err)
}

func invalidCityReference(cityID uint) *ValidationError {
	return NewValidationError("city", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", cityID))
}
