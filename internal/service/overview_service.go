package service

import (
	"context"
	"fmt"

	"ulascansenturk/weather-analytics-service/internal/db/city"
	"ulascansenturk/weather-analytics-service/internal/db/weatherrecord"
)

type Overview struct {
	CityCount          int64
	WeatherRecordCount int64
	Cities             []city.City
	RecentWeather      []weatherrecord.WeatherRecord
}

type OverviewService interface {
	Overview(ctx context.Context) (Overview, error)
}

type overviewService struct {
	cities  city.Repository
	records weatherrecord.Repository
	limit   int
}

func NewOverviewService(cities city.Repository, records weatherrecord.Repository, limit int) OverviewService {
	return &overviewService{
		cities:  cities,
		records: records,
		limit:   limit,
	}
}

func (s *overviewService) Overview(ctx context.Context) (Overview, error) {
	cityCount, err := s.cities.Count(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("count cities: %w", err)
	}

	recordCount, err := s.records.Count(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("count weather records: %w", err)
	}

	cities, _, err := s.cities.List(ctx, 0, s.limit)
	if err != nil {
		return Overview{}, fmt.Errorf("list cities: %w", err)
	}

	recent, err := s.records.Recent(ctx, nil, s.limit)
	if err != nil {
		return Overview{}, fmt.Errorf("recent weather records: %w", err)
	}

	return Overview{
		CityCount:          cityCount,
		WeatherRecordCount: recordCount,
		Cities:             cities,
		RecentWeather:      recent,
	}, nil
}
