package service

import (
	"context"
	"fmt"
	"time"

	"ulascansenturk/weather-analytics-service/internal/analytics"
	"ulascansenturk/weather-analytics-service/internal/db/weatherrecord"
)

type AnalyticsService interface {
	Report(ctx context.Context, cityID *uint, days *int) (analytics.Report, error)
}

type analyticsService struct {
	records     weatherrecord.Repository
	defaultDays int
	maxDays     int
	now         func() time.Time
}

func NewAnalyticsService(records weatherrecord.Repository, defaultDays, maxDays int) AnalyticsService {
	return &analyticsService{
		records:     records,
		defaultDays: defaultDays,
		maxDays:     maxDays,
		now:         time.Now,
	}
}

// Report summarizes the records of the trailing days, for one city when cityID is set.
// A nil days uses the default window. Zero or negative days yield an empty report.
func (s *analyticsService) Report(ctx context.Context, cityID *uint, days *int) (analytics.Report, error) {
	n := s.defaultDays
	if days != nil {
		n = *days
	}
	if s.maxDays > 0 && n > s.maxDays {
		return analytics.Report{}, NewValidationError("days",
			fmt.Sprintf("Ensure this value is less than or equal to %d.", s.maxDays))
	}

	window := analytics.NewWindow(s.now(), n)
	if n < 1 {
		return analytics.Build(window, nil, cityID == nil), nil
	}

	records, err := s.records.Find(ctx, weatherrecord.Filter{
		CityID: cityID,
		Since:  &window.Start,
		Until:  &window.End,
	})
	if err != nil {
		return analytics.Report{}, fmt.Errorf("load weather records for analytics: %w", err)
	}

	return analytics.Build(window, records, cityID == nil), nil
}
