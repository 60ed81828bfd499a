package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"ulascansenturk/weather-analytics-service/internal/db/city"
	"ulascansenturk/weather-analytics-service/internal/db/weatherrecord"
	"ulascansenturk/weather-analytics-service/internal/mocks"
	"ulascansenturk/weather-analytics-service/internal/service"
)

type OverviewServiceTestSuite struct {
	suite.Suite
	cities  *mocks.MockCityRepository
	records *mocks.MockWeatherRecordRepository
	service service.OverviewService
}

func (s *OverviewServiceTestSuite) SetupTest() {
	s.cities = mocks.NewMockCityRepository(s.T())
	s.records = mocks.NewMockWeatherRecordRepository(s.T())
	s.service = service.NewOverviewService(s.cities, s.records, 5)
}

func (s *OverviewServiceTestSuite) TestOverview() {
	cities := []city.City{{ID: 1, Name: "Athens"}, {ID: 2, Name: "London"}}
	recent := []weatherrecord.WeatherRecord{{ID: 8, CityID: 2, Temperature: 15.5, Description: "light rain"}}

	s.cities.On("Count", mock.Anything).Return(int64(2), nil)
	s.records.On("Count", mock.Anything).Return(int64(14), nil)
	s.cities.On("List", mock.Anything, 0, 5).Return(cities, int64(2), nil)
	s.records.On("Recent", mock.Anything, (*uint)(nil), 5).Return(recent, nil)

	overview, err := s.service.Overview(context.Background())

	s.Require().NoError(err)
	s.Equal(int64(2), overview.CityCount)
	s.Equal(int64(14), overview.WeatherRecordCount)
	s.Equal(cities, overview.Cities)
	s.Equal(recent, overview.RecentWeather)
}

func (s *OverviewServiceTestSuite) TestOverviewStopsOnError() {
	s.cities.On("Count", mock.Anything).Return(int64(0), errors.New("database is down"))

	_, err := s.service.Overview(context.Background())

	s.Require().Error(err)
	s.Contains(err.Error(), "count cities")
}

func TestOverviewServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OverviewServiceTestSuite))
}
