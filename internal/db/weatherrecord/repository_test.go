package weatherrecord_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"ulascansenturk/weather-analytics-service/internal/db/city"
	"ulascansenturk/weather-analytics-service/internal/db/weatherrecord"
)

type WeatherRecordRepositorySuite struct {
	suite.Suite
	DB   *gorm.DB
	mock sqlmock.Sqlmock
	repo weatherrecord.Repository
	ctx  context.Context
}

func (s *WeatherRecordRepositorySuite) SetupSuite() {
	var err error

	var db *sql.DB
	db, s.mock, err = sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	s.Require().NoError(err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	s.DB, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
	s.Require().NoError(err)

	s.repo = weatherrecord.NewRepository(s.DB)
	s.ctx = context.Background()
}

func (s *WeatherRecordRepositorySuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
}

func (s *WeatherRecordRepositorySuite) TestCreate() {
	recordedAt := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

	s.Run("Successfully creates a record without writing the city", func() {
		record := &weatherrecord.WeatherRecord{
			CityID:      2,
			City:        city.City{ID: 2, Name: "London"},
			Temperature: 15.5,
			FeelsLike:   14.9,
			Humidity:    81,
			Pressure:    1012,
			WindSpeed:   4.6,
			Description: "light rain",
			RecordedAt:  recordedAt,
		}

		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "weather_records"`).
			WithArgs(2, 15.5, 14.9, 81, 1012, 4.6, "light rain", recordedAt, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		s.mock.ExpectCommit()

		err := s.repo.Create(s.ctx, record)

		s.Require().NoError(err)
		s.Require().Equal(uint(10), record.ID)
	})

	s.Run("Returns error when database operation fails", func() {
		record := &weatherrecord.WeatherRecord{CityID: 2, Description: "clear sky", RecordedAt: recordedAt}

		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "weather_records"`).WillReturnError(errors.New("database error"))
		s.mock.ExpectRollback()

		err := s.repo.Create(s.ctx, record)

		s.Require().EqualError(err, "database error")
	})
}

func (s *WeatherRecordRepositorySuite) TestGet() {
	s.Run("Returns the record with its city", func() {
		now := time.Now()

		s.mock.ExpectQuery(`SELECT \* FROM "weather_records" WHERE "weather_records"."id" = \$1 ORDER BY "weather_records"."id" LIMIT \$2`).
			WithArgs(10, 1).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "city_id", "temperature", "feels_like", "humidity", "pressure",
				"wind_speed", "description", "recorded_at", "created_at",
			}).AddRow(10, 2, 15.5, 14.9, 81, 1012, 4.6, "light rain", now, now))
		s.mock.ExpectQuery(`SELECT \* FROM "cities" WHERE "cities"."id" = \$1`).
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "country", "latitude", "longitude", "created_at", "updated_at"}).
				AddRow(2, "London", "United Kingdom", 51.5072, -0.1276, now, now))

		record, err := s.repo.Get(s.ctx, 10)

		s.Require().NoError(err)
		s.Require().Equal(uint(10), record.ID)
		s.Require().Equal("London", record.City.Name)
		s.Require().Equal(81, record.Humidity)
	})

	s.Run("Returns record not found", func() {
		s.mock.ExpectQuery(`SELECT \* FROM "weather_records" WHERE "weather_records"."id" = \$1`).
			WithArgs(404, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		record, err := s.repo.Get(s.ctx, 404)

		s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
		s.Require().Nil(record)
	})
}

func (s *WeatherRecordRepositorySuite) TestRecent() {
	s.Run("Skips the query for a non-positive limit", func() {
		records, err := s.repo.Recent(s.ctx, nil, 0)

		s.Require().NoError(err)
		s.Require().Empty(records)
	})
}

func (s *WeatherRecordRepositorySuite) TestDelete() {
	s.Run("Deletes an existing record", func() {
		s.mock.ExpectBegin()
		s.mock.ExpectExec(`DELETE FROM "weather_records" WHERE "weather_records"."id" = \$1`).
			WithArgs(5).
			WillReturnResult(sqlmock.NewResult(0, 1))
		s.mock.ExpectCommit()

		s.Require().NoError(s.repo.Delete(s.ctx, 5))
	})

	s.Run("Returns record not found when nothing was deleted", func() {
		s.mock.ExpectBegin()
		s.mock.ExpectExec(`DELETE FROM "weather_records" WHERE "weather_records"."id" = \$1`).
			WithArgs(6).
			WillReturnResult(sqlmock.NewResult(0, 0))
		s.mock.ExpectCommit()

		s.Require().ErrorIs(s.repo.Delete(s.ctx, 6), gorm.ErrRecordNotFound)
	})
}

func (s *WeatherRecordRepositorySuite) TestCountByCity() {
	s.Run("Groups counts by city", func() {
		s.mock.ExpectQuery(`SELECT city_id, count\(\*\) AS total FROM "weather_records" WHERE city_id IN \(\$1,\$2\) GROUP BY`).
			WithArgs(1, 2).
			WillReturnRows(sqlmock.NewRows([]string{"city_id", "total"}).AddRow(1, 5))

		counts, err := s.repo.CountByCity(s.ctx, []uint{1, 2})

		s.Require().NoError(err)
		s.Require().Equal(map[uint]int64{1: 5}, counts)
	})

	s.Run("Skips the query without ids", func() {
		counts, err := s.repo.CountByCity(s.ctx, nil)

		s.Require().NoError(err)
		s.Require().Empty(counts)
	})
}

func TestWeatherRecordRepositorySuite(t *testing.T) {
	suite.Run(t, new(WeatherRecordRepositorySuite))
}
